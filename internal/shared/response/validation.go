package response

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrorsFrom chuyển ozzo validation.Errors thành []FieldError
// Keys của validation.Errors là json tag names nên field names
// trong response khớp với request body (vd: "clientDesignation")
// Sort theo field name để output ổn định
func FieldErrorsFrom(err error) []FieldError {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]FieldError, 0, len(verrs))
	for _, field := range fields {
		out = append(out, FieldError{
			Field:   field,
			Message: verrs[field].Error(),
		})
	}
	return out
}
