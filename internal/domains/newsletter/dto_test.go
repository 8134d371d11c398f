package newsletter

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeRequestValidate(t *testing.T) {
	t.Run("valid email passes", func(t *testing.T) {
		req := SubscribeRequest{EmailAddress: "reader@example.com"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing email", func(t *testing.T) {
		req := SubscribeRequest{}
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "emailAddress")
	})

	t.Run("invalid format", func(t *testing.T) {
		req := SubscribeRequest{EmailAddress: "@missing-local-part.com"}
		assert.Error(t, req.Validate())
	})

	t.Run("too long", func(t *testing.T) {
		req := SubscribeRequest{EmailAddress: strings.Repeat("a", 95) + "@example.com"}
		assert.Error(t, req.Validate())
	})
}

func TestSubscribeRequestSanitize(t *testing.T) {
	req := SubscribeRequest{EmailAddress: "  Reader@Example.COM "}
	assert.Equal(t, "reader@example.com", req.Sanitize().EmailAddress)
}
