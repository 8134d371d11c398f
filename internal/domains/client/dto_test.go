package client

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientRequestValidate(t *testing.T) {
	valid := CreateClientRequest{
		ClientName:        "Jane Doe",
		ClientDescription: "Working with them was an absolute pleasure",
		ClientDesignation: "CEO",
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("every designation in the closed set passes", func(t *testing.T) {
		for _, d := range Designations {
			req := valid
			req.ClientDesignation = d.(string)
			assert.NoError(t, req.Validate(), "designation %q", d)
		}
	})

	t.Run("unknown designation is a field-level error", func(t *testing.T) {
		req := valid
		req.ClientDesignation = "Emperor"
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		require.Contains(t, verrs, "clientDesignation")
		assert.Equal(t, "Invalid designation selected", verrs["clientDesignation"].Error())
	})

	t.Run("name with digits rejected", func(t *testing.T) {
		req := valid
		req.ClientName = "Jane D0e"
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "clientName")
	})

	t.Run("name too short", func(t *testing.T) {
		req := valid
		req.ClientName = "J"
		assert.Error(t, req.Validate())
	})

	t.Run("description too short", func(t *testing.T) {
		req := valid
		req.ClientDescription = "short"
		assert.Error(t, req.Validate())
	})

	t.Run("missing designation", func(t *testing.T) {
		req := valid
		req.ClientDesignation = ""
		err := req.Validate()
		require.Error(t, err)

		verrs, ok := err.(validation.Errors)
		require.True(t, ok)
		assert.Contains(t, verrs, "clientDesignation")
	})
}
