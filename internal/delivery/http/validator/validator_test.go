package validator

import (
	"testing"

	"nms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    any
		contains []string
	}{
		{
			name:  "valid address",
			input: &usecase.AddressDTO{SourceID: 5, SourceType: "customer", CityID: 2},
		},
		{
			name:     "missing required fields use json names",
			input:    &usecase.AddressDTO{},
			contains: []string{"sourceId is required", "sourceType is required", "cityId is required"},
		},
		{
			name:     "too long",
			input:    &usecase.AddressDTO{SourceID: 5, SourceType: "customer", CityID: 2, Phone: "012345678901234567890"},
			contains: []string{"phone must be at most 20 characters"},
		},
		{
			name:     "bad email",
			input:    &usecase.CompanyDTO{CompanyName: "Acme", Email: "not-an-email"},
			contains: []string{"email must be a valid email address"},
		},
		{
			name:     "empty role list",
			input:    &usecase.RegisterDTO{UserName: "alice", Email: "a@b.co", Password: "longenough"},
			contains: []string{"roles is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if len(tt.contains) == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			for _, msg := range tt.contains {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
