package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func TestDefaultPasswordPolicy(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()
	assert.Equal(t, 8, policy.MinLength)
	assert.True(t, policy.RequireUppercase)
	assert.True(t, policy.RequireDigit)
	assert.True(t, policy.RequireSpecial)
}

func TestPassword(t *testing.T) {
	t.Parallel()
	policy := validator.DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		codes    []string
	}{
		{"valid", "Password1!", nil},
		{"empty", "", []string{"required", "min_length", "password_uppercase", "password_digit", "password_special"}},
		{"no uppercase", "password", []string{"password_uppercase", "password_digit", "password_special"}},
		{"no digit", "Password", []string{"password_digit", "password_special"}},
		{"no special", "Password1", []string{"password_special"}},
		{"too short", "Pa1!", []string{"min_length"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validator.Apply(validator.Password("password", tt.password, policy)...)
			if tt.codes == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.codes, validator.ExtractValidationErrors(err).Codes("password"))
		})
	}
}

func TestPasswordRelaxedPolicy(t *testing.T) {
	t.Parallel()
	policy := validator.PasswordPolicy{MinLength: 4}
	assert.True(t, validator.Valid(validator.Password("pin", "abcd", policy)...))
	assert.False(t, validator.Valid(validator.Password("pin", "abc", policy)...))
}

func TestCharacterClassRules(t *testing.T) {
	t.Parallel()
	assert.True(t, validator.HasUppercase("p", "aBc").Check())
	assert.False(t, validator.HasUppercase("p", "abc").Check())
	assert.True(t, validator.HasDigit("p", "a1").Check())
	assert.False(t, validator.HasDigit("p", "ab").Check())
	for _, s := range []string{"!", "#", "-", "`", "~", "\\"} {
		assert.True(t, validator.HasSpecialChar("p", "a"+s).Check(), s)
	}
	assert.False(t, validator.HasSpecialChar("p", "abc123").Check())
}
