package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required,basic_email,allowed_domain"`
	Size  int64  `json:"size" validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		in         sample
		wantFields []string
	}{
		{name: "valid", in: sample{Name: "Ann", Email: "ann@gmail.com", Size: 1}},
		{name: "blank name", in: sample{Name: "   ", Email: "ann@gmail.com", Size: 1}, wantFields: []string{"name"}},
		{name: "bad email", in: sample{Name: "Ann", Email: "not-an-email", Size: 1}, wantFields: []string{"email"}},
		{name: "domain not allowed", in: sample{Name: "Ann", Email: "ann@yahoo.com", Size: 1}, wantFields: []string{"email"}},
		{name: "several fields", in: sample{Email: "ann@icloud.com"}, wantFields: []string{"name", "size"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields())
			assert.Contains(t, verr.Error(), "validation failed")
		})
	}
}

func TestIsBasicEmail(t *testing.T) {
	assert.True(t, IsBasicEmail("user@gmail.com"))
	assert.True(t, IsBasicEmail("first.last@sub.example.org"))
	assert.False(t, IsBasicEmail("not-an-email"))
	assert.False(t, IsBasicEmail("user@gmail"))
	assert.False(t, IsBasicEmail("us er@gmail.com"))
	assert.False(t, IsBasicEmail(""))
}

func TestIsAllowedDomain(t *testing.T) {
	assert.True(t, IsAllowedDomain("user@gmail.com"))
	assert.True(t, IsAllowedDomain("user@icloud.com"))
	assert.True(t, IsAllowedDomain("User@GMAIL.COM"))
	assert.False(t, IsAllowedDomain("user@yahoo.com"))
	assert.False(t, IsAllowedDomain("user@gmail.com.evil.io"))
	assert.False(t, IsAllowedDomain("no-at-sign"))
}
