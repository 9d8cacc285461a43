package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Nums  int    `validate:"min=1"`
}

func TestValidate_Passes(t *testing.T) {
	assert.Nil(t, Validate(&sampleRequest{Name: "John", Email: "john@example.com", Nums: 2}))
}

func TestValidate_ReportsFieldAndRule(t *testing.T) {
	fields := Validate(&sampleRequest{Email: "not-an-email"})

	assert.Equal(t, "required", fields["Name"])
	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "min", fields["Nums"])
}
