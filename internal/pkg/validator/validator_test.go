package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `validate:"required,email"`
	Count int    `validate:"gte=1"`
}

func TestValidate_Passes(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "nid@example.com", Count: 1}))
}

func TestValidate_ReportsFailedTags(t *testing.T) {
	fields := Validate(sample{Email: "not-an-email", Count: 0})

	assert.Equal(t, "email", fields["Email"])
	assert.Equal(t, "gte", fields["Count"])
}
