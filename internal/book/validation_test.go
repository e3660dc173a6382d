package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput_Create(t *testing.T) {
	err := validateInput(CreateInput{Title: "Dune"})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []FieldError{{Field: "author", Message: "author is required"}}, verr.Fields)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "invalid argument: author is required", err.Error())
}

func TestValidateInput_Update(t *testing.T) {
	assert.NoError(t, validateInput(UpdateInput{Title: "x"}))
	assert.NoError(t, validateInput(UpdateInput{Author: "y"}))

	err := validateInput(UpdateInput{})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "title", verr.Fields[0].Field)
	assert.Equal(t, "title is required when author is empty", verr.Fields[0].Message)
}
