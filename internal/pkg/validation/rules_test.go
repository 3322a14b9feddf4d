package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/personnel/internal/pkg/validation"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Ref   int64  `json:"ref_id" validate:"gt=0"`
	Plain string `validate:"max=2"`
}

func TestFirstViolation(t *testing.T) {
	tests := []struct {
		name   string
		in     sample
		field  string
		reason string
	}{
		{"missing name", sample{Ref: 1}, "name", "is required"},
		{"long name", sample{Name: strings.Repeat("x", 6), Ref: 1}, "name", "must be at most 5 characters"},
		{"bad ref", sample{Name: "ok"}, "ref_id", "must be greater than 0"},
		{"untagged field name", sample{Name: "ok", Ref: 1, Plain: "xyz"}, "Plain", "must be at most 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := validation.FirstViolation(tt.in)
			require.NoError(t, err)
			require.NotNil(t, v)
			assert.Equal(t, tt.field, v.Field)
			assert.Equal(t, tt.reason, v.Reason)
		})
	}
}

func TestFirstViolation_Valid(t *testing.T) {
	v, err := validation.FirstViolation(sample{Name: "ok", Ref: 3})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFirstViolation_NotAStruct(t *testing.T) {
	_, err := validation.FirstViolation(42)
	require.Error(t, err)
}
