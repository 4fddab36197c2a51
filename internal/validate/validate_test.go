package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	for _, ok := range []string{"ana@example.com", " ana.perez+web@mail.example.mx "} {
		assert.True(t, Email(ok), ok)
	}
	for _, bad := range []string{"", "ana", "ana@", "ana@example", "ana @example.com", "@example.com"} {
		assert.False(t, Email(bad), bad)
	}
}

func TestBlank(t *testing.T) {
	assert.False(t, Blank("a", "b"))
	assert.True(t, Blank("a", "   "))
	assert.True(t, Blank(""))
	assert.False(t, Blank())
}
