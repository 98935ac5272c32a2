package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLocales("en-US")

	assert.Equal("line 3 'nop' bad", From("line %d '%v' %v", 3, "nop", "bad"))
	assert.Equal("plain", From("plain"))
}

func TestSetLocalesEmpty(t *testing.T) {
	assert := assert.New(t)

	SetLocales()
	assert.NotNil(printer)
	assert.Equal("42", From("%v", 42))
}
