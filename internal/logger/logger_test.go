package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	buffer := &bytes.Buffer{}
	log := New(&Config{Level: DebugLevel, Output: buffer, JSON: true})
	log.Debug("registered converter", "type", "int")
	assert.Contains(t, buffer.String(), "registered converter")
	assert.Contains(t, buffer.String(), `"type":"int"`)

	buffer.Reset()
	quiet := New(&Config{Level: ErrorLevel, Output: buffer})
	quiet.Warn("skipped")
	assert.Empty(t, buffer.String())
}

func TestSetDefault(t *testing.T) {
	previous := Default()
	defer SetDefault(previous)
	buffer := &bytes.Buffer{}
	SetDefault(New(&Config{Level: InfoLevel, Output: buffer}))
	Default().Info("hello")
	assert.Contains(t, buffer.String(), "hello")
}
