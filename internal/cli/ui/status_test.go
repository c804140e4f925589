package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	s := NewStatus(&buf, true)

	s.Stage("compile")
	s.Info("compiled %d sources", 3)
	s.Collision("lib/Util.class")
	s.Success("wrote %s", "target/app-1.0.0.jar")

	out := buf.String()
	assert.Contains(t, out, "• compile")
	assert.Contains(t, out, "compiled 3 sources")
	assert.Contains(t, out, "conflict: lib/Util.class")
	assert.Contains(t, out, "✓ wrote target/app-1.0.0.jar")
}

func TestStatusError(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	s := NewStatus(&buf, true)
	s.Error("stage jar: %v", "disk full")

	assert.Contains(t, buf.String(), "✗ stage jar: disk full")
}
