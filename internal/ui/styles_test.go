package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	out := Summary("Conversion", Field{Key: "rows", Value: 42}, Field{Key: "skipped", Value: true, Warn: true})

	assert.Contains(t, out, "Conversion")
	assert.Contains(t, out, "rows")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "skipped")
	assert.Contains(t, out, "true")
}
