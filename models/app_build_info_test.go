package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-02", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-02", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo("1.0.0", "today", "abc123").Print(&buf)

	assert.Equal(t, "Build version: 1.0.0\nBuild date: today\nBuild commit: abc123\n", buf.String())
}
