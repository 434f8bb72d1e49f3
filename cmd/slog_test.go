package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimSourcePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/dev/bedaie-web/internal/jobs/email_sender.go", "internal/jobs/email_sender.go"},
		{"/root/go/src/example.com/pkg/file.go", "example.com/pkg/file.go"},
		{"/opt/file.go", "/opt/file.go"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimSourcePath(tt.path, "/bedaie-web/"))
	}
}

func TestDebugLoggerWritesErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := newDebugLogger(&buf, "/bedaie-web/")

	logger.Debug("send failed", "error", errors.New("smtp timeout"))

	assert.Contains(t, buf.String(), "send failed")
	assert.Contains(t, buf.String(), "smtp timeout")
}
