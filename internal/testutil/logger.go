package testutil

import (
	"bytes"
	"log/slog"
)

// NewBufferLogger returns an slog text logger writing into a buffer,
// plus the buffer so tests can assert on the captured output.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}
