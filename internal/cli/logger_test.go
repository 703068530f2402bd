// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		level     string
		wantInfo  bool
		wantDebug bool
	}{
		{level: "debug", wantInfo: true, wantDebug: true},
		{level: "info", wantInfo: true},
		{level: "INFO", wantInfo: true},
		{level: "error"},
		{level: "bogus", wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, zl := setupLogger(tt.level, &buf)

			logger.Info("info line", "contextID", "ctx-1")
			logger.V(1).Info("debug line")
			_ = zl.Sync()

			out := buf.String()
			assert.Equal(t, tt.wantInfo, bytes.Contains([]byte(out), []byte("info line")), out)
			assert.Equal(t, tt.wantDebug, bytes.Contains([]byte(out), []byte("debug line")), out)
			if tt.wantInfo {
				assert.Contains(t, out, "ctx-1")
			}
		})
	}
}

func TestSetupLogger_Errors(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := setupLogger("warn", &buf)

	logger.Info("hidden")
	logger.Error(assert.AnError, "visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
