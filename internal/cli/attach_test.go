// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-a2a/fasta2a"
)

func TestLoadAttachment_URI(t *testing.T) {
	for _, ref := range []string{
		"https://example.com/report.pdf",
		"HTTP://example.com/a.png",
		"file:///tmp/notes.txt",
	} {
		t.Run(ref, func(t *testing.T) {
			f, err := loadAttachment(ref)
			require.NoError(t, err)
			assert.Equal(t, fasta2a.File{URI: ref}, f)
		})
	}
}

func TestLoadAttachment_LocalFile(t *testing.T) {
	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	tests := []struct {
		name      string
		file      string
		data      []byte
		wantMIME  string
		wantBytes string
	}{
		{name: "by extension", file: "doc.json", data: []byte(`{}`), wantMIME: "application/json", wantBytes: "e30="},
		{name: "by content", file: "image.bin0", data: png, wantMIME: "image/png"},
		{name: "empty", file: "empty.zz9", data: nil, wantMIME: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, tt.data, 0o600))

			f, err := loadAttachment(path)
			require.NoError(t, err)
			assert.Equal(t, tt.file, f.Name)
			assert.Equal(t, tt.wantMIME, f.MIMEType)
			assert.Empty(t, f.URI)
			if tt.wantBytes != "" {
				assert.Equal(t, tt.wantBytes, f.Bytes)
			}
		})
	}
}

func TestLoadAttachment_Errors(t *testing.T) {
	dir := t.TempDir()

	big := filepath.Join(dir, "big.dat")
	require.NoError(t, os.WriteFile(big, make([]byte, maxAttachmentSize+1), 0o600))

	tests := []struct {
		name    string
		ref     string
		wantErr string
	}{
		{name: "empty", ref: "  ", wantErr: "empty attachment"},
		{name: "missing", ref: filepath.Join(dir, "missing.txt"), wantErr: "missing.txt"},
		{name: "directory", ref: dir, wantErr: "is a directory"},
		{name: "too large", ref: big, wantErr: "byte limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadAttachment(tt.ref)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadAttachments(t *testing.T) {
	files, err := loadAttachments([]string{"https://example.com/a", "https://example.com/b"})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	_, err = loadAttachments([]string{"https://example.com/a", ""})
	require.Error(t, err)
}
