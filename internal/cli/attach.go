// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-a2a/fasta2a"
)

// maxAttachmentSize bounds a local file sent inline.
const maxAttachmentSize = 8 << 20

// loadAttachment turns a -f argument into a file part payload.
//
// http(s) and file URIs are passed through as a URI. Anything else is read as a local path and
// sent inline as base64 with its name and MIME type.
func loadAttachment(ref string) (fasta2a.File, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return fasta2a.File{}, errors.New("empty attachment")
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "file://") {
		return fasta2a.FileFromURI(ref), nil
	}

	info, err := os.Stat(ref)
	if err != nil {
		return fasta2a.File{}, fmt.Errorf("attachment %s: %w", ref, err)
	}
	if info.IsDir() {
		return fasta2a.File{}, fmt.Errorf("attachment %s is a directory", ref)
	}
	if info.Size() > maxAttachmentSize {
		return fasta2a.File{}, fmt.Errorf("attachment %s is %d bytes, larger than the %d byte limit", ref, info.Size(), maxAttachmentSize)
	}

	data, err := os.ReadFile(ref)
	if err != nil {
		return fasta2a.File{}, fmt.Errorf("read attachment %s: %w", ref, err)
	}

	return fasta2a.FileFromBytes(filepath.Base(ref), detectMIMEType(ref, data), data), nil
}

func loadAttachments(refs []string) ([]fasta2a.File, error) {
	files := make([]fasta2a.File, 0, len(refs))
	for _, ref := range refs {
		f, err := loadAttachment(ref)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// detectMIMEType guesses from the file extension, then from the content.
func detectMIMEType(name string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	if len(data) == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(data)
}
