// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// PartKind is the discriminator of a message [Part].
type PartKind string

// Part kinds.
const (
	PartKindText PartKind = "text"
	PartKindFile PartKind = "file"

	// PartKindData is accepted when decoding agent replies but never sent.
	PartKindData PartKind = "data"
)

// File is a file reference carried by a file [Part]: either a URI or an inline base64 blob.
//
// Bytes holds the base64 text exactly as it travels on the wire; it is never re-encoded.
type File struct {
	Name     string `json:"name,omitzero"`
	MIMEType string `json:"mimeType,omitzero"`
	URI      string `json:"uri,omitzero"`
	Bytes    string `json:"bytes,omitzero"`
}

// FileFromURI returns a File referencing uri.
func FileFromURI(uri string) File {
	return File{URI: uri}
}

// FileFromBytes returns a File carrying data inline as standard base64.
func FileFromBytes(name, mimeType string, data []byte) File {
	return File{
		Name:     name,
		MIMEType: mimeType,
		Bytes:    base64.StdEncoding.EncodeToString(data),
	}
}

// Validate ensures exactly one of URI and Bytes is set.
func (f File) Validate() error {
	switch {
	case f.URI == "" && f.Bytes == "":
		return errors.New("file must have either uri or bytes")
	case f.URI != "" && f.Bytes != "":
		return errors.New("file cannot have both uri and bytes")
	}
	return nil
}

// Part is one unit of message content.
type Part struct {
	Kind     PartKind       `json:"kind"`
	Text     string         `json:"text,omitzero"`
	File     *File          `json:"file,omitzero"`
	Data     map[string]any `json:"data,omitzero"`
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewTextPart returns a text part.
func NewTextPart(text string) Part {
	return Part{Kind: PartKindText, Text: text}
}

// NewFilePart returns a file part wrapping f.
func NewFilePart(f File) Part {
	return Part{Kind: PartKindFile, File: &f}
}

// Validate ensures exactly the payload field matching the part kind is populated.
func (p Part) Validate() error {
	switch p.Kind {
	case PartKindText:
		if p.Text == "" {
			return errors.New("text part text cannot be empty")
		}
		if p.File != nil || p.Data != nil {
			return errors.New("text part must only carry text")
		}
	case PartKindFile:
		if p.File == nil {
			return errors.New("file part file cannot be nil")
		}
		if p.Text != "" || p.Data != nil {
			return errors.New("file part must only carry a file")
		}
		if err := p.File.Validate(); err != nil {
			return fmt.Errorf("invalid file part: %w", err)
		}
	case PartKindData:
		if p.Data == nil {
			return errors.New("data part data cannot be nil")
		}
	default:
		return fmt.Errorf("unknown part kind: %q", p.Kind)
	}
	return nil
}
