// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"bytes"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewUserMessage(t *testing.T) {
	files := []File{
		FileFromURI("https://example.com/a.png"),
		FileFromBytes("b.txt", "text/plain", []byte("b")),
	}

	msg := NewUserMessage("Hello", files...)

	want := Message{
		Kind: MessageKind,
		Role: RoleUser,
		Parts: []Part{
			{Kind: PartKindText, Text: "Hello"},
			{Kind: PartKindFile, File: &File{URI: "https://example.com/a.png"}},
			{Kind: PartKindFile, File: &File{Name: "b.txt", MIMEType: "text/plain", Bytes: "Yg=="}},
		},
	}
	if diff := cmp.Diff(want, msg, cmpopts.IgnoreFields(Message{}, "MessageID")); diff != "" {
		t.Errorf("NewUserMessage() mismatch (-want +got):\n%s", diff)
	}
	if msg.MessageID == "" {
		t.Error("NewUserMessage() left MessageID empty")
	}
	if other := NewUserMessage("Hello"); other.MessageID == msg.MessageID {
		t.Errorf("two messages share the ID %q", msg.MessageID)
	}
	if err := msg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestMessage_Validate(t *testing.T) {
	textPart := NewTextPart("Hello, world!")

	tests := []struct {
		name      string
		message   Message
		wantError bool
	}{
		{
			name:    "valid message",
			message: Message{Role: RoleUser, Parts: []Part{textPart}, MessageID: "msg-123"},
		},
		{
			name:    "valid agent message",
			message: Message{Role: RoleAgent, Parts: []Part{textPart}, MessageID: "msg-123"},
		},
		{
			name:      "invalid role",
			message:   Message{Role: Role("system"), Parts: []Part{textPart}, MessageID: "msg-123"},
			wantError: true,
		},
		{
			name:      "empty message ID",
			message:   Message{Role: RoleUser, Parts: []Part{textPart}},
			wantError: true,
		},
		{
			name:      "empty parts",
			message:   Message{Role: RoleUser, Parts: []Part{}, MessageID: "msg-123"},
			wantError: true,
		},
		{
			name:      "invalid part in parts",
			message:   Message{Role: RoleUser, Parts: []Part{textPart, {Kind: PartKindFile}}, MessageID: "msg-123"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error but got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error but got %v", err)
			}
		})
	}
}

func TestMessage_MarshalJSON(t *testing.T) {
	msg := Message{
		Kind:      MessageKind,
		Role:      RoleUser,
		Parts:     []Part{NewTextPart("Hello")},
		MessageID: "msg-1",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"kind":"message","role":"user","parts":[{"kind":"text","text":"Hello"}],"message_id":"msg-1"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	msg.ContextID = "ctx-1"
	data, err = json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Contains(data, []byte(`"context_id":"ctx-1"`)) {
		t.Errorf("Marshal() = %s, want a context_id member", data)
	}
}

func TestMessage_UnmarshalJSON(t *testing.T) {
	in := `{"role":"agent","parts":[{"kind":"text","text":"a"},{"kind":"data","data":{"k":1}},{"kind":"file","file":{"uri":"https://x/y"}}],"extra":true}`

	var got Message
	if err := json.Unmarshal([]byte(in), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := Message{
		Role: RoleAgent,
		Parts: []Part{
			{Kind: PartKindText, Text: "a"},
			{Kind: PartKindData, Data: map[string]any{"k": float64(1)}},
			{Kind: PartKindFile, File: &File{URI: "https://x/y"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}
