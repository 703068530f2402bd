// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Message is one turn of a conversation, sent by the user or produced by the agent.
type Message struct {
	Kind      string         `json:"kind,omitzero"`
	Role      Role           `json:"role"`
	Parts     []Part         `json:"parts"`
	ContextID string         `json:"context_id,omitzero"`
	TaskID    string         `json:"task_id,omitzero"`
	MessageID string         `json:"message_id"`
	Metadata  map[string]any `json:"metadata,omitzero"`
}

// NewUserMessage creates a user message holding one text part followed by one file part per
// attachment, in order. A fresh message ID is generated for every call.
func NewUserMessage(text string, attachments ...File) Message {
	parts := make([]Part, 0, 1+len(attachments))
	parts = append(parts, NewTextPart(text))
	for _, f := range attachments {
		parts = append(parts, NewFilePart(f))
	}

	return Message{
		Kind:      MessageKind,
		Role:      RoleUser,
		Parts:     parts,
		MessageID: uuid.NewString(),
	}
}

// Validate ensures the Message is valid.
func (m Message) Validate() error {
	if m.Role != RoleAgent && m.Role != RoleUser {
		return fmt.Errorf("invalid message role: %q", m.Role)
	}
	if m.MessageID == "" {
		return errors.New("message ID cannot be empty")
	}
	if len(m.Parts) == 0 {
		return errors.New("message must contain at least one part")
	}
	for i, part := range m.Parts {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("message part at index %d is invalid: %w", i, err)
		}
	}
	return nil
}
