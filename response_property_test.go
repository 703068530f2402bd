// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func drawPart(rt *rapid.T, label string) Part {
	switch rapid.IntRange(0, 2).Draw(rt, label+"Kind") {
	case 0:
		return NewTextPart(rapid.StringMatching(`[a-z !]{0,8}`).Draw(rt, label+"Text"))
	case 1:
		return NewFilePart(FileFromURI("https://example.com/f"))
	default:
		return Part{Kind: PartKindData, Data: map[string]any{"k": "v"}}
	}
}

// The reply is the concatenated text of the last agent entry, whatever precedes or follows it.
func TestProperty_ExtractResponseText(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(rt, "entries")

		task := &Task{Status: TaskStatus{State: TaskStateCompleted}}
		want := ""
		for i := 0; i < n; i++ {
			role := rapid.SampledFrom([]Role{RoleUser, RoleAgent}).Draw(rt, "role")
			parts := make([]Part, rapid.IntRange(0, 4).Draw(rt, "parts"))
			var sb strings.Builder
			for j := range parts {
				parts[j] = drawPart(rt, "part")
				if parts[j].Kind == PartKindText {
					sb.WriteString(parts[j].Text)
				}
			}
			task.History = append(task.History, Message{Role: role, Parts: parts})
			if role == RoleAgent {
				want = sb.String()
			}
		}

		if got := ExtractResponseText(task); got != want {
			rt.Fatalf("ExtractResponseText() = %q, want %q", got, want)
		}
	})
}
