// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"testing"

	"github.com/go-json-experiment/json"
)

func agentMessage(parts ...Part) Message {
	return Message{Role: RoleAgent, Parts: parts}
}

func userMessage(text string) Message {
	return Message{Role: RoleUser, Parts: []Part{NewTextPart(text)}}
}

func TestExtractResponseText(t *testing.T) {
	tests := []struct {
		name string
		task *Task
		want string
	}{
		{
			name: "nil task",
			task: nil,
			want: "",
		},
		{
			name: "no history",
			task: &Task{Status: TaskStatus{State: TaskStateWorking}},
			want: "",
		},
		{
			name: "user entries only",
			task: &Task{History: []Message{userMessage("Hello"), userMessage("Anyone?")}},
			want: "",
		},
		{
			name: "single agent entry",
			task: &Task{History: []Message{userMessage("Hello"), agentMessage(NewTextPart("Hi!"))}},
			want: "Hi!",
		},
		{
			name: "last agent entry wins",
			task: &Task{History: []Message{
				agentMessage(NewTextPart("first")),
				userMessage("again"),
				agentMessage(NewTextPart("second")),
				userMessage("trailing user entry"),
			}},
			want: "second",
		},
		{
			name: "text parts joined without separator",
			task: &Task{History: []Message{agentMessage(NewTextPart("Hello, "), NewTextPart("world"), NewTextPart("!"))}},
			want: "Hello, world!",
		},
		{
			name: "non-text parts skipped",
			task: &Task{History: []Message{agentMessage(
				NewTextPart("See "),
				NewFilePart(FileFromURI("https://example.com/chart.png")),
				Part{Kind: PartKindData, Data: map[string]any{"k": 1}},
				NewTextPart("attached"),
			)}},
			want: "See attached",
		},
		{
			name: "last agent entry without text",
			task: &Task{History: []Message{
				agentMessage(NewTextPart("earlier")),
				agentMessage(NewFilePart(FileFromURI("https://example.com/a.png"))),
			}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractResponseText(tt.task); got != tt.want {
				t.Errorf("ExtractResponseText() = %q, want %q", got, tt.want)
			}
			if tt.task != nil {
				if got := tt.task.ResponseText(); got != tt.want {
					t.Errorf("ResponseText() = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestExtractResponseText_Decoded(t *testing.T) {
	in := `{"context_id":"ctx-1","status":{"state":"completed"},"history":[{"role":"agent","parts":[{"kind":"text","text":"Hi!"}]}]}`

	var task Task
	if err := json.Unmarshal([]byte(in), &task); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got := ExtractResponseText(&task); got != "Hi!" {
		t.Errorf("ExtractResponseText() = %q, want %q", got, "Hi!")
	}
	if task.ContextID != "ctx-1" || task.Status.State != TaskStateCompleted {
		t.Errorf("decoded task = %+v", task)
	}
}

func TestExtractResponseText_Stable(t *testing.T) {
	task := &Task{History: []Message{agentMessage(NewTextPart("a"), NewTextPart("b"))}}

	first := ExtractResponseText(task)
	for range 10 {
		if got := ExtractResponseText(task); got != first {
			t.Fatalf("ExtractResponseText() = %q, then %q", first, got)
		}
	}
}
