// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fasta2a

import (
	"github.com/go-a2a/fasta2a/internal/pool"
)

// ExtractResponseText returns the reply text of the last history entry whose role is agent.
//
// The text of all its text parts is concatenated in part order with no separator. An empty string
// is returned when task is nil or holds no agent entry; that is not an error, the task may simply
// not have produced a reply yet.
func ExtractResponseText(task *Task) string {
	if task == nil {
		return ""
	}

	for i := len(task.History) - 1; i >= 0; i-- {
		msg := &task.History[i]
		if msg.Role != RoleAgent {
			continue
		}

		sb := pool.String.Get()
		defer pool.String.Put(sb)
		for _, part := range msg.Parts {
			if part.Kind == PartKindText {
				sb.WriteString(part.Text)
			}
		}
		return sb.String()
	}

	return ""
}
