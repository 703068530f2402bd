// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package fasta2a provides the FastA2A wire data model used to converse with an Agent Zero
// instance: messages and their parts, tasks returned by the agent and the agent card published
// for discovery.
package fasta2a

// Version is the FastA2A protocol version spoken by this package.
const Version = "0.2.0"

// Role represents the role of a message sender.
type Role string

// Role constants for message senders.
const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// TaskState represents the state of a Task as reported by the agent.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been received but not started.
	TaskStateSubmitted TaskState = "submitted"

	// TaskStateWorking indicates the task is being worked on.
	TaskStateWorking TaskState = "working"

	// TaskStateInputRequired indicates the agent is waiting for more input.
	TaskStateInputRequired TaskState = "input-required"

	// TaskStateCompleted indicates the task has been completed.
	TaskStateCompleted TaskState = "completed"

	// TaskStateFailed indicates the task has failed.
	TaskStateFailed TaskState = "failed"

	// TaskStateCanceled indicates the task has been canceled.
	TaskStateCanceled TaskState = "canceled"
)

// IsTerminal reports whether no further state transitions follow s.
func (s TaskState) IsTerminal() bool {
	switch s {
	case TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// IsKnown reports whether s is one of the defined task states.
func (s TaskState) IsKnown() bool {
	switch s {
	case TaskStateSubmitted, TaskStateWorking, TaskStateInputRequired,
		TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	default:
		return false
	}
}

// TaskStatus is the status block of a Task.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Message   *Message  `json:"message,omitzero"`
	Timestamp string    `json:"timestamp,omitzero"`
}

// Artifact represents an output generated during a task.
type Artifact struct {
	ArtifactID  string         `json:"artifact_id,omitzero"`
	Name        string         `json:"name,omitzero"`
	Description string         `json:"description,omitzero"`
	Parts       []Part         `json:"parts"`
	Metadata    map[string]any `json:"metadata,omitzero"`
}

// Task is the agent's unit of work created by a message send.
type Task struct {
	ID        string         `json:"id,omitzero"`
	ContextID string         `json:"context_id,omitzero"`
	Kind      string         `json:"kind,omitzero"`
	Status    TaskStatus     `json:"status"`
	History   []Message      `json:"history,omitzero"`
	Artifacts []Artifact     `json:"artifacts,omitzero"`
	Metadata  map[string]any `json:"metadata,omitzero"`
}

// ResponseText returns the text of the latest agent reply in the task history.
//
// See [ExtractResponseText].
func (t *Task) ResponseText() string {
	return ExtractResponseText(t)
}

// AgentCapabilities describes optional protocol features of an agent.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming,omitzero"`
	PushNotifications      bool `json:"pushNotifications,omitzero"`
	StateTransitionHistory bool `json:"stateTransitionHistory,omitzero"`
}

// AgentSkill describes a unit of capability an agent can perform.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitzero"`
	Tags        []string `json:"tags,omitzero"`
	InputModes  []string `json:"inputModes,omitzero"`
	OutputModes []string `json:"outputModes,omitzero"`
}

// AgentCard is the metadata an agent publishes at [AgentCardWellKnownPath].
//
// The card is only consumed to confirm connectivity, so decoding is lenient and unknown members
// are ignored.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description,omitzero"`
	URL                string            `json:"url,omitzero"`
	Version            string            `json:"version,omitzero"`
	ProtocolVersion    string            `json:"protocolVersion,omitzero"`
	Capabilities       AgentCapabilities `json:"capabilities,omitzero"`
	SecuritySchemes    map[string]any    `json:"securitySchemes,omitzero"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitzero"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitzero"`
	Skills             []AgentSkill      `json:"skills,omitzero"`
}
