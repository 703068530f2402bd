// Copyright 2025 The Go A2A Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package fasta2a

// FastA2A path constants.
const (
	// AgentCardWellKnownPath is the path, relative to the A2A endpoint, where an agent publishes
	// its AgentCard.
	//
	// Example usage: https://agent.example.com/a2a/.well-known/agent.json
	AgentCardWellKnownPath = "/.well-known/agent.json"

	// EndpointPath is the path of the FastA2A message endpoint relative to the instance base URL.
	//
	// Example usage: https://agent.example.com/a2a
	EndpointPath = "/a2a"

	// TokenPathPrefix prefixes the token in the token-in-path endpoint.
	//
	// Example usage: https://agent.example.com/a2a/t-AB12CD34EF56GH78
	TokenPathPrefix = "t-"

	// MessageKind is the discriminator value of a message object.
	MessageKind = "message"
)
