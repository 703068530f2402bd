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

// Package pool provides generic type pooling, and provides [*bytes.Buffer] and [*strings.Builder] pooling objects.
package pool

import (
	"bytes"
	"strings"
	"sync"
)

// Pool is a generics wrapper around [sync.Pool] to provide strongly-typed object pooling.
type Pool[T any] struct {
	p sync.Pool
}

// Resetter is implemented by pooled values that must be cleared before reuse.
type Resetter interface {
	Reset()
}

// New returns a new [Pool] for T, and will use fn to construct new T's when the pool is empty.
func New[T any](fn func() T) *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				return fn()
			},
		},
	}
}

// Get gets a T from the pool, or creates a new one if the pool is empty.
func (p *Pool[T]) Get() T {
	return p.p.Get().(T)
}

// Put resets x when it implements [Resetter] and returns it into the pool.
func (p *Pool[T]) Put(x T) {
	if r, ok := any(x).(Resetter); ok {
		r.Reset()
	}
	p.p.Put(x)
}

// Bytes provides the [*bytes.Buffer] pooling objects used for encoding request bodies.
var Bytes = New(func() *bytes.Buffer {
	return &bytes.Buffer{}
})

// String provides the [*strings.Builder] pooling objects used for assembling reply text.
var String = New(func() *strings.Builder {
	return &strings.Builder{}
})
