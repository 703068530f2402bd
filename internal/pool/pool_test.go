// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package pool

import "testing"

type counter struct {
	n int
}

func (c *counter) Reset() { c.n = 0 }

func TestPool_ResetsOnPut(t *testing.T) {
	p := New(func() *counter { return &counter{} })

	c := p.Get()
	c.n = 42
	p.Put(c)

	if c.n != 0 {
		t.Errorf("Put did not reset the value, n = %d", c.n)
	}
	if got := p.Get(); got.n != 0 {
		t.Errorf("Get() returned a dirty value, n = %d", got.n)
	}
}

func TestBytes(t *testing.T) {
	buf := Bytes.Get()
	buf.WriteString("payload")
	Bytes.Put(buf)

	if buf.Len() != 0 {
		t.Errorf("buffer not reset, len = %d", buf.Len())
	}
}

func TestString(t *testing.T) {
	sb := String.Get()
	sb.WriteString("reply")
	s := sb.String()
	String.Put(sb)

	if s != "reply" {
		t.Errorf("String() = %q, want %q", s, "reply")
	}
	if sb.Len() != 0 {
		t.Errorf("builder not reset, len = %d", sb.Len())
	}
}
