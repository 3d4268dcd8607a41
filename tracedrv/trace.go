// Copyright 2024 The Malloc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracedrv replays allocation traces — fixed sequences of
// malloc/free/realloc requests keyed by a caller-assigned index — against
// a malloc.Allocator and reports the utilization and throughput the run
// achieved. It is the harness a malloc-lab style grader would drive the
// allocator with, decoupled from any one trace file format.
package tracedrv

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Op is one line of a trace: a request to allocate, free, or resize the
// block identified by Index, the caller's handle for matching a later
// Free or Realloc to the Ptr a Malloc returned.
type Op struct {
	Kind  string `yaml:"op"`
	Index int    `yaml:"index"`
	Size  int    `yaml:"size,omitempty"`
}

const (
	KindMalloc  = "malloc"
	KindFree    = "free"
	KindRealloc = "realloc"
)

// LoadTrace decodes a YAML document of the form:
//
//	- {op: malloc, index: 0, size: 64}
//	- {op: realloc, index: 0, size: 128}
//	- {op: free, index: 0}
//
// into a sequence of Ops, in document order.
func LoadTrace(r io.Reader) ([]Op, error) {
	var ops []Op
	if err := yaml.NewDecoder(r).Decode(&ops); err != nil {
		return nil, fmt.Errorf("tracedrv: decoding trace: %w", err)
	}
	for i, op := range ops {
		switch op.Kind {
		case KindMalloc, KindFree, KindRealloc:
		default:
			return nil, fmt.Errorf("tracedrv: op %d: unknown kind %q", i, op.Kind)
		}
	}
	return ops, nil
}
