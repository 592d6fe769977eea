// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

// Reporter - receives a tree dump for each stage of a run
type Reporter interface {
	Stage(name string, lines []avl.Line) error
}

// WriterReporter - print stages to a stream
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter - create a reporter writing to w
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Stage - write a header followed by the dump
func (r *WriterReporter) Stage(name string, lines []avl.Line) error {
	if _, err := fmt.Fprintf(r.w, "--- %s (%d lines)\n", name, len(lines)); nil != err {
		return err
	}
	return avl.Print(r.w, lines)
}
