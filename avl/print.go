// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// shown in place of an absent child
const placeholder = "**NULL**"

// Line - one line of a tree dump
type Line struct {
	Depth int    `json:"depth"`
	Text  string `json:"text"`
}

// Indent - number of leading spaces for a line at a given depth
func Indent(depth int) int {
	return 5*depth + 1
}

// String - the line with its indentation
func (l Line) String() string {
	return strings.Repeat(" ", Indent(l.Depth)) + l.Text
}

// Dump - a sideways picture of the tree, right sub-tree first, with
// each node shown as key:height and absent children as placeholders
func (tree *Tree[K]) Dump() []Line {
	lines := make([]Line, 0, 2*tree.count+1)
	if nil == tree.root {
		return lines
	}
	return dump(tree.root, 0, lines)
}

func dump[K any](p *Node[K], depth int, lines []Line) []Line {
	lines = dumpChild(p.child[right], depth+1, lines)
	lines = append(lines, Line{
		Depth: depth,
		Text:  fmt.Sprintf("%v:%d", p.item.Key(), p.height),
	})
	return dumpChild(p.child[left], depth+1, lines)
}

func dumpChild[K any](p *Node[K], depth int, lines []Line) []Line {
	if nil == p {
		return append(lines, Line{Depth: depth, Text: placeholder})
	}
	return dump(p, depth, lines)
}

// Print - write dump lines to a stream
func Print(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l.String()); nil != err {
			return err
		}
	}
	return nil
}
