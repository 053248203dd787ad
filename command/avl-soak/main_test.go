// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/soak"
)

func ascendingResult() *soak.Result {
	tree := avl.New()
	for i := 1; i <= 3; i += 1 {
		tree.Insert(avl.IntItem(i))
	}
	return &soak.Result{
		Rounds:    1,
		Inserts:   6,
		Deletes:   3,
		Checks:    6,
		MaxHeight: 1,
		Ascending: tree,
	}
}

func TestReportQuiet(t *testing.T) {
	buffer := &bytes.Buffer{}
	report(buffer, 42, ascendingResult(), false)

	expected := "seed: 42  rounds: 1  inserts: 6  deletes: 3  checks: 6  max height: 1\n"
	assert.Equal(t, expected, buffer.String(), "quiet report")
}

func TestReportVerbosePrintsTree(t *testing.T) {
	buffer := &bytes.Buffer{}
	report(buffer, 42, ascendingResult(), true)

	lines := strings.Split(buffer.String(), "\n")
	expected := []string{
		"seed: 42  rounds: 1  inserts: 6  deletes: 3  checks: 6  max height: 1",
		"ascending tree of 3 items:",
		"       /------+ 3 ^2 h:0 +0",
		"|------+ 2 ^<nil> h:1 +0",
		"       \\------+ 1 ^2 h:0 +0",
		"",
	}
	assert.Equal(t, expected, lines, "verbose report")
}
