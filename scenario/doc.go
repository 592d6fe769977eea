// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - drive a tree through a list of inserts, removes
// and searches, checking the tree after every change
//
// stages of the run can be passed to a Reporter as tree dumps and the
// result is summarised in a Report
package scenario
