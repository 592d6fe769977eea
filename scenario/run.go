// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// stage names passed to the reporter
const (
	insertStage = "insert"
	removeStage = "remove"
)

// Report - outcome of a run
type Report struct {
	Name        string    `json:"name"`
	Inserted    []int64   `json:"inserted"`
	Rejected    []int64   `json:"rejected"`
	Removed     []int64   `json:"removed"`
	Missing     []int64   `json:"missing"`
	Found       []int64   `json:"found"`
	NotFound    []int64   `json:"not_found"`
	Count       int       `json:"count"`
	Height      int       `json:"height"`
	HeightBound int       `json:"height_bound"`
	Nodes       avl.Stats `json:"nodes"`
}

// Run - apply a scenario to a tree
//
// the tree is checked after every insert and remove, the first
// problem stops the run and the partial report is returned with the
// error
func Run(tree *avl.Tree[int64], s *Scenario, reporter Reporter, log *logger.L) (*Report, error) {

	if nil == s {
		return nil, fault.ErrMissingConfiguration
	}

	report := &Report{
		Name:     s.Name,
		Inserted: make([]int64, 0, len(s.Insert)),
		Rejected: []int64{},
		Removed:  make([]int64, 0, len(s.Remove)),
		Missing:  []int64{},
		Found:    make([]int64, 0, len(s.Search)),
		NotFound: []int64{},
	}

	log.Infof("scenario: %q  insert: %d  remove: %d  search: %d", s.Name, len(s.Insert), len(s.Remove), len(s.Search))

	for _, key := range s.Insert {
		item := avl.NewKeyed(key, strconv.FormatInt(key, 10))
		existing, err := tree.Insert(item)
		if nil != err {
			log.Errorf("insert: %d  error: %s", key, err)
			return report, err
		}
		if nil != existing {
			log.Warnf("insert: %d  duplicate rejected", key)
			report.Rejected = append(report.Rejected, key)
			continue
		}
		if found := tree.Search(key); found != avl.Item[int64](item) {
			return report, fmt.Errorf("insert: %d: %w", key, fault.ErrSearchMismatch)
		}
		if err := tree.Check(); nil != err {
			return report, err
		}
		log.Debugf("insert: %d  count: %d  height: %d", key, tree.Count(), tree.Height())
		report.Inserted = append(report.Inserted, key)
	}

	if err := stage(tree, s, reporter, insertStage); nil != err {
		return report, err
	}

	for _, key := range s.Remove {
		removed := tree.Remove(key)
		if nil == removed {
			log.Warnf("remove: %d  not present", key)
			report.Missing = append(report.Missing, key)
			continue
		}
		if removed.Compare(key) != avl.Equal {
			return report, fmt.Errorf("remove: %d returned: %v: %w", key, removed.Key(), fault.ErrRemoveMismatch)
		}
		if err := tree.Check(); nil != err {
			return report, err
		}
		log.Debugf("remove: %d  count: %d  height: %d", key, tree.Count(), tree.Height())
		report.Removed = append(report.Removed, key)

		if err := stage(tree, s, reporter, fmt.Sprintf("%s %d", removeStage, key)); nil != err {
			return report, err
		}
	}

	for _, key := range s.Search {
		if nil == tree.Search(key) {
			report.NotFound = append(report.NotFound, key)
		} else {
			report.Found = append(report.Found, key)
		}
	}

	report.Count = tree.Count()
	report.Height = tree.Height()
	report.HeightBound = HeightBound(report.Count)
	report.Nodes = tree.Stats()

	log.Infof("count: %d  height: %d  bound: %d  rejected: %d  missing: %d  not found: %d",
		report.Count, report.Height, report.HeightBound,
		len(report.Rejected), len(report.Missing), len(report.NotFound))

	if report.Height > report.HeightBound {
		return report, fmt.Errorf("height: %d  bound: %d: %w", report.Height, report.HeightBound, fault.ErrHeightBoundExceeded)
	}
	return report, nil
}

// pass the current dump to the reporter if stages are wanted
func stage(tree *avl.Tree[int64], s *Scenario, reporter Reporter, name string) error {
	if !s.DumpStages || nil == reporter {
		return nil
	}
	return reporter.Stage(name, tree.Dump())
}

// Unique - the error to report for rejected keys, nil if there were none
func (r *Report) Unique() error {
	if 0 == len(r.Rejected) {
		return nil
	}
	return fmt.Errorf("%d keys: %v: %w", len(r.Rejected), r.Rejected, fault.ErrDuplicateKeysRejected)
}
