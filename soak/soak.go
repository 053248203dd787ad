// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"fmt"
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - totals from a completed run
type Result struct {
	Rounds    int
	Inserts   int
	Deletes   int
	Checks    int
	MaxHeight int

	// set filled with 1..Items in increasing order, kept for display
	Ascending OrderedSet
}

// state for one run
type runner struct {
	log      *logger.L
	options  Options
	rng      *rand.Rand
	set      OrderedSet
	expected map[int]struct{}
	result   Result
	ops      int
}

// Run - execute the configured rounds, each on a fresh set from newSet
//
// stops at the first failure, the returned error carries the round and
// value that exposed it
func Run(log *logger.L, newSet func() OrderedSet, options Options) (*Result, error) {
	if err := options.Validate(); nil != err {
		return nil, err
	}

	r := &runner{
		log:     log,
		options: options,
		rng:     rand.New(rand.NewSource(options.Seed)),
	}

	log.Infof("rounds: %d  items: %d  seed: %d", options.Rounds, options.Items, options.Seed)

	r.result.Ascending = newSet()
	if err := r.ascending(r.result.Ascending); nil != err {
		log.Errorf("ascending: %s", err)
		return &r.result, err
	}

	for round := 1; round <= options.Rounds; round += 1 {
		r.set = newSet()
		r.expected = make(map[int]struct{}, options.Items)
		if err := r.round(); nil != err {
			err = fmt.Errorf("round: %d  %w", round, err)
			log.Errorf("%s", err)
			return &r.result, err
		}
		r.result.Rounds += 1
		log.Debugf("round: %d complete  checks: %d", round, r.result.Checks)
	}

	log.Infof("result: %+v", r.result)
	return &r.result, nil
}

// insert 1..n in increasing order, the worst case for a plain BST
func (r *runner) ascending(set OrderedSet) error {
	for i := 1; i <= r.options.Items; i += 1 {
		if !set.Insert(avl.IntItem(i)) {
			return fmt.Errorf("%w: ascending value: %d", fault.ErrInsertMismatch, i)
		}
		r.result.Inserts += 1
		if err := r.checkHeight(set, i); nil != err {
			return err
		}
	}
	if !set.IsValid() {
		return fault.ErrInvalidTree
	}
	r.log.Debugf("ascending: %d items  height: %d", r.options.Items, set.Height())
	return nil
}

// build, probe and empty one set
func (r *runner) round() error {
	for _, v := range r.permutation() {
		if !r.set.Insert(avl.IntItem(v)) {
			return fmt.Errorf("%w: insert value: %d", fault.ErrInsertMismatch, v)
		}
		r.expected[v] = struct{}{}
		r.result.Inserts += 1
		if err := r.check(v); nil != err {
			return err
		}
	}

	if err := r.duplicates(); nil != err {
		return err
	}
	if err := r.absent(); nil != err {
		return err
	}

	for _, v := range r.permutation() {
		if !r.set.Delete(avl.IntItem(v)) {
			return fmt.Errorf("%w: delete value: %d", fault.ErrDeleteMismatch, v)
		}
		delete(r.expected, v)
		r.result.Deletes += 1
		if r.set.Contains(avl.IntItem(v)) {
			return fmt.Errorf("%w: deleted value: %d still present", fault.ErrMembershipMismatch, v)
		}
		if err := r.check(v); nil != err {
			return err
		}
	}
	if 0 != r.set.Count() {
		return fmt.Errorf("%w: %d items left", fault.ErrSizeMismatch, r.set.Count())
	}
	return nil
}

// re-insert present values, nothing may change
func (r *runner) duplicates() error {
	for i := 0; i < r.options.Duplicates; i += 1 {
		v := 1 + r.rng.Intn(r.options.Items)
		before := r.set.String()
		if r.set.Insert(avl.IntItem(v)) {
			return fmt.Errorf("%w: value: %d", fault.ErrDuplicateAccepted, v)
		}
		if before != r.set.String() || len(r.expected) != r.set.Count() {
			return fmt.Errorf("%w: duplicate insert of: %d", fault.ErrTreeChanged, v)
		}
	}
	return nil
}

// delete values that were never inserted, nothing may change
func (r *runner) absent() error {
	for i := 0; i < r.options.Absent; i += 1 {
		v := r.options.Items + 1 + r.rng.Intn(r.options.Items)
		if 0 == i%2 {
			v = -v
		}
		before := r.set.String()
		if r.set.Delete(avl.IntItem(v)) {
			return fmt.Errorf("%w: absent value: %d", fault.ErrDeleteMismatch, v)
		}
		if before != r.set.String() {
			return fmt.Errorf("%w: absent delete of: %d", fault.ErrTreeChanged, v)
		}
	}
	return nil
}

// structural check after every operation, full membership scan at the
// configured interval
func (r *runner) check(v int) error {
	r.ops += 1
	r.result.Checks += 1

	if !r.set.IsValid() {
		return fmt.Errorf("%w: after value: %d", fault.ErrInvalidTree, v)
	}
	if !r.set.CheckBalance() {
		return fmt.Errorf("%w: after value: %d", fault.ErrUnbalancedTree, v)
	}
	if len(r.expected) != r.set.Count() {
		return fmt.Errorf("%w: after value: %d  count: %d  expected: %d", fault.ErrSizeMismatch, v, r.set.Count(), len(r.expected))
	}
	if err := r.checkHeight(r.set, len(r.expected)); nil != err {
		return err
	}

	if 0 != r.ops%r.options.CheckInterval {
		return nil
	}
	for i := 1; i <= r.options.Items; i += 1 {
		_, ok := r.expected[i]
		if ok != r.set.Contains(avl.IntItem(i)) {
			return fmt.Errorf("%w: after value: %d  member: %d  expected: %v", fault.ErrMembershipMismatch, v, i, ok)
		}
	}
	return nil
}

func (r *runner) checkHeight(set OrderedSet, n int) error {
	h := set.Height()
	if h > r.result.MaxHeight {
		r.result.MaxHeight = h
	}
	if n > 0 && float64(h) > HeightBound(n) {
		return fmt.Errorf("%w: items: %d  height: %d", fault.ErrTreeTooHigh, n, h)
	}
	return nil
}

// values 1..Items in a random order
func (r *runner) permutation() []int {
	p := r.rng.Perm(r.options.Items)
	for i := range p {
		p[i] += 1
	}
	return p
}
