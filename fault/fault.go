// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrDeleteMismatch       = ProcessError("delete result does not match membership")
	ErrDetachedNode         = InvalidError("node without parent is not the root")
	ErrDuplicateAccepted    = ProcessError("duplicate item was accepted")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInsertMismatch       = ProcessError("insert result does not match membership")
	ErrInvalidConfigTable   = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTree          = ProcessError("tree structure is inconsistent")
	ErrMembershipMismatch   = ProcessError("membership does not match expected set")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrParentMismatch       = InvalidError("parent does not link back to node")
	ErrSizeMismatch         = ProcessError("item count does not match expected set")
	ErrTreeChanged          = ProcessError("tree changed by a no-op")
	ErrTreeTooHigh          = ProcessError("tree height exceeds AVL bound")
	ErrUnbalancedTree       = ProcessError("tree is not balanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
