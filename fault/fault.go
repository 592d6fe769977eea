// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
const (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCountMismatch         = InvalidError("node count does not match item count")
	ErrDuplicateKeysRejected = ExistsError("duplicate keys were rejected")
	ErrHeightBoundExceeded   = ProcessError("tree height exceeds the AVL bound")
	ErrHeightMismatch        = InvalidError("cached height is incorrect")
	ErrInvalidDataDirectory  = InvalidError("data directory is invalid")
	ErrInvalidKey            = InvalidError("key is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidNodeLimit      = InvalidError("node limit is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingConfiguration  = InvalidError("configuration table was not returned")
	ErrNilItem               = InvalidError("item is nil")
	ErrNodeLimitReached      = ResourceError("node limit reached")
	ErrNotDirectory          = InvalidError("path is not a directory")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrNotPlainFileName      = InvalidError("file name must not contain a directory")
	ErrOrderViolation        = InvalidError("keys are out of order")
	ErrRemoveMismatch        = ProcessError("removed item does not match key")
	ErrSearchMismatch        = ProcessError("search did not return inserted item")
	ErrUnbalancedNode        = InvalidError("node is unbalanced")
	ErrUnexpectedArguments   = InvalidError("unexpected arguments")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e ResourceError) Error() string { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrResource(e error) bool { var t ResourceError; return errors.As(e, &t) }
