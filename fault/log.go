// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for a last attempt to log something
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalAt(2, format, arguments...)
}

// Panicf - log a formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	criticalAt(2, format, arguments...)
	abort(fmt.Sprintf(format, arguments...))
}

// PanicIfError - log and panic only if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalAt(2, "%s", s)
	abort(s)
}

// prefix the message with the file and line of a caller
func criticalAt(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// final panic
func abort(message string) {
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// internal routine to handle an uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
