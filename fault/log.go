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

// name of the last resort logger channel
const panicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger package must already be initialised
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(panicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and release the channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted string prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Failure - record an error from a verification run, classifying it
// so the log shows whether the tree or its bookkeeping went wrong
func Failure(message string, err error) {
	class := "unclassified"
	switch {
	case IsErrInvalid(err):
		class = "structure"
	case IsErrProcess(err):
		class = "behaviour"
	case IsErrNotFound(err):
		class = "missing"
	case IsErrExists(err):
		class = "exists"
	}
	criticalf(2, "%s: %s failure: %s", message, class, err)
}

// Panicf - log then panic with a formatted message
func Panicf(format string, arguments ...interface{}) {
	s := fmt.Sprintf(format, arguments...)
	criticalf(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// internal: add caller location, fall back to stdout if there is no channel
func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		format = "(%q:%d) " + format
		arguments = a
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush() // make sure log file is saved
}
