// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package log

// Glogger is the process-wide logger; set at init, replaceable.
var Glogger Logger

// caller -> log.go (this file) -> logger.go -> golang/log.go
var CallerDepth = 4

// caller -> LogFn -> log.go (this file) -> logger.go -> golang/log.go
var LogFnCallerDepth = CallerDepth + 1

type LogFn func(string, ...any)
type LogFn2 func(int, string, ...any)

func RegisterLogger(l Logger) bool {
	Glogger = l
	l.SetLevel(INFO)
	return true
}

func SetLevel(level LogLevel) {
	if Glogger != nil {
		Glogger.SetLevel(level)
	}
}

// Of returns a LogFn prefixing all messages with tag.
func Of(tag string, l LogFn2) LogFn {
	if l != nil {
		return func(msg string, args ...any) {
			l(LogFnCallerDepth, tag+" "+msg, args...)
		}
	}
	return N
}

// N is a no-op LogFn.
func N(string, ...any)       {}
func N2(int, string, ...any) {}

func V(msg string, args ...any) {
	V2(LogFnCallerDepth, msg, args...)
}

func D(msg string, args ...any) {
	D2(LogFnCallerDepth, msg, args...)
}

func I(msg string, args ...any) {
	I2(LogFnCallerDepth, msg, args...)
}

func W(msg string, args ...any) {
	W2(LogFnCallerDepth, msg, args...)
}

func E(msg string, args ...any) {
	E2(LogFnCallerDepth, msg, args...)
}

func Wtf(msg string, args ...any) {
	if Glogger != nil {
		Glogger.Fatalf(CallerDepth, "F "+msg, args...)
	}
}

func V2(at int, msg string, args ...any) {
	if Glogger != nil {
		Glogger.Verbosef(at, "V "+msg, args...)
	}
}

func D2(at int, msg string, args ...any) {
	if Glogger != nil {
		Glogger.Debugf(at, "D "+msg, args...)
	}
}

func I2(at int, msg string, args ...any) {
	if Glogger != nil {
		Glogger.Infof(at, "I "+msg, args...)
	}
}

func W2(at int, msg string, args ...any) {
	if Glogger != nil {
		Glogger.Warnf(at, "W "+msg, args...)
	}
}

func E2(at int, msg string, args ...any) {
	if Glogger != nil {
		Glogger.Errorf(at, "E "+msg, args...)
	}
}
