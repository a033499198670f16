// Copyright (c) 2024 Tunspace and its authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package log

import (
	"fmt"
	golog "log"
	"os"
	"strings"
)

type Logger interface {
	SetLevel(level LogLevel)
	Printf(msg string, args ...any)
	Verbosef(at int, msg string, args ...any)
	Debugf(at int, msg string, args ...any)
	Infof(at int, msg string, args ...any)
	Warnf(at int, msg string, args ...any)
	Errorf(at int, msg string, args ...any)
	Fatalf(at int, msg string, args ...any)
}

type LogLevel uint32

const (
	VERBOSE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
	NONE
)

const defaultLevel = INFO

type simpleLogger struct {
	level LogLevel
	tag   string
	e     *golog.Logger
	o     *golog.Logger
}

var _ Logger = (*simpleLogger)(nil)

var defaultFlags = golog.Lshortfile
var defaultCallerDepth = 2
var _ = RegisterLogger(defaultLogger())

func defaultLogger() *simpleLogger {
	return &simpleLogger{
		level: defaultLevel,
		e:     golog.New(os.Stderr, "", defaultFlags),
		o:     golog.New(os.Stdout, "", defaultFlags),
	}
}

// NewLogger creates a logger tagging all messages with tag.
func NewLogger(tag string) *simpleLogger {
	l := defaultLogger()
	if len(tag) <= 0 { // if tag is empty, leave it as is
		return l
	}
	if !strings.HasSuffix(tag, "/") {
		tag += "/ "
	} else if !strings.HasSuffix(tag, " ") {
		tag += " "
	}
	l.tag = tag
	return l
}

func (l *simpleLogger) SetLevel(n LogLevel) {
	l.level = n
}

// Printf exists to satisfy net/http's Logger interface.
func (l *simpleLogger) Printf(msg string, args ...any) {
	l.Debugf(defaultCallerDepth, msg, args...)
}

func (l *simpleLogger) Verbosef(at int, msg string, args ...any) {
	if l.level <= VERBOSE {
		l.out(at, l.msgstr(msg, args...))
	}
}

func (l *simpleLogger) Debugf(at int, msg string, args ...any) {
	if l.level <= DEBUG {
		l.out(at, l.msgstr(msg, args...))
	}
}

func (l *simpleLogger) Infof(at int, msg string, args ...any) {
	if l.level <= INFO {
		l.out(at, l.msgstr(msg, args...))
	}
}

func (l *simpleLogger) Warnf(at int, msg string, args ...any) {
	if l.level <= WARN {
		l.err(at, l.msgstr(msg, args...))
	}
}

func (l *simpleLogger) Errorf(at int, msg string, args ...any) {
	if l.level <= ERROR {
		l.err(at, l.msgstr(msg, args...))
	}
}

func (l *simpleLogger) Fatalf(at int, msg string, args ...any) {
	l.err(at, l.msgstr(msg, args...))
	os.Exit(1)
}

func (l *simpleLogger) msgstr(msg string, args ...any) string {
	if len(l.tag) > 0 {
		msg = l.tag + msg
	}
	return fmt.Sprintf(msg, args...)
}

// out logs to stdout at caller depth at.
func (l *simpleLogger) out(at int, msg string) {
	_ = l.o.Output(at, msg)
}

// err logs to stderr at caller depth at.
func (l *simpleLogger) err(at int, msg string) {
	_ = l.e.Output(at, msg)
}
