/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

import (
	"fmt"
	"sync"
)

// Event severity
type Level uint8

const (
	Level_Error Level = iota
	Level_Warning
	Level_Info
	Level_Verbose

	Level_Count
)

func (l Level) String() string {
	switch l {
	case Level_Error:
		return "error"
	case Level_Warning:
		return "warning"
	case Level_Info:
		return "info"
	case Level_Verbose:
		return "verbose"
	}
	return fmt.Sprintf("Level(%d)", l)
}

// Diagnostic event
type Event struct {
	Level Level
	// Reporting component, e.g. "resolve-references"
	Component string
	// Corpus path of the object the event is about
	Path string
	// Error wraps one of ErrXxxError sentinels, use errors.Is
	Err error
}

func (e Event) String() string {
	if e.Path == "" {
		return fmt.Sprintf("%s [%s] %v", e.Level, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s] %v | %s", e.Level, e.Component, e.Err, e.Path)
}

// Collects events, safe for concurrent use
type Collector struct {
	mu     sync.Mutex
	events []Event
	next   IEventSink
}
