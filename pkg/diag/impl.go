/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

import (
	"errors"

	"github.com/untillpro/goutils/logger"
)

type loggerSink struct{}

func (loggerSink) Event(e Event) {
	switch e.Level {
	case Level_Error:
		logger.Error(e.String())
	case Level_Warning:
		logger.Warning(e.String())
	case Level_Info:
		logger.Info(e.String())
	default:
		if logger.IsVerbose() {
			logger.Verbose(e.String())
		}
	}
}

type nopSink struct{}

func (nopSink) Event(Event) {}

func (c *Collector) Event(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
	if c.next != nil {
		c.next.Event(e)
	}
}

// Returns copy of collected events
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// Returns collected events which errors match target
func (c *Collector) Filter(target error) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	var res []Event
	for _, e := range c.events {
		if errors.Is(e.Err, target) {
			res = append(res, e)
		}
	}
	return res
}

// Returns number of collected events with the specified level
func (c *Collector) Count(level Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cnt := 0
	for _, e := range c.events {
		if e.Level == level {
			cnt++
		}
	}
	return cnt
}

func (c *Collector) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}
