/*
 * Copyright (c) 2024-present unTill Pro, Ltd.
 */

package diag

// Returns sink which writes events to the leveled logger
func LoggerSink() IEventSink {
	return loggerSink{}
}

// Returns sink which drops all events
func NopSink() IEventSink {
	return nopSink{}
}

// Returns collecting sink. Collected events are forwarded to next sink, if not nil
func NewCollector(next IEventSink) *Collector {
	return &Collector{next: next}
}
