package logger

import (
	"log/slog"
	"strconv"
)

// Attribute constructors used across the dispatch and barrier packages.
// Keeping key names behind helpers means "message_id" is spelled one way
// in every record. Helpers taking `any` return an empty Attr for nil, so
// call sites need no nil checks; slog drops empty attrs.

// MessageID tags a record with the message envelope ID ("message_id").
func MessageID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("message_id", id)
}

// EventType records the message's type identifier ("event_type").
func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

// Component names the subsystem producing the record ("component").
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Handler names the handler involved in the record ("handler").
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}

// Event records a lifecycle event name ("event").
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// RetryCount records how many retries preceded this attempt ("retry_count").
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// Duration records elapsed time ("duration").
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// RequestID tags a record with the caller's request ID ("request_id").
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// UserID tags a record with the acting user ("user_id").
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// Error records a single error under "error", or nothing for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups several errors under "errors", indexed by position, and
// skips nil entries. All-nil input produces an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Group nests the given attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}
