package types

import "time"

// LogEntry is the in-flight representation of a request log before the async
// logger persists it.
type LogEntry struct {
	Method       string
	URL          string
	RequestBody  string
	ResponseBody string
	StatusCode   int
	CreatedAt    time.Time
}
