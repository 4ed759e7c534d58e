// Package metrics provides observability hooks for bookcat.
//
// Components receive a Recorder through dependency injection and
// default to NoopRecorder, so metrics cost nothing unless a real
// implementation (PrometheusRecorder) is wired in, as serve mode does.
package metrics

import "time"

// Recorder defines observability hooks for cataloguing and storage
// operations. All methods must be safe on a NoopRecorder so injection
// stays optional.
type Recorder interface {
	ObserveCapitalize(kind string, d time.Duration) // kind: title|author
	ObserveSortable(kind string, d time.Duration)   // kind: title|author
	IncStoreOp(op string, success bool)             // op: add|get|list|delete
	IncHTTPRequest(route string, status int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics
// are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveCapitalize(string, time.Duration) {}
func (NoopRecorder) ObserveSortable(string, time.Duration)   {}
func (NoopRecorder) IncStoreOp(string, bool)                 {}
func (NoopRecorder) IncHTTPRequest(string, int)              {}
