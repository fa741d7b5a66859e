// Package gitremote provides progress event forwarding for remote
// operations. Rendering is the consumer's job; this package only
// rate-adapts the raw event stream coming from the transport.
package gitremote

import (
	"time"
)

// Progress is a raw transfer progress event supplied by the transport engine
// during a remote operation.
type Progress struct {
	// BytesDownloaded is the cumulative number of bytes received.
	BytesDownloaded uint64

	// ObjectsReceived is the number of objects indexed so far.
	ObjectsReceived uint64

	// TotalObjects is the expected total, or 0 when not yet known.
	TotalObjects uint64
}

// Renderer receives rate-limited progress events for display.
type Renderer interface {
	// Update is called with the latest progress event. It must not retain
	// the event past the call.
	Update(p Progress)
}

// defaultProgressInterval caps forwarding at roughly 30 updates per second.
const defaultProgressInterval = 33 * time.Millisecond

// throttleProgress returns a forwarder that drops events arriving faster
// than min since the last forwarded one. Completion events (all objects
// received) are always forwarded so the renderer can finish its display.
func throttleProgress(r Renderer, min time.Duration) func(Progress) {
	var last time.Time
	return func(p Progress) {
		done := p.TotalObjects > 0 && p.ObjectsReceived >= p.TotalObjects
		now := time.Now()
		if !done && now.Sub(last) < min {
			return
		}
		last = now
		r.Update(p)
	}
}
