package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys shared between producers and the debug overlay
const (
	KeyFrames        = "engine.frames"
	KeyKicks         = "match.kicks"
	KeyBounces       = "match.bounces"
	KeyGoals         = "match.goals"
	KeySoundsPlayed  = "audio.played"
	KeySoundsDropped = "audio.dropped"
)

// Registry is the central metrics facade
// Producers cache pointers during init; update paths write directly to atomics
type Registry struct {
	Ints *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
}

// Summary renders all integer metrics as "key=value" pairs in key order
func (r *Registry) Summary() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		// Drop the namespace prefix for the compact status line
		if i := strings.IndexByte(key, '.'); i >= 0 {
			key = key[i+1:]
		}
		fmt.Fprintf(&sb, "%s=%d", key, v.Load())
	})
	return sb.String()
}
