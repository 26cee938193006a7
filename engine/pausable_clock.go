package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops advancing while paused
type PausableClock struct {
	mu sync.RWMutex

	source TimeSource

	realStartTime time.Time // When clock was created (source time)
	gameStartTime time.Time // Game time epoch

	paused          bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock over the given source, nil selects real time
func NewPausableClock(source TimeSource) *PausableClock {
	if source == nil {
		source = NewTimeProvider()
	}
	now := source.Now()
	return &PausableClock{
		source:        source,
		realStartTime: now,
		gameStartTime: now,
	}
}

// Now returns current game time (frozen during pause)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.gameStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}

	// Game elapsed = real elapsed - total paused time
	realElapsed := pc.source.Now().Sub(pc.realStartTime)
	return pc.gameStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// GetTotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) GetTotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
