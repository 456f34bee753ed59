// Package debounce owns the scheduled-save task used by input layers: each
// edit re-arms the timer, so only the last text in a burst of keystrokes
// reaches the save callback.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period after the last edit before saving.
const DefaultDelay = 600 * time.Millisecond

// Saver schedules a save of the most recent text after a quiet period.
type Saver struct {
	mu      sync.Mutex
	timer   *time.Timer
	text    string
	pending bool
	delay   time.Duration
	save    func(text string)
}

// NewSaver builds a Saver invoking save after delay; a non-positive delay
// falls back to DefaultDelay.
func NewSaver(delay time.Duration, save func(text string)) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Saver{delay: delay, save: save}
}

// Trigger records the latest text and (re)arms the timer, cancelling any
// pending run.
func (s *Saver) Trigger(text string) {
	s.mu.Lock()
	s.text = text
	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
	s.mu.Unlock()
}

// Flush runs a pending save immediately instead of waiting out the delay.
func (s *Saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.fire()
}

// Stop cancels any pending save without running it.
func (s *Saver) Stop() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = false
	s.mu.Unlock()
}

func (s *Saver) fire() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.timer = nil
	text := s.text
	s.mu.Unlock()

	s.save(text)
}
