package debounce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	saves []string
}

func (r *recorder) save(text string) {
	r.mu.Lock()
	r.saves = append(r.saves, text)
	r.mu.Unlock()
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.saves...)
}

func TestBurstSavesOnlyLastText(t *testing.T) {
	rec := &recorder{}
	s := NewSaver(30*time.Millisecond, rec.save)

	s.Trigger("d")
	s.Trigger("dr")
	s.Trigger("dra")
	s.Trigger("draft")

	time.Sleep(150 * time.Millisecond)

	saves := rec.snapshot()
	if len(saves) != 1 {
		t.Fatalf("expected exactly one save per burst, got %v", saves)
	}
	if saves[0] != "draft" {
		t.Fatalf("expected last text, got %q", saves[0])
	}
}

func TestStopCancelsPendingSave(t *testing.T) {
	rec := &recorder{}
	s := NewSaver(30*time.Millisecond, rec.save)

	s.Trigger("never persisted")
	s.Stop()

	time.Sleep(100 * time.Millisecond)
	if saves := rec.snapshot(); len(saves) != 0 {
		t.Fatalf("stop should cancel delivery, got %v", saves)
	}
}

func TestFlushDeliversImmediately(t *testing.T) {
	rec := &recorder{}
	s := NewSaver(time.Hour, rec.save)

	s.Trigger("right now")
	s.Flush()

	if saves := rec.snapshot(); len(saves) != 1 || saves[0] != "right now" {
		t.Fatalf("flush should deliver the pending text, got %v", saves)
	}

	// Flushing again with nothing pending is a no-op.
	s.Flush()
	if saves := rec.snapshot(); len(saves) != 1 {
		t.Fatalf("second flush delivered a duplicate: %v", saves)
	}
}
