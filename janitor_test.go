package tempuscore

import (
	"testing"
	"time"
)

// TestPeriodicReaperRemovesExpiredEntries checks active expiration: a key
// that is never read again still gets swept by the background reaper,
// not just by the lazy check on the next access.
func TestPeriodicReaperRemovesExpiredEntries(t *testing.T) {
	e := New(WithCleanupInterval(5))
	defer e.Close()

	e.SetWithTTL("k", []byte("v"), 1)
	time.Sleep(30 * time.Millisecond)

	e.mu.RLock()
	_, stillPresent := e.stringLRU.Peek("k")
	e.mu.RUnlock()
	if stillPresent {
		t.Fatal("expected the periodic reaper to have removed the expired key")
	}
}

func TestCleanupIntervalZeroDisablesReaper(t *testing.T) {
	e := New(WithCleanupInterval(0))
	defer e.Close()

	e.SetWithTTL("k", []byte("v"), 1)
	time.Sleep(30 * time.Millisecond)

	e.mu.RLock()
	_, stillPresent := e.stringLRU.Peek("k")
	e.mu.RUnlock()
	if !stillPresent {
		t.Fatal("expected the disabled reaper to leave the expired entry until next access")
	}
}
