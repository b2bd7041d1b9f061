package store

import "testing"

func TestFileLock_LockUnlock(t *testing.T) {
	fl := NewFileLock(t.TempDir())

	if err := fl.Lock(); err != nil {
		t.Fatalf("Lock: %v", err)
	}
	if err := fl.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
}

func TestFileLock_TryLockContended(t *testing.T) {
	dir := t.TempDir()

	first := NewFileLock(dir)
	if err := first.Lock(); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = first.Unlock() }()

	// flock is per file description, so a second descriptor in the
	// same process observes the contention.
	second := NewFileLock(dir)
	ok, err := second.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if ok {
		_ = second.Unlock()
		t.Fatal("TryLock succeeded while lock was held")
	}
}

func TestFileLock_TryLockUncontended(t *testing.T) {
	fl := NewFileLock(t.TempDir())

	ok, err := fl.TryLock()
	if err != nil {
		t.Fatalf("TryLock: %v", err)
	}
	if !ok {
		t.Fatal("TryLock failed on an uncontended lock")
	}
	if err := fl.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
}

func TestFileLock_UnlockWithoutLock(t *testing.T) {
	fl := NewFileLock(t.TempDir())
	if err := fl.Unlock(); err != nil {
		t.Errorf("Unlock without Lock should be a no-op, got %v", err)
	}
}
