package usecase

import (
	"testing"
	"time"
)

func TestRepoLocks(t *testing.T) {
	t.Run("Same Name Serializes", func(t *testing.T) {
		locks := newRepoLocks()
		unlock := locks.acquire("app")

		done := make(chan struct{})
		go func() {
			u := locks.acquire("app")
			u()
			close(done)
		}()

		select {
		case <-done:
			t.Fatal("second acquire should block while first holds the lock")
		case <-time.After(50 * time.Millisecond):
		}

		unlock()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("unlock did not release the waiter")
		}
	})

	t.Run("Different Names Run In Parallel", func(t *testing.T) {
		locks := newRepoLocks()
		u1 := locks.acquire("app")
		defer u1()

		done := make(chan struct{})
		go func() {
			u2 := locks.acquire("other")
			u2()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("different repositories must not block each other")
		}
	})
}
