package runtime

import (
	"sync"
	"testing"
	"time"

	"moonlight/errors"

	"github.com/stretchr/testify/require"
)

func TestEntityLocks_Acquire(t *testing.T) {
	t.Run("second acquire on the same key times out", func(t *testing.T) {
		req := require.New(t)
		locks := NewEntityLocks(50 * time.Millisecond)

		release, err := locks.Acquire("group:team")
		req.NoError(err)
		defer release()

		_, err = locks.Acquire("group:team")
		req.ErrorIs(err, errors.ErrLockTimeout)
	})

	t.Run("unrelated keys do not block each other", func(t *testing.T) {
		req := require.New(t)
		locks := NewEntityLocks(50 * time.Millisecond)

		releaseA, err := locks.Acquire("group:a")
		req.NoError(err)
		defer releaseA()

		releaseB, err := locks.Acquire("group:b")
		req.NoError(err)
		releaseB()
	})

	t.Run("release hands the key to a waiter", func(t *testing.T) {
		req := require.New(t)
		locks := NewEntityLocks(time.Second)

		release, err := locks.Acquire("message:k")
		req.NoError(err)

		acquired := make(chan struct{})
		go func() {
			r, err := locks.Acquire("message:k")
			if err == nil {
				r()
				close(acquired)
			}
		}()

		time.Sleep(10 * time.Millisecond)
		release()

		select {
		case <-acquired:
		case <-time.After(time.Second):
			t.Fatal("waiter never acquired the released lock")
		}
	})

	t.Run("serializes concurrent units on one key", func(t *testing.T) {
		req := require.New(t)
		locks := NewEntityLocks(5 * time.Second)

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := locks.Acquire("group:team")
				if err != nil {
					return
				}
				counter++
				release()
			}()
		}
		wg.Wait()
		req.Equal(50, counter)
	})
}
