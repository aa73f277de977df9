package itemlock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Same key serializes, counter must come out exact.
func TestLocker_SameKeySerializes(t *testing.T) {
	t.Parallel()

	locker := NewLocker()
	counter := 0

	const workers = 100
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locker.Lock("item1")
			defer locker.Unlock("item1")
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, workers, counter)
}

// Different keys never block each other: with one key held, the other is
// still acquirable.
func TestLocker_DifferentKeysIndependent(t *testing.T) {
	t.Parallel()

	locker := NewLocker()
	locker.Lock("itemA")
	defer locker.Unlock("itemA")

	done := make(chan struct{})
	go func() {
		locker.Lock("itemB")
		locker.Unlock("itemB")
		close(done)
	}()

	<-done // would deadlock if itemB shared itemA's mutex
}
