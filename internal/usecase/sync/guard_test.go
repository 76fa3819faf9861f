package syncusecase

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunGuard_SingleWinner(t *testing.T) {
	g := NewRunGuard()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire("conn") {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
	assert.True(t, g.IsRunning("conn"))
	assert.False(t, g.IsRunning("other"))

	g.Release("conn")
	assert.False(t, g.IsRunning("conn"))
	assert.True(t, g.TryAcquire("conn"))
}
