package syncusecase

import "sync"

// RunGuard tracks which connections have a sync in flight. TryAcquire is an
// atomic check-and-set so overlapping triggers for one connection collapse.
type RunGuard struct {
	mu      sync.Mutex
	running map[string]bool
}

func NewRunGuard() *RunGuard {
	return &RunGuard{running: make(map[string]bool)}
}

func (g *RunGuard) TryAcquire(connectionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running[connectionID] {
		return false
	}
	g.running[connectionID] = true
	return true
}

func (g *RunGuard) Release(connectionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.running, connectionID)
}

func (g *RunGuard) IsRunning(connectionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running[connectionID]
}
