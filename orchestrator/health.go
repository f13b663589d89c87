package orchestrator

import (
	"sync"

	"github.com/studymesh/studymesh/core"
)

// Health is the last known condition of an agent, derived from invocation
// outcomes rather than control flow.
type Health string

// Health states.
const (
	// HealthUnknown means the agent has not been invoked yet.
	HealthUnknown Health = "unknown"
	// HealthHealthy means the agent's most recent invocation succeeded.
	HealthHealthy Health = "healthy"
	// HealthDegraded means the agent's most recent invocation failed
	// terminally.
	HealthDegraded Health = "degraded"
)

// healthRegistry tracks per-agent health across runs. Skipped agents are not
// observed: being skipped says nothing about the agent itself.
type healthRegistry struct {
	mu    sync.RWMutex
	state map[core.AgentName]Health
}

func newHealthRegistry() *healthRegistry {
	return &healthRegistry{state: map[core.AgentName]Health{}}
}

func (r *healthRegistry) observe(name core.AgentName, succeeded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if succeeded {
		r.state[name] = HealthHealthy
	} else {
		r.state[name] = HealthDegraded
	}
}

func (r *healthRegistry) get(name core.AgentName) Health {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.state[name]; ok {
		return h
	}
	return HealthUnknown
}
