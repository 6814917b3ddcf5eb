// Package channel contains the outbound channel adapters. Each adapter
// posts a composed message to a channel gateway webhook and reports the
// provider-assigned message id; the gateways own the actual third-party
// wire formats.
package channel

import (
	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/core/port"
)

// Registry maps channel types to adapters. The dispatch loop resolves
// adapters through it, so new channels register here without touching the
// loop.
type Registry struct {
	adapters map[domain.ChannelType]port.ChannelAdapter
}

var _ port.AdapterRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[domain.ChannelType]port.ChannelAdapter)}
}

func (r *Registry) Register(t domain.ChannelType, a port.ChannelAdapter) {
	r.adapters[t] = a
}

func (r *Registry) Adapter(t domain.ChannelType) (port.ChannelAdapter, bool) {
	a, ok := r.adapters[t]
	return a, ok
}
