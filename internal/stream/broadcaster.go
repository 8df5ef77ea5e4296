// Package stream fans melt frames out to any number of subscribers
// (SSE clients, tests). Slow subscribers are skipped, never waited on.
package stream

import (
	"sync"
	"sync/atomic"

	"github.com/pamirlabs/glacier-atlas/internal/models"
)

const subscriberBuffer = 64

type Broadcaster struct {
	subscribers map[uint64]chan models.MeltFrame
	nextID      atomic.Uint64
	mu          sync.RWMutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan models.MeltFrame),
	}
}

func (b *Broadcaster) Subscribe() (uint64, <-chan models.MeltFrame) {
	id := b.nextID.Add(1)
	ch := make(chan models.MeltFrame, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[id] = ch
	b.mu.Unlock()

	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uint64) {
	b.mu.Lock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
	b.mu.Unlock()
}

func (b *Broadcaster) Broadcast(f models.MeltFrame) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- f:
		default:
			// Skip subscribers that are not draining.
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts every subscriber channel so streams exit cleanly.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
