// internal/broadcast/hub.go
// Fan-out hub publishing (rounds, scoreboard) snapshots to SSE
// subscribers. Generalized from the websocket Hub's register/unregister/
// broadcast channel trio and its overflow-drop backpressure policy, with
// the transport swapped from websocket frames to buffered subscriber
// channels consumed by gin's SSEvent writer.

package broadcast

import (
	"log"
	"sync"

	"github.com/dcnick3/breakgt/internal/models"
)

// Snapshot is the payload delivered to every subscriber on each publish.
type Snapshot struct {
	Rounds     []models.StoredRoundResult
	Scoreboard models.Scoreboard
}

// Subscriber is a single SSE connection's inbound channel.
type Subscriber struct {
	ch chan Snapshot
}

// C returns the channel the subscriber's handler should range over.
func (s *Subscriber) C() <-chan Snapshot {
	return s.ch
}

// Hub fans published snapshots out to every active subscriber.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]bool
	latest      Snapshot
	hasLatest   bool

	register   chan *Subscriber
	unregister chan *Subscriber
	publish    chan Snapshot

	logger *log.Logger
}

// NewHub creates a new broadcast hub.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]bool),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		publish:     make(chan Snapshot, 16),
		logger:      logger,
	}
}

// Run processes registrations and publications until done is closed.
func (h *Hub) Run(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sub := <-h.register:
			h.addSubscriber(sub)
		case sub := <-h.unregister:
			h.removeSubscriber(sub)
		case snap := <-h.publish:
			h.broadcast(snap)
		}
	}
}

func (h *Hub) addSubscriber(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers[sub] = true
	if h.hasLatest {
		select {
		case sub.ch <- h.latest:
		default:
		}
	}
}

func (h *Hub) removeSubscriber(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[sub] {
		delete(h.subscribers, sub)
		close(sub.ch)
	}
}

func (h *Hub) broadcast(snap Snapshot) {
	h.mu.Lock()
	h.latest = snap
	h.hasLatest = true
	h.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		select {
		case sub.ch <- snap:
		default:
			// Buffer is full: evict the oldest queued snapshot and retry so a
			// lagging subscriber converges on the freshest state instead of
			// draining stale ones.
			select {
			case <-sub.ch:
			default:
			}
			select {
			case sub.ch <- snap:
			default:
				h.logger.Printf("broadcast: dropping snapshot for a slow subscriber")
			}
		}
	}
}

// Subscribe registers a new subscriber and, if a snapshot has already
// been published, delivers it immediately as a catch-up.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan Snapshot, 4)}
	h.register <- sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.unregister <- sub
}

// Publish pushes a new snapshot to the hub's run loop. Never blocks for
// long: the publish channel is buffered and the scheduler is the sole
// writer.
func (h *Hub) Publish(rounds []models.StoredRoundResult, scoreboard models.Scoreboard) {
	h.publish <- Snapshot{Rounds: rounds, Scoreboard: scoreboard}
}
