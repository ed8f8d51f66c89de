// Package feed implements the change-notification broker behind live
// document subscriptions.
package feed

import (
	"sync/atomic"
)

// EventKind classifies a document change.
type EventKind string

// Document change kinds.
const (
	DocumentCreated EventKind = "document.created"
	DocumentUpdated EventKind = "document.updated"
	DocumentDeleted EventKind = "document.deleted"
)

// Event describes one document change. Events carry identifiers only;
// subscribers re-read the store for current state.
type Event struct {
	Kind    EventKind `json:"kind"`
	OwnerID string    `json:"-"`
	DocID   string    `json:"doc_id"`
}

// Client is one subscriber's end of the feed. Events arrive on C until the
// client is unsubscribed or the broker closes.
type Client struct {
	OwnerID string
	C       chan Event
}

// Broker fans document change events out to per-owner subscribers.
//
// Concurrency model: a single internal event loop (goroutine) owns the
// client set. Public methods communicate with this loop through channels,
// so no mutexes are required.
type Broker struct {
	subscribeCh   chan *Client
	unsubscribeCh chan *Client
	publishCh     chan Event
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker creates a broker and starts its event loop.
func NewBroker() *Broker {
	b := &Broker{
		subscribeCh:   make(chan *Client),
		unsubscribeCh: make(chan *Client),
		publishCh:     make(chan Event, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	clients := make(map[*Client]struct{})

	for {
		select {
		case <-b.stopCh:
			for c := range clients {
				close(c.C)
			}
			return

		case c := <-b.subscribeCh:
			clients[c] = struct{}{}

		case c := <-b.unsubscribeCh:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.C)
			}

		case ev := <-b.publishCh:
			for c := range clients {
				if c.OwnerID != ev.OwnerID {
					continue
				}
				select {
				case c.C <- ev:
				default:
					// Client buffer full; skip to avoid blocking broker loop.
				}
			}

		case resp := <-b.countReqCh:
			resp <- len(clients)
		}
	}
}

// Close gracefully stops the broker loop and closes all client channels.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe registers a new client that receives only events for ownerID.
func (b *Broker) Subscribe(ownerID string) *Client {
	c := &Client{OwnerID: ownerID, C: make(chan Event, 64)}
	if b.closed.Load() {
		close(c.C)
		return c
	}

	select {
	case b.subscribeCh <- c:
	case <-b.stopped:
		close(c.C)
	}

	return c
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(c *Client) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- c:
	case <-b.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// Publish sends a document change to every subscriber of its owner.
func (b *Broker) Publish(ev Event) {
	if b.closed.Load() {
		return
	}
	select {
	case b.publishCh <- ev:
	case <-b.stopped:
	}
}
