package docservice

import (
	"sync"

	"github.com/starford/doctrail/internal/models"
)

// Subscription is a live view over one owner's document set. Close releases
// the underlying feed client; it is the only way to stop the callbacks.
type Subscription struct {
	done chan struct{}
	once sync.Once
}

// Subscribe establishes a live feed of ownerID's documents. onUpdate receives
// the full set, newest first, immediately and again after every change; it is
// never invoked with another owner's documents. If a query fails, onError is
// invoked once and the subscription terminates; the caller must resubscribe
// to retry. Both callbacks run on the subscription's goroutine.
func (s *Service) Subscribe(ownerID string, onUpdate func([]models.Document), onError func(error)) *Subscription {
	sub := &Subscription{done: make(chan struct{})}
	client := s.broker.Subscribe(ownerID)

	go func() {
		defer s.broker.Unsubscribe(client)

		emit := func() bool {
			docs, err := s.store.ListByOwner(ownerID)
			if err != nil {
				onError(err)
				return false
			}
			onUpdate(docs)
			return true
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-sub.done:
				return
			case _, ok := <-client.C:
				if !ok {
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return sub
}

// Close releases the subscription. Safe to call more than once.
func (sub *Subscription) Close() {
	sub.once.Do(func() { close(sub.done) })
}
