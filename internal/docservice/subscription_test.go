package docservice

import (
	"context"
	"testing"
	"time"

	"github.com/starford/doctrail/internal/feed"
	"github.com/starford/doctrail/internal/models"
	"github.com/starford/doctrail/internal/testutil"
)

func collectUpdates(t *testing.T) (chan []models.Document, func([]models.Document)) {
	t.Helper()
	ch := make(chan []models.Document, 16)
	return ch, func(docs []models.Document) { ch <- docs }
}

func waitUpdate(t *testing.T, ch chan []models.Document) []models.Document {
	t.Helper()
	select {
	case docs := <-ch:
		return docs
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for update")
		return nil
	}
}

func TestSubscribeEmitsSnapshotAndChanges(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	updates, onUpdate := collectUpdates(t)
	sub := svc.Subscribe("alice", onUpdate, func(err error) {
		t.Errorf("unexpected subscription error: %v", err)
	})
	defer sub.Close()

	// Initial snapshot of an empty set.
	if docs := waitUpdate(t, updates); len(docs) != 0 {
		t.Fatalf("initial snapshot = %d docs, want 0", len(docs))
	}

	if _, err := svc.Add(ctx, "alice", AddInput{Title: "first"}); err != nil {
		t.Fatal(err)
	}
	if docs := waitUpdate(t, updates); len(docs) != 1 || docs[0].Title != "first" {
		t.Fatalf("after add: %+v", docs)
	}

	time.Sleep(5 * time.Millisecond)
	second, err := svc.Add(ctx, "alice", AddInput{Title: "second"})
	if err != nil {
		t.Fatal(err)
	}
	docs := waitUpdate(t, updates)
	if len(docs) != 2 {
		t.Fatalf("after second add: %d docs", len(docs))
	}
	if docs[0].ID != second.ID {
		t.Errorf("emission not newest-first: %v then %v", docs[0].Title, docs[1].Title)
	}

	if err := svc.Remove(ctx, "alice", second.ID); err != nil {
		t.Fatal(err)
	}
	if docs := waitUpdate(t, updates); len(docs) != 1 {
		t.Fatalf("after remove: %d docs", len(docs))
	}
}

func TestSubscribeNeverLeaksOtherOwners(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	// Bob owns a public document; it must still never reach Alice's feed.
	bobDoc, err := svc.Add(ctx, "bob", AddInput{Title: "bobs doc"})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.SetVisibility(ctx, "bob", bobDoc.ID, true); err != nil {
		t.Fatal(err)
	}

	updates, onUpdate := collectUpdates(t)
	sub := svc.Subscribe("alice", onUpdate, func(err error) {
		t.Errorf("unexpected subscription error: %v", err)
	})
	defer sub.Close()

	if docs := waitUpdate(t, updates); len(docs) != 0 {
		t.Fatalf("alice's snapshot leaked %d docs", len(docs))
	}

	if _, err := svc.Add(ctx, "alice", AddInput{Title: "mine"}); err != nil {
		t.Fatal(err)
	}
	for _, d := range waitUpdate(t, updates) {
		if d.UserID != "alice" {
			t.Errorf("feed leaked document owned by %q", d.UserID)
		}
	}

	// A change to Bob's set must not produce an emission for Alice.
	if err := svc.SetStatus(ctx, "bob", bobDoc.ID, models.StatusApproved); err != nil {
		t.Fatal(err)
	}
	select {
	case docs := <-updates:
		t.Errorf("alice received an update for bob's change: %+v", docs)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeCloseStopsUpdates(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	updates, onUpdate := collectUpdates(t)
	sub := svc.Subscribe("alice", onUpdate, func(error) {})
	waitUpdate(t, updates)

	sub.Close()
	sub.Close() // safe to release twice

	// Give the subscription goroutine time to detach before writing.
	time.Sleep(50 * time.Millisecond)
	if _, err := svc.Add(ctx, "alice", AddInput{Title: "after close"}); err != nil {
		t.Fatal(err)
	}
	select {
	case docs := <-updates:
		t.Errorf("update after Close: %+v", docs)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeReportsQueryFailure(t *testing.T) {
	db := testutil.TestStore(t)
	broker := feed.NewBroker()
	t.Cleanup(broker.Close)
	svc := NewService(db, broker)

	// Closing the store makes the snapshot query fail.
	db.Close()

	errs := make(chan error, 1)
	sub := svc.Subscribe("alice",
		func(docs []models.Document) { t.Errorf("unexpected update: %+v", docs) },
		func(err error) { errs <- err })
	defer sub.Close()

	select {
	case err := <-errs:
		if err == nil {
			t.Error("expected a non-nil error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for error callback")
	}
}
