package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/starford/doctrail/internal/models"
)

// Events handles GET /events: a Server-Sent Events stream that delivers the
// caller's full document set (newest first) on connect and again after every
// change. On a feed failure one "error" event is sent and the stream ends;
// the client reconnects to resubscribe.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	msgs := make(chan []byte, 8)

	// Both callbacks run on the subscription goroutine, in order.
	sub := h.svc.Subscribe(userID(r),
		func(docs []models.Document) {
			payload, err := json.Marshal(docs)
			if err != nil {
				return
			}
			select {
			case msgs <- frame("documents", payload):
			case <-ctx.Done():
			}
		},
		func(err error) {
			payload, _ := json.Marshal(errorBody("subscription failed"))
			select {
			case msgs <- frame("error", payload):
			case <-ctx.Done():
			}
			close(msgs)
		})
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}

func frame(event string, data []byte) []byte {
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event, data))
}
