package broadcast

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/dcnick3/breakgt/internal/models"
)

func newTestHub(t *testing.T) (*Hub, func()) {
	t.Helper()
	h := NewHub(log.New(os.Stderr, "", 0))
	done := make(chan struct{})
	go h.Run(done)
	return h, func() { close(done) }
}

func TestSubscribeReceivesPublishedSnapshot(t *testing.T) {
	h, stop := newTestHub(t)
	defer stop()

	sub := h.Subscribe()
	defer h.Unsubscribe(sub)

	board := models.Scoreboard{Positions: []models.Position{{Name: "alice", Score: 1}}}
	h.Publish(nil, board)

	select {
	case snap := <-sub.C():
		if len(snap.Scoreboard.Positions) != 1 || snap.Scoreboard.Positions[0].Name != "alice" {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published snapshot")
	}
}

func TestSubscribeAfterPublishGetsCatchUpSnapshot(t *testing.T) {
	h, stop := newTestHub(t)
	defer stop()

	board := models.Scoreboard{Positions: []models.Position{{Name: "bob", Score: 2}}}
	h.Publish(nil, board)
	time.Sleep(20 * time.Millisecond) // let Run() process the publish

	sub := h.Subscribe()
	defer h.Unsubscribe(sub)

	select {
	case snap := <-sub.C():
		if len(snap.Scoreboard.Positions) != 1 || snap.Scoreboard.Positions[0].Name != "bob" {
			t.Fatalf("unexpected catch-up snapshot: %+v", snap)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for catch-up snapshot")
	}
}

// TestBroadcastOverflowDropsOldestNotNewest exercises a lagging subscriber
// whose buffered channel (depth 4) fills up: publishing past capacity must
// evict the oldest queued snapshot so the subscriber converges on the
// freshest state, rather than dropping the newest publish and leaving the
// subscriber stuck behind on stale ones.
func TestBroadcastOverflowDropsOldestNotNewest(t *testing.T) {
	h, stop := newTestHub(t)
	defer stop()

	sub := h.Subscribe()
	defer h.Unsubscribe(sub)

	const published = 6 // more than the subscriber channel's buffer depth (4)
	for i := 1; i <= published; i++ {
		h.Publish(nil, models.Scoreboard{Positions: []models.Position{{Name: "x", Score: float64(i)}}})
	}
	time.Sleep(50 * time.Millisecond) // let Run() drain the publish channel

	var seen []float64
	for {
		select {
		case snap := <-sub.C():
			seen = append(seen, snap.Scoreboard.Positions[0].Score)
		default:
			goto done
		}
	}
done:
	if len(seen) == 0 {
		t.Fatal("expected at least one queued snapshot")
	}
	last := seen[len(seen)-1]
	if last != float64(published) {
		t.Fatalf("expected freshest snapshot (%d) to survive, queue was %v", published, seen)
	}
	for _, v := range seen {
		if v == 1 {
			t.Fatalf("expected oldest snapshot to have been evicted, queue was %v", seen)
		}
	}
}
