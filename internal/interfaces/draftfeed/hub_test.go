package draftfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coder/websocket"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

func newFeedServer(t *testing.T, hub *Hub, leagueID string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r, leagueID)
	}))
	t.Cleanup(server.Close)
	return server
}

func dialFeed(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial feed: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, leagueID string, want int) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for hub.SubscriberCount(leagueID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d subscribers, have %d", want, hub.SubscriberCount(leagueID))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_BroadcastsToLeagueRoom(t *testing.T) {
	hub := NewHub(logging.NewNop())
	server := newFeedServer(t, hub, "lg_1")
	conn := dialFeed(t, server)
	waitForSubscribers(t, hub, "lg_1", 1)

	hub.Publish(context.Background(), usecase.DraftEvent{
		LeagueID: "lg_1",
		Type:     usecase.DraftEventStarted,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, payload, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read event: %v", err)
	}

	var event usecase.DraftEvent
	if err := sonic.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}
	if event.Type != usecase.DraftEventStarted || event.LeagueID != "lg_1" {
		t.Fatalf("unexpected event: %+v", event)
	}
}

func TestHub_IsolatesLeagueRooms(t *testing.T) {
	hub := NewHub(logging.NewNop())
	server := newFeedServer(t, hub, "lg_other")
	conn := dialFeed(t, server)
	waitForSubscribers(t, hub, "lg_other", 1)

	hub.Publish(context.Background(), usecase.DraftEvent{
		LeagueID: "lg_1",
		Type:     usecase.DraftEventPickMade,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if _, _, err := conn.Read(ctx); err == nil {
		t.Fatal("expected no event for a different league room")
	}
}

func TestHub_RemovesSubscriberOnDisconnect(t *testing.T) {
	hub := NewHub(logging.NewNop())
	server := newFeedServer(t, hub, "lg_1")
	conn := dialFeed(t, server)
	waitForSubscribers(t, hub, "lg_1", 1)

	conn.Close(websocket.StatusNormalClosure, "done")
	waitForSubscribers(t, hub, "lg_1", 0)
}
