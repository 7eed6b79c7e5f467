package draftfeed

import (
	"context"
	"net/http"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coder/websocket"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

const (
	subscriberBuffer = 16
	writeTimeout     = 5 * time.Second
)

type subscriber struct {
	events    chan []byte
	closeSlow func()
}

// Hub fans draft events out to websocket subscribers grouped per league.
// The feed is broadcast only; frames sent by clients are discarded. A
// subscriber that cannot keep up with its buffer is disconnected rather
// than allowed to stall the broadcast.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*subscriber]struct{}
	logger *logging.Logger
}

func NewHub(logger *logging.Logger) *Hub {
	if logger == nil {
		logger = logging.Default()
	}
	return &Hub{
		rooms:  make(map[string]map[*subscriber]struct{}),
		logger: logger,
	}
}

// Publish satisfies the draft service's feed dependency. Marshal failures
// are logged and swallowed; the draft transaction already committed.
func (h *Hub) Publish(ctx context.Context, event usecase.DraftEvent) {
	payload, err := sonic.Marshal(event)
	if err != nil {
		h.logger.ErrorContext(ctx, "marshal draft event failed", "league_id", event.LeagueID, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[event.LeagueID] {
		select {
		case sub.events <- payload:
		default:
			go sub.closeSlow()
		}
	}
}

// Subscribe upgrades the request and streams league events until the client
// disconnects or the context ends. The caller has already authorized the
// user for this league.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, leagueID string) error {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusInternalError, "subscription ended")

	sub := &subscriber{
		events: make(chan []byte, subscriberBuffer),
		closeSlow: func() {
			conn.Close(websocket.StatusPolicyViolation, "subscriber too slow to keep up")
		},
	}
	h.add(leagueID, sub)
	defer h.remove(leagueID, sub)

	// CloseRead discards inbound frames and cancels the context when the
	// client goes away.
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case payload := <-sub.events:
			if err := writeWithTimeout(ctx, conn, payload); err != nil {
				return err
			}
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "bye")
			return ctx.Err()
		}
	}
}

func (h *Hub) add(leagueID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[leagueID]
	if !ok {
		room = make(map[*subscriber]struct{})
		h.rooms[leagueID] = room
	}
	room[sub] = struct{}{}
}

func (h *Hub) remove(leagueID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[leagueID]
	if !ok {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, leagueID)
	}
}

// SubscriberCount reports how many connections are attached to a league room.
func (h *Hub) SubscriberCount(leagueID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[leagueID])
}

func writeWithTimeout(ctx context.Context, conn *websocket.Conn, payload []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
