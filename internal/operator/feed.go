package operator

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	feedSendBuffer  = 16
	feedWriteWait   = 10 * time.Second
	feedPongWait    = 60 * time.Second
	feedPingPeriod  = 30 * time.Second
	feedMessageSize = 512
)

// Feed broadcasts application cards to connected operator dashboards.
// Delivery is best effort: no subscribers is not an error, slow
// subscribers get dropped messages.
type Feed struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	logger      *zap.Logger
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// NewFeed builds an empty feed.
func NewFeed(logger *zap.Logger) *Feed {
	return &Feed{
		subscribers: make(map[*subscriber]struct{}),
		logger:      logger,
	}
}

// Notify implements the service notifier contract by broadcasting the
// card to every subscriber.
func (f *Feed) Notify(_ context.Context, card string) error {
	f.Broadcast(card)
	return nil
}

// Broadcast enqueues the card for every connected subscriber.
func (f *Feed) Broadcast(card string) {
	payload := []byte(card)

	f.mu.RLock()
	defer f.mu.RUnlock()
	for sub := range f.subscribers {
		select {
		case sub.send <- payload:
		default:
			f.logger.Warn("dropping operator feed message, subscriber buffer full")
		}
	}
}

// SubscriberCount returns the number of connected dashboards.
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}

// Attach registers a websocket connection and runs its pumps until the
// peer disconnects or ctx is done.
func (f *Feed) Attach(ctx context.Context, conn *websocket.Conn) {
	sub := &subscriber{
		conn: conn,
		send: make(chan []byte, feedSendBuffer),
	}

	f.mu.Lock()
	f.subscribers[sub] = struct{}{}
	f.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		sub.writePump(ctx)
		cancel()
	}()
	sub.readPump()
	cancel()

	f.mu.Lock()
	delete(f.subscribers, sub)
	f.mu.Unlock()
	close(sub.send)
	_ = conn.Close()
}

// readPump discards inbound frames; the feed is one-way. It exists to
// service pongs and notice the peer going away.
func (s *subscriber) readPump() {
	s.conn.SetReadLimit(feedMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(feedPongWait))
		return nil
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *subscriber) writePump(ctx context.Context) {
	ticker := time.NewTicker(feedPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.send:
			if !ok {
				return
			}
			s.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
