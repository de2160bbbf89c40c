package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	received chan Notification
	closed   chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		received: make(chan Notification, 10),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.received <- v.(Notification)
	return nil
}

func (c *fakeConn) Close() error {
	close(c.closed)
	return nil
}

func waitFor(t *testing.T, ch chan Notification) Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return Notification{}
	}
}

func TestSubscribeReceivesWorkshopNotifications(t *testing.T) {
	conn := newFakeConn()
	sub := Subscribe("workshop-sub-1", conn)
	defer sub.Close()

	Notify("workshop-sub-1", "tasks", "update")

	n := waitFor(t, conn.received)
	assert.Equal(t, "workshop-sub-1", n.WorkshopID)
	assert.Equal(t, "tasks", n.Table)
	assert.Equal(t, "update", n.Action)
}

func TestNotificationsAreScopedToWorkshop(t *testing.T) {
	connA := newFakeConn()
	connB := newFakeConn()
	subA := Subscribe("workshop-scope-a", connA)
	subB := Subscribe("workshop-scope-b", connB)
	defer subA.Close()
	defer subB.Close()

	Notify("workshop-scope-a", "groups", "insert")

	waitFor(t, connA.received)
	select {
	case <-connB.received:
		t.Fatal("subscriber of another workshop received the notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	conn := newFakeConn()
	sub := Subscribe("workshop-close-1", conn)

	sub.Close()
	select {
	case <-conn.closed:
	case <-time.After(time.Second):
		t.Fatal("connection was not closed")
	}

	Notify("workshop-close-1", "tasks", "update")
	select {
	case <-conn.received:
		t.Fatal("closed subscription received a notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	conn := newFakeConn()
	sub := Subscribe("workshop-close-2", conn)

	sub.Close()
	assert.NotPanics(t, func() { sub.Close() })
}
