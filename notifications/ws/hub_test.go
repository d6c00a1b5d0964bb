package ws

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
)

// fakeConn records writes and can be told to fail.
type fakeConn struct {
	mu     sync.Mutex
	events []interface{}
	fail   bool
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.events = append(f.events, v)
	return nil
}

func (f *fakeConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) eventCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func TestHubSend(t *testing.T) {
	hub := NewHub()
	userA := uuid.Must(uuid.NewV4())
	userB := uuid.Must(uuid.NewV4())

	connA1 := &fakeConn{}
	connA2 := &fakeConn{}
	connB := &fakeConn{}

	hub.Add(userA, connA1)
	hub.Add(userA, connA2)
	hub.Add(userB, connB)

	hub.Send(userA, map[string]string{"event": "test"})

	require.Equal(t, 1, connA1.eventCount())
	require.Equal(t, 1, connA2.eventCount())
	require.Equal(t, 0, connB.eventCount(), "other users must not receive the event")
}

func TestHubSendDropsDeadConnections(t *testing.T) {
	hub := NewHub()
	userID := uuid.Must(uuid.NewV4())

	dead := &fakeConn{fail: true}
	live := &fakeConn{}

	hub.Add(userID, dead)
	hub.Add(userID, live)

	hub.Send(userID, map[string]string{"event": "test"})

	require.Equal(t, 1, hub.ConnectionCount(userID))
	require.True(t, dead.closed)
	require.Equal(t, 1, live.eventCount())
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()

	connA := &fakeConn{}
	connB := &fakeConn{}
	hub.Add(uuid.Must(uuid.NewV4()), connA)
	hub.Add(uuid.Must(uuid.NewV4()), connB)

	hub.Broadcast(map[string]string{"event": "maintenance"})

	require.Equal(t, 1, connA.eventCount())
	require.Equal(t, 1, connB.eventCount())
}

func TestHubRemove(t *testing.T) {
	hub := NewHub()
	userID := uuid.Must(uuid.NewV4())

	conn := &fakeConn{}
	registered := hub.Add(userID, conn)
	require.Equal(t, 1, hub.ConnectionCount(userID))

	hub.Remove(registered)

	require.Equal(t, 0, hub.ConnectionCount(userID))
	require.True(t, conn.closed)

	// events to a fully disconnected user are a no-op
	hub.Send(userID, map[string]string{"event": "test"})
	require.Equal(t, 0, conn.eventCount())
}

// overlapConn flags any two outbound frames written at the same time. The
// websocket permits a single concurrent writer per connection.
type overlapConn struct {
	inflight atomic.Int32
	overlap  atomic.Bool
}

func (o *overlapConn) enter() {
	if o.inflight.Add(1) > 1 {
		o.overlap.Store(true)
	}
	time.Sleep(time.Millisecond)
	o.inflight.Add(-1)
}

func (o *overlapConn) WriteJSON(v interface{}) error {
	o.enter()
	return nil
}

func (o *overlapConn) WriteControl(messageType int, data []byte, deadline time.Time) error {
	o.enter()
	return nil
}

func (o *overlapConn) Close() error { return nil }

func TestHubSerializesWritesPerConnection(t *testing.T) {
	hub := NewHub()
	userID := uuid.Must(uuid.NewV4())
	conn := &overlapConn{}
	hub.Add(userID, conn)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.Send(userID, map[string]string{"event": "test"})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 8; i++ {
			hub.sweep(time.Minute)
		}
	}()
	wg.Wait()

	require.False(t, conn.overlap.Load(), "frames must never interleave on one connection")
}

func TestHubTouchDuringSweep(t *testing.T) {
	hub := NewHub()
	conn := &fakeConn{}
	registered := hub.Add(uuid.Must(uuid.NewV4()), conn)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			registered.Touch()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			hub.sweep(time.Minute)
		}
	}()
	wg.Wait()

	// A connection touched throughout the sweeps is never considered stale.
	require.Equal(t, 1, hub.ConnectionCount(registered.userID))
	require.False(t, conn.closed)
}

func TestHubClose(t *testing.T) {
	hub := NewHub()
	userID := uuid.Must(uuid.NewV4())
	conn := &fakeConn{}
	hub.Add(userID, conn)

	heartbeatDone := make(chan struct{})
	go func() {
		hub.Heartbeat(5 * time.Millisecond)
		close(heartbeatDone)
	}()

	hub.Close()

	select {
	case <-heartbeatDone:
	case <-time.After(time.Second):
		t.Fatal("heartbeat loop did not stop on Close")
	}
	require.True(t, conn.closed)
	require.Equal(t, 0, hub.ConnectionCount(userID))
}
