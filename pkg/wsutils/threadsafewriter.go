package wsutils

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Message is the envelope of every event pushed to a client.
type Message struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

type ThreadSafeWriter struct {
	*websocket.Conn
	sync.Mutex
}

func (t *ThreadSafeWriter) WriteJSON(val interface{}) error {
	t.Lock()
	defer t.Unlock()

	if err := t.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return t.Conn.WriteJSON(val)
}

func (t *ThreadSafeWriter) WriteEvent(event, data string) error {
	return t.WriteJSON(&Message{Event: event, Data: data})
}

func (t *ThreadSafeWriter) Close() error {
	return t.Conn.Close()
}

func NewThreadSafeWriter(conn *websocket.Conn) *ThreadSafeWriter {
	return &ThreadSafeWriter{
		Conn: conn,
	}
}
