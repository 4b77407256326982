package ws

import (
	"sync"

	"gomokusimul/internal/protocol"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Client is one websocket participant. The connection id doubles as
// the participant identity for the connection's lifetime. Writes are
// serialized because broadcasts arrive from other connections'
// goroutines and gorilla conns allow only one concurrent writer.
type Client struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	limiter *rate.Limiter
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.New().String(),
		conn: conn,
		// generous for a turn-based game; only floods get dropped
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

// ID returns the participant identity assigned to this connection.
func (c *Client) ID() string { return c.id }

// WriteJSON sends one event to the client.
func (c *Client) WriteJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// readCommand blocks until the next inbound command.
func (c *Client) readCommand() (protocol.Command, error) {
	var cmd protocol.Command
	err := c.conn.ReadJSON(&cmd)
	return cmd, err
}

// allow reports whether the client is within its command rate budget.
func (c *Client) allow() bool {
	return c.limiter.Allow()
}
