package nats

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// ErrNotConnected is reported by readiness checks while the connection is down
var ErrNotConnected = errors.New("nats connection is not established")

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn *nats.Conn
}

// NewClient connects to the NATS server at url
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("driver-service"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// Conn returns the underlying connection
func (c *Client) Conn() *nats.Conn {
	return c.conn
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals v and publishes it to subject
func (c *Client) PublishJSON(subject string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message for %s: %w", subject, err)
	}
	return c.Publish(subject, data)
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// IsConnected reports the connection state, used by readiness checks
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Close drains and closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
		c.conn.Close()
	}
}
