package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nhooyr.io/websocket"
)

const logReadLimit = 1 << 20

// LogStreamURL returns the WebSocket address of the backend log stream
func (c *Client) LogStreamURL() string {
	u := *c.baseURL
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + pathLogs
	u.RawQuery = ""
	return u.String()
}

// StreamLogs opens the log socket and forwards each text frame on the returned
// channel. The channel is closed when the socket drops or ctx is done; there is
// no reconnection.
func (c *Client) StreamLogs(ctx context.Context) (<-chan string, error) {
	wsURL := c.LogStreamURL()
	c.logger.Printf("[HTTPCLIENT] Dial websocket %s", wsURL)

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("log stream dial: %w", err)
	}
	conn.SetReadLimit(logReadLimit)

	lines := make(chan string, 64)
	go func() {
		defer close(lines)
		defer conn.Close(websocket.StatusNormalClosure, "")

		for {
			typ, b, err := conn.Read(ctx)
			if err != nil {
				var closeErr websocket.CloseError
				switch {
				case errors.As(err, &closeErr) && closeErr.Code == websocket.StatusNormalClosure:
					c.logger.Printf("Log stream closed by server")
				case ctx.Err() != nil:
				default:
					c.logger.Printf("Log stream read error: %v", err)
				}
				return
			}
			if typ != websocket.MessageText {
				continue
			}
			select {
			case lines <- string(b):
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines, nil
}
