package network

import (
	"fmt"
	"net"
	"strings"
	"time"
	"unicode"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/seqlist/internal/core"
)

// Client sends requests to a Server over one TCP connection.
type Client struct {
	conn    net.Conn
	encoder *msgpack.Encoder
	decoder *msgpack.Decoder
}

// Dial connects to the server at addr.
func Dial(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		encoder: msgpack.NewEncoder(conn),
		decoder: msgpack.NewDecoder(conn),
	}, nil
}

// Do sends request and waits for the response.
func (c *Client) Do(request map[string]interface{}) (map[string]interface{}, error) {
	if err := c.encoder.Encode(request); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	var response map[string]interface{}
	if err := c.decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return response, nil
}

// Send parses a text command line and sends it.
func (c *Client) Send(line string) (map[string]interface{}, error) {
	request, err := ParseRequest(line)
	if err != nil {
		return nil, err
	}
	return c.Do(request)
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// ParseRequest parses and validates a command line such as "LINSERT k 2 v"
// into a request map. The last argument takes the rest of the line as typed.
func ParseRequest(input string) (map[string]interface{}, error) {
	command, rest := nextField(strings.TrimSpace(input))
	if command == "" {
		return nil, fmt.Errorf("no command entered")
	}

	command = strings.ToUpper(command)
	args, ok := core.CommandArgs(command)
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	request := map[string]interface{}{
		"command": command,
	}
	if len(args) == 0 {
		if strings.TrimSpace(rest) != "" {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}
		return request, nil
	}

	for i, name := range args {
		var field string
		if i == len(args)-1 {
			field = strings.TrimLeftFunc(rest, unicode.IsSpace)
		} else {
			field, rest = nextField(rest)
		}
		if field == "" {
			return nil, fmt.Errorf("%s requires %s", command, strings.Join(args, ", "))
		}
		request[name] = field
	}
	return request, nil
}

// nextField splits off the first whitespace-separated field of s.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
