package esp

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"i4.energy/across/espwifi/at"
)

// TestTransport is an in-memory Transport for tests. Bytes queued with Feed
// are handed to the driver on its next Poll, and everything the driver
// writes is recorded.
type TestTransport struct {
	mu       sync.Mutex
	rx       []byte
	tx       bytes.Buffer
	readErr  error
	writeErr error
	closed   bool
}

// NewTestTransport creates a new test transport for testing.
func NewTestTransport() *TestTransport {
	return &TestTransport{}
}

// Dialer returns a Dialer that hands out t.
func (t *TestTransport) Dialer() Dialer {
	return DialerFunc(func(context.Context) (Transport, error) {
		return t, nil
	})
}

// Feed queues data as if the module had sent it.
func (t *TestTransport) Feed(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rx = append(t.rx, data...)
}

// FailReads makes ReadByte return err once the queued bytes are gone.
func (t *TestTransport) FailReads(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readErr = err
}

// FailWrites makes every later Write fail with err.
func (t *TestTransport) FailWrites(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeErr = err
}

func (t *TestTransport) Buffered() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.rx) == 0 && t.readErr != nil {
		return 1
	}
	return len(t.rx)
}

func (t *TestTransport) ReadByte() (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.rx) == 0 {
		if t.readErr != nil {
			return 0, t.readErr
		}
		return 0, io.EOF
	}
	c := t.rx[0]
	t.rx = t.rx[1:]
	return c, nil
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.writeErr != nil {
		return 0, t.writeErr
	}
	return t.tx.Write(p)
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

func (t *TestTransport) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Written returns everything the driver wrote so far.
func (t *TestTransport) Written() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tx.String()
}

// Commands splits what the driver wrote into lines, with a trailing payload
// as the last token.
func (t *TestTransport) Commands() []string {
	var tokens []string
	scanner := bufio.NewScanner(strings.NewReader(t.Written()))
	scanner.Split(at.Splitter)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	return tokens
}

// ClearWritten forgets what was written so far.
func (t *TestTransport) ClearWritten() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tx.Reset()
}
