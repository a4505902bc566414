package esp

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"time"

	"go.bug.st/serial"
)

//go:generate go tool mockgen -destination=mock_esp.go -package=esp . Transport,Dialer,Handler

// Transport represents an established, bidirectional byte stream to an ESP
// module.
//
// Reads never block: Buffered reports how many bytes ReadByte can hand out
// right now, and the Driver only reads that many. Typical implementations
// wrap a serial port or a TCP bridge with a reader goroutine, or are
// in-memory fakes used for testing.
type Transport interface {
	// Buffered returns the number of bytes that can be read without
	// blocking. A transport holding a pending read error reports at least
	// one so the caller gets to see the error from ReadByte.
	Buffered() int
	io.ByteReader
	io.Writer
	io.Closer
}

// Dialer opens a Transport to an ESP module.
//
// Dialer abstracts how the connection is created (for example, via a serial
// port, a TCP serial bridge, or a test double) and is used during driver
// construction only. Once a Transport is obtained, the Dialer is no longer
// needed.
type Dialer interface {
	// Dial creates and returns a connected Transport. It may block and must
	// respect cancellation of ctx.
	Dial(ctx context.Context) (Transport, error)
}

// DialerFunc adapts an ordinary function to the Dialer interface.
type DialerFunc func(ctx context.Context) (Transport, error)

func (f DialerFunc) Dial(ctx context.Context) (Transport, error) {
	return f(ctx)
}

// SerialDialer opens the module over a local serial port using
// go.bug.st/serial.
type SerialDialer struct {
	PortName string
	BaudRate int
	// Mode overrides BaudRate when set.
	Mode *serial.Mode
}

const defaultBaudRate = 115200

func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if d.PortName == "" {
		return nil, errors.New("esp: serial port name is required")
	}
	if ctx == nil {
		return nil, errors.New("esp: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		baud := d.BaudRate
		if baud == 0 {
			baud = defaultBaudRate
		}
		mode = &serial.Mode{
			BaudRate: baud,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		}
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(serialReadTimeout); err != nil {
		_ = port.Close()
		return nil, err
	}
	return newStreamTransport(port), nil
}

const serialReadTimeout = 100 * time.Millisecond

// TCPDialer reaches the module through a TCP serial bridge (ser2net, an
// emulator, or a second ESP running a transparent UART bridge).
type TCPDialer struct {
	Address string
	Timeout time.Duration
}

func (d TCPDialer) Dial(ctx context.Context) (Transport, error) {
	if d.Address == "" {
		return nil, errors.New("esp: tcp address is required")
	}
	if ctx == nil {
		return nil, errors.New("esp: context is nil")
	}
	dialer := net.Dialer{Timeout: d.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", d.Address)
	if err != nil {
		return nil, err
	}
	return newStreamTransport(conn), nil
}

// maxBacklog bounds what the reader goroutine queues while nobody polls.
// The oldest bytes go first, like the receive ring.
const maxBacklog = 64 << 10

// streamTransport turns a blocking io.ReadWriteCloser into a non-blocking
// Transport by draining it from a goroutine into a locked queue.
type streamTransport struct {
	rwc io.ReadWriteCloser

	mu      sync.Mutex
	pending []byte
	err     error
}

func newStreamTransport(rwc io.ReadWriteCloser) *streamTransport {
	t := &streamTransport{rwc: rwc}
	go t.pump()
	return t
}

func (t *streamTransport) pump() {
	buf := make([]byte, 256)
	for {
		n, err := t.rwc.Read(buf)
		t.mu.Lock()
		t.pending = append(t.pending, buf[:n]...)
		if over := len(t.pending) - maxBacklog; over > 0 {
			t.pending = t.pending[over:]
		}
		if err != nil {
			t.err = err
		}
		t.mu.Unlock()
		if err != nil {
			return
		}
	}
}

func (t *streamTransport) Buffered() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 && t.err != nil {
		return 1
	}
	return len(t.pending)
}

func (t *streamTransport) ReadByte() (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.pending) == 0 {
		if t.err != nil {
			return 0, t.err
		}
		return 0, ErrNoData
	}
	c := t.pending[0]
	t.pending = t.pending[1:]
	return c, nil
}

func (t *streamTransport) Write(p []byte) (int, error) {
	return t.rwc.Write(p)
}

func (t *streamTransport) Close() error {
	return t.rwc.Close()
}
