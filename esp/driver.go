// Package esp drives an ESP8266/ESP32 module running the Espressif AT
// firmware. The Driver is a single-threaded, non-blocking state machine:
// commands are written immediately, responses are recognized as bytes
// arrive in Poll, and results are delivered to a Handler.
package esp

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"i4.energy/across/espwifi/at"
	"i4.energy/across/espwifi/ring"
)

// pollBudget bounds the bytes a single Poll reads, so a transport that is
// fed continuously cannot keep Poll from returning.
const pollBudget = 64 << 10

// Driver talks to one module over a Transport.
//
// All methods except Loop must be called from a single goroutine, usually
// the one running Loop or from inside Handler callbacks.
type Driver struct {
	// transport provides the byte stream to the module (serial, TCP, etc.)
	transport Transport
	// handler receives completions and reports
	handler Handler
	log     *slog.Logger
	// now is the clock used for command timeouts
	now          func() time.Time
	timeouts     Timeouts
	pollInterval time.Duration

	// rx accumulates received bytes until a recognizer consumes them
	rx  *ring.Buffer
	cmd at.Builder

	// outstanding is the command waiting for its result, CmdNone if idle
	outstanding Command
	// sentAt is when outstanding was issued, refreshed on the send prompt
	sentAt time.Time

	// mux tells whether the module is in multi-connection mode
	mux bool
	// muxRequest is the mode asked for by the outstanding SetMUX
	muxRequest bool

	// dataLink and dataPending track a network data block that straddles
	// reads
	dataLink    int
	dataPending int

	// query results collected until the command completes
	scanFound bool
	netStatus int
	apIP      IPv4
	apMask    IPv4
	staIP     IPv4
	staMask   IPv4
	resolved  IPv4

	// payload for the send in progress, written on the ">" prompt
	payload     []byte
	payloadText string
	terminate   bool

	closed      bool
	loopRunning atomic.Bool
}

// New creates a Driver with the given configuration. It dials the
// transport but sends nothing; call Reset or any other command once ready.
//
// Returns an error if no Dialer is configured or the transport cannot be
// established.
func New(ctx context.Context, config Config) (*Driver, error) {
	if config.dialer == nil {
		return nil, ErrNoDialer
	}
	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	transport, err := config.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial transport: %w", err)
	}
	if transport == nil {
		return nil, ErrNotInitialized
	}

	return &Driver{
		transport:    transport,
		handler:      config.handler,
		log:          config.logger,
		now:          config.now,
		timeouts:     config.timeouts,
		pollInterval: config.pollInterval,
		rx:           ring.New(config.frameSize + 1),
	}, nil
}

// Poll moves the bytes the transport has buffered into the receive ring,
// runs the recognizers over them and then checks the outstanding command's
// deadline. It never blocks on the transport. The recognizers also run each
// time the ring fills, so a backlog larger than the ring is not overwritten
// unseen. At most pollBudget bytes are read per call.
//
// A read error is returned after the bytes read before it have been
// dispatched.
func (d *Driver) Poll() error {
	if d.closed {
		return ErrAlreadyClosed
	}
	if d.transport == nil {
		return ErrNotInitialized
	}

	var readErr error
	read := 0
	for n := d.transport.Buffered(); n > 0 && read < pollBudget; n = d.transport.Buffered() {
		for ; n > 0 && read < pollBudget; n-- {
			c, err := d.transport.ReadByte()
			if err != nil {
				readErr = fmt.Errorf("read transport: %w", err)
				break
			}
			d.rx.Store(c)
			read++
			if d.rx.Full() {
				d.dispatch()
			}
		}
		if readErr != nil {
			break
		}
	}

	if read > 0 {
		d.dispatch()
	}
	d.checkTimeout()
	return readErr
}

// Loop polls the driver until ctx is done or the transport fails, calling
// tick after each poll. tick may be nil. Commands are issued from tick or
// from Handler callbacks.
//
// Loop returns ErrLoopRunning if another Loop is already running on d,
// ctx.Err() on cancellation, and the transport error otherwise.
func (d *Driver) Loop(ctx context.Context, tick func(*Driver)) error {
	if !d.loopRunning.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer d.loopRunning.Store(false)

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		if err := d.Poll(); err != nil {
			return err
		}
		if tick != nil {
			tick(d)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close releases the transport. After Close every operation fails with
// ErrAlreadyClosed.
func (d *Driver) Close() error {
	if d.closed {
		return ErrAlreadyClosed
	}
	d.closed = true
	if d.transport != nil {
		return d.transport.Close()
	}
	return nil
}

// Busy reports whether a command is outstanding.
func (d *Driver) Busy() bool {
	return d.outstanding != CmdNone
}

// Outstanding returns the command waiting for its result.
func (d *Driver) Outstanding() Command {
	return d.outstanding
}

// Multiplexed reports whether the module was last put into multi-connection
// mode.
func (d *Driver) Multiplexed() bool {
	return d.mux
}

// Pending returns the number of received bytes not yet consumed.
func (d *Driver) Pending() int {
	return d.rx.Len()
}

// begin checks that a new command may be issued.
func (d *Driver) begin() error {
	if d.closed {
		return ErrAlreadyClosed
	}
	if d.transport == nil {
		return ErrNotInitialized
	}
	if d.outstanding != CmdNone {
		return ErrBusy
	}
	return nil
}

// issue writes the line in d.cmd and marks c outstanding.
func (d *Driver) issue(c Command) error {
	if _, err := d.transport.Write(d.cmd.Line()); err != nil {
		return fmt.Errorf("write command %q: %w", d.cmd.String(), err)
	}
	d.outstanding = c
	d.sentAt = d.now()
	d.log.Debug("command issued", "cmd", c.String(), "line", d.cmd.String())
	return nil
}

// finish returns the driver to idle and reports res for the command that was
// outstanding. The driver is idle before the handler runs so the handler can
// issue the next command.
func (d *Driver) finish(res Result) {
	c := d.outstanding
	d.outstanding = CmdNone
	d.payload = nil
	d.payloadText = ""
	if c == CmdNone {
		return
	}
	if res == ResultOK {
		d.log.Debug("command done", "cmd", c.String())
	} else {
		d.log.Warn("command failed", "cmd", c.String(), "result", res.String())
	}
	d.report(c, res)
}

func (d *Driver) checkTimeout() {
	if d.outstanding == CmdNone {
		return
	}
	limit := d.outstanding.deadline(d.timeouts)
	if elapsed := d.now().Sub(d.sentAt); elapsed > limit {
		d.log.Warn("command timed out", "cmd", d.outstanding.String(), "elapsed", elapsed, "limit", limit)
		d.finish(ResultTimeout)
	}
}
