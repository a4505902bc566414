package main

import (
	"errors"
	"log/slog"
	"net/netip"
	"sync"
	"time"

	"i4.energy/across/espwifi/esp"
	"i4.energy/across/espwifi/ring"
)

const (
	// bridgeLink is the link id carrying the bridged connection.
	bridgeLink = 0
	// retryDelay is the back-off before a failed step is issued again.
	retryDelay = time.Second
	// maxOutbox bounds the payloads waiting to be sent.
	maxOutbox = 64
	// maxSendAttempts drops a payload after this many failed sends.
	maxSendAttempts = 3
)

// ErrOutboxFull is returned by Enqueue when maxOutbox payloads are waiting.
var ErrOutboxFull = errors.New("outbox full")

// phase is a step of the bring-up sequence. Steps run in declaration order.
type phase int

const (
	phaseReset phase = iota
	phaseAutoConn
	phaseMode
	phaseMUX
	phaseScan
	phaseJoin
	phaseAddress
	phaseStation
	phaseResolve
	phaseConnect
	phaseServer
	phaseReady
)

var phaseNames = [...]string{
	phaseReset:    "reset",
	phaseAutoConn: "autoconn",
	phaseMode:     "mode",
	phaseMUX:      "mux",
	phaseScan:     "scan",
	phaseJoin:     "join",
	phaseAddress:  "address",
	phaseStation:  "station",
	phaseResolve:  "resolve",
	phaseConnect:  "connect",
	phaseServer:   "server",
	phaseReady:    "ready",
}

func (p phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// wifiDriver is the part of *esp.Driver the bridge drives.
type wifiDriver interface {
	Busy() bool
	Reset() error
	AutoConnAP(enable bool) error
	StartStation() error
	SetMUX(enable bool) error
	ScanAP(ssid string) error
	ConnectAP(ssid, password, bssid string) error
	GetIP() error
	GetSTAIP() error
	DomainResolution(domain string) error
	TCPConnectMUX(link int, remote esp.IPv4, port uint16) error
	UDPConnectMUX(link int, remote esp.IPv4, port, localPort uint16, mode esp.UDPMode) error
	StartTCPServer(port uint16) error
	SendBytesMUX(link int, p []byte, remote esp.IPv4, port uint16) error
}

var _ wifiDriver = (*esp.Driver)(nil)

// Uplink receives what the bridge hears from the module.
type Uplink interface {
	PublishData(link int, payload []byte) error
	PublishEvent(ev Event) error
}

// Event is a step outcome or link change.
type Event struct {
	Name   string    `json:"name"`
	Result string    `json:"result,omitempty"`
	Phase  string    `json:"phase"`
	Link   *int      `json:"link,omitempty"`
	Time   time.Time `json:"time"`
}

// BridgeConfig is what the bring-up sequence needs to know.
type BridgeConfig struct {
	SSID       string
	Password   string
	RemoteHost string
	RemotePort uint16
	UDP        bool
	ListenPort uint16
}

// Status is a snapshot of the bridge.
type Status struct {
	Phase       string `json:"phase"`
	StationIP   string `json:"station_ip,omitempty"`
	StationMask string `json:"station_mask,omitempty"`
	RemoteIP    string `json:"remote_ip,omitempty"`
	LinkUp      bool   `json:"link_up"`
	Queued      int    `json:"queued"`
	Sent        uint64 `json:"sent"`
	SendErrors  uint64 `json:"send_errors"`
	Dropped     uint64 `json:"dropped"`
	Received    uint64 `json:"received"`
	Retries     uint64 `json:"retries"`
}

// Bridge brings the module up through the phase sequence and then moves
// payloads between link 0 and the Uplink. Driver callbacks arrive on the
// goroutine running esp.Driver.Loop; Tick runs there too. Enqueue and
// Status may be called from any goroutine.
type Bridge struct {
	esp.BaseHandler

	config BridgeConfig
	logger *slog.Logger
	uplink Uplink
	now    func() time.Time

	mu sync.Mutex
	// phase is the step being worked on.
	phase phase
	// issued is true while the command for step is outstanding.
	issued bool
	step   phase
	// retryAt holds back Tick after a failure.
	retryAt time.Time

	stationIP   esp.IPv4
	stationMask esp.IPv4
	remote      esp.IPv4
	linkUp      bool

	outbox   [][]byte
	attempts int

	sent       uint64
	sendErrors uint64
	dropped    uint64
	received   uint64
	retries    uint64
}

var _ esp.Handler = (*Bridge)(nil)

// NewBridge returns a bridge in the reset phase. uplink may be nil.
func NewBridge(config BridgeConfig, logger *slog.Logger, uplink Uplink) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Bridge{
		config: config,
		logger: logger,
		uplink: uplink,
		now:    time.Now,
	}
}

// Tick issues the next command when the driver is idle. Pass it to
// esp.Driver.Loop.
func (b *Bridge) Tick(d wifiDriver) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.issued || d.Busy() || b.now().Before(b.retryAt) {
		return
	}

	if b.phase == phaseResolve {
		if addr, err := netip.ParseAddr(b.config.RemoteHost); err == nil && addr.Is4() {
			b.remote = esp.IPv4FromAddr(addr)
			b.phase = phaseConnect
		}
	}
	if b.phase == phaseServer && b.config.ListenPort == 0 {
		b.advance()
	}

	if b.phase == phaseReady {
		b.sendNext(d)
		return
	}

	if err := b.issue(d); err != nil {
		b.logger.Warn("Failed to issue step", "phase", b.phase, "error", err)
		b.backoff()
		return
	}
	b.issued = true
	b.step = b.phase
}

func (b *Bridge) issue(d wifiDriver) error {
	switch b.phase {
	case phaseReset:
		return d.Reset()
	case phaseAutoConn:
		return d.AutoConnAP(false)
	case phaseMode:
		return d.StartStation()
	case phaseMUX:
		return d.SetMUX(true)
	case phaseScan:
		return d.ScanAP(b.config.SSID)
	case phaseJoin:
		return d.ConnectAP(b.config.SSID, b.config.Password, "")
	case phaseAddress:
		return d.GetIP()
	case phaseStation:
		return d.GetSTAIP()
	case phaseResolve:
		return d.DomainResolution(b.config.RemoteHost)
	case phaseConnect:
		if b.config.UDP {
			return d.UDPConnectMUX(bridgeLink, b.remote, b.config.RemotePort, 0, esp.UDPFixedRemote)
		}
		return d.TCPConnectMUX(bridgeLink, b.remote, b.config.RemotePort)
	case phaseServer:
		return d.StartTCPServer(b.config.ListenPort)
	}
	return nil
}

func (b *Bridge) sendNext(d wifiDriver) {
	if len(b.outbox) == 0 || !b.linkUp {
		return
	}
	err := d.SendBytesMUX(bridgeLink, b.outbox[0], 0, 0)
	switch {
	case errors.Is(err, esp.ErrBusy):
		return
	case err != nil:
		b.logger.Error("Failed to send payload", "error", err, "length", len(b.outbox[0]))
		b.drop()
		return
	}
	b.issued = true
	b.step = phaseReady
}

// Enqueue queues payload for link 0. The payload is copied.
func (b *Bridge) Enqueue(payload []byte) error {
	if len(payload) == 0 {
		return esp.ErrEmptyPayload
	}
	if len(payload) > esp.SendMaxSize {
		return esp.ErrPayloadTooLarge
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.outbox) >= maxOutbox {
		return ErrOutboxFull
	}
	b.outbox = append(b.outbox, append([]byte(nil), payload...))
	return nil
}

// Status returns a snapshot of the bridge.
func (b *Bridge) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Status{
		Phase:      b.phase.String(),
		LinkUp:     b.linkUp,
		Queued:     len(b.outbox),
		Sent:       b.sent,
		SendErrors: b.sendErrors,
		Dropped:    b.dropped,
		Received:   b.received,
		Retries:    b.retries,
	}
	if b.stationIP != 0 {
		s.StationIP = b.stationIP.String()
		s.StationMask = b.stationMask.String()
	}
	if b.remote != 0 {
		s.RemoteIP = b.remote.String()
	}
	return s
}

// complete ends step. A result for a step the bridge has moved away from
// only clears the outstanding flag.
func (b *Bridge) complete(step phase, res esp.Result) {
	b.mu.Lock()
	if !b.issued || b.step != step {
		b.mu.Unlock()
		b.logger.Debug("Ignoring result", "step", step, "result", res)
		return
	}
	b.issued = false

	if b.phase == step {
		if res == esp.ResultOK {
			b.advance()
		} else {
			b.logger.Warn("Step failed", "phase", step, "result", res)
			b.backoff()
		}
	}
	ev := b.event(step.String(), res.String())
	b.mu.Unlock()

	b.publishEvent(ev)
}

func (b *Bridge) advance() {
	b.phase++
	b.logger.Info("Bridge step", "phase", b.phase)
	if b.phase == phaseReady {
		b.linkUp = true
	}
}

func (b *Bridge) backoff() {
	b.retries++
	b.retryAt = b.now().Add(retryDelay)
}

func (b *Bridge) drop() {
	b.outbox = b.outbox[1:]
	b.attempts = 0
	b.dropped++
}

// rewind restarts the sequence at p if it had got past it.
func (b *Bridge) rewind(p phase) {
	if b.phase <= p {
		return
	}
	b.phase = p
	b.linkUp = false
	b.logger.Info("Bridge step", "phase", b.phase)
}

// event snapshots the current phase. result may be empty.
func (b *Bridge) event(name, result string) Event {
	return Event{Name: name, Result: result, Phase: b.phase.String(), Time: b.now()}
}

func (b *Bridge) publishEvent(ev Event) {
	if b.uplink == nil {
		return
	}
	if err := b.uplink.PublishEvent(ev); err != nil {
		b.logger.Warn("Failed to publish event", "event", ev.Name, "error", err)
	}
}

func (b *Bridge) OnReset(res esp.Result) { b.complete(phaseReset, res) }
func (b *Bridge) OnAutoConnAP(res esp.Result) { b.complete(phaseAutoConn, res) }
func (b *Bridge) OnSetMode(res esp.Result) { b.complete(phaseMode, res) }
func (b *Bridge) OnSetMUX(res esp.Result) { b.complete(phaseMUX, res) }
func (b *Bridge) OnConnectAP(res esp.Result) { b.complete(phaseJoin, res) }
func (b *Bridge) OnTCPConnect(res esp.Result) { b.complete(phaseConnect, res) }
func (b *Bridge) OnUDPConnect(res esp.Result) { b.complete(phaseConnect, res) }
func (b *Bridge) OnTCPServer(res esp.Result) { b.complete(phaseServer, res) }

// OnScanAP fails the scan step when the access point is not in range.
func (b *Bridge) OnScanAP(res esp.Result, found bool) {
	if res == esp.ResultOK && !found {
		b.logger.Warn("Access point not found", "ssid", b.config.SSID)
		res = esp.ResultUnknownError
	}
	b.complete(phaseScan, res)
}

func (b *Bridge) OnGetIP(res esp.Result, _, station esp.IPv4) {
	if res == esp.ResultOK {
		b.mu.Lock()
		b.stationIP = station
		b.mu.Unlock()
	}
	b.complete(phaseAddress, res)
}

func (b *Bridge) OnGetSTAIP(res esp.Result, ip, mask esp.IPv4) {
	if res == esp.ResultOK {
		b.mu.Lock()
		b.stationIP = ip
		b.stationMask = mask
		b.mu.Unlock()
		b.logger.Info("Station address", "ip", ip, "mask", mask)
	}
	b.complete(phaseStation, res)
}

func (b *Bridge) OnDomainResolution(res esp.Result, ip esp.IPv4) {
	if res == esp.ResultOK {
		b.mu.Lock()
		b.remote = ip
		b.mu.Unlock()
		b.logger.Info("Resolved remote host", "host", b.config.RemoteHost, "ip", ip)
	}
	b.complete(phaseResolve, res)
}

// OnSend pops the payload on success. A failed payload is retried after
// the back-off and dropped after maxSendAttempts.
func (b *Bridge) OnSend(res esp.Result) {
	b.mu.Lock()
	if !b.issued || b.step != phaseReady {
		b.mu.Unlock()
		return
	}
	b.issued = false

	if res == esp.ResultOK {
		b.sent++
		b.outbox = b.outbox[1:]
		b.attempts = 0
		b.mu.Unlock()
		return
	}

	b.sendErrors++
	b.attempts++
	b.logger.Warn("Send failed", "result", res, "attempt", b.attempts)
	if b.attempts >= maxSendAttempts {
		b.drop()
	}
	b.backoff()
	ev := b.event("send", res.String())
	b.mu.Unlock()

	b.publishEvent(ev)
}

func (b *Bridge) OnDisconnectAP() {
	b.mu.Lock()
	b.logger.Warn("Access point lost")
	b.rewind(phaseJoin)
	ev := b.event("disconnect", "")
	b.mu.Unlock()

	b.publishEvent(ev)
}

func (b *Bridge) OnLinkState(link int, connected bool) {
	b.mu.Lock()
	if link == bridgeLink && !connected {
		b.rewind(phaseConnect)
	}
	name := "closed"
	if connected {
		name = "connected"
	}
	ev := b.event(name, "")
	ev.Link = &link
	b.mu.Unlock()

	b.logger.Info("Link state", "link", link, "connected", connected)
	b.publishEvent(ev)
}

// OnData copies the view before publishing it.
func (b *Bridge) OnData(link int, data ring.View) {
	payload := data.AppendTo(nil)

	b.mu.Lock()
	b.received += uint64(len(payload))
	b.mu.Unlock()

	b.logger.Debug("Received data", "link", link, "length", len(payload))
	if b.uplink == nil {
		return
	}
	if err := b.uplink.PublishData(link, payload); err != nil {
		b.logger.Warn("Failed to publish data", "link", link, "error", err)
	}
}
