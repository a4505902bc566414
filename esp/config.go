package esp

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	// SendMaxSize is the most the firmware accepts in a single CIPSEND.
	SendMaxSize = 2048

	defaultFrameSize    = SendMaxSize
	minFrameSize        = 64
	maxFrameSize        = 1 << 16
	defaultPollInterval = 10 * time.Millisecond
)

// Timeouts bounds how long each class of command may stay outstanding.
type Timeouts struct {
	// Normal applies to every command not listed below.
	Normal time.Duration
	// Reset covers the module reboot until it prints "ready".
	Reset time.Duration
	// Scan covers an access point scan.
	Scan time.Duration
	// ConnectAP covers joining an access point.
	ConnectAP time.Duration
}

// DefaultTimeouts are the firmware timings the driver assumes unless told
// otherwise.
var DefaultTimeouts = Timeouts{
	Normal:    time.Second,
	Reset:     10 * time.Second,
	Scan:      10 * time.Second,
	ConnectAP: 30 * time.Second,
}

type Config struct {
	dialer       Dialer
	handler      Handler
	logger       *slog.Logger
	frameSize    int
	timeouts     Timeouts
	pollInterval time.Duration
	now          func() time.Time
}

func (c *Config) validate() error {
	if c.dialer == nil {
		return ErrNoDialer
	}
	if c.frameSize < minFrameSize || c.frameSize > maxFrameSize {
		return fmt.Errorf("frame size %d out of range [%d, %d]", c.frameSize, minFrameSize, maxFrameSize)
	}
	if c.pollInterval < 0 {
		return fmt.Errorf("negative poll interval %v", c.pollInterval)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.handler == nil {
		c.handler = BaseHandler{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.frameSize == 0 {
		c.frameSize = defaultFrameSize
	}
	if c.pollInterval == 0 {
		c.pollInterval = defaultPollInterval
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.timeouts.Normal == 0 {
		c.timeouts.Normal = DefaultTimeouts.Normal
	}
	if c.timeouts.Reset == 0 {
		c.timeouts.Reset = DefaultTimeouts.Reset
	}
	if c.timeouts.Scan == 0 {
		c.timeouts.Scan = DefaultTimeouts.Scan
	}
	if c.timeouts.ConnectAP == 0 {
		c.timeouts.ConnectAP = DefaultTimeouts.ConnectAP
	}
}

// ConfigBuilder assembles a Config. Unset fields take their defaults in
// Build.
type ConfigBuilder struct {
	config Config
}

func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

func (b *ConfigBuilder) WithDialer(d Dialer) *ConfigBuilder {
	b.config.dialer = d
	return b
}

func (b *ConfigBuilder) WithHandler(h Handler) *ConfigBuilder {
	b.config.handler = h
	return b
}

func (b *ConfigBuilder) WithLogger(l *slog.Logger) *ConfigBuilder {
	b.config.logger = l
	return b
}

// WithFrameSize sets how many received bytes the driver buffers before
// recognizing them. Longer unrecognized lines are discarded.
func (b *ConfigBuilder) WithFrameSize(n int) *ConfigBuilder {
	b.config.frameSize = n
	return b
}

// WithTimeouts overrides command timeouts. Zero fields keep their defaults.
func (b *ConfigBuilder) WithTimeouts(t Timeouts) *ConfigBuilder {
	b.config.timeouts = t
	return b
}

func (b *ConfigBuilder) WithPollInterval(d time.Duration) *ConfigBuilder {
	b.config.pollInterval = d
	return b
}

// WithClock replaces time.Now for timeout accounting.
func (b *ConfigBuilder) WithClock(now func() time.Time) *ConfigBuilder {
	b.config.now = now
	return b
}

func (b *ConfigBuilder) Build() (Config, error) {
	c := b.config
	c.setDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
