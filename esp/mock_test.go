package esp_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"i4.energy/across/espwifi/esp"
	"i4.energy/across/espwifi/ring"
)

// fakeClock drives command timeouts by hand.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fixture struct {
	driver    *esp.Driver
	transport *esp.TestTransport
	handler   *esp.MockHandler
	clock     *fakeClock
}

// newFixture builds a driver on a TestTransport with a strict mock handler.
// configure may adjust the builder before Build.
func newFixture(t *testing.T, configure ...func(*esp.ConfigBuilder)) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		transport: esp.NewTestTransport(),
		handler:   esp.NewMockHandler(ctrl),
		clock:     &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	builder := esp.NewConfigBuilder().
		WithDialer(f.transport.Dialer()).
		WithHandler(f.handler).
		WithClock(f.clock.Now)
	for _, fn := range configure {
		fn(builder)
	}
	config, err := builder.Build()
	if err != nil {
		t.Fatalf("unexpected error from Build(): %v", err)
	}

	f.driver, err = esp.New(context.Background(), config)
	if err != nil {
		t.Fatalf("failed to create driver: %v", err)
	}
	t.Cleanup(func() { _ = f.driver.Close() })
	return f
}

// feed delivers data and polls once.
func (f *fixture) feed(t *testing.T, data string) {
	t.Helper()
	f.transport.Feed(data)
	if err := f.driver.Poll(); err != nil {
		t.Fatalf("unexpected error from Poll(): %v", err)
	}
}

// multiplexed switches the driver into multi-connection mode.
func (f *fixture) multiplexed(t *testing.T) {
	t.Helper()
	f.handler.EXPECT().OnSetMUX(esp.ResultOK)
	if err := f.driver.SetMUX(true); err != nil {
		t.Fatalf("unexpected error from SetMUX(): %v", err)
	}
	f.feed(t, "\r\nOK\r\n")
	if !f.driver.Multiplexed() {
		t.Fatal("driver should be multiplexed after OK")
	}
	f.transport.ClearWritten()
}

// collectData records every OnData payload.
func (f *fixture) collectData(link int) *[]string {
	var got []string
	f.handler.EXPECT().OnData(link, gomock.Any()).Do(func(_ int, v ring.View) {
		got = append(got, v.String())
	}).AnyTimes()
	return &got
}

func (f *fixture) lastCommand(t *testing.T) string {
	t.Helper()
	cmds := f.transport.Commands()
	if len(cmds) == 0 {
		t.Fatal("nothing was written")
	}
	return cmds[len(cmds)-1]
}

// MockSequenceBuilder scripts a MockTransport: writes the driver must make
// and bytes it reads back, in order.
type MockSequenceBuilder struct {
	transport *esp.MockTransport
	calls     []any
}

func NewMockSequence(transport *esp.MockTransport) *MockSequenceBuilder {
	return &MockSequenceBuilder{
		transport: transport,
		calls:     []any{},
	}
}

// Write expects the driver to write exactly data.
func (b *MockSequenceBuilder) Write(data string) *MockSequenceBuilder {
	b.calls = append(b.calls,
		b.transport.EXPECT().Write([]byte(data)).Return(len(data), nil),
	)
	return b
}

// Read makes data available to one Poll.
func (b *MockSequenceBuilder) Read(data string) *MockSequenceBuilder {
	b.calls = append(b.calls, b.transport.EXPECT().Buffered().Return(len(data)))
	for i := 0; i < len(data); i++ {
		b.calls = append(b.calls, b.transport.EXPECT().ReadByte().Return(data[i], nil))
	}
	b.calls = append(b.calls, b.transport.EXPECT().Buffered().Return(0))
	return b
}

func (b *MockSequenceBuilder) Build() []any {
	return b.calls
}
