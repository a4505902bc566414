package esp_test

import (
	"errors"
	"testing"
	"time"

	"i4.energy/across/espwifi/esp"
)

func TestConfig(t *testing.T) {
	t.Run("ErrNoDialer when no dialer provided", func(t *testing.T) {
		_, err := esp.NewConfigBuilder().Build()

		if err != esp.ErrNoDialer {
			t.Errorf("expected ErrNoDialer, got: %v", err)
		}
	})

	dialer := esp.NewTestTransport().Dialer()

	tests := []struct {
		name      string
		configure func(*esp.ConfigBuilder)
		wantErr   bool
	}{
		{name: "Defaults", configure: func(*esp.ConfigBuilder) {}},
		{name: "Smallest frame", configure: func(b *esp.ConfigBuilder) { b.WithFrameSize(64) }},
		{name: "Largest frame", configure: func(b *esp.ConfigBuilder) { b.WithFrameSize(1 << 16) }},
		{name: "Frame too small", configure: func(b *esp.ConfigBuilder) { b.WithFrameSize(63) }, wantErr: true},
		{name: "Frame too large", configure: func(b *esp.ConfigBuilder) { b.WithFrameSize(1<<16 + 1) }, wantErr: true},
		{name: "Negative poll interval", configure: func(b *esp.ConfigBuilder) { b.WithPollInterval(-time.Second) }, wantErr: true},
		{name: "Partial timeouts", configure: func(b *esp.ConfigBuilder) { b.WithTimeouts(esp.Timeouts{Scan: time.Minute}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := esp.NewConfigBuilder().WithDialer(dialer)
			tt.configure(builder)

			_, err := builder.Build()
			if tt.wantErr && err == nil {
				t.Error("expected an error from Build()")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error from Build(): %v", err)
			}
			if errors.Is(err, esp.ErrNoDialer) {
				t.Error("dialer was provided")
			}
		})
	}
}
