package at_test

import (
	"testing"

	"i4.energy/across/espwifi/at"
)

func TestBuilder(t *testing.T) {
	var b at.Builder

	tests := []struct {
		name     string
		build    func() *at.Builder
		expected string
	}{
		{
			name:     "Bare command",
			build:    func() *at.Builder { return b.Start(at.CmdReset) },
			expected: "AT+RST\r\n",
		},
		{
			name:     "Single integer argument",
			build:    func() *at.Builder { return b.Start(at.CmdWifiMode).Int(3) },
			expected: "AT+CWMODE=3\r\n",
		},
		{
			name:     "Join with quoted and escaped strings",
			build:    func() *at.Builder { return b.Start(at.CmdJoinAP).Str(`my"net`).Str(`a\b,c`) },
			expected: "AT+CWJAP=\"my\\\"net\",\"a\\\\b\\,c\"\r\n",
		},
		{
			name: "Multiplexed TCP start",
			build: func() *at.Builder {
				return b.Start(at.CmdStart).Int(2).Str("TCP").IPv4(0xC0A80107).Int(8080)
			},
			expected: "AT+CIPSTART=2,\"TCP\",\"192.168.1.7\",8080\r\n",
		},
		{
			name:     "Boolean argument",
			build:    func() *at.Builder { return b.Start(at.CmdMux).Bool(true) },
			expected: "AT+CIPMUX=1\r\n",
		},
		{
			name:     "Query command",
			build:    func() *at.Builder { return b.Start(at.CmdSTAAddr) },
			expected: "AT+CIPSTA?\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.build().Line()
			if string(line) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, line)
			}
			if b.String()+at.CRLF != tt.expected {
				t.Errorf("String() = %q, expected it without CRLF", b.String())
			}
		})
	}
}

func TestAppendIPv4(t *testing.T) {
	tests := []struct {
		addr     uint32
		expected string
	}{
		{addr: 0, expected: "0.0.0.0"},
		{addr: 0x5DB8D822, expected: "93.184.216.34"},
		{addr: 0xFFFFFFFF, expected: "255.255.255.255"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := string(at.AppendIPv4(nil, tt.addr)); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
