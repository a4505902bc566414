package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		SerialPort: "/dev/ttyUSB0",
		BaudRate:   115200,
		WifiSSID:   "home",
		RemoteHost: "example.com",
		RemotePort: 7000,
		LinkProto:  "tcp",
		NATSPrefix: "espwifi",
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := LoadConfig(WithDefaults())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.BindAddress != "0.0.0.0:8080" || c.BaudRate != 115200 || c.LinkProto != "tcp" || c.NATSPrefix != "espwifi" {
			t.Errorf("unexpected defaults: %+v", c)
		}
	})

	t.Run("TOML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "espwifi.toml")
		data := "wifi_ssid = \"home\"\nremote_host = \"10.0.0.2\"\nremote_port = 7000\nlink_proto = \"udp\"\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		c, err := LoadConfig(WithDefaults(), WithFile(path))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.WifiSSID != "home" || c.RemoteHost != "10.0.0.2" || c.RemotePort != 7000 || c.LinkProto != "udp" {
			t.Errorf("file values not applied: %+v", c)
		}
		if c.BaudRate != 115200 {
			t.Errorf("defaults should survive the file, baud rate %d", c.BaudRate)
		}
	})

	t.Run("YAML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "espwifi.yaml")
		data := "wifi_ssid: home\nwifi_password: secret\nlisten_port: 333\nnats_url: nats://localhost:4222\n"
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatal(err)
		}

		c, err := LoadConfig(WithDefaults(), WithFile(path))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.WifiPassword != "secret" || c.ListenPort != 333 || c.NATSURL != "nats://localhost:4222" {
			t.Errorf("file values not applied: %+v", c)
		}
	})

	t.Run("Unknown extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "espwifi.ini")
		if err := os.WriteFile(path, []byte("x=1"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(WithFile(path)); err == nil {
			t.Error("expected an error for .ini")
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		if _, err := LoadConfig(WithFile(filepath.Join(t.TempDir(), "none.toml"))); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		t.Setenv("WIFI_SSID", "office")
		t.Setenv("REMOTE_PORT", "9000")
		t.Setenv("TCP_ADDRESS", "192.168.1.20:4000")

		c, err := LoadConfig(WithDefaults(), WithEnv())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.WifiSSID != "office" || c.RemotePort != 9000 || c.TCPAddress != "192.168.1.20:4000" {
			t.Errorf("environment not applied: %+v", c)
		}
	})

	t.Run("Only visited flags apply", func(t *testing.T) {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.String("wifi-ssid", "", "")
		fs.String("link-proto", "tcp", "")
		fs.Int("listen-port", 0, "")
		if err := fs.Parse([]string{"-wifi-ssid=lab", "-listen-port=80"}); err != nil {
			t.Fatal(err)
		}

		c := &Config{LinkProto: "udp"}
		if err := WithFlags(fs)(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.WifiSSID != "lab" || c.ListenPort != 80 || c.LinkProto != "udp" {
			t.Errorf("unexpected config: %+v", c)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "Valid", modify: func(*Config) {}},
		{name: "TCP bridge without serial port", modify: func(c *Config) { c.SerialPort = ""; c.BaudRate = 0; c.TCPAddress = "host:4000" }},
		{name: "No transport", modify: func(c *Config) { c.SerialPort = "" }, wantErr: "serial port"},
		{name: "Bad baud rate", modify: func(c *Config) { c.BaudRate = 0 }, wantErr: "baud rate"},
		{name: "No SSID", modify: func(c *Config) { c.WifiSSID = "" }, wantErr: "ssid"},
		{name: "No remote host", modify: func(c *Config) { c.RemoteHost = "" }, wantErr: "remote host"},
		{name: "Remote port zero", modify: func(c *Config) { c.RemotePort = 0 }, wantErr: "remote port"},
		{name: "Listen port too large", modify: func(c *Config) { c.ListenPort = 70000 }, wantErr: "listen port"},
		{name: "Unknown proto", modify: func(c *Config) { c.LinkProto = "sctp" }, wantErr: "sctp"},
		{name: "NATS without prefix", modify: func(c *Config) { c.NATSURL = "nats://x"; c.NATSPrefix = "" }, wantErr: "prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got: %v", tt.wantErr, err)
			}
		})
	}
}
