package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// BindAddress is the address the HTTP server listens on (e.g. "0.0.0.0:8080")
	BindAddress string `toml:"bind_address" yaml:"bind_address"`
	// SerialPort is the path to the module's serial port (e.g. "/dev/ttyUSB0")
	SerialPort string `toml:"serial_port" yaml:"serial_port"`
	// BaudRate is the baud rate for serial communication with the module (e.g. 115200)
	BaudRate int `toml:"baud_rate" yaml:"baud_rate"`
	// TCPAddress reaches the module through a serial-over-TCP bridge instead
	// of SerialPort when set (e.g. "192.168.1.20:4000")
	TCPAddress string `toml:"tcp_address" yaml:"tcp_address"`
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// WifiSSID is the access point the station joins
	WifiSSID string `toml:"wifi_ssid" yaml:"wifi_ssid"`
	// WifiPassword is the access point passphrase
	WifiPassword string `toml:"wifi_password" yaml:"wifi_password"`

	// RemoteHost is the peer of link 0, a domain name or dotted quad
	RemoteHost string `toml:"remote_host" yaml:"remote_host"`
	// RemotePort is the peer port of link 0
	RemotePort int `toml:"remote_port" yaml:"remote_port"`
	// LinkProto is "tcp" or "udp"
	LinkProto string `toml:"link_proto" yaml:"link_proto"`
	// ListenPort starts the module's TCP server when non-zero
	ListenPort int `toml:"listen_port" yaml:"listen_port"`

	// NATSURL enables the NATS bridge when set (e.g. "nats://localhost:4222")
	NATSURL string `toml:"nats_url" yaml:"nats_url"`
	// NATSPrefix is the subject prefix for uplink, downlink and event subjects
	NATSPrefix string `toml:"nats_prefix" yaml:"nats_prefix"`
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.BindAddress = "0.0.0.0:8080"
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 115200
		c.LogLevel = "info"
		c.LinkProto = "tcp"
		c.NATSPrefix = "espwifi"
		return nil
	}
}

// WithFile overlays a TOML or YAML file, chosen by extension. Keys absent
// from the file keep their current values. An empty path is a no-op.
func WithFile(path string) ConfigOption {
	return func(c *Config) error {
		if path == "" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".toml":
			if err := toml.Unmarshal(data, c); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, c); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
		default:
			return fmt.Errorf("unsupported config file extension %q", ext)
		}
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
			c.BindAddress = addr
		}

		if serial := os.Getenv("SERIAL_PORT"); serial != "" {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if addr := os.Getenv("TCP_ADDRESS"); addr != "" {
			c.TCPAddress = addr
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if ssid := os.Getenv("WIFI_SSID"); ssid != "" {
			c.WifiSSID = ssid
		}

		if password := os.Getenv("WIFI_PASSWORD"); password != "" {
			c.WifiPassword = password
		}

		if host := os.Getenv("REMOTE_HOST"); host != "" {
			c.RemoteHost = host
		}

		if port := os.Getenv("REMOTE_PORT"); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				c.RemotePort = p
			}
		}

		if proto := os.Getenv("LINK_PROTO"); proto != "" {
			c.LinkProto = proto
		}

		if port := os.Getenv("LISTEN_PORT"); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				c.ListenPort = p
			}
		}

		if url := os.Getenv("NATS_URL"); url != "" {
			c.NATSURL = url
		}

		if prefix := os.Getenv("NATS_PREFIX"); prefix != "" {
			c.NATSPrefix = prefix
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bind-address":
				c.BindAddress = f.Value.String()
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "tcp-address":
				c.TCPAddress = f.Value.String()
			case "log-level":
				c.LogLevel = f.Value.String()
			case "wifi-ssid":
				c.WifiSSID = f.Value.String()
			case "wifi-password":
				c.WifiPassword = f.Value.String()
			case "remote-host":
				c.RemoteHost = f.Value.String()
			case "remote-port":
				if p, err := strconv.Atoi(f.Value.String()); err == nil {
					c.RemotePort = p
				}
			case "link-proto":
				c.LinkProto = f.Value.String()
			case "listen-port":
				if p, err := strconv.Atoi(f.Value.String()); err == nil {
					c.ListenPort = p
				}
			case "nats-url":
				c.NATSURL = f.Value.String()
			case "nats-prefix":
				c.NATSPrefix = f.Value.String()
			}
		})
		return nil
	}
}

// Validate checks configuration correctness. It does not modify c.
func (c *Config) Validate() error {
	var errs []error

	if c.SerialPort == "" && c.TCPAddress == "" {
		errs = append(errs, errors.New("one of serial port or tcp address is required"))
	}
	if c.TCPAddress == "" && c.BaudRate <= 0 {
		errs = append(errs, fmt.Errorf("invalid baud rate %d", c.BaudRate))
	}
	if c.WifiSSID == "" {
		errs = append(errs, errors.New("wifi ssid is required"))
	}
	if c.RemoteHost == "" {
		errs = append(errs, errors.New("remote host is required"))
	}
	if c.RemotePort < 1 || c.RemotePort > 65535 {
		errs = append(errs, fmt.Errorf("remote port %d out of range", c.RemotePort))
	}
	if c.ListenPort < 0 || c.ListenPort > 65535 {
		errs = append(errs, fmt.Errorf("listen port %d out of range", c.ListenPort))
	}
	switch c.LinkProto {
	case "tcp", "udp":
	default:
		errs = append(errs, fmt.Errorf("link proto %q is neither tcp nor udp", c.LinkProto))
	}
	if c.NATSURL != "" && c.NATSPrefix == "" {
		errs = append(errs, errors.New("nats prefix is required with a nats url"))
	}

	return errors.Join(errs...)
}
