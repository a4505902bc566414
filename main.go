package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"
	"i4.energy/across/espwifi/esp"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML or YAML configuration file")
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port to connect to the module")
	flag.Int("baud-rate", 115200, "Baud rate for serial communication")
	flag.String("tcp-address", "", "Reach the module through a serial-over-TCP bridge instead")
	flag.String("bind-address", "0.0.0.0:8080", "Bind address for the HTTP server")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("wifi-ssid", "", "Access point to join")
	flag.String("wifi-password", "", "Access point passphrase")
	flag.String("remote-host", "", "Peer of the bridged link (domain or IPv4)")
	flag.Int("remote-port", 0, "Peer port of the bridged link")
	flag.String("link-proto", "tcp", "Bridged link protocol (tcp, udp)")
	flag.Int("listen-port", 0, "Start the module's TCP server on this port (0 disables)")
	flag.String("nats-url", "", "NATS server URL (empty disables NATS)")
	flag.String("nats-prefix", "espwifi", "NATS subject prefix")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithFile(*configPath), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	switch config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	var uplink Uplink
	var nc *nats.Conn
	var publisher *Publisher
	if config.NATSURL != "" {
		nc, err = nats.Connect(config.NATSURL, nats.Name("espwifi"))
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err, "url", config.NATSURL)
			os.Exit(1)
		}
		publisher = NewPublisher(nc, config.NATSPrefix, logger.With("component", "nats"))
		uplink = publisher
		logger.Info("Connected to NATS", "url", config.NATSURL, "prefix", config.NATSPrefix)
	}

	bridge := NewBridge(BridgeConfig{
		SSID:       config.WifiSSID,
		Password:   config.WifiPassword,
		RemoteHost: config.RemoteHost,
		RemotePort: uint16(config.RemotePort),
		UDP:        config.LinkProto == "udp",
		ListenPort: uint16(config.ListenPort),
	}, logger.With("component", "bridge"), uplink)

	if publisher != nil {
		if _, err := publisher.Downlink(bridge.Enqueue); err != nil {
			logger.Error("Failed to subscribe downlink", "error", err)
			os.Exit(1)
		}
	}

	var dialer esp.Dialer = esp.SerialDialer{
		PortName: config.SerialPort,
		BaudRate: config.BaudRate,
	}
	if config.TCPAddress != "" {
		dialer = esp.TCPDialer{Address: config.TCPAddress, Timeout: 5 * time.Second}
	}

	driverConfig, err := esp.NewConfigBuilder().
		WithDialer(dialer).
		WithHandler(bridge).
		WithLogger(logger.With("component", "esp")).
		Build()
	if err != nil {
		logger.Error("Failed to create driver config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := esp.New(ctx, driverConfig)
	if err != nil {
		logger.Error("Failed to open module", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting WiFi bridge", "ssid", config.WifiSSID, "remote", config.RemoteHost, "proto", config.LinkProto)

	httpServer := &http.Server{
		Addr: config.BindAddress,
		Handler: &Server{
			Logger: logger.With("component", "server"),
			Bridge: bridge,
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := d.Loop(gctx, func(d *esp.Driver) { bridge.Tick(d) })
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Closing HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	runErr := g.Wait()
	if runErr != nil {
		logger.Error("Bridge stopped", "error", runErr)
	}

	logger.Info("Closing module connection")
	if err := d.Close(); err != nil {
		logger.Error("Failed to close module", "error", err)
	}

	if nc != nil {
		logger.Info("Draining NATS connection")
		if err := nc.Drain(); err != nil {
			logger.Error("Failed to drain NATS", "error", err)
		}
	}

	if runErr != nil {
		os.Exit(1)
	}
}
