package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// natsConn is the part of *nats.Conn the publisher uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

var _ natsConn = (*nats.Conn)(nil)

// Publisher carries link traffic over NATS:
//
//	<prefix>.uplink.<link>  data received on a link
//	<prefix>.event          bridge events as JSON
//	<prefix>.downlink       payloads to send on link 0
type Publisher struct {
	conn   natsConn
	prefix string
	logger *slog.Logger
}

var _ Uplink = (*Publisher)(nil)

func NewPublisher(conn natsConn, prefix string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Publisher{conn: conn, prefix: prefix, logger: logger}
}

func (p *Publisher) PublishData(link int, payload []byte) error {
	return p.conn.Publish(fmt.Sprintf("%s.uplink.%d", p.prefix, link), payload)
}

func (p *Publisher) PublishEvent(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.conn.Publish(p.prefix+".event", data)
}

// Downlink subscribes to <prefix>.downlink and hands every payload to
// enqueue. Requests get "ok" or the enqueue error as a reply.
func (p *Publisher) Downlink(enqueue func([]byte) error) (*nats.Subscription, error) {
	subject := p.prefix + ".downlink"
	sub, err := p.conn.Subscribe(subject, func(msg *nats.Msg) {
		reply := "ok"
		if err := enqueue(msg.Data); err != nil {
			p.logger.Warn("Dropped downlink payload", "error", err, "length", len(msg.Data))
			reply = err.Error()
		}
		if msg.Reply == "" {
			return
		}
		if err := p.conn.Publish(msg.Reply, []byte(reply)); err != nil {
			p.logger.Warn("Failed to reply", "subject", msg.Reply, "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", subject, err)
	}
	return sub, nil
}
