package main

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

type published struct {
	subject string
	data    string
}

// fakeConn records publishes and keeps the last subscription handler.
type fakeConn struct {
	published []published
	subject   string
	handler   nats.MsgHandler
	subErr    error
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	c.published = append(c.published, published{subject, string(data)})
	return nil
}

func (c *fakeConn) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	if c.subErr != nil {
		return nil, c.subErr
	}
	c.subject = subject
	c.handler = cb
	return &nats.Subscription{Subject: subject}, nil
}

func TestPublisher(t *testing.T) {
	t.Run("Data goes to the link subject", func(t *testing.T) {
		conn := &fakeConn{}
		p := NewPublisher(conn, "site1", nil)

		if err := p.PublishData(3, []byte("hello")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := published{"site1.uplink.3", "hello"}
		if len(conn.published) != 1 || conn.published[0] != expected {
			t.Errorf("expected %+v, got %+v", expected, conn.published)
		}
	})

	t.Run("Events are JSON", func(t *testing.T) {
		conn := &fakeConn{}
		p := NewPublisher(conn, "site1", nil)
		link := 0
		ev := Event{Name: "closed", Phase: "connect", Link: &link, Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

		if err := p.PublishEvent(ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(conn.published) != 1 || conn.published[0].subject != "site1.event" {
			t.Fatalf("unexpected publishes %+v", conn.published)
		}
		var got map[string]any
		if err := json.Unmarshal([]byte(conn.published[0].data), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got["name"] != "closed" || got["link"] != float64(0) || got["phase"] != "connect" {
			t.Errorf("unexpected event %v", got)
		}
		if _, ok := got["result"]; ok {
			t.Error("empty result should be omitted")
		}
	})

	t.Run("Downlink feeds the bridge", func(t *testing.T) {
		conn := &fakeConn{}
		p := NewPublisher(conn, "site1", nil)

		var queued []string
		sub, err := p.Downlink(func(b []byte) error {
			queued = append(queued, string(b))
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sub == nil || conn.subject != "site1.downlink" {
			t.Fatalf("expected a subscription to site1.downlink, got %q", conn.subject)
		}

		conn.handler(&nats.Msg{Subject: "site1.downlink", Data: []byte("one")})
		conn.handler(&nats.Msg{Subject: "site1.downlink", Data: []byte("two"), Reply: "_INBOX.1"})

		if len(queued) != 2 || queued[0] != "one" || queued[1] != "two" {
			t.Errorf("unexpected queue %q", queued)
		}
		expected := published{"_INBOX.1", "ok"}
		if len(conn.published) != 1 || conn.published[0] != expected {
			t.Errorf("expected reply %+v, got %+v", expected, conn.published)
		}
	})

	t.Run("Downlink replies with the enqueue error", func(t *testing.T) {
		conn := &fakeConn{}
		p := NewPublisher(conn, "site1", nil)

		if _, err := p.Downlink(func([]byte) error { return ErrOutboxFull }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		conn.handler(&nats.Msg{Data: []byte("x"), Reply: "_INBOX.2"})

		expected := published{"_INBOX.2", ErrOutboxFull.Error()}
		if len(conn.published) != 1 || conn.published[0] != expected {
			t.Errorf("expected reply %+v, got %+v", expected, conn.published)
		}
	})

	t.Run("Subscribe failure", func(t *testing.T) {
		subErr := errors.New("nats: connection closed")
		p := NewPublisher(&fakeConn{subErr: subErr}, "site1", nil)

		if _, err := p.Downlink(func([]byte) error { return nil }); !errors.Is(err, subErr) {
			t.Errorf("expected the subscribe error, got: %v", err)
		}
	})
}
