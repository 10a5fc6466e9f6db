package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"appointment-engine/internal/pkg/clock"
	"appointment-engine/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrBrokerUnavailable is returned without dialing while a reconnect is in
// progress or the publisher is waiting out its retry delay.
var ErrBrokerUnavailable = errs.New("rabbitmq unavailable")

// Connection is the part of *amqp.Connection the publisher uses.
type Connection interface {
	Channel() (Channel, error)
	IsClosed() bool
	Close() error
}

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type Dialer func(url string) (Connection, error)

// DialWithTimeout bounds the TCP connect and the AMQP handshake by timeout.
func DialWithTimeout(timeout time.Duration) Dialer {
	return func(url string) (Connection, error) {
		conn, err := amqp.DialConfig(url, amqp.Config{
			Dial: amqp.DefaultDial(timeout),
		})
		if err != nil {
			return nil, err
		}
		return amqpConnection{conn}, nil
	}
}

type amqpConnection struct {
	*amqp.Connection
}

func (c amqpConnection) Channel() (Channel, error) {
	return c.Connection.Channel()
}

type Option func(*AMQPPublisher)

func WithDialer(d Dialer) Option {
	return func(p *AMQPPublisher) { p.dial = d }
}

func WithClock(c clock.Clock) Option {
	return func(p *AMQPPublisher) { p.clock = c }
}

// AMQPPublisher sends JSON events to a durable topic exchange, one routing
// key per event name. A failed connect puts it in a cool-down during which
// Publish fails fast instead of dialing again.
type AMQPPublisher struct {
	url        string
	exchange   string
	retryDelay time.Duration
	dial       Dialer
	clock      clock.Clock

	mu      sync.Mutex
	conn    Connection
	ch      Channel
	dialing bool
	retryAt time.Time
	closed  bool
}

func NewAMQPPublisher(url, exchange string, dialTimeout, retryDelay time.Duration, opts ...Option) *AMQPPublisher {
	p := &AMQPPublisher{
		url:        url,
		exchange:   exchange,
		retryDelay: retryDelay,
		dial:       DialWithTimeout(dialTimeout),
		clock:      clock.NewSystem(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// channel never holds the lock while talking to the broker.
func (p *AMQPPublisher) channel() (Channel, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errs.New("publisher closed")
	}
	if p.ch != nil && !p.ch.IsClosed() {
		ch := p.ch
		p.mu.Unlock()
		return ch, nil
	}
	if p.dialing || p.clock.Now().Before(p.retryAt) {
		p.mu.Unlock()
		return nil, ErrBrokerUnavailable
	}
	p.dialing = true
	conn := p.conn
	p.mu.Unlock()

	conn, ch, err := p.connect(conn)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.dialing = false
	if err != nil {
		p.retryAt = p.clock.Now().Add(p.retryDelay)
		return nil, err
	}
	if p.closed {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.New("publisher closed")
	}
	p.conn, p.ch = conn, ch
	p.retryAt = time.Time{}
	return ch, nil
}

func (p *AMQPPublisher) connect(conn Connection) (Connection, Channel, error) {
	if conn == nil || conn.IsClosed() {
		var err error
		conn, err = p.dial(p.url)
		if err != nil {
			return nil, nil, errs.Wrap(err, "rabbitmq dial failed")
		}
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "rabbitmq channel open failed")
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "rabbitmq exchange declare failed")
	}
	return conn, ch, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, name, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.clock.Now().UTC(),
		Type:         name,
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "rabbitmq publish failed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// LogPublisher records events in the log when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, name string, payload any) error {
	slog.Debug("event", "name", name, "payload", payload)
	return nil
}
