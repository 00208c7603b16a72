// Package messaging composes and sends inbox messages through a session's
// messaging channel.
package messaging

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"verigo/contracts/message"
	"verigo/contracts/network"
	"verigo/internal/platform/tracer"
	dErrors "verigo/pkg/domain-errors"
)

// Messenger sends inbox messages for one session. The messaging channel is
// established lazily from the session's context on first send, cached for
// the rest of the session, and dropped on Reset so it cannot outlive a
// logout.
type Messenger struct {
	recipientContextName string
	logger               *slog.Logger
	tracer               tracer.Tracer

	mu      sync.Mutex
	channel network.Messaging
	group   singleflight.Group
}

// Option configures the Messenger.
type Option func(*Messenger)

// WithLogger sets the logger for the messenger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Messenger) {
		m.logger = l
	}
}

// WithTracer sets the tracer for the messenger.
func WithTracer(t tracer.Tracer) Option {
	return func(m *Messenger) {
		m.tracer = t
	}
}

// NewMessenger creates a messenger. recipientContextName labels the context
// the recipient reads its inbox from.
func NewMessenger(recipientContextName string, opts ...Option) *Messenger {
	m := &Messenger{
		recipientContextName: recipientContextName,
		tracer:               tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Send composes a dataSend envelope around payload and delivers it to did
// through netCtx's messaging channel. The subject line is derived from the
// payload's firstName. Transport failures map to message_delivery_failed;
// a missing context maps to no_active_session.
func (m *Messenger) Send(ctx context.Context, netCtx network.Context, did string, payload message.Payload) error {
	if did == "" {
		return dErrors.New(dErrors.CodeNoActiveSession, "sending requires a connected session")
	}

	ctx, span := m.tracer.Start(ctx, tracer.SpanMessageSend,
		tracer.String(tracer.AttrDID, tracer.HashDID(did)),
	)
	err := m.send(ctx, netCtx, did, payload)
	span.End(err)
	return err
}

func (m *Messenger) send(ctx context.Context, netCtx network.Context, did string, payload message.Payload) error {
	channel, err := m.channelFor(ctx, netCtx)
	if err != nil {
		return err
	}

	env := message.Envelope{
		ID:      uuid.NewString(),
		Type:    message.TypeDataSend,
		Data:    message.Data{Data: []message.Payload{payload}},
		Subject: "New Contact: " + payload.FirstName(),
		Config: message.Config{
			DID:                  did,
			RecipientContextName: m.recipientContextName,
		},
	}

	if err := channel.Send(ctx, did, env); err != nil {
		return dErrors.Wrap(err, dErrors.CodeMessageDelivery, "message send failed")
	}

	if m.logger != nil {
		m.logger.InfoContext(ctx, "message sent",
			"message_id", env.ID,
			"type", env.Type,
			"recipient_context", env.Config.RecipientContextName,
		)
	}
	return nil
}

// channelFor returns the cached channel, creating and caching it from the
// active context on first use. Concurrent first sends share one
// initialization.
func (m *Messenger) channelFor(ctx context.Context, netCtx network.Context) (network.Messaging, error) {
	m.mu.Lock()
	channel := m.channel
	m.mu.Unlock()
	if channel != nil {
		return channel, nil
	}

	if netCtx == nil {
		return nil, dErrors.New(dErrors.CodeNoActiveSession, "no app context")
	}

	v, err, _ := m.group.Do("channel", func() (any, error) {
		m.mu.Lock()
		cached := m.channel
		m.mu.Unlock()
		if cached != nil {
			return cached, nil
		}
		created, err := netCtx.Messaging(ctx)
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.channel = created
		m.mu.Unlock()
		return created, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeMessageDelivery, "establishing messaging channel failed")
	}
	return v.(network.Messaging), nil
}

// Reset drops the cached channel. Called on logout; a later session starts
// from a fresh channel even when it connects as a different account.
func (m *Messenger) Reset() {
	m.mu.Lock()
	m.channel = nil
	m.mu.Unlock()
	m.group.Forget("channel")
}
