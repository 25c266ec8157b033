package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/moloke/lightverse/internal/platform/twilio"
)

// SentMessage is one message captured by MockMessageSender.
type SentMessage struct {
	To   string
	Body string
}

// MockMessageSender implements twilio.MessageSender for testing.
// It records every message so tests can assert on outbound SMS traffic.
type MockMessageSender struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, to, body string) (*twilio.SendResult, error)

	// Err is returned by default when SendFn isn't defined
	Err error

	mu   sync.Mutex
	sent []SentMessage
	seq  int
}

var _ twilio.MessageSender = (*MockMessageSender)(nil)

// Send implements the twilio.MessageSender interface
func (m *MockMessageSender) Send(ctx context.Context, to, body string) (*twilio.SendResult, error) {
	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{To: to, Body: body})
	m.seq++
	sid := fmt.Sprintf("SMmock%04d", m.seq)
	m.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, to, body)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return &twilio.SendResult{SID: sid, Status: "queued"}, nil
}

// Sent returns a copy of all captured messages in send order.
func (m *MockMessageSender) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}
