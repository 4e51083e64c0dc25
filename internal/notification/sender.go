package notification

import (
	"context"
	"log"
)

// Result mirrors the transport outcome: either a provider message SID or
// an error description. Send failures are never fatal for the caller.
type Result struct {
	Success bool
	SID     string
	Err     string
}

// Sender delivers one SMS. Kept as an interface so the transport can be
// swapped (provider change, console sender in dev, fakes in tests).
type Sender interface {
	Send(ctx context.Context, to string, body string) Result
}

// ConsoleSender logs instead of sending. Used when no Twilio credentials
// are configured.
type ConsoleSender struct{}

func (ConsoleSender) Send(_ context.Context, to string, body string) Result {
	log.Printf("[sms] to=%s body=%q (console sender, not delivered)", to, body)
	return Result{Success: true}
}
