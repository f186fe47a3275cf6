package notify

import "context"

type nopNotifier struct{}

// NewNop returns a Notifier that drops every event. Used in tests and in
// one-shot CLI commands that have no NATS connection.
func NewNop() Notifier {
	return nopNotifier{}
}

func (nopNotifier) QueueCalled(ctx context.Context, ev QueueCalledEvent) {}
func (nopNotifier) QueueBooked(ctx context.Context, ev QueueBookedEvent) {}
func (nopNotifier) LowStock(ctx context.Context, ev LowStockEvent)       {}
