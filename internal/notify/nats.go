package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

type natsNotifier struct {
	nc *nats.Conn
}

// NewNATS returns a Notifier backed by a NATS connection.
func NewNATS(nc *nats.Conn) Notifier {
	return &natsNotifier{nc: nc}
}

func (n *natsNotifier) QueueCalled(ctx context.Context, ev QueueCalledEvent) {
	n.publish(SubjectQueueCalled, ev)
}

func (n *natsNotifier) QueueBooked(ctx context.Context, ev QueueBookedEvent) {
	n.publish(SubjectQueueBooked, ev)
}

func (n *natsNotifier) LowStock(ctx context.Context, ev LowStockEvent) {
	n.publish(SubjectPharmacyLowStock, ev)
}

func (n *natsNotifier) publish(subject string, ev any) {
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Warn("notify: marshal event failed", "subject", subject, "err", err)
		return
	}
	if err := n.nc.Publish(subject, data); err != nil {
		slog.Warn("notify: publish failed", "subject", subject, "err", err)
	}
}
