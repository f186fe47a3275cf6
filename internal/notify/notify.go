// Package notify decouples domain services from the event transport.
// Services publish structured events through the Notifier interface; the
// NATS implementation is wired in at startup and delivery is best-effort.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subjects. Display monitors and the worker layer subscribe to these.
const (
	SubjectQueueCalled      = "niramoy.queue.called"
	SubjectQueueBooked      = "niramoy.queue.booked"
	SubjectPharmacyLowStock = "niramoy.pharmacy.low_stock"
)

// QueueCalledEvent is broadcast to display monitors on every successful
// call-next. Fields mirror what the waiting-room screen renders.
type QueueCalledEvent struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	PatientName   string    `json:"patient_name"`
	SerialNumber  int       `json:"serial_number"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	DoctorName    string    `json:"doctor_name"`
	RoomNumber    string    `json:"room_number,omitempty"`
	CalledAt      time.Time `json:"called_at"`
}

type QueueBookedEvent struct {
	AppointmentID     uuid.UUID `json:"appointment_id"`
	AppointmentNumber string    `json:"appointment_number"`
	DoctorID          uuid.UUID `json:"doctor_id"`
	AppointmentDate   time.Time `json:"appointment_date"`
	SerialNumber      int       `json:"serial_number"`
}

type LowStockEvent struct {
	DrugID        uuid.UUID `json:"drug_id"`
	DrugName      string    `json:"drug_name"`
	StockQuantity int       `json:"stock_quantity"`
	ReorderLevel  int       `json:"reorder_level"`
}

// Notifier publishes domain events. Implementations must be fire-and-forget:
// a failed publish is logged by the implementation and never returned to the
// caller, so a committed state change is never rolled back over delivery.
type Notifier interface {
	QueueCalled(ctx context.Context, ev QueueCalledEvent)
	QueueBooked(ctx context.Context, ev QueueBookedEvent)
	LowStock(ctx context.Context, ev LowStockEvent)
}
