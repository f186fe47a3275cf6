package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is one patient-doctor encounter on a calendar date.
// The serial number is the patient's position in the doctor's daily queue;
// it is assigned once at booking and never reused, even after cancellation.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("appointment_number").
			Unique().
			MaxLen(20).
			Comment(`Human-readable "APT<yyyymmdd><seq>"`),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → staffs.id"),

		field.Time("appointment_date").
			Comment("Calendar date, midnight local time"),

		field.Int("serial_number").
			Positive().
			Comment("1-based rank within (doctor, date), immutable"),

		field.Enum("status").
			Values("waiting", "called", "in_progress", "completed", "cancelled", "no_show").
			Default("waiting"),

		field.Text("reason").
			Optional().
			Nillable(),

		field.String("room_number").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("Snapshotted from the doctor's schedule at booking"),

		field.Int64("total_amount").
			Default(0).
			Comment("Consultation fee in Taka, snapshotted at booking"),

		field.Int64("amount_paid").
			NonNegative().
			Default(0),

		field.Time("checked_in_at").
			Optional().
			Nillable(),

		field.Time("called_at").
			Optional().
			Nillable(),

		field.Time("started_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Time("cancelled_at").
			Optional().
			Nillable(),

		field.Time("no_show_at").
			Optional().
			Nillable(),

		field.Text("cancellation_reason").
			Optional().
			Nillable(),

		field.UUID("created_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id; nil for public self-booking"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		// The correctness-critical constraint: two concurrent bookings for
		// the same (doctor, date) must never share a serial number.
		index.Fields("doctor_id", "appointment_date", "serial_number").
			Unique(),
		index.Fields("doctor_id", "appointment_date", "status"),
		index.Fields("patient_id", "status"),
	}
}
