package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.String("prescription_number").
			Unique().
			MaxLen(20).
			Comment(`Human-readable "RX<yyyymmdd><seq>"`),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → staffs.id"),

		field.UUID("appointment_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → appointments.id; nil for walk-in prescriptions"),

		field.Text("diagnosis"),

		field.Text("advice").
			Optional().
			Nillable(),

		field.Time("follow_up_date").
			Optional().
			Nillable(),

		field.Time("printed_at").
			Optional().
			Nillable().
			Comment("Set the first time the prescription is printed"),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id", "created_at"),
	}
}

// PrescriptionMedicine is one prescribed line item.
type PrescriptionMedicine struct {
	ent.Schema
}

func (PrescriptionMedicine) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PrescriptionMedicine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("prescription_id", uuid.UUID{}).
			Comment("FK → prescriptions.id"),

		field.String("name").
			MaxLen(255),

		field.String("dosage").
			MaxLen(100).
			Comment(`e.g. "500mg"`),

		field.String("frequency").
			MaxLen(100).
			Comment(`e.g. "1+0+1"`),

		field.String("duration").
			MaxLen(100).
			Comment(`e.g. "7 days"`),

		field.Text("instructions").
			Optional().
			Nillable(),
	}
}

func (PrescriptionMedicine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prescription_id"),
	}
}
