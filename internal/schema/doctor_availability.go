package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorAvailability is a date-specific override of the weekly schedule
// (a leave day, or an extra day the doctor opted in).
type DoctorAvailability struct {
	ent.Schema
}

func (DoctorAvailability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorAvailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → staffs.id"),

		field.Time("date").
			Comment("Calendar date, midnight local time"),

		field.Bool("available").
			Default(false),

		field.String("reason").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (DoctorAvailability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "date").
			Unique(),
	}
}
