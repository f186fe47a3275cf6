package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorSchedule is a recurring weekly consultation window for one doctor.
type DoctorSchedule struct {
	ent.Schema
}

func (DoctorSchedule) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorSchedule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → staffs.id"),

		field.Int("weekday").
			Min(0).
			Max(6).
			Comment("0=Sunday .. 6=Saturday, matching time.Weekday"),

		field.String("start_time").
			MaxLen(5).
			Comment(`Local wall clock "15:04"`),

		field.String("end_time").
			MaxLen(5),

		field.Int("max_patients").
			Positive().
			Default(20),

		field.Int("consultation_minutes").
			Positive().
			Default(15),

		field.String("room_number").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("active").
			Default(true),
	}
}

func (DoctorSchedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "weekday", "start_time").
			Unique(),
		index.Fields("doctor_id", "active"),
	}
}
