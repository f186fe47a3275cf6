package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("phone").
			MaxLen(20).
			Comment("E.164, validated at the service layer"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.String("blood_group").
			Optional().
			Nillable().
			MaxLen(5),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("emergency_contact").
			Optional().
			Nillable().
			MaxLen(20),

		field.Text("medical_notes").
			Optional().
			Nillable(),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone"),
		index.Fields("last_name", "first_name"),
	}
}
