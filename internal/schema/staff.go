package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Staff is a hospital employee account. Doctors are staff with role "doctor"
// and carry the consultation fields; everyone else leaves them empty.
type Staff struct {
	ent.Schema
}

func (Staff) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Staff) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("phone").
			Unique().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Bool("must_change_password").
			Default(true),

		field.Enum("role").
			Values("admin", "doctor", "receptionist", "lab_tech", "pharmacist", "canteen_staff", "display"),

		field.String("specialization").
			Optional().
			Nillable().
			MaxLen(120).
			Comment("Doctors only"),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(60).
			Comment("Doctors only, BMDC registration"),

		field.Int64("consultation_fee").
			Default(0).
			Comment("Doctors only, in Taka"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (Staff) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role", "status"),
	}
}
