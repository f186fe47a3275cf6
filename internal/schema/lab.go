package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LabTest is a catalog entry: a test the lab offers at a fixed price.
type LabTest struct {
	ent.Schema
}

func (LabTest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LabTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(255),

		field.String("code").
			Unique().
			MaxLen(20),

		field.Int64("price").
			NonNegative(),

		field.String("category").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("sample_type").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("normal_range").
			Optional().
			Nillable().
			MaxLen(255),

		field.Bool("active").
			Default(true),
	}
}

// LabOrder is a billed set of tests ordered for a patient.
type LabOrder struct {
	ent.Schema
}

func (LabOrder) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LabOrder) Fields() []ent.Field {
	return []ent.Field{
		field.String("order_number").
			Unique().
			MaxLen(20).
			Comment(`Human-readable "LAB<yyyymmdd><seq>"`),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("ordered_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id; nil for externally referred orders"),

		field.UUID("prescription_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → prescriptions.id"),

		field.Enum("status").
			Values("ordered", "sample_collected", "in_progress", "completed", "verified", "cancelled").
			Default("ordered"),

		field.Int64("total_amount").
			NonNegative().
			Default(0),

		field.Int64("amount_paid").
			NonNegative().
			Default(0),

		field.Time("sample_collected_at").
			Optional().
			Nillable(),

		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (LabOrder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("status", "created_at"),
	}
}

// LabResult is one test's result within an order.
type LabResult struct {
	ent.Schema
}

func (LabResult) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LabResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("order_id", uuid.UUID{}).
			Comment("FK → lab_orders.id"),

		field.UUID("test_id", uuid.UUID{}).
			Comment("FK → lab_tests.id"),

		field.Int64("price").
			NonNegative().
			Comment("Snapshotted from the catalog at order time"),

		field.Text("result_value").
			Optional().
			Nillable(),

		field.String("unit").
			Optional().
			Nillable().
			MaxLen(50),

		field.Bool("abnormal").
			Default(false),

		field.Enum("status").
			Values("pending", "completed", "verified").
			Default("pending"),

		field.UUID("entered_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id"),

		field.UUID("verified_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id"),

		field.Time("verified_at").
			Optional().
			Nillable(),
	}
}

func (LabResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("order_id", "test_id").
			Unique(),
	}
}
