package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Income is an append-only revenue record. Department sale paths write one
// row per settled payment; the finance dashboard only ever sums them.
type Income struct {
	ent.Schema
}

func (Income) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Income) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("source").
			Values("appointment", "lab", "pharmacy", "canteen", "other"),

		field.Int64("amount").
			Positive().
			Comment("In Taka"),

		field.Text("description").
			Optional().
			Nillable(),

		field.UUID("reference_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("ID of the originating appointment/order/sale, if any"),

		field.UUID("received_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id"),

		field.Time("received_at").
			Comment("Business date of the payment, not the row insert time"),
	}
}

func (Income) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "received_at"),
		index.Fields("received_at"),
	}
}

// Expense is an append-only cost record.
type Expense struct {
	ent.Schema
}

func (Expense) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Expense) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("expense_type").
			Values("salary", "utility", "supplies", "maintenance", "other"),

		field.Int64("amount").
			Positive(),

		field.Text("description").
			Optional().
			Nillable(),

		field.UUID("recorded_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id"),

		field.Time("incurred_at").
			Comment("Business date of the cost"),
	}
}

func (Expense) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expense_type", "incurred_at"),
		index.Fields("incurred_at"),
	}
}

// PCTransaction records a referral commission split: the referring party's
// cut is an expense, the house's share counts toward net income.
type PCTransaction struct {
	ent.Schema
}

func (PCTransaction) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PCTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("referrer_id", uuid.UUID{}).
			Comment("FK → staffs.id, the commission payee"),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → patients.id"),

		field.Int64("total_amount").
			Positive().
			Comment("Gross referred amount"),

		field.Int64("commission_amount").
			NonNegative().
			Comment("Paid out to the referrer; an expense in aggregation"),

		field.Int64("admin_share").
			NonNegative().
			Comment("Retained by the hospital; added to net income"),

		field.Text("description").
			Optional().
			Nillable(),

		field.Time("occurred_at").
			Comment("Business date of the referral"),
	}
}

func (PCTransaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("occurred_at"),
		index.Fields("referrer_id", "occurred_at"),
	}
}
