package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Drug is a pharmacy inventory item.
type Drug struct {
	ent.Schema
}

func (Drug) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Drug) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255),

		field.String("generic_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("category").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("manufacturer").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("batch_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.Int64("unit_price").
			NonNegative(),

		field.Int("stock_quantity").
			NonNegative().
			Default(0),

		field.Int("reorder_level").
			NonNegative().
			Default(10).
			Comment("Low-stock alert fires when stock_quantity <= reorder_level"),

		field.Time("expiry_date").
			Optional().
			Nillable(),

		field.Bool("active").
			Default(true),
	}
}

func (Drug) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "batch_number").
			Unique(),
		index.Fields("active", "stock_quantity"),
	}
}

// PharmacySale is a point-of-sale transaction at the pharmacy counter.
type PharmacySale struct {
	ent.Schema
}

func (PharmacySale) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PharmacySale) Fields() []ent.Field {
	return []ent.Field{
		field.String("sale_number").
			Unique().
			MaxLen(20).
			Comment(`Human-readable "PH<yyyymmdd><seq>"`),

		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → patients.id; nil for walk-in customers"),

		field.UUID("prescription_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → prescriptions.id"),

		field.Int64("total_amount").
			NonNegative(),

		field.Int64("amount_paid").
			NonNegative().
			Default(0),

		field.UUID("sold_by", uuid.UUID{}).
			Comment("FK → staffs.id"),
	}
}

func (PharmacySale) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("patient_id"),
	}
}

// SaleItem is one drug line within a pharmacy sale.
type SaleItem struct {
	ent.Schema
}

func (SaleItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (SaleItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("sale_id", uuid.UUID{}).
			Comment("FK → pharmacy_sales.id"),

		field.UUID("drug_id", uuid.UUID{}).
			Comment("FK → drugs.id"),

		field.Int("quantity").
			Positive(),

		field.Int64("unit_price").
			NonNegative().
			Comment("Snapshotted at sale time"),

		field.Int64("subtotal").
			NonNegative(),
	}
}

func (SaleItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sale_id"),
		index.Fields("drug_id"),
	}
}

// StockAdjustment is an append-only audit record of every stock mutation.
type StockAdjustment struct {
	ent.Schema
}

func (StockAdjustment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (StockAdjustment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("drug_id", uuid.UUID{}).
			Comment("FK → drugs.id"),

		field.Int("delta").
			Comment("Signed quantity change; negative for sales and write-offs"),

		field.Enum("reason").
			Values("purchase", "sale", "expired", "damaged", "correction"),

		field.Text("note").
			Optional().
			Nillable(),

		field.UUID("adjusted_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → staffs.id; nil when applied by the sale path"),
	}
}

func (StockAdjustment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("drug_id", "created_at"),
	}
}
