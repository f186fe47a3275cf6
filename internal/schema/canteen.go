package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// CanteenItem is a menu entry sold at the hospital canteen.
type CanteenItem struct {
	ent.Schema
}

func (CanteenItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CanteenItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			MaxLen(255),

		field.String("category").
			Optional().
			Nillable().
			MaxLen(100),

		field.Int64("price").
			NonNegative(),

		field.Bool("available").
			Default(true),
	}
}

// CanteenSale is a point-of-sale transaction at the canteen counter.
type CanteenSale struct {
	ent.Schema
}

func (CanteenSale) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (CanteenSale) Fields() []ent.Field {
	return []ent.Field{
		field.String("sale_number").
			Unique().
			MaxLen(20).
			Comment(`Human-readable "CN<yyyymmdd><seq>"`),

		field.Int64("total_amount").
			NonNegative(),

		field.Int64("amount_paid").
			NonNegative().
			Default(0),

		field.UUID("sold_by", uuid.UUID{}).
			Comment("FK → staffs.id"),
	}
}

func (CanteenSale) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}

// CanteenSaleItem is one menu line within a canteen sale.
type CanteenSaleItem struct {
	ent.Schema
}

func (CanteenSaleItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (CanteenSaleItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("sale_id", uuid.UUID{}).
			Comment("FK → canteen_sales.id"),

		field.UUID("item_id", uuid.UUID{}).
			Comment("FK → canteen_items.id"),

		field.Int("quantity").
			Positive(),

		field.Int64("unit_price").
			NonNegative().
			Comment("Snapshotted at sale time"),

		field.Int64("subtotal").
			NonNegative(),
	}
}

func (CanteenSaleItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sale_id"),
	}
}
