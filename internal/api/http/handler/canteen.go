package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/niramoy/niramoy_backend/internal/service/canteen"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

type CanteenHandler struct {
	svc canteen.Service
}

func NewCanteenHandler(svc canteen.Service) *CanteenHandler {
	return &CanteenHandler{svc: svc}
}

func mapCanteenError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, canteen.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, canteen.ErrSaleNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, canteen.ErrNoItems):
		return badRequest(c, err.Error())
	case errors.Is(err, canteen.ErrItemUnavailable):
		return conflict(c, err.Error())
	case errors.Is(err, canteen.ErrNumberExhausted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /canteen/items
func (h *CanteenHandler) CreateItem(c fiber.Ctx) error {
	var body struct {
		Name     string  `json:"name"`
		Category *string `json:"category"`
		Price    int64   `json:"price"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}
	if body.Price <= 0 {
		return badRequest(c, "price must be positive")
	}

	item, err := h.svc.CreateItem(c.Context(), canteen.CreateItemRequest{
		Name:     body.Name,
		Category: body.Category,
		Price:    body.Price,
	})
	if err != nil {
		return mapCanteenError(c, err)
	}
	return created(c, item)
}

// GET /canteen/items?available_only=true
func (h *CanteenHandler) ListItems(c fiber.Ctx) error {
	availableOnly := c.Query("available_only", "true") != "false"

	items, err := h.svc.ListItems(c.Context(), availableOnly)
	if err != nil {
		return mapCanteenError(c, err)
	}
	return ok(c, items)
}

// PATCH /canteen/items/:id/availability
func (h *CanteenHandler) SetAvailability(c fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Available bool `json:"available"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.SetAvailability(c.Context(), itemID, body.Available); err != nil {
		return mapCanteenError(c, err)
	}
	return noContent(c)
}

// POST /canteen/sales
func (h *CanteenHandler) Sell(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Items []struct {
			ItemID   string `json:"item_id"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := canteen.SellRequest{SoldBy: claims.UserID}
	for _, item := range body.Items {
		id, err := uuid.Parse(item.ItemID)
		if err != nil {
			return badRequest(c, "invalid item_id: "+item.ItemID)
		}
		if item.Quantity < 1 {
			return badRequest(c, "quantity must be positive")
		}
		req.Items = append(req.Items, canteen.SaleLine{ItemID: id, Quantity: item.Quantity})
	}

	detail, err := h.svc.Sell(c.Context(), req)
	if err != nil {
		return mapCanteenError(c, err)
	}
	return created(c, detail)
}

// GET /canteen/sales
func (h *CanteenHandler) ListSales(c fiber.Ctx) error {
	var q struct {
		From    string `query:"from"`
		To      string `query:"to"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	var from, to *time.Time
	if q.From != "" {
		if t, err := parseDate(q.From); err == nil {
			from = &t
		}
	}
	if q.To != "" {
		if t, err := parseDate(q.To); err == nil {
			to = &t
		}
	}

	sales, err := h.svc.ListSales(c.Context(), from, to, q.Page, q.PerPage)
	if err != nil {
		return mapCanteenError(c, err)
	}
	return ok(c, sales)
}
