package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/internal/api/http/handler"
	"github.com/niramoy/niramoy_backend/pkg/authorize"
)

func (r *Router) registerFinanceRoutes(
	api fiber.Router,
	fh *handler.FinanceHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	group := api.Group("/finance", authRequired)

	group.Get("/summary", requirePerm(authorize.ResourceFinanceReport, authorize.ActionRead), fh.Summary)
	group.Get("/outstanding", requirePerm(authorize.ResourceFinanceReport, authorize.ActionRead), fh.Outstanding)

	group.Get("/income", requirePerm(authorize.ResourceIncome, authorize.ActionList), fh.ListIncome)
	group.Post("/income", requirePerm(authorize.ResourceIncome, authorize.ActionCreate), fh.RecordIncome)

	group.Get("/expenses", requirePerm(authorize.ResourceExpense, authorize.ActionList), fh.ListExpenses)
	group.Post("/expenses", requirePerm(authorize.ResourceExpense, authorize.ActionCreate), fh.RecordExpense)

	group.Post("/pc-transactions", requirePerm(authorize.ResourcePCTransaction, authorize.ActionCreate), fh.RecordPCTransaction)
}
