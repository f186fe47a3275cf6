package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/niramoy/niramoy_backend/pkg/authorize"
	pasetotoken "github.com/niramoy/niramoy_backend/pkg/paseto"
)

// RequirePermission checks that the authenticated staff member may perform
// the action on the resource. The enforcement domain is derived from the
// resource: platform resources live in sys, everything else in hospital.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		domain := authorize.DomainForResource(resource)
		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
