package handler

import (
	"log"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/domain"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/service"
	"github.com/RadhepS/E-Commerce-Platform/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// CurrentUser resolves the session cookie and, when it belongs to a live
// session, stores the user in the request locals. It never blocks the
// request: listing and order handlers decide for themselves whether an
// anonymous caller is acceptable.
func CurrentUser(gate *service.SessionGate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := gate.Resolve(c.Context(), c.Cookies(constant.CookieName))
		if err != nil {
			log.Printf("warn: failed to resolve session: %v", err)
		}
		if user != nil {
			c.Locals(constant.CurrentUserKey, user)
		}

		return c.Next()
	}
}

// UserFromContext returns the user resolved by CurrentUser, or nil for an
// anonymous request.
func UserFromContext(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(constant.CurrentUserKey).(*domain.User)
	return user
}
