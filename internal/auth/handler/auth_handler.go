package handler

import (
	"time"

	"github.com/RadhepS/E-Commerce-Platform/internal/auth/dto"
	"github.com/RadhepS/E-Commerce-Platform/internal/auth/service"
	"github.com/RadhepS/E-Commerce-Platform/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	cookieSecure bool
}

func NewAuthHandler(userService *service.UserService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{userService: userService, cookieSecure: cookieSecure}
}

// Register creates an address and a linked user profile. The response never
// includes the password hash, and no session cookie is set; the client is
// expected to log in afterwards. Client failures answer 404 with a short
// message, matching the behavior the marketplace front end is built against.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	user, address, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "successfully created the user",
		"user":    dto.NewUserOutput(user, address),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid input",
		})
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     constant.CookieName,
		Value:    result.Token,
		MaxAge:   constant.CookieMaxAgeSecond,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "cookie-set",
		"user":    result.User,
	})
}

// Status reports whether the request carries a live session. It always
// answers 200; a missing or stale cookie is a normal unauthenticated
// outcome, not an error.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	status := h.userService.Status(c.Context(), c.Cookies(constant.CookieName))

	return c.Status(fiber.StatusOK).JSON(status)
}

// Logout clears the session cookie if the request carried a live session.
// It is idempotent and always answers 200.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if h.userService.Logout(c.Context(), c.Cookies(constant.CookieName)) {
		c.Cookie(&fiber.Cookie{
			Name:     constant.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   h.cookieSecure,
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Remove(c *fiber.Ctx) error {
	_, err := h.userService.Remove(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "successfully deleted",
	})
}
