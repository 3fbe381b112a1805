package server

import (
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListAccounts handles GET /api/accounts. The password hash is never
// part of the representation.
func (s *Server) ListAccounts(c *fiber.Ctx) error {
	accounts, err := s.accountService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(accounts)
}

// RegisterAccount handles POST /api/accounts.
func (s *Server) RegisterAccount(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	account, err := s.accountService.Register(c.UserContext(), req.Username, req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(account)
}

// Login handles POST /api/login and issues a bearer token.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	token, account, err := s.accountService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"token":    token,
		"username": account.Username,
		"name":     account.Name,
	})
}
