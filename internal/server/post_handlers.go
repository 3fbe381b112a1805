package server

import (
	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPosts handles GET /api/posts. Each post carries an owner
// projection of id, username and name.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/posts. The owner is the account resolved
// by the auth pipeline; an ownerId in the body is ignored.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	owner := middleware.AccountFromLocals(c)
	if owner == nil {
		return models.NewUnauthenticatedError("token invalid")
	}

	post, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}, owner.ID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. Only supplied fields are
// replaced; the owner is never checked or changed. An unknown id
// yields a JSON null body, not an error.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Title  *string `json:"title"`
		Author *string `json:"author"`
		URL    *string `json:"url"`
		Likes  *int    `json:"likes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.NewValidationError("invalid request body")
	}

	post, err := s.postService.Update(c.UserContext(), id, service.UpdatePostInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		return err
	}
	if post == nil {
		return c.JSON(nil)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Removal is unconditional:
// there is no ownership check and deleting an unknown id still answers
// 204.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := s.postService.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
