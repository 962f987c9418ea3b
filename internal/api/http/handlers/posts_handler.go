package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// PostsHandler exposes announcement posts. Reads are public; writes belong
// to admins, and a general admin may only edit its own posts.
type PostsHandler struct {
	posts repository.PostRepository
}

// NewPostsHandler constructs handler.
func NewPostsHandler(posts repository.PostRepository) *PostsHandler {
	return &PostsHandler{posts: posts}
}

// Create handles POST /posts/. The author is the authenticated admin.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	adminID, err := principal.SubjectUUID()
	if err != nil {
		return apperrors.NewUnauthorized("invalid subject")
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Subject == "" || req.Content == "" {
		return apperrors.NewValidationError("subject and content required", nil)
	}

	post := &domain.Post{
		Thumbnail: req.Thumbnail,
		Subject:   req.Subject,
		Content:   req.Content,
		AdminID:   adminID,
	}
	if err := h.posts.Create(c.UserContext(), post); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPostResponse(post))
}

// List handles GET /posts/.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	posts, err := h.posts.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponses(posts))
}

// Get handles GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	post, err := h.posts.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponse(post))
}

// Update handles PATCH /posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	post, err := h.posts.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := requirePostAuthor(principal, post); err != nil {
		return err
	}

	if req.Thumbnail != nil {
		post.Thumbnail = req.Thumbnail
	}
	if req.Subject != nil {
		post.Subject = *req.Subject
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if err := h.posts.Update(c.UserContext(), post); err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponse(post))
}

// Delete handles DELETE /posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	post, err := h.posts.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := requirePostAuthor(principal, post); err != nil {
		return err
	}

	if err := h.posts.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /posts/search/.
func (h *PostsHandler) Search(c *fiber.Ctx) error {
	var req dto.PostSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return apperrors.NewValidationError("invalid query parameters", nil)
	}
	comb, err := repository.ParseCombinator(req.Operator)
	if err != nil {
		return err
	}

	var preds []repository.Predicate
	if req.Subject != nil {
		preds = append(preds, repository.Eq("subject", *req.Subject))
	}
	if req.AdminID != nil {
		preds = append(preds, repository.Eq("admin_id", *req.AdminID))
	}

	limit, offset := pageParams(c)
	posts, err := h.posts.Search(c.UserContext(), comb, preds, limit, offset)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return apperrors.NewNotFound("post")
	}
	return c.JSON(dto.NewPostResponses(posts))
}

// requirePostAuthor lets super admins touch any post, general admins only
// their own.
func requirePostAuthor(principal *auth.Principal, post *domain.Post) error {
	if principal.Role != domain.RoleGeneralAdmin {
		return nil
	}
	subject, err := principal.SubjectUUID()
	if err != nil || subject != post.AdminID {
		return apperrors.NewForbidden("general admins may only modify their own posts")
	}
	return nil
}
