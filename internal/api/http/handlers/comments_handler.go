package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/rental-crm/internal/api/dto"
	"github.com/spec-kit/rental-crm/internal/auth"
	"github.com/spec-kit/rental-crm/internal/domain"
	"github.com/spec-kit/rental-crm/internal/repository"
	apperrors "github.com/spec-kit/rental-crm/pkg/util"
)

// CommentsHandler exposes comment CRUD. A customer operates only on its own
// comments; moderation state changes are admin operations.
type CommentsHandler struct {
	comments repository.CommentRepository
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(comments repository.CommentRepository) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// Create handles POST /comments/. For customer callers the owning customer
// is always the caller; admins may file a comment for any customer.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Subject == "" || req.Content == "" {
		return apperrors.NewValidationError("subject and content required", nil)
	}

	var customerID uuid.UUID
	if principal.Role == domain.RoleCustomer {
		customerID, err = principal.SubjectUUID()
		if err != nil {
			return apperrors.NewUnauthorized("invalid subject")
		}
	} else {
		customerID, err = uuid.Parse(req.CustomerID)
		if err != nil {
			return apperrors.NewValidationError("invalid customer_id", map[string]any{"customer_id": req.CustomerID})
		}
	}

	comment := &domain.Comment{
		Subject:    domain.CommentSubject(req.Subject),
		Content:    req.Content,
		Status:     domain.CommentStatusPending,
		CustomerID: customerID,
	}
	if err := h.comments.Create(c.UserContext(), comment); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCommentResponse(comment))
}

// List handles GET /comments/. Customer results are narrowed to the
// caller's own rows before pagination.
func (h *CommentsHandler) List(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	owner, err := customerOwner(principal)
	if err != nil {
		return err
	}

	limit, offset := pageParams(c)
	comments, err := h.comments.List(c.UserContext(), owner, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCommentResponses(comments))
}

// Get handles GET /comments/:id.
func (h *CommentsHandler) Get(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.comments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, comment.CustomerID); err != nil {
		return err
	}
	return c.JSON(dto.NewCommentResponse(comment))
}

// Update handles PATCH /comments/:id. Owners may edit subject and content;
// the moderation status is reserved to admins.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comment, err := h.comments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, comment.CustomerID); err != nil {
		return err
	}
	if req.Status != nil && !principal.Role.IsAdmin() {
		return apperrors.NewForbidden("only admins may change comment status")
	}

	if req.Subject != nil {
		comment.Subject = domain.CommentSubject(*req.Subject)
	}
	if req.Content != nil {
		comment.Content = *req.Content
	}
	if req.Status != nil {
		comment.Status = domain.CommentStatus(*req.Status)
	}

	if err := h.comments.Update(c.UserContext(), comment); err != nil {
		return err
	}
	return c.JSON(dto.NewCommentResponse(comment))
}

// Delete handles DELETE /comments/:id.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.comments.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if err := auth.RequireCustomerOwnership(principal, comment.CustomerID); err != nil {
		return err
	}

	if err := h.comments.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Search handles GET /comments/search/. Customer searches are narrowed to
// the caller's own rows regardless of supplied predicates.
func (h *CommentsHandler) Search(c *fiber.Ctx) error {
	principal, err := mustPrincipal(c)
	if err != nil {
		return err
	}
	owner, err := customerOwner(principal)
	if err != nil {
		return err
	}

	var req dto.CommentSearchRequest
	if err := c.QueryParser(&req); err != nil {
		return apperrors.NewValidationError("invalid query parameters", nil)
	}
	comb, err := repository.ParseCombinator(req.Operator)
	if err != nil {
		return err
	}

	var preds []repository.Predicate
	for _, p := range []struct {
		col string
		val *string
	}{
		{"subject", req.Subject},
		{"status", req.Status},
		{"customer_id", req.CustomerID},
	} {
		if p.val != nil {
			preds = append(preds, repository.Eq(p.col, *p.val))
		}
	}

	limit, offset := pageParams(c)
	comments, err := h.comments.Search(c.UserContext(), comb, preds, owner, limit, offset)
	if err != nil {
		return err
	}
	if len(comments) == 0 {
		return apperrors.NewNotFound("comment")
	}
	return c.JSON(dto.NewCommentResponses(comments))
}
