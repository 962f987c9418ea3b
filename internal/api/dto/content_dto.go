package dto

import (
	"time"

	"github.com/spec-kit/rental-crm/internal/domain"
)

// CreateCommentRequest payload. Customers create comments against their own
// account; the customer id is taken from the session, never the body.
type CreateCommentRequest struct {
	Subject    string `json:"subject"`
	Content    string `json:"content"`
	CustomerID string `json:"customer_id"`
}

// UpdateCommentRequest payload; absent fields are left unchanged.
type UpdateCommentRequest struct {
	Subject *string `json:"subject"`
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// CommentResponse response.
type CommentResponse struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	CustomerID string     `json:"customer_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// NewCommentResponse maps the domain entity.
func NewCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID.String(),
		Subject:    string(c.Subject),
		Content:    c.Content,
		Status:     string(c.Status),
		CustomerID: c.CustomerID.String(),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// NewCommentResponses maps a slice of domain entities.
func NewCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = NewCommentResponse(&comments[i])
	}
	return out
}

// CreatePostRequest payload. The author is the authenticated admin.
type CreatePostRequest struct {
	Thumbnail *string `json:"thumbnail"`
	Subject   string  `json:"subject"`
	Content   string  `json:"content"`
}

// UpdatePostRequest payload; absent fields are left unchanged.
type UpdatePostRequest struct {
	Thumbnail *string `json:"thumbnail"`
	Subject   *string `json:"subject"`
	Content   *string `json:"content"`
}

// PostResponse response.
type PostResponse struct {
	ID        string     `json:"id"`
	Thumbnail *string    `json:"thumbnail"`
	Subject   string     `json:"subject"`
	Content   string     `json:"content"`
	AdminID   string     `json:"admin_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// NewPostResponse maps the domain entity.
func NewPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		Thumbnail: p.Thumbnail,
		Subject:   p.Subject,
		Content:   p.Content,
		AdminID:   p.AdminID.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPostResponses maps a slice of domain entities.
func NewPostResponses(posts []domain.Post) []PostResponse {
	out := make([]PostResponse, len(posts))
	for i := range posts {
		out[i] = NewPostResponse(&posts[i])
	}
	return out
}
