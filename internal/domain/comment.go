package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommentSubject enumerates the categories a comment can be filed under.
type CommentSubject string

const (
	CommentSubjectBug            CommentSubject = "BUG"
	CommentSubjectFeatureRequest CommentSubject = "FEATURE_REQUEST"
	CommentSubjectQuestion       CommentSubject = "QUESTION"
	CommentSubjectFeedback       CommentSubject = "FEEDBACK"
	CommentSubjectSuggestion     CommentSubject = "SUGGESTION"
	CommentSubjectCriticism      CommentSubject = "CRITICISM"
)

// CommentStatus represents moderation states.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
	CommentStatusSpam     CommentStatus = "spam"
)

// Comment is customer feedback owned by the submitting customer.
type Comment struct {
	ID         uuid.UUID
	Subject    CommentSubject
	Content    string
	Status     CommentStatus
	CustomerID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
