package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a public announcement authored by an administrator.
type Post struct {
	ID        uuid.UUID
	Thumbnail *string
	Subject   string
	Content   string
	AdminID   uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
