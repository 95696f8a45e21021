package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups a user's expenses. Names are unique per owner, not globally;
// color and icon are optional display hints for clients.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Color     *string
	Icon      *string
	CreatedAt time.Time
}
