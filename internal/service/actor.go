package service

import (
	"time"

	"forum/internal/models"

	"github.com/google/uuid"
)

// Actor is the authenticated identity behind a request, taken from the
// verified token claims.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     models.RoleName
}

// CanModerate is the author-or-admin rule shared by post and comment
// deletion.
func (a Actor) CanModerate(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.Role.IsAdmin()
}

// IsAuthor gates edits, which stay with the author even against admins.
func (a Actor) IsAuthor(ownerID uuid.UUID) bool {
	return a.ID == ownerID
}

// today stamps records with date precision, matching the DATE columns.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
