package repository

import (
	"context"

	"shavtzak-service/internal/domain/entity"
)

// AuditRepository defines the interface for the optional manager-edit
// audit trail.
type AuditRepository interface {
	Record(ctx context.Context, entry entity.AuditEntry) error
}
