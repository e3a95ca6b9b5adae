package repository

import (
	"context"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditRepository implements the AuditRepository interface
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository and
// migrates its table
func NewGormAuditRepository(db *gorm.DB) (repository.AuditRepository, error) {
	if err := db.AutoMigrate(&AuditEntries{}); err != nil {
		return nil, err
	}
	return &GormAuditRepository{
		db: db,
	}, nil
}

// AuditEntries GORM model for database mapping
type AuditEntries struct {
	ID         string    `gorm:"primaryKey"`
	WeekNumber int       `gorm:"column:week_number;index"`
	Day        string    `gorm:"column:day"`
	Action     string    `gorm:"column:action"`
	ActivityID int64     `gorm:"column:activity_id"`
	At         time.Time `gorm:"column:at"`
}

// TableName overrides the default table name
func (AuditEntries) TableName() string {
	return "t_audit_entries"
}

// Record inserts one audit row
func (r *GormAuditRepository) Record(ctx context.Context, entry entity.AuditEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	row := AuditEntries{
		ID:         entry.ID,
		WeekNumber: entry.WeekNumber,
		Day:        string(entry.Day),
		Action:     string(entry.Action),
		ActivityID: entry.ActivityID,
		At:         entry.At,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}
