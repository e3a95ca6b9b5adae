package entity

import "time"

// AuditAction classifies a manager edit recorded in the audit trail.
type AuditAction string

const (
	AuditAdd    AuditAction = "add"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
	AuditPaste  AuditAction = "paste"
)

// AuditEntry is one row of the optional manager-edit audit trail.
type AuditEntry struct {
	ID         string
	WeekNumber int
	Day        Weekday
	Action     AuditAction
	ActivityID int64
	At         time.Time
}
