package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canonical user roles. Legacy label variants from older imports are
// normalized at the boundary via NormalizeRole.
const (
	RoleAdmin    = "admin"
	RoleBuyer    = "buyer"
	RoleSupplier = "supplier"
	RoleBoth     = "both"
)

// User is a provisioned marketplace account.
// Accounts are created exclusively through network request approval
// (or the seedadmin tool); there is no self-registration.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NetworkRequestID *uuid.UUID `gorm:"type:uuid;index"`
	Username         string     `gorm:"uniqueIndex;not null"`
	Email            string     `gorm:"uniqueIndex;not null"`
	PasswordHash     string     `gorm:"not null"`
	Name             string     `gorm:"not null"`
	Company          string
	Role             string `gorm:"type:varchar(20);not null"`
	// ForcePasswordReset is set on provisioning with a temporary password
	// and cleared on the first successful password change.
	ForcePasswordReset bool `gorm:"not null;default:false"`
	Active             bool `gorm:"not null;default:true"`
	LastLogin          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NormalizeRole maps any historical role spelling onto the canonical set.
// Returns "" for values outside the closed set.
func NormalizeRole(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin
	case "buyer", "oem", "oems":
		return RoleBuyer
	case "supplier", "suppliers":
		return RoleSupplier
	case "both":
		return RoleBoth
	}
	return ""
}

// CanBuy reports whether the role authorizes buyer-only operations.
func CanBuy(role string) bool { return role == RoleBuyer || role == RoleBoth }

// CanSupply reports whether the role authorizes supplier-only operations.
func CanSupply(role string) bool { return role == RoleSupplier || role == RoleBoth }
