package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxRoleNameLength = 50

// Role is an orderable RBAC role. Position is a dense 1-based rank: between
// completed operations the positions of all roles always form the contiguous
// range 1..N. Position is only ever written by the create, delete and reorder
// paths in the roles repository.
type Role struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string      `gorm:"type:varchar(50);not null" json:"name"`
	Permissions Permissions `gorm:"type:bigint;not null;default:0" json:"permissions"`
	Position    int         `gorm:"not null;index" json:"position"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Users []User `gorm:"many2many:role_users;" json:"users,omitempty"`
}

// TableName specifies the table name for Role model
func (*Role) TableName() string {
	return "roles"
}

// BeforeCreate sets up the model before creation
func (r *Role) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the role model
func (r *Role) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidRoleName
	}
	if utf8.RuneCountInString(r.Name) > MaxRoleNameLength {
		return ErrRoleNameTooLong
	}
	if r.Permissions < 0 {
		return ErrInvalidPermissions
	}
	return nil
}

// PermissionNames returns the role's set permission flags in declaration order.
func (r *Role) PermissionNames() []string {
	return r.Permissions.Names()
}
