package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors the account record owned by the external identity provider.
// This service only reads users and relates them to roles and documents; it
// never creates or mutates identity fields.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;unique;index" json:"email"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Image     string    `gorm:"type:text" json:"image"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Roles     []Role     `gorm:"many2many:role_users;" json:"roles,omitempty"`
	Documents []Document `gorm:"foreignKey:UploadedByID" json:"-"`
}

// TableName specifies the table name for User model
func (*User) TableName() string {
	return "users"
}

// BeforeCreate sets up the model before creation
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// EffectivePermissions unions the permission bitfields of all the user's roles.
func (u *User) EffectivePermissions() Permissions {
	var p Permissions
	for i := range u.Roles {
		p |= u.Roles[i].Permissions
	}
	return p
}

// Can reports whether the user's roles grant flag, directly or via SUPERADMIN.
func (u *User) Can(flag Permissions) bool {
	p := u.EffectivePermissions()
	return p.Has(PermSuperadmin) || p.Has(flag)
}
