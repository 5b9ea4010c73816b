package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document is an uploaded file that has been confirmed and moved out of the
// temporary storage folder. DocType and Department hold catalog codes, not
// display labels.
type Document struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title              string    `gorm:"type:varchar(255);not null" json:"title"`
	DocType            string    `gorm:"type:varchar(10);not null;index" json:"doc_type"`
	Department         string    `gorm:"type:varchar(10);not null;index" json:"department"`
	Summary            string    `gorm:"type:text" json:"summary"`
	CloudinaryURL      string    `gorm:"type:text;not null" json:"cloudinary_url"`
	CloudinaryPublicID string    `gorm:"type:varchar(255);not null;unique" json:"cloudinary_public_id"`
	UploadedByID       uuid.UUID `gorm:"type:uuid;not null;index" json:"uploaded_by_id"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	UploadedBy *User `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
}

// TableName specifies the table name for Document model
func (*Document) TableName() string {
	return "documents"
}

// BeforeCreate sets up the model before creation
func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the document model
func (d *Document) Validate() error {
	if d.Title == "" {
		return ErrInvalidDocumentTitle
	}
	if !IsDocumentTypeCode(d.DocType) {
		return ErrInvalidDocumentType
	}
	if !IsDepartmentCode(d.Department) {
		return ErrInvalidDepartment
	}
	if d.UploadedByID == uuid.Nil {
		return ErrInvalidUserID
	}
	return nil
}

// DocTypeLabel returns the display label of the document's type code.
func (d *Document) DocTypeLabel() string {
	return DocumentTypeLabels[d.DocType]
}

// DepartmentLabel returns the display label of the document's department code.
func (d *Document) DepartmentLabel() string {
	return DepartmentLabels[d.Department]
}
