package documents

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/models"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new document repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Preload("UploadedBy").Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) List(ctx context.Context, query string) ([]models.Document, error) {
	q := r.db.WithContext(ctx).Model(&models.Document{}).Preload("UploadedBy")

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"title ILIKE ? OR summary ILIKE ? OR doc_type ILIKE ? OR department ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var docs []models.Document
	err := q.Order("created_at DESC").Find(&docs).Error
	return docs, err
}
