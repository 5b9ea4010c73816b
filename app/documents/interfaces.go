package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/metrorail/docudesk/models"
)

// Repository defines the interface for document data access
type Repository interface {
	Create(ctx context.Context, doc *models.Document) error
	// GetByID returns the document with its uploader preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	// List returns documents newest first. A non-empty query filters by
	// case-insensitive substring over title, summary, type and department.
	List(ctx context.Context, query string) ([]models.Document, error)
}

// Service defines the interface for document business logic
type Service interface {
	// UploadTemp validates and stores a file in the temporary folder.
	UploadTemp(ctx context.Context, req *UploadDocumentRequest) (*UploadDocumentResponse, error)
	// Classify fetches an advisory AI report for an uploaded file. Failures
	// surface as ErrClassificationFailed and never block a manual save.
	Classify(ctx context.Context, fileURL string) (*ClassifyDocumentResponse, error)
	// SaveDocuments promotes each entry to its permanent path and records it.
	// Entries settle independently; the slice reports per-entry outcomes.
	SaveDocuments(ctx context.Context, req *SaveDocumentsRequest, uploadedBy uuid.UUID) []SaveDocumentResult
	GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListDocuments(ctx context.Context, query string) ([]models.Document, error)
}
