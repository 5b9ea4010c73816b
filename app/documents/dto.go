package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/metrorail/docudesk/models"
)

// UploadDocumentRequest carries a base64-encoded file destined for the
// temporary storage folder.
type UploadDocumentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	MimeType string `json:"mime_type" binding:"required"`
	Data     string `json:"data" binding:"required"`
}

// UploadDocumentResponse returns the temporary storage reference. DocumentID
// is the public id the client must send back when saving.
type UploadDocumentResponse struct {
	CloudinaryURL string `json:"cloudinary_url"`
	DocumentID    string `json:"document_id"`
}

// ClassifyDocumentRequest asks the AI service to classify an uploaded file.
type ClassifyDocumentRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// ClassifyDocumentResponse mirrors the classifier's advisory report.
type ClassifyDocumentResponse struct {
	DocType      string   `json:"doc_type"`
	OrgType      string   `json:"org_type"`
	ShortSummary string   `json:"short_summary"`
	Summary      []string `json:"summary"`
}

// SaveDocumentEntry is one document to promote from the temporary folder.
// DocType and Department accept either catalog codes or their labels.
type SaveDocumentEntry struct {
	Title      string `json:"title" binding:"required"`
	DocType    string `json:"doc_type" binding:"required"`
	Department string `json:"department" binding:"required"`
	Summary    string `json:"summary"`
	FileID     string `json:"file_id" binding:"required"`
}

// SaveDocumentsRequest saves a batch of uploaded documents. Entries settle
// independently; one failure never blocks the rest.
type SaveDocumentsRequest struct {
	Documents []SaveDocumentEntry `json:"documents" binding:"required,min=1,dive"`
}

// SaveDocumentResult reports the outcome for one entry, by input index.
type SaveDocumentResult struct {
	Index      int        `json:"index"`
	Title      string     `json:"title"`
	Success    bool       `json:"success"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// ListDocumentsRequest filters the document list. Query matches
// case-insensitively against title, summary, type and department.
type ListDocumentsRequest struct {
	Query string `form:"query"`
}

// DocumentResponse represents the response for document data
type DocumentResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DocType         string    `json:"doc_type"`
	DocTypeLabel    string    `json:"doc_type_label"`
	Department      string    `json:"department"`
	DepartmentLabel string    `json:"department_label"`
	Summary         string    `json:"summary,omitempty"`
	CloudinaryURL   string    `json:"cloudinary_url"`
	UploadedBy      string    `json:"uploaded_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToDocumentResponse converts a models.Document to DocumentResponse
func ToDocumentResponse(doc *models.Document) *DocumentResponse {
	res := &DocumentResponse{
		ID:              doc.ID,
		Title:           doc.Title,
		DocType:         doc.DocType,
		DocTypeLabel:    doc.DocTypeLabel(),
		Department:      doc.Department,
		DepartmentLabel: doc.DepartmentLabel(),
		Summary:         doc.Summary,
		CloudinaryURL:   doc.CloudinaryURL,
		CreatedAt:       doc.CreatedAt,
	}

	if doc.UploadedBy != nil {
		res.UploadedBy = doc.UploadedBy.Email
	}

	return res
}

// ToDocumentResponseList converts a slice of models.Document to DocumentResponse
func ToDocumentResponseList(docs []models.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *ToDocumentResponse(&docs[i])
	}
	return responses
}
