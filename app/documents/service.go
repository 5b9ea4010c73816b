package documents

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/internal/ai"
	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/internal/storage"
	"github.com/metrorail/docudesk/models"
)

// tempFolder is where uploads land until the user confirms the save.
const tempFolder = "TMP"

var allowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/msword": {},
	"image/jpeg":         {},
	"image/jpg":          {},
	"image/png":          {},
}

type service struct {
	repo       Repository
	store      storage.Store
	classifier ai.Classifier
	log        logger.Logger
}

// NewService creates a new document service
func NewService(repo Repository, store storage.Store, classifier ai.Classifier, log logger.Logger) Service {
	return &service{
		repo:       repo,
		store:      store,
		classifier: classifier,
		log:        log,
	}
}

func (s *service) UploadTemp(ctx context.Context, req *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	if _, ok := allowedMimeTypes[strings.ToLower(req.MimeType)]; !ok {
		return nil, models.ErrUnsupportedFileType
	}

	fileName := path.Base(strings.TrimSpace(req.FileName))
	if fileName == "" || fileName == "." || fileName == "/" {
		return nil, models.ErrInvalidFileName
	}

	data, err := decodePayload(req.Data)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, models.ErrEmptyFile
	}

	obj, err := s.store.Upload(ctx, storage.UploadInput{
		Data:     data,
		PublicID: fmt.Sprintf("%d - %s", time.Now().UnixMilli(), fileName),
		Folder:   tempFolder,
		MimeType: req.MimeType,
	})
	if err != nil {
		s.log.Error(err, map[string]any{
			"operation": "document_upload",
			"file_name": fileName,
		})
		return nil, models.ErrUploadFailed
	}

	return &UploadDocumentResponse{
		CloudinaryURL: obj.SecureURL,
		DocumentID:    obj.PublicID,
	}, nil
}

func (s *service) Classify(ctx context.Context, fileURL string) (*ClassifyDocumentResponse, error) {
	report, err := s.classifier.Classify(ctx, fileURL)
	if err != nil {
		s.log.Error(err, map[string]any{
			"operation": "document_classify",
			"url":       fileURL,
		})
		return nil, models.ErrClassificationFailed
	}

	return &ClassifyDocumentResponse{
		DocType:      report.DocType,
		OrgType:      report.OrgType,
		ShortSummary: report.ShortSummary,
		Summary:      report.Summary,
	}, nil
}

// SaveDocuments promotes each entry from the temporary folder to its
// permanent {department}/{docType}/{file} path, then records it. Every entry
// settles on its own; a failed rename or insert marks only that entry failed.
func (s *service) SaveDocuments(ctx context.Context, req *SaveDocumentsRequest, uploadedBy uuid.UUID) []SaveDocumentResult {
	results := make([]SaveDocumentResult, len(req.Documents))

	for i := range req.Documents {
		entry := &req.Documents[i]
		results[i] = SaveDocumentResult{Index: i, Title: entry.Title}

		doc, err := s.saveOne(ctx, entry, uploadedBy)
		if err != nil {
			s.log.Error(err, map[string]any{
				"operation": "document_save",
				"index":     i,
				"file_id":   entry.FileID,
			})
			results[i].Error = err.Error()
			continue
		}

		results[i].Success = true
		results[i].DocumentID = &doc.ID
	}

	return results
}

func (s *service) saveOne(ctx context.Context, entry *SaveDocumentEntry, uploadedBy uuid.UUID) (*models.Document, error) {
	typeCode, ok := resolveDocType(entry.DocType)
	if !ok {
		return nil, models.ErrInvalidDocumentType
	}
	deptCode, ok := resolveDepartment(entry.Department)
	if !ok {
		return nil, models.ErrInvalidDepartment
	}

	doc := &models.Document{
		Title:        strings.TrimSpace(entry.Title),
		DocType:      typeCode,
		Department:   deptCode,
		Summary:      entry.Summary,
		UploadedByID: uploadedBy,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	permanentID := fmt.Sprintf("%s/%s/%s", deptCode, typeCode, path.Base(entry.FileID))
	obj, err := s.store.Rename(ctx, entry.FileID, permanentID)
	if err != nil {
		return nil, models.ErrRenameFailed
	}
	doc.CloudinaryURL = obj.SecureURL
	doc.CloudinaryPublicID = obj.PublicID

	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *service) ListDocuments(ctx context.Context, query string) ([]models.Document, error) {
	return s.repo.List(ctx, strings.TrimSpace(query))
}

// decodePayload accepts raw base64 or a data URI and returns the file bytes.
func decodePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.ErrInvalidFilePayload
	}
	return data, nil
}

// resolveDocType accepts a catalog code or its label and returns the code.
func resolveDocType(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if models.IsDocumentTypeCode(v) {
		return v, true
	}
	return models.DocumentTypeCode(v)
}

// resolveDepartment accepts a catalog code or its label and returns the code.
func resolveDepartment(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if models.IsDepartmentCode(v) {
		return v, true
	}
	return models.DepartmentCode(v)
}
