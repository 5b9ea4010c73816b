package documents

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/metrorail/docudesk/internal/ai"
	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/internal/storage"
	"github.com/metrorail/docudesk/models"
)

type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) Create(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockRepo) List(ctx context.Context, query string) ([]models.Document, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

type ServiceTestSuite struct {
	suite.Suite
	service    Service
	repo       *MockRepo
	store      *storage.MockStore
	classifier *ai.MockClassifier
	uploader   uuid.UUID
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.repo = &MockRepo{}
	suite.store = &storage.MockStore{}
	suite.classifier = &ai.MockClassifier{}
	suite.uploader = uuid.New()
	suite.service = NewService(suite.repo, suite.store, suite.classifier, logger.NewNullLogger())
}

func TestDocumentService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func pdfPayload() string {
	return base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 test content"))
}

func (suite *ServiceTestSuite) TestUploadTemp_Success() {
	suite.store.On("Upload", mock.Anything, mock.MatchedBy(func(in storage.UploadInput) bool {
		return in.Folder == "TMP" &&
			strings.HasSuffix(in.PublicID, " - report.pdf") &&
			len(in.Data) > 0
	})).Return(&storage.Object{
		PublicID:  "TMP/1756500000000 - report.pdf",
		SecureURL: "https://res.example/TMP/report.pdf",
	}, nil)

	res, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "report.pdf",
		MimeType: "application/pdf",
		Data:     pdfPayload(),
	})

	suite.NoError(err)
	suite.Equal("TMP/1756500000000 - report.pdf", res.DocumentID)
	suite.Equal("https://res.example/TMP/report.pdf", res.CloudinaryURL)
	suite.store.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestUploadTemp_DataURIPayload() {
	suite.store.On("Upload", mock.Anything, mock.MatchedBy(func(in storage.UploadInput) bool {
		return string(in.Data) == "hello"
	})).Return(&storage.Object{PublicID: "TMP/x", SecureURL: "https://res.example/x"}, nil)

	payload := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))
	_, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "x.pdf",
		MimeType: "application/pdf",
		Data:     payload,
	})

	suite.NoError(err)
	suite.store.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestUploadTemp_UnsupportedMimeType() {
	res, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "virus.exe",
		MimeType: "application/x-msdownload",
		Data:     pdfPayload(),
	})

	suite.Nil(res)
	suite.ErrorIs(err, models.ErrUnsupportedFileType)
	suite.store.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestUploadTemp_EmptyFile() {
	res, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "empty.pdf",
		MimeType: "application/pdf",
		Data:     "",
	})

	suite.Nil(res)
	suite.ErrorIs(err, models.ErrEmptyFile)
}

func (suite *ServiceTestSuite) TestUploadTemp_BadBase64() {
	res, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "bad.pdf",
		MimeType: "application/pdf",
		Data:     "!!!not base64!!!",
	})

	suite.Nil(res)
	suite.ErrorIs(err, models.ErrInvalidFilePayload)
}

func (suite *ServiceTestSuite) TestUploadTemp_StoreFailure() {
	suite.store.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.New("cloud unreachable"))

	res, err := suite.service.UploadTemp(context.Background(), &UploadDocumentRequest{
		FileName: "report.pdf",
		MimeType: "application/pdf",
		Data:     pdfPayload(),
	})

	suite.Nil(res)
	suite.ErrorIs(err, models.ErrUploadFailed)
}

func (suite *ServiceTestSuite) TestClassify_Success() {
	suite.classifier.On("Classify", mock.Anything, "https://res.example/TMP/report.pdf").
		Return(&ai.Report{
			DocType:      "Safety Report",
			OrgType:      "Operations",
			ShortSummary: "Quarterly track inspection findings",
			Summary:      []string{"Track section 4 requires maintenance"},
		}, nil)

	report, err := suite.service.Classify(context.Background(), "https://res.example/TMP/report.pdf")

	suite.NoError(err)
	suite.Equal("Safety Report", report.DocType)
	suite.Len(report.Summary, 1)
}

func (suite *ServiceTestSuite) TestClassify_UpstreamFailure() {
	suite.classifier.On("Classify", mock.Anything, mock.Anything).
		Return(nil, errors.New("503 from classifier"))

	report, err := suite.service.Classify(context.Background(), "https://res.example/TMP/report.pdf")

	suite.Nil(report)
	suite.ErrorIs(err, models.ErrClassificationFailed)
}

func (suite *ServiceTestSuite) TestSaveDocuments_RenamesToPermanentPath() {
	req := &SaveDocumentsRequest{Documents: []SaveDocumentEntry{{
		Title:      "Track inspection Q3",
		DocType:    "SOP",
		Department: "ENG",
		FileID:     "TMP/1756500000000 - report.pdf",
	}}}

	suite.store.On("Rename", mock.Anything,
		"TMP/1756500000000 - report.pdf",
		"ENG/SOP/1756500000000 - report.pdf",
	).Return(&storage.Object{
		PublicID:  "ENG/SOP/1756500000000 - report.pdf",
		SecureURL: "https://res.example/ENG/SOP/report.pdf",
	}, nil)
	suite.repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *models.Document) bool {
		return doc.DocType == "SOP" && doc.Department == "ENG" &&
			doc.UploadedByID == suite.uploader &&
			doc.CloudinaryPublicID == "ENG/SOP/1756500000000 - report.pdf"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Document).ID = uuid.New()
	}).Return(nil)

	results := suite.service.SaveDocuments(context.Background(), req, suite.uploader)

	suite.Require().Len(results, 1)
	suite.True(results[0].Success)
	suite.NotNil(results[0].DocumentID)
	suite.store.AssertExpectations(suite.T())
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestSaveDocuments_ResolvesLabels() {
	req := &SaveDocumentsRequest{Documents: []SaveDocumentEntry{{
		Title:      "New hire onboarding",
		DocType:    "Standard Operating Procedure",
		Department: "Human Resources",
		FileID:     "TMP/123 - onboarding.docx",
	}}}

	suite.store.On("Rename", mock.Anything, mock.Anything, "HR/SOP/123 - onboarding.docx").
		Return(&storage.Object{PublicID: "HR/SOP/123 - onboarding.docx", SecureURL: "https://res.example/y"}, nil)
	suite.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	results := suite.service.SaveDocuments(context.Background(), req, suite.uploader)

	suite.True(results[0].Success)
	suite.store.AssertExpectations(suite.T())
}

func (suite *ServiceTestSuite) TestSaveDocuments_SettlesIndependently() {
	// Entry 0 has an unknown department and must fail without touching
	// storage; entry 1 must still be saved.
	req := &SaveDocumentsRequest{Documents: []SaveDocumentEntry{
		{
			Title:      "Bad entry",
			DocType:    "SOP",
			Department: "Ministry of Magic",
			FileID:     "TMP/1 - a.pdf",
		},
		{
			Title:      "Good entry",
			DocType:    "POL",
			Department: "OPS",
			FileID:     "TMP/2 - b.pdf",
		},
	}}

	suite.store.On("Rename", mock.Anything, "TMP/2 - b.pdf", "OPS/POL/2 - b.pdf").
		Return(&storage.Object{PublicID: "OPS/POL/2 - b.pdf", SecureURL: "https://res.example/b"}, nil)
	suite.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	results := suite.service.SaveDocuments(context.Background(), req, suite.uploader)

	suite.Require().Len(results, 2)
	suite.False(results[0].Success)
	suite.Equal(models.ErrInvalidDepartment.Error(), results[0].Error)
	suite.True(results[1].Success)
	suite.store.AssertNotCalled(suite.T(), "Rename", mock.Anything, "TMP/1 - a.pdf", mock.Anything)
}

func (suite *ServiceTestSuite) TestSaveDocuments_RenameFailureSkipsInsert() {
	req := &SaveDocumentsRequest{Documents: []SaveDocumentEntry{{
		Title:      "Orphaned",
		DocType:    "REP",
		Department: "FIN",
		FileID:     "TMP/3 - c.pdf",
	}}}

	suite.store.On("Rename", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("rename rejected"))

	results := suite.service.SaveDocuments(context.Background(), req, suite.uploader)

	suite.False(results[0].Success)
	suite.Equal(models.ErrRenameFailed.Error(), results[0].Error)
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *ServiceTestSuite) TestGetDocument_NotFound() {
	id := uuid.New()
	suite.repo.On("GetByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	doc, err := suite.service.GetDocument(context.Background(), id)

	suite.Nil(doc)
	suite.ErrorIs(err, models.ErrRecordNotFound)
}

func (suite *ServiceTestSuite) TestListDocuments_TrimsQuery() {
	suite.repo.On("List", mock.Anything, "inspection").Return([]models.Document{}, nil)

	_, err := suite.service.ListDocuments(context.Background(), "  inspection  ")

	suite.NoError(err)
	suite.repo.AssertExpectations(suite.T())
}
