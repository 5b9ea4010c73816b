package documents

import (
	"github.com/gin-gonic/gin"

	"github.com/metrorail/docudesk/internal/deps"
)

const (
	DocumentRepoKey = "document_repository"
)

// MountAuthenticated mounts document routes behind authentication. Any
// signed-in user can upload, classify and save documents.
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	documentsGroup := r.Group("/documents")
	documentsGroup.POST("/upload", handler.Upload)
	documentsGroup.POST("/ai-report", handler.AiReport)
	documentsGroup.POST("", handler.Save)
	documentsGroup.GET("", handler.ListDocuments)
	documentsGroup.GET("/:id", handler.GetDocument)
}

// InitRepositories initializes and registers repositories for this module
func InitRepositories(container *deps.Container) {
	repo := NewRepository(container.DB)
	container.RegisterRepository(DocumentRepoKey, repo)
}

// createHandler creates a handler with all dependencies
func createHandler(container *deps.Container) *Handler {
	repo := container.GetRepository(DocumentRepoKey).(Repository)
	service := NewService(repo, container.Storage, container.Classifier, container.Logger)
	return NewHandler(service, container.Sanitizer)
}
