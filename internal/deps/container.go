package deps

import (
	"github.com/metrorail/docudesk/internal/ai"
	"github.com/metrorail/docudesk/internal/cache"
	"github.com/metrorail/docudesk/internal/logger"
	"github.com/metrorail/docudesk/internal/sanitizer"
	"github.com/metrorail/docudesk/internal/security"
	"github.com/metrorail/docudesk/internal/storage"
	"gorm.io/gorm"
)

// Container holds all shared dependencies
type Container struct {
	DB         *gorm.DB
	TokenMaker security.Maker
	Sanitizer  sanitizer.HTMLStripperer
	Logger     logger.Logger
	Cache      cache.Cache[string]
	Storage    storage.Store
	Classifier ai.Classifier

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB, tokenMaker security.Maker, sanitizer sanitizer.HTMLStripperer, logger logger.Logger, cache cache.Cache[string]) *Container {
	return &Container{
		DB:           db,
		TokenMaker:   tokenMaker,
		Sanitizer:    sanitizer,
		Logger:       logger,
		Cache:        cache,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// WithStorage attaches the external file-storage client.
func (c *Container) WithStorage(store storage.Store) *Container {
	c.Storage = store
	return c
}

// WithClassifier attaches the external AI classification client.
func (c *Container) WithClassifier(classifier ai.Classifier) *Container {
	c.Classifier = classifier
	return c
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}
