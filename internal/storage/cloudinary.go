package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Config holds Cloudinary credentials.
type Config struct {
	CloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `env:"CLOUDINARY_API_KEY"`
	APISecret string `env:"CLOUDINARY_API_SECRET"`
}

func (c *Config) Validate() error {
	if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
		return errors.New("cloudinary credentials not configured")
	}
	return nil
}

// CloudinaryStore implements Store against the Cloudinary upload API.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a store from credentials.
func NewCloudinaryStore(cfg *Config) (*CloudinaryStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}

	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores the file bytes under folder/publicID and returns the
// resulting reference and public URL.
func (s *CloudinaryStore) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(in.Data), uploader.UploadParams{
		PublicID:     in.PublicID,
		Folder:       in.Folder,
		ResourceType: "auto",
		UseFilename:  api.Bool(true),
		Type:         "upload",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	return &Object{PublicID: res.PublicID, SecureURL: res.SecureURL}, nil
}

// Rename moves an object to a new public ID, overwriting any existing object
// at the destination.
func (s *CloudinaryStore) Rename(ctx context.Context, fromPublicID, toPublicID string) (*Object, error) {
	res, err := s.cld.Upload.Rename(ctx, uploader.RenameParams{
		FromPublicID: fromPublicID,
		ToPublicID:   toPublicID,
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary rename: %w", err)
	}

	return &Object{PublicID: res.PublicID, SecureURL: res.SecureURL}, nil
}
