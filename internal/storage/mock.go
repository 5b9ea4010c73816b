package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Object), args.Error(1)
}

func (m *MockStore) Rename(ctx context.Context, fromPublicID, toPublicID string) (*Object, error) {
	args := m.Called(ctx, fromPublicID, toPublicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Object), args.Error(1)
}
