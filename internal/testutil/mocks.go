package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"model-artifact-service/internal/core/domain"
)

// MockArtifactRepo is a mock of ArtifactRepository.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) InsertBatch(ctx context.Context, artifacts []*domain.ModelArtifact) ([]*domain.ModelArtifact, error) {
	args := m.Called(ctx, artifacts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModelArtifact), args.Error(1)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, id int64) (*domain.ModelArtifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ModelArtifact), args.Error(1)
}

func (m *MockArtifactRepo) ListPaged(ctx context.Context, offset, limit int) ([]*domain.ModelArtifact, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModelArtifact), args.Error(1)
}

func (m *MockArtifactRepo) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockObjectStore is a mock of ObjectStore.
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, key string, content []byte) error {
	args := m.Called(ctx, key, content)
	return args.Error(0)
}

func (m *MockObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStore) CheckReachable(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}
