package kata

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/event"
)

// MockKataRepository implements repository.Kata for testing
type MockKataRepository struct {
	mock.Mock
}

func (m *MockKataRepository) ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kata), args.Error(1)
}

func (m *MockKataRepository) GetKata(ctx context.Context, id uuid.UUID) (*domain.Kata, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Kata), args.Error(1)
}

func (m *MockKataRepository) UpsertKata(ctx context.Context, kata *domain.Kata) error {
	args := m.Called(ctx, kata)
	return args.Error(0)
}

// MockSubmissionRepository implements repository.Submission for testing
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockSubmissionRepository) GetLatestSubmission(ctx context.Context, userID string, kataID uuid.UUID) (*domain.Submission, error) {
	args := m.Called(ctx, userID, kataID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

// MockBus implements event.Bus for testing
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// MockSchemaValidator implements validation.SchemaValidator for testing
type MockSchemaValidator struct {
	mock.Mock
}

func (m *MockSchemaValidator) ValidateFile(dataPath, schemaPath string) error {
	args := m.Called(dataPath, schemaPath)
	return args.Error(0)
}

func (m *MockSchemaValidator) ValidateBytes(data []byte, schemaPath string) error {
	args := m.Called(data, schemaPath)
	return args.Error(0)
}
