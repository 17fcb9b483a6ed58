package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Codinho_Go/internal/domain"
	"github.com/osse101/Codinho_Go/internal/kata"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockGamificationService mocks gamification.Service
type MockGamificationService struct {
	mock.Mock
}

func (m *MockGamificationService) view(args mock.Arguments) (*domain.LedgerView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerView), args.Error(1)
}

func (m *MockGamificationService) GetLedger(ctx context.Context, userID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID))
}

func (m *MockGamificationService) AddXP(ctx context.Context, userID string, points int64) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID, points))
}

func (m *MockGamificationService) UnlockAchievement(ctx context.Context, userID, achievementID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID, achievementID))
}

func (m *MockGamificationService) CollectReward(ctx context.Context, userID, rewardID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID, rewardID))
}

func (m *MockGamificationService) ClearRecentAchievement(ctx context.Context, userID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID))
}

func (m *MockGamificationService) ClearRecentReward(ctx context.Context, userID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID))
}

func (m *MockGamificationService) GetProgress(ctx context.Context, userID string) (domain.LevelProgress, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.LevelProgress), args.Error(1)
}

func (m *MockGamificationService) GetEligibleRewards(ctx context.Context, userID string) ([]domain.Reward, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reward), args.Error(1)
}

func (m *MockGamificationService) Reload(ctx context.Context, userID string) (*domain.LedgerView, error) {
	return m.view(m.Called(ctx, userID))
}

func (m *MockGamificationService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockBootcampService mocks bootcamp.Service
type MockBootcampService struct {
	mock.Mock
}

func (m *MockBootcampService) list(args mock.Arguments) (*domain.BootcampList, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BootcampList), args.Error(1)
}

func (m *MockBootcampService) one(args mock.Arguments) (*domain.Bootcamp, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bootcamp), args.Error(1)
}

func (m *MockBootcampService) List(ctx context.Context, userID string) (*domain.BootcampList, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockBootcampService) Get(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error) {
	return m.one(m.Called(ctx, userID, bootcampID))
}

func (m *MockBootcampService) UpdateProgress(ctx context.Context, userID, bootcampID string, progress int) (*domain.Bootcamp, error) {
	return m.one(m.Called(ctx, userID, bootcampID, progress))
}

func (m *MockBootcampService) CompleteLevel(ctx context.Context, userID, bootcampID string, level int) (*domain.Bootcamp, error) {
	return m.one(m.Called(ctx, userID, bootcampID, level))
}

func (m *MockBootcampService) Unlock(ctx context.Context, userID, bootcampID string) (*domain.Bootcamp, error) {
	return m.one(m.Called(ctx, userID, bootcampID))
}

func (m *MockBootcampService) Reload(ctx context.Context, userID string) (*domain.BootcampList, error) {
	return m.list(m.Called(ctx, userID))
}

// MockKataService mocks kata.Service
type MockKataService struct {
	mock.Mock
}

func (m *MockKataService) ListKatas(ctx context.Context, filter domain.KataFilter) ([]domain.Kata, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Kata), args.Error(1)
}

func (m *MockKataService) GetKata(ctx context.Context, id, viewerID string) (*domain.KataDetail, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KataDetail), args.Error(1)
}

func (m *MockKataService) Submit(ctx context.Context, userID string, req kata.SubmitRequest) (*domain.Submission, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockKataService) GetSubmission(ctx context.Context, userID, id string) (*domain.Submission, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockKataService) ImportCatalog(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}
