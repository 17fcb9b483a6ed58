package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Codinho_Go/internal/domain"
)

func TestGamificationHandlers_HandleGetLedger(t *testing.T) {
	t.Run("returns the ledger view", func(t *testing.T) {
		svc := &MockGamificationService{}
		view := sampleView(150, 2)
		view.Advisory = "Saved progress could not be read"
		svc.On("GetLedger", mock.Anything, testUser).Return(view, nil)

		rec := serve(t, http.MethodGet, "/gamification", NewGamificationHandlers(svc).HandleGetLedger(), "/gamification", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_xp":150`)
		assert.Contains(t, rec.Body.String(), `"advisory":"Saved progress could not be read"`)
		svc.AssertExpectations(t)
	})

	t.Run("anonymous request is unauthorized", func(t *testing.T) {
		svc := &MockGamificationService{}
		svc.On("GetLedger", mock.Anything, "").Return(nil, domain.ErrUnauthorized)

		rec := serve(t, http.MethodGet, "/gamification", NewGamificationHandlers(svc).HandleGetLedger(), "/gamification", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, ErrMsgUnauthorizedError, decodeError(t, rec))
	})
}

func TestGamificationHandlers_HandleAddXP(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockGamificationService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "awards xp",
			body: AddXPRequest{Points: 120},
			setupMock: func(m *MockGamificationService) {
				m.On("AddXP", mock.Anything, testUser, int64(120)).Return(sampleView(120, 2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   MsgXPAwarded,
		},
		{
			name: "zero is a valid no-op",
			body: AddXPRequest{Points: 0},
			setupMock: func(m *MockGamificationService) {
				m.On("AddXP", mock.Anything, testUser, int64(0)).Return(sampleView(0, 1), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "negative xp rejected by service",
			body: AddXPRequest{Points: -5},
			setupMock: func(m *MockGamificationService) {
				m.On("AddXP", mock.Anything, testUser, int64(-5)).Return(nil, domain.ErrNegativeXP)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNegativeXPError,
		},
		{
			name:           "above maximum",
			body:           AddXPRequest{Points: 100001},
			setupMock:      func(m *MockGamificationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"points"`,
		},
		{
			name:           "malformed json",
			body:           `{"points":`,
			setupMock:      func(m *MockGamificationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "unknown field",
			body:           `{"points":1,"level":99}`,
			setupMock:      func(m *MockGamificationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "storage failure is hidden",
			body: AddXPRequest{Points: 10},
			setupMock: func(m *MockGamificationService) {
				m.On("AddXP", mock.Anything, testUser, int64(10)).Return(nil, errors.New("pq: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGamificationService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodPost, "/gamification/xp", NewGamificationHandlers(svc).HandleAddXP(), "/gamification/xp", testUser, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			assert.NotContains(t, rec.Body.String(), "pq:")
			svc.AssertExpectations(t)
		})
	}
}

func TestGamificationHandlers_HandleUnlockAchievement(t *testing.T) {
	const pattern = "/gamification/achievements/{id}/unlock"

	t.Run("unlocks", func(t *testing.T) {
		svc := &MockGamificationService{}
		svc.On("UnlockAchievement", mock.Anything, testUser, "first_step").Return(sampleView(50, 1), nil)

		rec := serve(t, http.MethodPost, pattern, NewGamificationHandlers(svc).HandleUnlockAchievement(),
			"/gamification/achievements/first_step/unlock", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var view domain.LedgerView
		resp := decodeData(t, rec, &view)
		assert.Equal(t, MsgAchievementUnlocked, resp.Message)
		assert.Equal(t, int64(50), view.TotalXP)
	})

	t.Run("unknown achievement returns the unchanged ledger", func(t *testing.T) {
		svc := &MockGamificationService{}
		svc.On("UnlockAchievement", mock.Anything, testUser, "no_such").Return(sampleView(0, 1), nil)

		rec := serve(t, http.MethodPost, pattern, NewGamificationHandlers(svc).HandleUnlockAchievement(),
			"/gamification/achievements/no_such/unlock", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var view domain.LedgerView
		decodeData(t, rec, &view)
		assert.Equal(t, int64(0), view.TotalXP)
		assert.False(t, view.Achievements[0].IsUnlocked)
	})

	t.Run("invalid id never reaches the service", func(t *testing.T) {
		svc := &MockGamificationService{}

		rec := serve(t, http.MethodPost, pattern, NewGamificationHandlers(svc).HandleUnlockAchievement(),
			"/gamification/achievements/DROP%20TABLE/unlock", testUser, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "UnlockAchievement", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGamificationHandlers_HandleCollectReward(t *testing.T) {
	const pattern = "/gamification/rewards/{id}/collect"

	t.Run("collects", func(t *testing.T) {
		svc := &MockGamificationService{}
		svc.On("CollectReward", mock.Anything, testUser, "star_sticker").Return(sampleView(0, 1), nil)

		rec := serve(t, http.MethodPost, pattern, NewGamificationHandlers(svc).HandleCollectReward(),
			"/gamification/rewards/star_sticker/collect", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgRewardCollected)
	})

	t.Run("unknown reward returns the unchanged ledger", func(t *testing.T) {
		svc := &MockGamificationService{}
		svc.On("CollectReward", mock.Anything, testUser, "gold_badge").Return(sampleView(0, 1), nil)

		rec := serve(t, http.MethodPost, pattern, NewGamificationHandlers(svc).HandleCollectReward(),
			"/gamification/rewards/gold_badge/collect", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var view domain.LedgerView
		decodeData(t, rec, &view)
		assert.Nil(t, view.RecentReward)
		assert.False(t, view.Rewards[0].IsCollected)
	})
}

func TestGamificationHandlers_ClearRecent(t *testing.T) {
	svc := &MockGamificationService{}
	svc.On("ClearRecentAchievement", mock.Anything, testUser).Return(sampleView(0, 1), nil)
	svc.On("ClearRecentReward", mock.Anything, testUser).Return(sampleView(0, 1), nil)
	h := NewGamificationHandlers(svc)

	rec := serve(t, http.MethodDelete, "/gamification/achievements/recent", h.HandleClearRecentAchievement(),
		"/gamification/achievements/recent", testUser, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, http.MethodDelete, "/gamification/rewards/recent", h.HandleClearRecentReward(),
		"/gamification/rewards/recent", testUser, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestGamificationHandlers_HandleReload(t *testing.T) {
	svc := &MockGamificationService{}
	view := sampleView(0, 1)
	view.Advisory = "reset"
	svc.On("Reload", mock.Anything, testUser).Return(view, nil)

	rec := serve(t, http.MethodPost, "/gamification/reload", NewGamificationHandlers(svc).HandleReload(),
		"/gamification/reload", testUser, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.LedgerView
	decodeData(t, rec, &got)
	assert.Equal(t, "reset", got.Advisory)
}
