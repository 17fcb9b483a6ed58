package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/Codinho_Go/internal/domain"
)

func sampleBootcamp(progress int, completed ...int) *domain.Bootcamp {
	return &domain.Bootcamp{
		ID:              "calculator",
		Title:           "Calculator",
		IsUnlocked:      true,
		Levels:          5,
		CurrentLevel:    len(completed) + 1,
		Progress:        progress,
		CompletedLevels: completed,
	}
}

func TestBootcampHandlers_HandleList(t *testing.T) {
	svc := &MockBootcampService{}
	svc.On("List", mock.Anything, testUser).Return(&domain.BootcampList{
		Bootcamps: []domain.Bootcamp{*sampleBootcamp(0)},
	}, nil)

	rec := serve(t, http.MethodGet, "/bootcamps", NewBootcampHandlers(svc).HandleList(), "/bootcamps", testUser, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"calculator"`)
	assert.NotContains(t, rec.Body.String(), "advisory")
}

func TestBootcampHandlers_HandleGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &MockBootcampService{}
		svc.On("Get", mock.Anything, testUser, "calculator").Return(sampleBootcamp(40, 1, 2), nil)

		rec := serve(t, http.MethodGet, "/bootcamps/{id}", NewBootcampHandlers(svc).HandleGet(), "/bootcamps/calculator", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"completedLevels":[1,2]`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &MockBootcampService{}
		svc.On("Get", mock.Anything, testUser, "robotics").Return(nil, domain.ErrBootcampNotFound)

		rec := serve(t, http.MethodGet, "/bootcamps/{id}", NewBootcampHandlers(svc).HandleGet(), "/bootcamps/robotics", testUser, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, ErrMsgBootcampNotFoundError, decodeError(t, rec))
	})
}

func TestBootcampHandlers_HandleUpdateProgress(t *testing.T) {
	const pattern = "/bootcamps/{id}/progress"

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockBootcampService)
		expectedStatus int
	}{
		{
			name: "sets progress",
			body: `{"progress":60}`,
			setupMock: func(m *MockBootcampService) {
				m.On("UpdateProgress", mock.Anything, testUser, "calculator", 60).Return(sampleBootcamp(60), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "zero is allowed",
			body: `{"progress":0}`,
			setupMock: func(m *MockBootcampService) {
				m.On("UpdateProgress", mock.Anything, testUser, "calculator", 0).Return(sampleBootcamp(0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing progress",
			body:           `{}`,
			setupMock:      func(m *MockBootcampService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "above 100",
			body:           `{"progress":101}`,
			setupMock:      func(m *MockBootcampService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative",
			body:           `{"progress":-1}`,
			setupMock:      func(m *MockBootcampService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockBootcampService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodPut, pattern, NewBootcampHandlers(svc).HandleUpdateProgress(),
				"/bootcamps/calculator/progress", testUser, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestBootcampHandlers_HandleCompleteLevel(t *testing.T) {
	const pattern = "/bootcamps/{id}/levels/{level}/complete"

	t.Run("completes", func(t *testing.T) {
		svc := &MockBootcampService{}
		svc.On("CompleteLevel", mock.Anything, testUser, "calculator", 1).Return(sampleBootcamp(20, 1), nil)

		rec := serve(t, http.MethodPost, pattern, NewBootcampHandlers(svc).HandleCompleteLevel(),
			"/bootcamps/calculator/levels/1/complete", testUser, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var b domain.Bootcamp
		resp := decodeData(t, rec, &b)
		assert.Equal(t, MsgBootcampLevelComplete, resp.Message)
		assert.Equal(t, 20, b.Progress)
	})

	t.Run("level out of range", func(t *testing.T) {
		svc := &MockBootcampService{}
		svc.On("CompleteLevel", mock.Anything, testUser, "calculator", 9).Return(nil, domain.ErrInvalidLevel)

		rec := serve(t, http.MethodPost, pattern, NewBootcampHandlers(svc).HandleCompleteLevel(),
			"/bootcamps/calculator/levels/9/complete", testUser, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, ErrMsgInvalidLevelError, decodeError(t, rec))
	})

	t.Run("level is not a number", func(t *testing.T) {
		svc := &MockBootcampService{}

		rec := serve(t, http.MethodPost, pattern, NewBootcampHandlers(svc).HandleCompleteLevel(),
			"/bootcamps/calculator/levels/two/complete", testUser, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CompleteLevel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBootcampHandlers_HandleUnlockAndReload(t *testing.T) {
	svc := &MockBootcampService{}
	animation := &domain.Bootcamp{ID: "animation", IsUnlocked: true, Levels: 5, CurrentLevel: 1}
	svc.On("Unlock", mock.Anything, testUser, "animation").Return(animation, nil)
	svc.On("Reload", mock.Anything, testUser).Return(&domain.BootcampList{Advisory: "reset"}, nil)
	h := NewBootcampHandlers(svc)

	rec := serve(t, http.MethodPost, "/bootcamps/{id}/unlock", h.HandleUnlock(), "/bootcamps/animation/unlock", testUser, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isUnlocked":true`)

	rec = serve(t, http.MethodPost, "/bootcamps/reload", h.HandleReload(), "/bootcamps/reload", testUser, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"advisory":"reset"`)

	svc.AssertExpectations(t)
}
