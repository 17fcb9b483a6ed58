package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Codinho_Go/internal/auth"
	"github.com/osse101/Codinho_Go/internal/domain"
)

const testUser = "student-1"

// serve routes a single request through chi so URL params resolve like in production.
// An empty userID sends the request anonymously.
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = req.WithContext(auth.WithUser(req.Context(), auth.User{ID: userID}))
	}

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) DataResponse {
	t.Helper()
	resp := DataResponse{Data: into}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func sampleView(xp int64, level int) *domain.LedgerView {
	return &domain.LedgerView{
		LedgerState: domain.LedgerState{
			TotalXP:      xp,
			CurrentLevel: level,
			Achievements: []domain.Achievement{{ID: "first_step", Points: 50}},
			Rewards:      []domain.Reward{{ID: "star_sticker", Type: domain.RewardTypeSticker, RequiredLevel: 1}},
		},
		Progress: domain.LevelProgress{Level: level, TotalXP: xp},
	}
}
