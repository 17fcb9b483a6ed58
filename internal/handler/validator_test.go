package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Codinho_Go/internal/domain"
)

func TestValidateCatalogID(t *testing.T) {
	v := GetValidator()

	for _, id := range []string{"first_step", "robot_friend", "calculator", "level2"} {
		assert.NoError(t, v.ValidateVar(id, "catalogid"), id)
	}
	for _, id := range []string{"", "First_Step", "2fast", "space theme", "a-b", "x'; --"} {
		assert.Error(t, v.ValidateVar(id, "catalogid"), id)
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("field messages", func(t *testing.T) {
		progress := 150
		err := GetValidator().ValidateStruct(UpdateProgressRequest{Progress: &progress})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "Out of range (lte 100)", errs["progress"])
	})

	t.Run("non validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.ErrUnauthorized, http.StatusUnauthorized, ErrMsgUnauthorizedError},
		{domain.ErrNegativeXP, http.StatusBadRequest, ErrMsgNegativeXPError},
		{domain.ErrBootcampNotFound, http.StatusNotFound, ErrMsgBootcampNotFoundError},
		{domain.ErrInvalidLevel, http.StatusBadRequest, ErrMsgInvalidLevelError},
		{domain.ErrKataNotFound, http.StatusNotFound, ErrMsgKataNotFoundError},
		{domain.ErrSubmissionNotFound, http.StatusNotFound, ErrMsgSubmissionNotFoundError},
		{domain.ErrDuplicateSubmission, http.StatusConflict, ErrMsgDuplicateSubmissionError},
		{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{domain.ErrCorruptEntry, http.StatusInternalServerError, ErrMsgGenericServerError},
		{errors.New("dial tcp 10.0.0.3:5432: connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
	}

	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.Equal(t, tt.msg, msg, "%v", tt.err)
	}

	t.Run("wrapped errors keep their mapping", func(t *testing.T) {
		status, _ := mapServiceErrorToUserMessage(errors.Join(errors.New("context"), domain.ErrKataNotFound))
		assert.Equal(t, http.StatusNotFound, status)
	})
}
