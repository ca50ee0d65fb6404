package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{fmt.Errorf("%w: invalid media id format", domain.ErrInvalidArgument), http.StatusBadRequest, "INVALID_ARGUMENT", "invalid media id format"},
		{fmt.Errorf("%w: media 65f1", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND", "media 65f1"},
		{fmt.Errorf("%w: only the uploader can delete this media", domain.ErrForbidden), http.StatusForbidden, "FORBIDDEN", "only the uploader can delete this media"},
		{fmt.Errorf("rank related media: %w", context.DeadlineExceeded), http.StatusInternalServerError, "INTERNAL", "internal server error"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL", "internal server error"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		HandleError(c, tt.err)

		assert.Equal(t, tt.status, w.Code, tt.err.Error())
		var body ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.code, body.Code)
		assert.Equal(t, tt.message, body.Message)
		assert.True(t, c.IsAborted())
	}
}
