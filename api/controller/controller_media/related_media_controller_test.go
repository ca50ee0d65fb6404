package controller_media

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRelatedEngine(uc *mocks.RelatedMediaUsecase) *gin.Engine {
	r := gin.New()
	r.GET("/api/media/related/:mediaId", NewRelatedMediaController(uc).GetRelatedMedia)
	return r
}

func serve(r *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetRelatedMediaStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"malformed id", fmt.Errorf("%w: invalid media id format", domain.ErrInvalidArgument), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"unknown media", fmt.Errorf("%w: media 65f000000000000000000000", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"store failure", fmt.Errorf("%w: candidate cursor failed: %w", domain.ErrInternal, errors.New("socket closed")), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := mocks.NewRelatedMediaUsecase(t)
			uc.On("GetRelatedMedia", mock.Anything, "abc").Return(nil, tc.err).Once()

			w := serve(newRelatedEngine(uc), "/api/media/related/abc", nil)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["code"])
			assert.NotContains(t, body["message"], "socket closed")
		})
	}
}

func TestGetRelatedMediaEmptyIsArray(t *testing.T) {
	uc := mocks.NewRelatedMediaUsecase(t)
	id := primitive.NewObjectID().Hex()
	uc.On("GetRelatedMedia", mock.Anything, id).Return([]*media_models.Media{}, nil).Once()

	w := serve(newRelatedEngine(uc), "/api/media/related/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestGetRelatedMediaBody(t *testing.T) {
	uc := mocks.NewRelatedMediaUsecase(t)
	id := primitive.NewObjectID().Hex()
	items := []*media_models.Media{
		{ID: primitive.NewObjectID(), Title: "Beach Trip", Category: "travel", Tags: []string{"beach"},
			CreatedAt: primitive.NewDateTimeFromTime(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))},
		{ID: primitive.NewObjectID(), Title: "Sunset Over The Hills", Category: "nature", Tags: []string{}},
	}
	uc.On("GetRelatedMedia", mock.Anything, id).Return(items, nil).Once()

	w := serve(newRelatedEngine(uc), "/api/media/related/"+id, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, items[0].ID.Hex(), got[0]["_id"])
	assert.Equal(t, items[1].ID.Hex(), got[1]["_id"])
	assert.NotContains(t, got[0], "score")
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Regexp(t, `^W/"[0-9a-f]{32}"$`, w.Header().Get("ETag"))
}

func TestGetRelatedMediaConditional(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	items := []*media_models.Media{{ID: primitive.NewObjectID(), Title: "x"}}

	uc := mocks.NewRelatedMediaUsecase(t)
	uc.On("GetRelatedMedia", mock.Anything, id).Return(items, nil).Times(3)
	r := newRelatedEngine(uc)

	first := serve(r, "/api/media/related/"+id, nil)
	require.Equal(t, http.StatusOK, first.Code)
	etag := first.Header().Get("ETag")

	again := serve(r, "/api/media/related/"+id, http.Header{"If-None-Match": {etag}})
	assert.Equal(t, http.StatusNotModified, again.Code)
	assert.Empty(t, again.Body.String())

	stale := serve(r, "/api/media/related/"+id, http.Header{"If-None-Match": {`"deadbeef"`}})
	assert.Equal(t, http.StatusOK, stale.Code)
}

func TestETagMatches(t *testing.T) {
	etag := `W/"abc"`
	assert.True(t, etagMatches(`W/"abc"`, etag))
	assert.True(t, etagMatches(`"abc"`, etag))
	assert.True(t, etagMatches(`"zzz", W/"abc"`, etag))
	assert.True(t, etagMatches(`*`, etag))
	assert.False(t, etagMatches(``, etag))
	assert.False(t, etagMatches(`"abcd"`, etag))
}
