package controller_user

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_models"
	"github.com/pinora-app/pinora-backend/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const currentUser = "65f1a2b3c4d5e6f708091011"

func init() {
	gin.SetMode(gin.TestMode)
}

func newUserEngine(uc *mocks.UserUsecase) *gin.Engine {
	uctl := NewUserController(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(controller.UserIDKey, currentUser)
		c.Next()
	})
	r.GET("/api/users/:userId", uctl.GetProfile)
	r.POST("/api/users/:userId/follow", uctl.ToggleFollow)
	r.POST("/api/media/:mediaId/save", uctl.ToggleSave)
	r.DELETE("/api/media/:mediaId/save", uctl.Unsave)
	r.DELETE("/api/profile/image", uctl.RemoveProfileImage)
	return r
}

func call(t *testing.T, r *gin.Engine, method, path string) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestUserHandlers(t *testing.T) {
	t.Run("toggle follow", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		uc.On("ToggleFollow", mock.Anything, currentUser, "u2").Return(true, nil).Once()

		status, body := call(t, newUserEngine(uc), http.MethodPost, "/api/users/u2/follow")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"followed": true}, body)
	})

	t.Run("following yourself is rejected", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		uc.On("ToggleFollow", mock.Anything, currentUser, currentUser).
			Return(false, fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidArgument)).Once()

		status, body := call(t, newUserEngine(uc), http.MethodPost, "/api/users/"+currentUser+"/follow")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "cannot follow yourself", body["message"])
	})

	t.Run("toggle save", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		uc.On("ToggleSave", mock.Anything, "m1", currentUser).Return(false, nil).Once()

		status, body := call(t, newUserEngine(uc), http.MethodPost, "/api/media/m1/save")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"saved": false}, body)
	})

	t.Run("unsave", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		uc.On("Unsave", mock.Anything, "m1", currentUser).Return(true, nil).Once()

		status, body := call(t, newUserEngine(uc), http.MethodDelete, "/api/media/m1/save")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"removed": true}, body)
	})

	t.Run("remove profile image", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		uc.On("RemoveProfileImage", mock.Anything, currentUser).Return(nil).Once()

		status, body := call(t, newUserEngine(uc), http.MethodDelete, "/api/profile/image")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"removed": true}, body)
	})

	t.Run("profile", func(t *testing.T) {
		uc := mocks.NewUserUsecase(t)
		id := primitive.NewObjectID()
		uc.On("GetProfile", mock.Anything, id.Hex()).Return(&user_models.User{ID: id}, nil).Once()
		uc.On("GetProfile", mock.Anything, "missing").
			Return(nil, fmt.Errorf("%w: user missing", domain.ErrNotFound)).Once()
		r := newUserEngine(uc)

		status, body := call(t, r, http.MethodGet, "/api/users/"+id.Hex())
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, id.Hex(), body["user"].(map[string]interface{})["_id"])

		status, _ = call(t, r, http.MethodGet, "/api/users/missing")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
