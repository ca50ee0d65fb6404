package route_user

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller/controller_user"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/mongo"
	"github.com/pinora-app/pinora-backend/repository/repository_media"
	"github.com/pinora-app/pinora-backend/repository/repository_user"
	"github.com/pinora-app/pinora-backend/usecase/usecase_user"
)

func NewUserRouter(
	timeout time.Duration,
	db mongo.Database,
	host domain.MediaHost,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	userRepo := repository_user.NewUserRepository(db, domain.CollectionUser)
	mediaRepo := repository_media.NewMediaRepository(db, domain.CollectionMedia)
	userUsecase := usecase_user.NewUserUsecase(userRepo, mediaRepo, host, timeout)
	userCtrl := controller_user.NewUserController(userUsecase)

	public.GET("/users/:userId", userCtrl.GetProfile)

	protected.POST("/users/:userId/follow", userCtrl.ToggleFollow)
	protected.DELETE("/users/me/profile-image", userCtrl.RemoveProfileImage)
	protected.POST("/media/:mediaId/save", userCtrl.ToggleSave)
	protected.DELETE("/media/:mediaId/save", userCtrl.Unsave)
}
