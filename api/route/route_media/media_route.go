package route_media

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller/controller_media"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/mongo"
	"github.com/pinora-app/pinora-backend/repository/repository_media"
	"github.com/pinora-app/pinora-backend/repository/repository_user"
	"github.com/pinora-app/pinora-backend/usecase/usecase_media"
)

// NewRelatedMediaRouter GET /media/related/:mediaId
func NewRelatedMediaRouter(
	timeout time.Duration,
	db mongo.Database,
	rankingMode string,
	limit int,
	group *gin.RouterGroup,
) {
	mediaRepo := repository_media.NewMediaRepository(db, domain.CollectionMedia)
	relatedUsecase := usecase_media.NewRelatedMediaUsecase(mediaRepo, rankingMode, limit, timeout)
	relatedCtrl := controller_media.NewRelatedMediaController(relatedUsecase)

	group.GET("/media/related/:mediaId", relatedCtrl.GetRelatedMedia)
}

func NewMediaRouter(
	timeout time.Duration,
	db mongo.Database,
	host domain.MediaHost,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	mediaRepo := repository_media.NewMediaRepository(db, domain.CollectionMedia)
	userRepo := repository_user.NewUserRepository(db, domain.CollectionUser)
	mediaUsecase := usecase_media.NewMediaUsecase(mediaRepo, userRepo, host, timeout)
	mediaCtrl := controller_media.NewMediaController(mediaUsecase)

	// 公开
	public.GET("/media/search", mediaCtrl.Search)
	public.GET("/media/:mediaId", mediaCtrl.GetByID)
	public.GET("/users/:userId/media", mediaCtrl.ListByUploader)

	// 需要登录
	protected.POST("/media", mediaCtrl.Create)
	protected.DELETE("/media/:mediaId", mediaCtrl.Delete)
	protected.POST("/media/:mediaId/like", mediaCtrl.ToggleLike)
}

func NewCommentRouter(
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	mediaRepo := repository_media.NewMediaRepository(db, domain.CollectionMedia)
	commentUsecase := usecase_media.NewCommentUsecase(mediaRepo, timeout)
	commentCtrl := controller_media.NewCommentController(commentUsecase)

	public.GET("/media/:mediaId/comments", commentCtrl.List)
	protected.POST("/media/:mediaId/comments", commentCtrl.Create)
	protected.DELETE("/media/:mediaId/comments/:commentId", commentCtrl.Delete)
}
