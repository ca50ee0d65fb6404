package controller_media

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
)

type MediaController struct {
	MediaUsecase media_interface.MediaUsecase
}

func NewMediaController(uc media_interface.MediaUsecase) *MediaController {
	return &MediaController{
		MediaUsecase: uc,
	}
}

func (c *MediaController) GetByID(ctx *gin.Context) {
	media, err := c.MediaUsecase.GetByID(ctx.Request.Context(), ctx.Param("mediaId"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"media": media})
}

func (c *MediaController) Create(ctx *gin.Context) {
	var req media_models.CreateMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	media, err := c.MediaUsecase.Create(ctx.Request.Context(), controller.CurrentUserID(ctx), &req)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"media": media})
}

func (c *MediaController) Delete(ctx *gin.Context) {
	if err := c.MediaUsecase.Delete(ctx.Request.Context(), ctx.Param("mediaId"), controller.CurrentUserID(ctx)); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Search GET /api/media/search?q=xxx，空查询返回空数组
func (c *MediaController) Search(ctx *gin.Context) {
	results, err := c.MediaUsecase.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "media", results, len(results))
}

// ListByUploader GET /api/users/:userId/media?page=1&page_size=20
func (c *MediaController) ListByUploader(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PAGE", "page must be a positive integer")
		return
	}
	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PAGE_SIZE", "page_size must be a positive integer")
		return
	}

	items, total, err := c.MediaUsecase.ListByUploader(ctx.Request.Context(), ctx.Param("userId"), page, pageSize)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"media": items,
		"count": len(items),
		"total": total,
		"page":  page,
	})
}

func (c *MediaController) ToggleLike(ctx *gin.Context) {
	liked, err := c.MediaUsecase.ToggleLike(ctx.Request.Context(), ctx.Param("mediaId"), controller.CurrentUserID(ctx))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"liked": liked})
}
