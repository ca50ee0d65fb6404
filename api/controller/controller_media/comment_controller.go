package controller_media

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
)

type CommentController struct {
	CommentUsecase media_interface.CommentUsecase
}

func NewCommentController(uc media_interface.CommentUsecase) *CommentController {
	return &CommentController{
		CommentUsecase: uc,
	}
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (c *CommentController) List(ctx *gin.Context) {
	comments, err := c.CommentUsecase.List(ctx.Request.Context(), ctx.Param("mediaId"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "comments", comments, len(comments))
}

func (c *CommentController) Create(ctx *gin.Context) {
	var req createCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", "content is required")
		return
	}

	comment, err := c.CommentUsecase.Create(
		ctx.Request.Context(),
		ctx.Param("mediaId"),
		controller.CurrentUserID(ctx),
		req.Content,
	)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (c *CommentController) Delete(ctx *gin.Context) {
	err := c.CommentUsecase.Delete(
		ctx.Request.Context(),
		ctx.Param("mediaId"),
		ctx.Param("commentId"),
		controller.CurrentUserID(ctx),
	)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}
