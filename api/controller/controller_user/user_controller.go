package controller_user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_interface"
)

type UserController struct {
	UserUsecase user_interface.UserUsecase
}

func NewUserController(uc user_interface.UserUsecase) *UserController {
	return &UserController{
		UserUsecase: uc,
	}
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	user, err := c.UserUsecase.GetProfile(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (c *UserController) ToggleFollow(ctx *gin.Context) {
	followed, err := c.UserUsecase.ToggleFollow(ctx.Request.Context(), controller.CurrentUserID(ctx), ctx.Param("userId"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"followed": followed})
}

func (c *UserController) ToggleSave(ctx *gin.Context) {
	saved, err := c.UserUsecase.ToggleSave(ctx.Request.Context(), ctx.Param("mediaId"), controller.CurrentUserID(ctx))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (c *UserController) Unsave(ctx *gin.Context) {
	removed, err := c.UserUsecase.Unsave(ctx.Request.Context(), ctx.Param("mediaId"), controller.CurrentUserID(ctx))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (c *UserController) RemoveProfileImage(ctx *gin.Context) {
	if err := c.UserUsecase.RemoveProfileImage(ctx.Request.Context(), controller.CurrentUserID(ctx)); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"removed": true})
}
