package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/logging"
)

// UserIDKey JWT 中间件写入 gin.Context 的当前用户ID
const UserIDKey = "x-user-id"

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Code: code, Message: message})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		key:     data,
		"count": count,
	})
}

// HandleError 按错误分类映射 HTTP 状态码；内部错误只记录日志，不向客户端暴露细节
func HandleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_ARGUMENT", clientMessage(err, domain.ErrInvalidArgument))
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, "NOT_FOUND", clientMessage(err, domain.ErrNotFound))
	case errors.Is(err, domain.ErrForbidden):
		ErrorResponse(ctx, http.StatusForbidden, "FORBIDDEN", clientMessage(err, domain.ErrForbidden))
	default:
		logging.Ctx(ctx.Request.Context()).Error().
			Err(err).
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Msg("request failed")
		ErrorResponse(ctx, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

// clientMessage 去掉 "invalid argument: " 这类分类前缀
func clientMessage(err, kind error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok {
		return rest
	}
	return msg
}

// CurrentUserID 读取认证中间件写入的用户ID
func CurrentUserID(ctx *gin.Context) string {
	return ctx.GetString(UserIDKey)
}
