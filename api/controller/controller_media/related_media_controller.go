package controller_media

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/pinora-app/pinora-backend/api/controller"
	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"golang.org/x/crypto/blake2b"
)

type RelatedMediaController struct {
	RelatedMediaUsecase media_interface.RelatedMediaUsecase
}

func NewRelatedMediaController(uc media_interface.RelatedMediaUsecase) *RelatedMediaController {
	return &RelatedMediaController{
		RelatedMediaUsecase: uc,
	}
}

// GetRelatedMedia 返回至多 12 条相关媒体的 JSON 数组（可能为空数组）
func (c *RelatedMediaController) GetRelatedMedia(ctx *gin.Context) {
	items, err := c.RelatedMediaUsecase.GetRelatedMedia(ctx.Request.Context(), ctx.Param("mediaId"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	body, err := json.Marshal(items)
	if err != nil {
		controller.HandleError(ctx, fmt.Errorf("%w: encode related media: %w", domain.ErrInternal, err))
		return
	}

	etag := weakETag(body)
	ctx.Header("ETag", etag)
	ctx.Header("Cache-Control", "no-cache")
	if etagMatches(ctx.GetHeader("If-None-Match"), etag) {
		ctx.Status(http.StatusNotModified)
		return
	}

	ctx.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func weakETag(body []byte) string {
	sum := blake2b.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:16]) + `"`
}

// etagMatches If-None-Match 采用弱比较
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
