package domain

import "context"

// MediaHost 外部媒体托管服务（上传、转换由客户端直连，服务端只负责删除）
type MediaHost interface {
	DeleteFile(ctx context.Context, fileID string) error
}
