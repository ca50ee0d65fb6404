package media_interface

import (
	"context"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaRepository 媒体文档的持久化操作
type MediaRepository interface {
	domain.BaseRepository[media_models.Media]

	// ScanCandidates 以游标方式遍历除 excludeID 外的全部媒体（仅打分字段），返回已遍历数量
	ScanCandidates(ctx context.Context, excludeID primitive.ObjectID, fn func(*media_models.Media) error) (int, error)
	// FindByIDs 按给定顺序取回完整文档，缺失的 id 被跳过
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*media_models.Media, error)
	// AggregateRelated 在数据库端完成相关度打分、排序与截断
	AggregateRelated(ctx context.Context, ref *media_models.Media, limit int) ([]*media_models.Media, error)

	Search(ctx context.Context, query string, limit int64) ([]*media_models.Media, error)

	AddLike(ctx context.Context, mediaID, userID primitive.ObjectID) error
	RemoveLike(ctx context.Context, mediaID, userID primitive.ObjectID) error

	PushComment(ctx context.Context, mediaID primitive.ObjectID, comment *media_models.Comment) (bool, error)
	PullComment(ctx context.Context, mediaID, commentID primitive.ObjectID) (bool, error)
	GetComments(ctx context.Context, mediaID primitive.ObjectID) ([]media_models.CommentView, error)
}

type RelatedMediaUsecase interface {
	GetRelatedMedia(ctx context.Context, mediaID string) ([]*media_models.Media, error)
}

type MediaUsecase interface {
	GetByID(ctx context.Context, mediaID string) (*media_models.Media, error)
	Create(ctx context.Context, userID string, req *media_models.CreateMediaRequest) (*media_models.Media, error)
	Delete(ctx context.Context, mediaID, userID string) error
	Search(ctx context.Context, query string) ([]*media_models.Media, error)
	ListByUploader(ctx context.Context, userID string, page, pageSize int) ([]*media_models.Media, int64, error)
	ToggleLike(ctx context.Context, mediaID, userID string) (bool, error)
}

type CommentUsecase interface {
	List(ctx context.Context, mediaID string) ([]media_models.CommentView, error)
	Create(ctx context.Context, mediaID, userID, content string) (*media_models.Comment, error)
	Delete(ctx context.Context, mediaID, commentID, userID string) error
}
