package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口，提供标准CRUD操作
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 基础CRUD操作
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// 查询操作
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 分页查询
	GetPaginatedSorted(ctx context.Context, filter interface{}, skip, limit int64, sortField string, ascending bool) ([]*T, error)

	// 验证和检查
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
