package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// BaseUsecaseImpl 通用Usecase实现，具体 usecase 嵌入后复用查询与超时处理
type BaseUsecaseImpl[T any] struct {
	repo    domain.BaseRepository[T]
	timeout time.Duration
}

// NewBaseUsecase 创建通用Usecase实例
func NewBaseUsecase[T any](repo domain.BaseRepository[T], timeout time.Duration) *BaseUsecaseImpl[T] {
	return &BaseUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

// Timeout 返回单次操作的超时时间
func (uc *BaseUsecaseImpl[T]) Timeout() time.Duration {
	return uc.timeout
}

// GetByID 根据ID获取实体
func (uc *BaseUsecaseImpl[T]) GetByID(ctx context.Context, id string) (*T, error) {
	objID, err := ParseObjectID("id", id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.repo.GetByID(ctx, objID)
}

// GetPaginated 分页获取，page 从 1 开始；返回当前页数据与总数
func (uc *BaseUsecaseImpl[T]) GetPaginated(
	ctx context.Context,
	filter interface{},
	page, pageSize int,
	sortField string,
	ascending bool,
) ([]*T, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64((page - 1) * pageSize)
	items, err := uc.repo.GetPaginatedSorted(ctx, filter, skip, int64(pageSize), sortField, ascending)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ParseObjectID 解析 24 位十六进制ID，格式错误统一返回 ErrInvalidArgument
func ParseObjectID(field, id string) (primitive.ObjectID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidArgument, field)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid %s format", domain.ErrInvalidArgument, field)
	}

	return objID, nil
}
