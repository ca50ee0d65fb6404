package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) *BaseMongoRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

// Collection 返回底层集合，供嵌入该类型的具体 Repository 使用
func (r *BaseMongoRepository[T]) Collection() mongo.Collection {
	return r.db.Collection(r.collection)
}

// Create 创建新实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("%w: entity cannot be nil", domain.ErrInvalidArgument)
	}

	// 设置创建时间（如果实体有相关字段）
	r.setTimestamps(entity, true)

	resultID, err := r.Collection().InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("%w: failed to create entity: %w", domain.ErrInternal, err)
	}

	// 设置生成的ID
	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}

	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidArgument)
	}

	var entity T
	err := r.Collection().FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, r.collection, id.Hex())
		}
		return nil, fmt.Errorf("%w: failed to get entity: %w", domain.ErrInternal, err)
	}

	return &entity, nil
}

// UpdateByID 根据ID更新指定字段，返回是否匹配到文档
func (r *BaseMongoRepository[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, update bson.M) (bool, error) {
	if id.IsZero() {
		return false, fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidArgument)
	}

	// 添加更新时间
	now := primitive.NewDateTimeFromTime(time.Now())
	if update["$set"] != nil {
		if setUpdate, ok := update["$set"].(bson.M); ok {
			setUpdate["updated_at"] = now
		}
	} else {
		update["$set"] = bson.M{"updated_at": now}
	}

	result, err := r.Collection().UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("%w: failed to update entity: %w", domain.ErrInternal, err)
	}

	return result.MatchedCount > 0, nil
}

// Delete 删除实体
func (r *BaseMongoRepository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidArgument)
	}

	deletedCount, err := r.Collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: failed to delete entity: %w", domain.ErrInternal, err)
	}

	if deletedCount == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, r.collection, id.Hex())
	}

	return nil
}

// GetOneByFilter 根据过滤条件获取单个实体，未找到时返回 nil, nil
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	var entity T
	err := r.Collection().FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to find entity: %w", domain.ErrInternal, err)
	}

	return &entity, nil
}

// Count 统计数量
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	count, err := r.Collection().CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count entities: %w", domain.ErrInternal, err)
	}

	return count, nil
}

// GetPaginatedSorted 分页排序查询，_id 作为次级排序键保证翻页稳定
func (r *BaseMongoRepository[T]) GetPaginatedSorted(
	ctx context.Context,
	filter interface{},
	skip, limit int64,
	sortField string,
	ascending bool,
) ([]*T, error) {
	order := -1
	if ascending {
		order = 1
	}
	sort := bson.D{{Key: sortField, Value: order}}
	if sortField != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: order})
	}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	cursor, err := r.Collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find entities: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	return decodeAll[T](ctx, cursor)
}

// Exists 检查实体是否存在
func (r *BaseMongoRepository[T]) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	if id.IsZero() {
		return false, fmt.Errorf("%w: id cannot be empty", domain.ErrInvalidArgument)
	}

	count, err := r.Count(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// decodeAll 逐条解码游标，任何一条失败即整体失败
func decodeAll[T any](ctx context.Context, cursor mongo.Cursor) ([]*T, error) {
	entities := make([]*T, 0)
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, fmt.Errorf("%w: failed to decode entity: %w", domain.ErrInternal, err)
		}
		entities = append(entities, &entity)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor failed: %w", domain.ErrInternal, err)
	}

	return entities, nil
}

// 辅助方法：设置时间戳
func (r *BaseMongoRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	now := primitive.NewDateTimeFromTime(time.Now())

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		// 设置创建时间（调用方已指定时不覆盖）
		if isCreate && (fieldName == "created_at" || fieldName == "CreatedAt") && field.Type() == reflect.TypeOf(now) {
			if field.Interface().(primitive.DateTime) == 0 {
				field.Set(reflect.ValueOf(now))
			}
		}

		// 设置更新时间
		if (fieldName == "updated_at" || fieldName == "UpdatedAt") && field.Type() == reflect.TypeOf(now) {
			field.Set(reflect.ValueOf(now))
		}
	}
}

// 设置实体ID
func (r *BaseMongoRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		fieldName, _, _ := strings.Cut(fieldType.Tag.Get("bson"), ",")
		if fieldName == "" {
			fieldName = fieldType.Name
		}

		if matchesIDField(fieldName) && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
			field.Set(reflect.ValueOf(id))
			return
		}
	}
}

// 辅助函数：检查字段名是否匹配ID
func matchesIDField(name string) bool {
	return name == "_id" || name == "ID"
}
