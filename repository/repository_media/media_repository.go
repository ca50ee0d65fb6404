package repository_media

import (
	"context"
	"fmt"
	"strings"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/domain/domain_util"
	"github.com/pinora-app/pinora-backend/mongo"
	"github.com/pinora-app/pinora-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mediaRepository struct {
	*repository.BaseMongoRepository[media_models.Media]
	db         mongo.Database
	collection string
}

func NewMediaRepository(db mongo.Database, collection string) media_interface.MediaRepository {
	return &mediaRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[media_models.Media](db, collection),
		db:                  db,
		collection:          collection,
	}
}

// CandidateProjection 相关度打分与排序所需的字段
var CandidateProjection = bson.M{
	"_id":         1,
	"uploaded_by": 1,
	"category":    1,
	"tags":        1,
	"title":       1,
	"created_at":  1,
}

func (r *mediaRepository) ScanCandidates(
	ctx context.Context,
	excludeID primitive.ObjectID,
	fn func(*media_models.Media) error,
) (int, error) {
	coll := r.db.Collection(r.collection)

	// 只读取打分字段，入选结果由 FindByIDs 取回完整文档
	cursor, err := coll.Find(
		ctx,
		bson.M{"_id": bson.M{"$ne": excludeID}},
		options.Find().SetProjection(CandidateProjection),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: candidate scan failed: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	scanned := 0
	for cursor.Next(ctx) {
		var m media_models.Media
		if err := cursor.Decode(&m); err != nil {
			return scanned, fmt.Errorf("%w: candidate decode failed: %w", domain.ErrInternal, err)
		}
		scanned++
		if err := fn(&m); err != nil {
			return scanned, err
		}
	}
	if err := cursor.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return scanned, ctxErr
		}
		return scanned, fmt.Errorf("%w: candidate cursor failed: %w", domain.ErrInternal, err)
	}

	return scanned, nil
}

// FindByIDs 按 ids 的顺序返回完整文档，已不存在的 id 被跳过
func (r *mediaRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*media_models.Media, error) {
	if len(ids) == 0 {
		return []*media_models.Media{}, nil
	}

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("%w: media lookup failed: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	found := make([]*media_models.Media, 0, len(ids))
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("%w: media decode failed: %w", domain.ErrInternal, err)
	}

	byID := make(map[primitive.ObjectID]*media_models.Media, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}
	results := make([]*media_models.Media, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			results = append(results, m)
		}
	}

	return results, nil
}

func (r *mediaRepository) AggregateRelated(
	ctx context.Context,
	ref *media_models.Media,
	limit int,
) ([]*media_models.Media, error) {
	if ref == nil {
		return nil, fmt.Errorf("%w: reference media is nil", domain.ErrInvalidArgument)
	}

	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, BuildRelatedPipeline(ref, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: related aggregation failed: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	results := make([]*media_models.Media, 0, limit)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: related decode failed: %w", domain.ErrInternal, err)
	}

	return results, nil
}

// BuildRelatedPipeline 构建相关媒体打分管道:
// 3*同创作者 + 2*同分类 + 共同标签数 + 0.5*共同标题词数，过滤 score>0 后排序截断。
// $toLower 只处理 ASCII，非 ASCII 标题的大小写折叠与 Go 侧打分不同。
// 参考媒体一侧的值都包在 $literal 里，以 $ 开头的标签或词不会被当成字段路径或变量。
func BuildRelatedPipeline(ref *media_models.Media, limit int) mongo.Pipeline {
	refTags := ref.Tags
	if refTags == nil {
		refTags = []string{}
	}
	refTokens := domain_util.TitleTokens(ref.Title)

	candidateTokens := bson.M{
		"$filter": bson.M{
			"input": bson.M{"$split": bson.A{
				bson.M{"$toLower": bson.M{"$ifNull": bson.A{"$title", ""}}},
				" ",
			}},
			"as":   "token",
			"cond": bson.M{"$ne": bson.A{"$$token", ""}},
		},
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": bson.M{"$ne": ref.ID}}}},
		{{Key: "$addFields", Value: bson.M{
			"score": bson.M{"$add": bson.A{
				bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$uploaded_by", ref.UploadedBy}}, 3, 0}},
				bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$category", literal(ref.Category)}}, 2, 0}},
				bson.M{"$size": bson.M{"$setIntersection": bson.A{
					bson.M{"$ifNull": bson.A{"$tags", bson.A{}}},
					literal(refTags),
				}}},
				bson.M{"$multiply": bson.A{
					0.5,
					bson.M{"$size": bson.M{"$setIntersection": bson.A{candidateTokens, literal(refTokens)}}},
				}},
			}},
		}}},
		{{Key: "$match", Value: bson.M{"score": bson.M{"$gt": 0}}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "score", Value: -1},
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.M{"score": 0}}},
	}
}

func literal(v interface{}) bson.M {
	return bson.M{"$literal": v}
}

func (r *mediaRepository) Search(ctx context.Context, query string, limit int64) ([]*media_models.Media, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*media_models.Media{}, nil
	}

	opts := options.Find().
		SetProjection(bson.M{"text_score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{{Key: "text_score", Value: bson.M{"$meta": "textScore"}}}).
		SetLimit(limit)

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{"$text": bson.M{"$search": query}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: search failed: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	results := make([]*media_models.Media, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("%w: search decode failed: %w", domain.ErrInternal, err)
	}

	return results, nil
}

func (r *mediaRepository) AddLike(ctx context.Context, mediaID, userID primitive.ObjectID) error {
	return r.updateArray(ctx, mediaID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (r *mediaRepository) RemoveLike(ctx context.Context, mediaID, userID primitive.ObjectID) error {
	return r.updateArray(ctx, mediaID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (r *mediaRepository) updateArray(ctx context.Context, mediaID primitive.ObjectID, update bson.M) error {
	res, err := r.db.Collection(r.collection).UpdateOne(ctx, bson.M{"_id": mediaID}, update)
	if err != nil {
		return fmt.Errorf("%w: update media failed: %w", domain.ErrInternal, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: media %s", domain.ErrNotFound, mediaID.Hex())
	}
	return nil
}

func (r *mediaRepository) PushComment(
	ctx context.Context,
	mediaID primitive.ObjectID,
	comment *media_models.Comment,
) (bool, error) {
	if comment == nil {
		return false, fmt.Errorf("%w: comment is nil", domain.ErrInvalidArgument)
	}
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	if comment.Likes == nil {
		comment.Likes = []primitive.ObjectID{}
	}

	res, err := r.db.Collection(r.collection).UpdateOne(
		ctx,
		bson.M{"_id": mediaID},
		bson.M{"$push": bson.M{"comments": comment}},
	)
	if err != nil {
		return false, fmt.Errorf("%w: push comment failed: %w", domain.ErrInternal, err)
	}

	return res.MatchedCount > 0, nil
}

func (r *mediaRepository) PullComment(ctx context.Context, mediaID, commentID primitive.ObjectID) (bool, error) {
	res, err := r.db.Collection(r.collection).UpdateOne(
		ctx,
		bson.M{"_id": mediaID},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": commentID}}},
	)
	if err != nil {
		return false, fmt.Errorf("%w: pull comment failed: %w", domain.ErrInternal, err)
	}

	return res.ModifiedCount > 0, nil
}

func (r *mediaRepository) GetComments(ctx context.Context, mediaID primitive.ObjectID) ([]media_models.CommentView, error) {
	cursor, err := r.db.Collection(r.collection).Aggregate(ctx, BuildCommentsPipeline(mediaID))
	if err != nil {
		return nil, fmt.Errorf("%w: comments aggregation failed: %w", domain.ErrInternal, err)
	}
	defer cursor.Close(ctx)

	comments := make([]media_models.CommentView, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("%w: comments decode failed: %w", domain.ErrInternal, err)
	}

	return comments, nil
}

// BuildCommentsPipeline 展开内嵌评论并关联作者公开信息，保持评论写入顺序
func BuildCommentsPipeline(mediaID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": mediaID}}},
		{{Key: "$unwind", Value: "$comments"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$comments"}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         domain.CollectionUser,
			"localField":   "user",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$author",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":        1,
			"content":    1,
			"likes":      1,
			"created_at": 1,
			"user": bson.M{
				"_id":           "$author._id",
				"firstname":     "$author.firstname",
				"lastname":      "$author.lastname",
				"profile_image": "$author.profile_image",
			},
		}}},
	}
}
