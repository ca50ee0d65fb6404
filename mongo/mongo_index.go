package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Media Collection
	mediaCollection := db.Collection(domain.CollectionMedia)
	createIndex(ctx, mediaCollection, bson.D{{Key: "uploaded_by", Value: 1}}, "uploaded_by")
	createIndex(ctx, mediaCollection, bson.D{{Key: "category", Value: 1}}, "category")
	createIndex(ctx, mediaCollection, bson.D{{Key: "tags", Value: 1}}, "tags")
	createIndex(ctx, mediaCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
	createIndex(ctx, mediaCollection, bson.D{{Key: "comments._id", Value: 1}}, "comments_id")
	// 复合索引优化（个人主页按时间倒序）
	createIndex(ctx, mediaCollection, bson.D{
		{Key: "uploaded_by", Value: 1},
		{Key: "created_at", Value: -1},
	}, "uploaded_by_created_compound")
	// 搜索：每个集合只能有一个文本索引
	createTextIndex(ctx, mediaCollection, bson.D{
		{Key: "title", Value: "text"},
		{Key: "description", Value: "text"},
		{Key: "tags", Value: "text"},
		{Key: "title_pinyin", Value: "text"},
	}, "media_text_search")

	// User Collection
	userCollection := db.Collection(domain.CollectionUser)
	createUniqueIndex(ctx, userCollection, bson.D{{Key: "email", Value: 1}}, "email_unique")
	createIndex(ctx, userCollection, bson.D{{Key: "followers", Value: 1}}, "followers")
	createIndex(ctx, userCollection, bson.D{{Key: "following", Value: 1}}, "following")
}

func createIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	applyIndex(ctx, collection, indexModel, name)
}

func createUniqueIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(true),
	}
	applyIndex(ctx, collection, indexModel, name)
}

func applyIndex(ctx context.Context, collection Collection, model mongo.IndexModel, name string) {
	if _, err := collection.Indexes().CreateOne(ctx, model); err != nil {
		logging.Warn().Err(err).Str("index", name).Msg("创建索引失败")
		return
	}
	logging.Debug().Str("index", name).Msg("索引创建成功")
}

// 创建文本索引，集合中已有文本索引时跳过
func createTextIndex(
	ctx context.Context,
	collection Collection,
	keys bson.D,
	name string,
) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}

	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("检查索引失败，仍尝试创建文本索引")
		applyIndex(ctx, collection, indexModel, name)
		return
	}

	for _, spec := range specs {
		if spec.Name == name {
			logging.Debug().Str("index", name).Msg("索引已存在，跳过创建")
			return
		}
		if isTextIndex(spec.KeysDocument) {
			logging.Warn().
				Str("existing", spec.Name).
				Str("index", name).
				Msg("集合已存在文本索引，跳过创建新的文本索引")
			return
		}
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if strings.Contains(err.Error(), "language override unsupported") {
			logging.Warn().Str("index", name).Msg("集合已存在其他文本索引，无法创建")
			return
		}
		logging.Warn().Err(err).Str("index", name).Msg("创建索引失败")
		return
	}
	logging.Debug().Str("index", name).Msg("索引创建成功")
}

func isTextIndex(keysDoc bson.Raw) bool {
	var specKeys bson.D
	if err := bson.Unmarshal(keysDoc, &specKeys); err != nil {
		return false
	}
	for _, key := range specKeys {
		if key.Value == "text" {
			return true
		}
	}
	return false
}
