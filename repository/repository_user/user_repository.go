package repository_user

import (
	"context"
	"fmt"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_models"
	"github.com/pinora-app/pinora-backend/mongo"
	"github.com/pinora-app/pinora-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userRepository struct {
	*repository.BaseMongoRepository[user_models.User]
	db         mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) user_interface.UserRepository {
	return &userRepository{
		BaseMongoRepository: repository.NewBaseMongoRepository[user_models.User](db, collection),
		db:                  db,
		collection:          collection,
	}
}

// AddFollow follower.following += target, target.followers += follower
func (r *userRepository) AddFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if err := r.update(ctx, followerID, bson.M{"$addToSet": bson.M{"following": targetID}}); err != nil {
		return err
	}
	return r.update(ctx, targetID, bson.M{"$addToSet": bson.M{"followers": followerID}})
}

func (r *userRepository) RemoveFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if err := r.update(ctx, followerID, bson.M{"$pull": bson.M{"following": targetID}}); err != nil {
		return err
	}
	return r.update(ctx, targetID, bson.M{"$pull": bson.M{"followers": followerID}})
}

func (r *userRepository) AddSavedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"saved_media": mediaID}})
}

// RemoveSavedMedia 返回该媒体此前是否处于收藏状态
func (r *userRepository) RemoveSavedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) (bool, error) {
	res, err := r.db.Collection(r.collection).UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{
			"$pull": bson.M{"saved_media": mediaID},
			"$set":  bson.M{"updated_at": primitive.NewDateTimeFromTime(time.Now())},
		},
	)
	if err != nil {
		return false, fmt.Errorf("%w: unsave media failed: %w", domain.ErrInternal, err)
	}
	if res.MatchedCount == 0 {
		return false, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID.Hex())
	}
	return res.ModifiedCount > 0, nil
}

func (r *userRepository) AddLikedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{
		"$addToSet": bson.M{"liked_media": mediaID},
		"$inc":      bson.M{"total_likes": 1},
	})
}

func (r *userRepository) RemoveLikedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{
		"$pull": bson.M{"liked_media": mediaID},
		"$inc":  bson.M{"total_likes": -1},
	})
}

func (r *userRepository) AddUploadedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$addToSet": bson.M{"media": mediaID}})
}

func (r *userRepository) RemoveUploadedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$pull": bson.M{"media": mediaID}})
}

func (r *userRepository) ClearProfileImage(ctx context.Context, userID primitive.ObjectID) error {
	return r.update(ctx, userID, bson.M{"$unset": bson.M{"profile_image": ""}})
}

// update 通过基础仓储执行更新（自动维护 updated_at），未匹配到用户时返回 ErrNotFound
func (r *userRepository) update(ctx context.Context, userID primitive.ObjectID, update bson.M) error {
	matched, err := r.UpdateByID(ctx, userID, update)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID.Hex())
	}
	return nil
}
