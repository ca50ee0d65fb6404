package user_interface

import (
	"context"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository 用户文档的持久化操作，数组字段均以 $addToSet/$pull 维护
type UserRepository interface {
	domain.BaseRepository[user_models.User]

	AddFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error
	RemoveFollow(ctx context.Context, followerID, targetID primitive.ObjectID) error

	AddSavedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error
	RemoveSavedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) (bool, error)

	AddLikedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error
	RemoveLikedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error

	AddUploadedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error
	RemoveUploadedMedia(ctx context.Context, userID, mediaID primitive.ObjectID) error

	ClearProfileImage(ctx context.Context, userID primitive.ObjectID) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*user_models.User, error)
	ToggleFollow(ctx context.Context, currentUserID, targetUserID string) (bool, error)
	ToggleSave(ctx context.Context, mediaID, userID string) (bool, error)
	Unsave(ctx context.Context, mediaID, userID string) (bool, error)
	RemoveProfileImage(ctx context.Context, userID string) error
}
