package user_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProviderCredentials = "credentials"
	ProviderGoogle      = "google"
)

// User 账户资料；创建与登录由外部会话服务负责
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Firstname    string               `bson:"firstname" json:"firstname"`
	Lastname     string               `bson:"lastname,omitempty" json:"lastname,omitempty"`
	Email        string               `bson:"email" json:"email"`
	About        string               `bson:"about,omitempty" json:"about,omitempty"`
	Gender       string               `bson:"gender,omitempty" json:"gender,omitempty"`
	ProfileImage *ProfileImage        `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Provider     string               `bson:"provider" json:"provider"`
	Password     string               `bson:"password,omitempty" json:"-"`
	Media        []primitive.ObjectID `bson:"media" json:"media"`
	Followers    []primitive.ObjectID `bson:"followers" json:"followers"`
	Following    []primitive.ObjectID `bson:"following" json:"following"`
	SavedMedia   []primitive.ObjectID `bson:"saved_media" json:"saved_media"`
	LikedMedia   []primitive.ObjectID `bson:"liked_media" json:"liked_media"`
	TotalLikes   int                  `bson:"total_likes" json:"total_likes"`
	CreatedAt    primitive.DateTime   `bson:"created_at" json:"created_at"`
	UpdatedAt    primitive.DateTime   `bson:"updated_at" json:"updated_at"`
}

type ProfileImage struct {
	ImageURL   string `bson:"image_url" json:"image_url"`
	Identifier string `bson:"identifier" json:"identifier"`
}

// HasSaved 判断是否已收藏指定媒体
func (u *User) HasSaved(mediaID primitive.ObjectID) bool {
	return containsID(u.SavedMedia, mediaID)
}

// IsFollowing 判断是否已关注指定用户
func (u *User) IsFollowing(userID primitive.ObjectID) bool {
	return containsID(u.Following, userID)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
