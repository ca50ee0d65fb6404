package media_models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FileTypeImage = "image"
	FileTypeVideo = "video"
)

// 视频默认转换尺寸（竖屏）
const (
	DefaultTransformationWidth  = 1080
	DefaultTransformationHeight = 1920
)

// Media 用户上传的图片/视频（pin）
type Media struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Title          string               `bson:"title" json:"title"`
	FileType       string               `bson:"file_type" json:"file_type"`
	Description    string               `bson:"description,omitempty" json:"description,omitempty"`
	MediaURL       string               `bson:"media_url" json:"media_url"`
	ThumbnailURL   string               `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Controls       bool                 `bson:"controls" json:"controls"`
	Transformation *Transformation      `bson:"transformation,omitempty" json:"transformation,omitempty"`
	UploadedBy     primitive.ObjectID   `bson:"uploaded_by" json:"uploaded_by"` // 创作者
	Category       string               `bson:"category" json:"category"`       // 已规范化（小写）
	Tags           []string             `bson:"tags" json:"tags"`               // 已规范化（小写、去重）
	Likes          []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments       []Comment            `bson:"comments" json:"comments"`
	FileID         string               `bson:"file_id,omitempty" json:"file_id,omitempty"` // 媒体托管服务中的文件标识
	TitlePinyin    []string             `bson:"title_pinyin,omitempty" json:"title_pinyin,omitempty"`
	CreatedAt      primitive.DateTime   `bson:"created_at" json:"created_at"`
	UpdatedAt      primitive.DateTime   `bson:"updated_at" json:"updated_at"`
}

type Transformation struct {
	Height  int `bson:"height" json:"height"`
	Width   int `bson:"width" json:"width"`
	Quality int `bson:"quality,omitempty" json:"quality,omitempty"`
}

// Comment 内嵌在 Media 文档中的评论
type Comment struct {
	ID        primitive.ObjectID   `bson:"_id" json:"_id"`
	Content   string               `bson:"content" json:"content"`
	User      primitive.ObjectID   `bson:"user" json:"user"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt primitive.DateTime   `bson:"created_at" json:"created_at"`
}

// CommentAuthor 评论作者的公开信息（$lookup 结果）
type CommentAuthor struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Firstname    string             `bson:"firstname" json:"firstname"`
	Lastname     string             `bson:"lastname,omitempty" json:"lastname,omitempty"`
	ProfileImage *ProfileImageRef   `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
}

type ProfileImageRef struct {
	ImageURL   string `bson:"image_url" json:"image_url"`
	Identifier string `bson:"identifier" json:"identifier"`
}

// CommentView 带作者信息的评论
type CommentView struct {
	ID        primitive.ObjectID   `bson:"_id" json:"_id"`
	Content   string               `bson:"content" json:"content"`
	User      *CommentAuthor       `bson:"user" json:"user"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	CreatedAt primitive.DateTime   `bson:"created_at" json:"created_at"`
}

// CreateMediaRequest 登记已上传到托管服务的媒体
type CreateMediaRequest struct {
	Title          string          `json:"title" binding:"required"`
	Description    string          `json:"description"`
	MediaURL       string          `json:"media_url" binding:"required,url"`
	ThumbnailURL   string          `json:"thumbnail_url" binding:"omitempty,url"`
	Controls       *bool           `json:"controls"`
	Transformation *Transformation `json:"transformation"`
	Category       string          `json:"category" binding:"required"`
	Tags           []string        `json:"tags"`
	FileID         string          `json:"file_id"`
}

// IsLikedBy 判断指定用户是否已点赞
func (m *Media) IsLikedBy(userID primitive.ObjectID) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment 按ID查找评论
func (m *Media) FindComment(commentID primitive.ObjectID) *Comment {
	for i := range m.Comments {
		if m.Comments[i].ID == commentID {
			return &m.Comments[i]
		}
	}
	return nil
}
