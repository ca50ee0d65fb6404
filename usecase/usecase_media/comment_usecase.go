package usecase_media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxCommentLength 评论内容最大字符数
const MaxCommentLength = 2000

type CommentUsecase struct {
	mediaRepo media_interface.MediaRepository
	timeout   time.Duration
}

func NewCommentUsecase(mediaRepo media_interface.MediaRepository, timeout time.Duration) media_interface.CommentUsecase {
	return &CommentUsecase{
		mediaRepo: mediaRepo,
		timeout:   timeout,
	}
}

func (uc *CommentUsecase) List(ctx context.Context, mediaID string) ([]media_models.CommentView, error) {
	mid, err := usecase.ParseObjectID("media id", mediaID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	exists, err := uc.mediaRepo.Exists(ctx, mid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: media %s", domain.ErrNotFound, mediaID)
	}

	return uc.mediaRepo.GetComments(ctx, mid)
}

func (uc *CommentUsecase) Create(ctx context.Context, mediaID, userID, content string) (*media_models.Comment, error) {
	mid, err := usecase.ParseObjectID("media id", mediaID)
	if err != nil {
		return nil, err
	}
	uid, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment content is required", domain.ErrInvalidArgument)
	}
	if len([]rune(content)) > MaxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", domain.ErrInvalidArgument, MaxCommentLength)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	comment := &media_models.Comment{
		ID:        primitive.NewObjectID(),
		Content:   content,
		User:      uid,
		Likes:     []primitive.ObjectID{},
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	matched, err := uc.mediaRepo.PushComment(ctx, mid, comment)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, fmt.Errorf("%w: media %s", domain.ErrNotFound, mediaID)
	}

	return comment, nil
}

// Delete 只有评论作者可以删除
func (uc *CommentUsecase) Delete(ctx context.Context, mediaID, commentID, userID string) error {
	mid, err := usecase.ParseObjectID("media id", mediaID)
	if err != nil {
		return err
	}
	cid, err := usecase.ParseObjectID("comment id", commentID)
	if err != nil {
		return err
	}
	uid, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	media, err := uc.mediaRepo.GetByID(ctx, mid)
	if err != nil {
		return err
	}
	comment := media.FindComment(cid)
	if comment == nil {
		return fmt.Errorf("%w: comment %s", domain.ErrNotFound, commentID)
	}
	if comment.User != uid {
		return fmt.Errorf("%w: only the author can delete this comment", domain.ErrForbidden)
	}

	removed, err := uc.mediaRepo.PullComment(ctx, mid, cid)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: comment %s", domain.ErrNotFound, commentID)
	}

	return nil
}
