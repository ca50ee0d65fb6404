package usecase_media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_interface"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/usecase"
	"github.com/pinora-app/pinora-backend/util/textnorm"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchLimit 搜索结果上限
const SearchLimit = 50

type MediaUsecase struct {
	*usecase.BaseUsecaseImpl[media_models.Media]
	mediaRepo media_interface.MediaRepository
	userRepo  user_interface.UserRepository
	host      domain.MediaHost
	timeout   time.Duration
}

func NewMediaUsecase(
	mediaRepo media_interface.MediaRepository,
	userRepo user_interface.UserRepository,
	host domain.MediaHost,
	timeout time.Duration,
) media_interface.MediaUsecase {
	return &MediaUsecase{
		BaseUsecaseImpl: usecase.NewBaseUsecase[media_models.Media](mediaRepo, timeout),
		mediaRepo:       mediaRepo,
		userRepo:        userRepo,
		host:            host,
		timeout:         timeout,
	}
}

func (uc *MediaUsecase) Create(
	ctx context.Context,
	userID string,
	req *media_models.CreateMediaRequest,
) (*media_models.Media, error) {
	uploaderID, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return nil, err
	}
	media, err := buildMedia(uploaderID, req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	exists, err := uc.userRepo.Exists(ctx, uploaderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}

	if err := uc.mediaRepo.Create(ctx, media); err != nil {
		return nil, err
	}
	if err := uc.userRepo.AddUploadedMedia(ctx, uploaderID, media.ID); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("media_id", media.ID.Hex()).
		Str("uploaded_by", userID).
		Str("file_type", media.FileType).
		Msg("media created")

	return media, nil
}

// buildMedia 校验并规范化创建请求
func buildMedia(uploaderID primitive.ObjectID, req *media_models.CreateMediaRequest) (*media_models.Media, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", domain.ErrInvalidArgument)
	}

	title := textnorm.Title(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidArgument)
	}
	if req.MediaURL == "" {
		return nil, fmt.Errorf("%w: media_url is required", domain.ErrInvalidArgument)
	}
	category := textnorm.Label(req.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidArgument)
	}

	fileType := textnorm.MediaKind(req.MediaURL)
	if fileType == "" {
		// 托管服务的 URL 常不带扩展名，按图片处理
		fileType = media_models.FileTypeImage
	}

	controls := true
	if req.Controls != nil {
		controls = *req.Controls
	}

	var transformation *media_models.Transformation
	if req.Transformation != nil {
		t := *req.Transformation
		if t.Quality != 0 && (t.Quality < 1 || t.Quality > 100) {
			return nil, fmt.Errorf("%w: transformation quality must be between 1 and 100", domain.ErrInvalidArgument)
		}
		if t.Width <= 0 {
			t.Width = media_models.DefaultTransformationWidth
		}
		if t.Height <= 0 {
			t.Height = media_models.DefaultTransformationHeight
		}
		transformation = &t
	} else if fileType == media_models.FileTypeVideo {
		transformation = &media_models.Transformation{
			Width:  media_models.DefaultTransformationWidth,
			Height: media_models.DefaultTransformationHeight,
		}
	}

	return &media_models.Media{
		Title:          title,
		FileType:       fileType,
		Description:    textnorm.Title(req.Description),
		MediaURL:       req.MediaURL,
		ThumbnailURL:   req.ThumbnailURL,
		Controls:       controls,
		Transformation: transformation,
		UploadedBy:     uploaderID,
		Category:       category,
		Tags:           textnorm.Labels(req.Tags),
		Likes:          []primitive.ObjectID{},
		Comments:       []media_models.Comment{},
		FileID:         req.FileID,
		TitlePinyin:    textnorm.Pinyin(title),
	}, nil
}

func (uc *MediaUsecase) Delete(ctx context.Context, mediaID, userID string) error {
	mid, err := usecase.ParseObjectID("media id", mediaID)
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
	if media.UploadedBy != uid {
		return fmt.Errorf("%w: only the uploader can delete this media", domain.ErrForbidden)
	}

	if media.FileID != "" {
		if err := uc.host.DeleteFile(ctx, media.FileID); err != nil {
			return fmt.Errorf("delete hosted file: %w", err)
		}
	}

	if err := uc.mediaRepo.Delete(ctx, mid); err != nil {
		return err
	}
	if err := uc.userRepo.RemoveUploadedMedia(ctx, uid, mid); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	logging.Ctx(ctx).Info().Str("media_id", mediaID).Msg("media deleted")
	return nil
}

func (uc *MediaUsecase) Search(ctx context.Context, query string) ([]*media_models.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	return uc.mediaRepo.Search(ctx, query, SearchLimit)
}

func (uc *MediaUsecase) ListByUploader(
	ctx context.Context,
	userID string,
	page, pageSize int,
) ([]*media_models.Media, int64, error) {
	uid, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return nil, 0, err
	}

	return uc.GetPaginated(ctx, bson.M{"uploaded_by": uid}, page, pageSize, "created_at", false)
}

// ToggleLike 已点赞则取消，否则点赞；返回操作后的点赞状态
func (uc *MediaUsecase) ToggleLike(ctx context.Context, mediaID, userID string) (bool, error) {
	mid, err := usecase.ParseObjectID("media id", mediaID)
	if err != nil {
		return false, err
	}
	uid, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	media, err := uc.mediaRepo.GetByID(ctx, mid)
	if err != nil {
		return false, err
	}
	exists, err := uc.userRepo.Exists(ctx, uid)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
	}

	if media.IsLikedBy(uid) {
		if err := uc.mediaRepo.RemoveLike(ctx, mid, uid); err != nil {
			return false, err
		}
		if err := uc.userRepo.RemoveLikedMedia(ctx, uid, mid); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.mediaRepo.AddLike(ctx, mid, uid); err != nil {
		return false, err
	}
	if err := uc.userRepo.AddLikedMedia(ctx, uid, mid); err != nil {
		return false, err
	}
	return true, nil
}
