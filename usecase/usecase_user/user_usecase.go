package usecase_user

import (
	"context"
	"fmt"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_user/user_models"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/usecase"
)

type UserUsecase struct {
	*usecase.BaseUsecaseImpl[user_models.User]
	userRepo  user_interface.UserRepository
	mediaRepo media_interface.MediaRepository
	host      domain.MediaHost
	timeout   time.Duration
}

func NewUserUsecase(
	userRepo user_interface.UserRepository,
	mediaRepo media_interface.MediaRepository,
	host domain.MediaHost,
	timeout time.Duration,
) user_interface.UserUsecase {
	return &UserUsecase{
		BaseUsecaseImpl: usecase.NewBaseUsecase[user_models.User](userRepo, timeout),
		userRepo:        userRepo,
		mediaRepo:       mediaRepo,
		host:            host,
		timeout:         timeout,
	}
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID string) (*user_models.User, error) {
	return uc.GetByID(ctx, userID)
}

// ToggleFollow 已关注则取消，否则关注；返回操作后的关注状态
func (uc *UserUsecase) ToggleFollow(ctx context.Context, currentUserID, targetUserID string) (bool, error) {
	current, err := usecase.ParseObjectID("user id", currentUserID)
	if err != nil {
		return false, err
	}
	target, err := usecase.ParseObjectID("target user id", targetUserID)
	if err != nil {
		return false, err
	}
	if current == target {
		return false, fmt.Errorf("%w: cannot follow yourself", domain.ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepo.GetByID(ctx, current)
	if err != nil {
		return false, err
	}
	exists, err := uc.userRepo.Exists(ctx, target)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: user %s", domain.ErrNotFound, targetUserID)
	}

	if user.IsFollowing(target) {
		if err := uc.userRepo.RemoveFollow(ctx, current, target); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.userRepo.AddFollow(ctx, current, target); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleSave 已收藏则取消，否则收藏；返回操作后的收藏状态
func (uc *UserUsecase) ToggleSave(ctx context.Context, mediaID, userID string) (bool, error) {
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

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return false, err
	}

	if user.HasSaved(mid) {
		if _, err := uc.userRepo.RemoveSavedMedia(ctx, uid, mid); err != nil {
			return false, err
		}
		return false, nil
	}

	exists, err := uc.mediaRepo.Exists(ctx, mid)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%w: media %s", domain.ErrNotFound, mediaID)
	}

	if err := uc.userRepo.AddSavedMedia(ctx, uid, mid); err != nil {
		return false, err
	}
	return true, nil
}

// Unsave 取消收藏，返回该媒体此前是否已收藏
func (uc *UserUsecase) Unsave(ctx context.Context, mediaID, userID string) (bool, error) {
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

	return uc.userRepo.RemoveSavedMedia(ctx, uid, mid)
}

// RemoveProfileImage 先删除托管服务上的头像文件，再清空资料中的引用
func (uc *UserUsecase) RemoveProfileImage(ctx context.Context, userID string) error {
	uid, err := usecase.ParseObjectID("user id", userID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if user.ProfileImage == nil {
		return fmt.Errorf("%w: user has no profile image", domain.ErrNotFound)
	}

	if user.ProfileImage.Identifier != "" {
		if err := uc.host.DeleteFile(ctx, user.ProfileImage.Identifier); err != nil {
			return fmt.Errorf("delete hosted profile image: %w", err)
		}
	}

	if err := uc.userRepo.ClearProfileImage(ctx, uid); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().Str("user_id", userID).Msg("profile image removed")
	return nil
}
