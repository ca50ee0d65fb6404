package usecase_media_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/domain/mocks"
	"github.com/pinora-app/pinora-backend/usecase/usecase_media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mediaFixture struct {
	media *mocks.MediaRepository
	users *mocks.UserRepository
	host  *mocks.MediaHost
	uc    *usecase_media.MediaUsecase
}

func newMediaFixture(t *testing.T) *mediaFixture {
	f := &mediaFixture{
		media: mocks.NewMediaRepository(t),
		users: mocks.NewUserRepository(t),
		host:  mocks.NewMediaHost(t),
	}
	f.uc = usecase_media.NewMediaUsecase(f.media, f.users, f.host, time.Second).(*usecase_media.MediaUsecase)
	return f
}

func TestMediaCreate(t *testing.T) {
	uploader := primitive.NewObjectID()

	t.Run("normalizes labels and records the upload", func(t *testing.T) {
		f := newMediaFixture(t)
		newID := primitive.NewObjectID()
		f.users.On("Exists", mock.Anything, uploader).Return(true, nil).Once()
		f.media.On("Create", mock.Anything, mock.AnythingOfType("*media_models.Media")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*media_models.Media).ID = newID
			}).
			Return(nil).Once()
		f.users.On("AddUploadedMedia", mock.Anything, uploader, newID).Return(nil).Once()

		created, err := f.uc.Create(context.Background(), uploader.Hex(), &media_models.CreateMediaRequest{
			Title:    "  山间 Sunset ",
			MediaURL: "https://ik.example.com/pins/clip.MP4?tr=w-300",
			Category: "  Nature ",
			Tags:     []string{"Beach", "beach ", "", "Golden  Hour"},
		})

		require.NoError(t, err)
		assert.Equal(t, newID, created.ID)
		assert.Equal(t, "山间 Sunset", created.Title)
		assert.Equal(t, "nature", created.Category)
		assert.Equal(t, []string{"beach", "golden hour"}, created.Tags)
		assert.Equal(t, media_models.FileTypeVideo, created.FileType)
		assert.True(t, created.Controls)
		require.NotNil(t, created.Transformation)
		assert.Equal(t, media_models.DefaultTransformationWidth, created.Transformation.Width)
		assert.Equal(t, media_models.DefaultTransformationHeight, created.Transformation.Height)
		assert.Equal(t, []string{"shan", "jian"}, created.TitlePinyin)
		assert.Equal(t, uploader, created.UploadedBy)
		assert.NotNil(t, created.Likes)
		assert.NotNil(t, created.Comments)
	})

	t.Run("unknown extension is treated as an image", func(t *testing.T) {
		f := newMediaFixture(t)
		f.users.On("Exists", mock.Anything, uploader).Return(true, nil).Once()
		f.media.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		f.users.On("AddUploadedMedia", mock.Anything, uploader, mock.Anything).Return(nil).Once()

		created, err := f.uc.Create(context.Background(), uploader.Hex(), &media_models.CreateMediaRequest{
			Title:    "Pin",
			MediaURL: "https://ik.example.com/abc123",
			Category: "art",
		})

		require.NoError(t, err)
		assert.Equal(t, media_models.FileTypeImage, created.FileType)
		assert.Nil(t, created.Transformation)
		assert.Nil(t, created.TitlePinyin)
	})

	t.Run("rejects invalid input before touching storage", func(t *testing.T) {
		cases := map[string]*media_models.CreateMediaRequest{
			"nil request":    nil,
			"blank title":    {Title: "   ", MediaURL: "https://x/a.png", Category: "art"},
			"missing url":    {Title: "a", Category: "art"},
			"blank category": {Title: "a", MediaURL: "https://x/a.png", Category: " "},
			"bad quality": {
				Title: "a", MediaURL: "https://x/a.png", Category: "art",
				Transformation: &media_models.Transformation{Quality: 101},
			},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				f := newMediaFixture(t)
				_, err := f.uc.Create(context.Background(), uploader.Hex(), req)
				assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			})
		}
	})

	t.Run("unknown uploader", func(t *testing.T) {
		f := newMediaFixture(t)
		f.users.On("Exists", mock.Anything, uploader).Return(false, nil).Once()

		_, err := f.uc.Create(context.Background(), uploader.Hex(), &media_models.CreateMediaRequest{
			Title: "a", MediaURL: "https://x/a.png", Category: "art",
		})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.media.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestMediaDelete(t *testing.T) {
	owner := primitive.NewObjectID()
	media := &media_models.Media{ID: primitive.NewObjectID(), UploadedBy: owner, FileID: "file_123"}

	t.Run("only the uploader may delete", func(t *testing.T) {
		f := newMediaFixture(t)
		f.media.On("GetByID", mock.Anything, media.ID).Return(media, nil).Once()

		err := f.uc.Delete(context.Background(), media.ID.Hex(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.host.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
		f.media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("removes hosted file then document", func(t *testing.T) {
		f := newMediaFixture(t)
		f.media.On("GetByID", mock.Anything, media.ID).Return(media, nil).Once()
		f.host.On("DeleteFile", mock.Anything, "file_123").Return(nil).Once()
		f.media.On("Delete", mock.Anything, media.ID).Return(nil).Once()
		f.users.On("RemoveUploadedMedia", mock.Anything, owner, media.ID).
			Return(fmt.Errorf("%w: user", domain.ErrNotFound)).Once()

		require.NoError(t, f.uc.Delete(context.Background(), media.ID.Hex(), owner.Hex()))
	})

	t.Run("hosted file failure keeps the document", func(t *testing.T) {
		f := newMediaFixture(t)
		f.media.On("GetByID", mock.Anything, media.ID).Return(media, nil).Once()
		f.host.On("DeleteFile", mock.Anything, "file_123").
			Return(fmt.Errorf("%w: media host unavailable", domain.ErrInternal)).Once()

		err := f.uc.Delete(context.Background(), media.ID.Hex(), owner.Hex())

		assert.ErrorIs(t, err, domain.ErrInternal)
		f.media.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestMediaToggleLike(t *testing.T) {
	user := primitive.NewObjectID()

	t.Run("likes when not yet liked", func(t *testing.T) {
		f := newMediaFixture(t)
		media := &media_models.Media{ID: primitive.NewObjectID(), Likes: []primitive.ObjectID{}}
		f.media.On("GetByID", mock.Anything, media.ID).Return(media, nil).Once()
		f.users.On("Exists", mock.Anything, user).Return(true, nil).Once()
		f.media.On("AddLike", mock.Anything, media.ID, user).Return(nil).Once()
		f.users.On("AddLikedMedia", mock.Anything, user, media.ID).Return(nil).Once()

		liked, err := f.uc.ToggleLike(context.Background(), media.ID.Hex(), user.Hex())

		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("unlikes when already liked", func(t *testing.T) {
		f := newMediaFixture(t)
		media := &media_models.Media{ID: primitive.NewObjectID(), Likes: []primitive.ObjectID{user}}
		f.media.On("GetByID", mock.Anything, media.ID).Return(media, nil).Once()
		f.users.On("Exists", mock.Anything, user).Return(true, nil).Once()
		f.media.On("RemoveLike", mock.Anything, media.ID, user).Return(nil).Once()
		f.users.On("RemoveLikedMedia", mock.Anything, user, media.ID).Return(nil).Once()

		liked, err := f.uc.ToggleLike(context.Background(), media.ID.Hex(), user.Hex())

		require.NoError(t, err)
		assert.False(t, liked)
	})
}

func TestMediaListByUploader(t *testing.T) {
	f := newMediaFixture(t)
	uploader := primitive.NewObjectID()
	filter := bson.M{"uploaded_by": uploader}
	items := []*media_models.Media{{ID: primitive.NewObjectID()}}
	f.media.On("Count", mock.Anything, filter).Return(int64(21), nil).Once()
	f.media.On("GetPaginatedSorted", mock.Anything, filter, int64(20), int64(20), "created_at", false).
		Return(items, nil).Once()

	got, total, err := f.uc.ListByUploader(context.Background(), uploader.Hex(), 2, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	assert.Equal(t, items, got)
}
