package usecase_media

import (
	"context"
	"fmt"
	"time"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_interface"
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/metrics"
	"github.com/pinora-app/pinora-backend/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 相关媒体计算方式
const (
	// RankingModeStream 游标流式读取候选，在服务内打分并用有界堆取前 N
	RankingModeStream = "stream"
	// RankingModePipeline 由数据库聚合管道完成打分、排序与截断
	RankingModePipeline = "pipeline"
)

type RelatedMediaUsecase struct {
	repo    media_interface.MediaRepository
	mode    string
	limit   int
	timeout time.Duration
}

func NewRelatedMediaUsecase(
	repo media_interface.MediaRepository,
	mode string,
	limit int,
	timeout time.Duration,
) media_interface.RelatedMediaUsecase {
	if mode != RankingModePipeline {
		mode = RankingModeStream
	}
	if limit <= 0 || limit > MaxRelated {
		limit = MaxRelated
	}
	return &RelatedMediaUsecase{
		repo:    repo,
		mode:    mode,
		limit:   limit,
		timeout: timeout,
	}
}

func (uc *RelatedMediaUsecase) GetRelatedMedia(ctx context.Context, mediaID string) (result []*media_models.Media, err error) {
	start := time.Now()
	scanned := -1
	defer func() {
		metrics.RecordRelatedMedia(uc.mode, domain.ErrorKind(err), scanned, time.Since(start))
	}()

	refID, err := usecase.ParseObjectID("media id", mediaID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	ref, err := uc.repo.GetByID(ctx, refID)
	if err != nil {
		return nil, err
	}

	switch uc.mode {
	case RankingModePipeline:
		result, err = uc.repo.AggregateRelated(ctx, ref, uc.limit)
		if err != nil {
			return nil, err
		}
	default:
		collector := newRelatedCollector(ref, uc.limit)
		scanned, err = uc.repo.ScanCandidates(ctx, ref.ID, func(m *media_models.Media) error {
			collector.offer(m)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("rank related media: %w", err)
		}
		result, err = uc.hydrate(ctx, collector.result())
		if err != nil {
			return nil, err
		}
	}

	if result == nil {
		result = []*media_models.Media{}
	}

	logging.Ctx(ctx).Debug().
		Str("media_id", mediaID).
		Str("mode", uc.mode).
		Int("scanned", scanned).
		Int("returned", len(result)).
		Msg("related media ranked")

	return result, nil
}

// hydrate 取回入选候选的完整文档，保持排名顺序
func (uc *RelatedMediaUsecase) hydrate(ctx context.Context, ranked []*media_models.Media) ([]*media_models.Media, error) {
	if len(ranked) == 0 {
		return ranked, nil
	}
	ids := make([]primitive.ObjectID, len(ranked))
	for i, m := range ranked {
		ids[i] = m.ID
	}
	full, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load related media: %w", err)
	}
	return full, nil
}
