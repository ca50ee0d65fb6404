package usecase_media

import (
	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/pinora-app/pinora-backend/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 相关度权重
const (
	SameCreatorWeight  = 3.0
	SameCategoryWeight = 2.0
	SharedTagWeight    = 1.0
	SharedTokenWeight  = 0.5

	// MaxRelated 单次返回的相关媒体上限
	MaxRelated = 12
)

// relatedReference 参考媒体预处理后的打分输入，一次请求内复用
type relatedReference struct {
	id       primitive.ObjectID
	creator  primitive.ObjectID
	category string
	tags     map[string]struct{}
	tokens   map[string]struct{}
}

func newRelatedReference(ref *media_models.Media) *relatedReference {
	return &relatedReference{
		id:       ref.ID,
		creator:  ref.UploadedBy,
		category: ref.Category,
		tags:     domain_util.StringSet(ref.Tags),
		tokens:   domain_util.StringSet(domain_util.TitleTokens(ref.Title)),
	}
}

func (r *relatedReference) score(c *media_models.Media) float64 {
	var s float64
	if c.UploadedBy == r.creator {
		s += SameCreatorWeight
	}
	if c.Category == r.category {
		s += SameCategoryWeight
	}
	s += SharedTagWeight * float64(domain_util.IntersectionSize(r.tags, c.Tags))
	s += SharedTokenWeight * float64(domain_util.IntersectionSize(r.tokens, domain_util.TitleTokens(c.Title)))
	return s
}

// Score 计算候选媒体相对参考媒体的相关度
func Score(ref, candidate *media_models.Media) float64 {
	return newRelatedReference(ref).score(candidate)
}

type scoredMedia struct {
	media *media_models.Media
	score float64
}

// moreRelated 排序规则：分数降序，创建时间降序，最后按 _id 降序保证结果确定
func moreRelated(a, b scoredMedia) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.media.CreatedAt != b.media.CreatedAt {
		return a.media.CreatedAt > b.media.CreatedAt
	}
	return a.media.ID.Hex() > b.media.ID.Hex()
}

// relatedCollector 逐条接收候选并保留最相关的 limit 条
type relatedCollector struct {
	ref  *relatedReference
	topK *domain_util.TopK[scoredMedia]
}

func newRelatedCollector(ref *media_models.Media, limit int) *relatedCollector {
	return &relatedCollector{
		ref:  newRelatedReference(ref),
		topK: domain_util.NewTopK(limit, moreRelated),
	}
}

func (c *relatedCollector) offer(m *media_models.Media) {
	if m == nil || m.ID == c.ref.id {
		return
	}
	s := c.ref.score(m)
	if s <= 0 {
		return
	}
	c.topK.Offer(scoredMedia{media: m, score: s})
}

func (c *relatedCollector) result() []*media_models.Media {
	ranked := c.topK.Sorted()
	out := make([]*media_models.Media, len(ranked))
	for i, sm := range ranked {
		out[i] = sm.media
	}
	return out
}

// RankRelated 对内存中的候选集合打分排序，返回至多 limit 条
func RankRelated(ref *media_models.Media, candidates []*media_models.Media, limit int) []*media_models.Media {
	c := newRelatedCollector(ref, limit)
	for _, m := range candidates {
		c.offer(m)
	}
	return c.result()
}
