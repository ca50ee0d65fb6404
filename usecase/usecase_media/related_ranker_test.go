package usecase_media

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/pinora-app/pinora-backend/domain/domain_media/media_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newMedia(creator primitive.ObjectID, category string, tags []string, title string, age time.Duration) *media_models.Media {
	return &media_models.Media{
		ID:         primitive.NewObjectID(),
		UploadedBy: creator,
		Category:   category,
		Tags:       tags,
		Title:      title,
		CreatedAt:  primitive.NewDateTimeFromTime(baseTime.Add(-age)),
	}
}

func TestScoreSignals(t *testing.T) {
	u1 := primitive.NewObjectID()
	u2 := primitive.NewObjectID()
	ref := newMedia(u1, "nature", []string{"sunset", "beach"}, "Golden Hour", 0)

	t.Run("same creator adds 3", func(t *testing.T) {
		c := newMedia(u1, "food", nil, "x", 0)
		assert.Equal(t, 3.0, Score(ref, c))
	})

	t.Run("same category adds 2", func(t *testing.T) {
		c := newMedia(u2, "nature", nil, "x", 0)
		assert.Equal(t, 2.0, Score(ref, c))
	})

	t.Run("each shared tag adds 1", func(t *testing.T) {
		c := newMedia(u2, "food", []string{"beach", "sunset", "city"}, "x", 0)
		assert.Equal(t, 2.0, Score(ref, c))
	})

	t.Run("each shared title token adds 0.5", func(t *testing.T) {
		c := newMedia(u2, "food", nil, "golden HOUR glow", 0)
		assert.Equal(t, 1.0, Score(ref, c))
	})

	t.Run("duplicate tokens and tags count once", func(t *testing.T) {
		c := newMedia(u2, "food", []string{"beach", "beach"}, "golden  golden", 0)
		assert.Equal(t, 1.5, Score(ref, c))
	})

	t.Run("nothing shared scores zero", func(t *testing.T) {
		c := newMedia(u2, "travel", []string{"city"}, "Night Market", 0)
		assert.Equal(t, 0.0, Score(ref, c))
	})

	t.Run("category compares stored values exactly", func(t *testing.T) {
		c := newMedia(u2, "Nature", nil, "x", 0)
		assert.Equal(t, 0.0, Score(ref, c))
	})
}

func TestScoreTagOverlapIsSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	vocab := []string{"a", "b", "c", "d", "e", "f"}
	pick := func() []string {
		var out []string
		for _, v := range vocab {
			if r.Intn(2) == 0 {
				out = append(out, v)
			}
		}
		return out
	}

	for i := 0; i < 50; i++ {
		a := newMedia(primitive.NewObjectID(), "x", pick(), "", 0)
		b := newMedia(primitive.NewObjectID(), "y", pick(), "", 0)
		assert.Equal(t, Score(a, b), Score(b, a))
	}
}

func TestRankRelatedScenario(t *testing.T) {
	u1 := primitive.NewObjectID()
	ref := newMedia(u1, "nature", []string{"sunset", "beach"}, "Golden Hour", 0)
	a := newMedia(u1, "travel", []string{"beach"}, "Beach Trip", time.Hour)
	b := newMedia(primitive.NewObjectID(), "nature", []string{}, "Sunset Over The Hills", time.Minute)
	unrelated := newMedia(primitive.NewObjectID(), "food", []string{"pasta"}, "Dinner", 0)

	assert.Equal(t, 4.0, Score(ref, a))
	assert.Equal(t, 2.0, Score(ref, b))

	got := RankRelated(ref, []*media_models.Media{unrelated, b, a}, MaxRelated)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestRankRelatedExcludesReference(t *testing.T) {
	u1 := primitive.NewObjectID()
	ref := newMedia(u1, "nature", []string{"sunset"}, "Golden Hour", 0)
	other := newMedia(u1, "nature", nil, "", time.Hour)

	got := RankRelated(ref, []*media_models.Media{ref, other}, MaxRelated)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].ID)
}

func TestRankRelatedKeepsTopTwelve(t *testing.T) {
	tags := make([]string, 15)
	for i := range tags {
		tags[i] = fmt.Sprintf("t%02d", i)
	}
	ref := newMedia(primitive.NewObjectID(), "ref", tags, "", 0)

	candidates := make([]*media_models.Media, 0, 15)
	for k := 1; k <= 15; k++ {
		candidates = append(candidates, newMedia(primitive.NewObjectID(), "other", tags[:k], "", time.Duration(k)*time.Minute))
	}
	rand.New(rand.NewSource(1)).Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	got := RankRelated(ref, candidates, MaxRelated)
	require.Len(t, got, 12)
	for i, m := range got {
		assert.Equal(t, float64(15-i), Score(ref, m))
	}
}

func TestRankRelatedTieBreaksByNewestFirst(t *testing.T) {
	ref := newMedia(primitive.NewObjectID(), "nature", nil, "", 0)
	older := newMedia(primitive.NewObjectID(), "nature", nil, "", 2*time.Hour)
	newer := newMedia(primitive.NewObjectID(), "nature", nil, "", time.Hour)

	got := RankRelated(ref, []*media_models.Media{older, newer}, MaxRelated)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestRankRelatedIsIdempotent(t *testing.T) {
	ref, candidates := randomCorpus(rand.New(rand.NewSource(42)), 200)

	first := RankRelated(ref, candidates, MaxRelated)
	second := RankRelated(ref, candidates, MaxRelated)
	assert.Equal(t, ids(first), ids(second))
}

// 有界堆的结果必须与全量排序后截断完全一致
func TestRankRelatedMatchesFullSort(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		ref, candidates := randomCorpus(r, 10+r.Intn(300))

		expected := fullSort(ref, candidates)
		if len(expected) > MaxRelated {
			expected = expected[:MaxRelated]
		}

		got := RankRelated(ref, candidates, MaxRelated)
		assert.Equal(t, ids(expected), ids(got), "round %d", round)
		for _, m := range got {
			assert.Greater(t, Score(ref, m), 0.0)
			assert.NotEqual(t, ref.ID, m.ID)
		}
	}
}

func randomCorpus(r *rand.Rand, n int) (*media_models.Media, []*media_models.Media) {
	creators := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}
	categories := []string{"nature", "travel", "food"}
	vocab := []string{"sunset", "beach", "city", "night", "food", "art"}
	words := []string{"golden", "hour", "beach", "trip", "city", "lights"}

	gen := func() *media_models.Media {
		var tags []string
		for _, v := range vocab {
			if r.Intn(3) == 0 {
				tags = append(tags, v)
			}
		}
		title := words[r.Intn(len(words))] + " " + words[r.Intn(len(words))]
		// 粗粒度时间制造同分同时间的情况
		age := time.Duration(r.Intn(5)) * time.Hour
		return newMedia(creators[r.Intn(len(creators))], categories[r.Intn(len(categories))], tags, title, age)
	}

	ref := gen()
	candidates := make([]*media_models.Media, n)
	for i := range candidates {
		candidates[i] = gen()
	}
	return ref, candidates
}

func fullSort(ref *media_models.Media, candidates []*media_models.Media) []*media_models.Media {
	var scored []scoredMedia
	for _, c := range candidates {
		if s := Score(ref, c); s > 0 && c.ID != ref.ID {
			scored = append(scored, scoredMedia{media: c, score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return moreRelated(scored[i], scored[j]) })
	out := make([]*media_models.Media, len(scored))
	for i, s := range scored {
		out[i] = s.media
	}
	return out
}

func ids(items []*media_models.Media) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.ID.Hex()
	}
	return out
}
