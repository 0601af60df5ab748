package query

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/rbacconsole/internal/cache"
	"github.com/dropDatabas3/rbacconsole/internal/directory"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
)

// Recorder receives cache outcomes. metrics.Directory implements it.
type Recorder interface {
	SearchHit()
	SearchMiss()
}

// Searcher memoizes Filter results per (snapshot tag, normalized term).
// Only match positions are cached, so a hit is rebuilt from the caller's
// snapshot and can never return rows from a different version.
type Searcher struct {
	cache cache.Client
	ttl   time.Duration
	rec   Recorder
	sf    singleflight.Group
}

// SearcherOption configures a Searcher.
type SearcherOption func(*Searcher)

// WithTTL bounds how long a result stays cached. Default 2m.
func WithTTL(d time.Duration) SearcherOption {
	return func(s *Searcher) { s.ttl = d }
}

// WithRecorder reports hits and misses to r.
func WithRecorder(r Recorder) SearcherOption {
	return func(s *Searcher) { s.rec = r }
}

// NewSearcher returns a Searcher over c. A nil c disables memoization.
func NewSearcher(c cache.Client, opts ...SearcherOption) *Searcher {
	s := &Searcher{cache: c, ttl: 2 * time.Minute}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Search returns Filter(snap.Items(), term) for the given snapshot.
func (s *Searcher) Search(ctx context.Context, snap *directory.Snapshot[directory.User], term string) []directory.User {
	users := snap.Items()
	if s == nil || s.cache == nil {
		return Filter(users, term)
	}

	needle := Normalize(term)
	key := searchKey(snap.Tag(), needle)
	log := logger.From(ctx).With(logger.Component("query"), logger.Key(key))

	if pos, ok := s.lookup(ctx, key, len(users), log); ok {
		s.hit()
		return pick(users, pos)
	}
	s.miss()

	v, _, _ := s.sf.Do(key, func() (any, error) {
		pos := matchPositions(users, needle)
		if b, err := json.Marshal(pos); err == nil {
			if err := s.cache.Set(ctx, key, string(b), s.ttl); err != nil {
				log.Warn("search cache set failed", logger.Err(err))
			}
		}
		return pos, nil
	})
	return pick(users, v.([]int))
}

func (s *Searcher) lookup(ctx context.Context, key string, n int, log *zap.Logger) ([]int, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !cache.IsNotFound(err) {
			log.Warn("search cache get failed", logger.Err(err))
		}
		return nil, false
	}
	var pos []int
	if err := json.Unmarshal([]byte(raw), &pos); err != nil {
		log.Warn("search cache entry corrupt", logger.Err(err))
		return nil, false
	}
	for _, p := range pos {
		if p < 0 || p >= n {
			log.Warn("search cache entry out of range", logger.Count(n))
			return nil, false
		}
	}
	return pos, true
}

func (s *Searcher) hit() {
	if s.rec != nil {
		s.rec.SearchHit()
	}
}

func (s *Searcher) miss() {
	if s.rec != nil {
		s.rec.SearchMiss()
	}
}

func searchKey(tag, needle string) string {
	return "search:users:" + tag + ":" + needle
}

func pick(users []directory.User, pos []int) []directory.User {
	out := make([]directory.User, 0, len(pos))
	for _, i := range pos {
		out = append(out, users[i])
	}
	return out
}
