package services

import (
	"context"
	"fmt"
	"time"

	localCache "git.solsynth.dev/hypernet/skypoll/pkg/internal/cache"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/models"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultPollCacheTTL = 10 * time.Minute

func GetPollCacheKey(slug string) string {
	return fmt.Sprintf("poll#%s", slug)
}

func getCachedPoll(slug string) (models.Poll, bool) {
	if localCache.S == nil {
		return models.Poll{}, false
	}

	cacheManager := cache.New[any](localCache.S)
	val, err := cacheManager.Get(context.Background(), GetPollCacheKey(slug))
	if err != nil {
		return models.Poll{}, false
	}
	poll, ok := val.(models.Poll)
	return poll, ok
}

// Polls never change after creation, so the cached copy only has to go away
// when the poll itself is deleted.
func setCachedPoll(poll models.Poll) {
	if localCache.S == nil {
		return
	}

	ttl := viper.GetDuration("cache.poll_ttl")
	if ttl <= 0 {
		ttl = defaultPollCacheTTL
	}

	poll.Days = nil
	poll.Ballots = nil

	cacheManager := cache.New[any](localCache.S)
	if err := cacheManager.Set(
		context.Background(),
		GetPollCacheKey(poll.Slug),
		poll,
		store.WithExpiration(ttl),
		store.WithCost(1),
	); err != nil {
		log.Warn().Err(err).Str("slug", poll.Slug).Msg("Unable to cache poll...")
	}
}

func evictCachedPoll(slug string) {
	if localCache.S == nil {
		return
	}

	cacheManager := cache.New[any](localCache.S)
	_ = cacheManager.Delete(context.Background(), GetPollCacheKey(slug))
}
