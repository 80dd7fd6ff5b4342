package services

import (
	"testing"

	localCache "git.solsynth.dev/hypernet/skypoll/pkg/internal/cache"
	"git.solsynth.dev/hypernet/skypoll/pkg/internal/testutil"
)

func TestGetPollBySlugWithCache(t *testing.T) {
	testutil.SetupTestDB(t)
	if err := localCache.NewStore(); err != nil {
		t.Fatalf("Failed to create cache store: %v", err)
	}
	t.Cleanup(func() {
		localCache.S = nil
	})

	poll := createTestPoll(t, testutil.Date(2024, 6, 1), testutil.Date(2024, 6, 2))

	for i := 0; i < 3; i++ {
		found, err := GetPollBySlug(poll.Slug)
		if err != nil {
			t.Fatalf("Failed to get poll: %v", err)
		}
		if found.ID != poll.ID || found.Slug != poll.Slug {
			t.Errorf("Expected poll %s, got %+v", poll.Slug, found)
		}
		if found.Days != nil {
			t.Errorf("Expected cached poll without days")
		}
	}

	if _, ok := getCachedPoll("missing"); ok {
		t.Errorf("Expected no cache entry for an unknown slug")
	}
}
