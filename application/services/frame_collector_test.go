package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animate-frames-lambda/application/ports/inbound"
	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/infrastructure/adapters"
)

type stubValidator struct {
	reject map[string]bool
}

func (s stubValidator) Validate(_ context.Context, url string) bool {
	return !s.reject[url]
}

type stubFetcher struct {
	fail map[string]bool
}

func (s stubFetcher) Fetch(_ context.Context, params outbound.FetchFrameParams) (string, error) {
	if s.fail[params.URL] {
		return "", errors.New("connection reset")
	}
	fileName := filepath.Join(params.Dir, fmt.Sprintf("frame_%04d.png", params.FrameIndex))
	if err := os.WriteFile(fileName, []byte(params.URL), 0o644); err != nil {
		return "", err
	}
	return fileName, nil
}

func newCollectorForTest(t *testing.T, validator outbound.UrlValidatorPort, fetcher outbound.FrameFetcherPort) inbound.FrameCollectorPort {
	t.Helper()

	workerPool, err := ants.NewPool(20)
	require.NoError(t, err)
	t.Cleanup(workerPool.Release)

	logger := adapters.NewZerologWrapper()

	return NewFrameCollector(logger, workerPool, validator, fetcher, adapters.NewNoopMetrics())
}

func TestFrameCollector_OrderPreservedUnderFiltering(t *testing.T) {
	urls := []string{
		"https://host/a.png",
		"https://bad.invalid/x",
		"https://host/c.jpg",
		"https://bad.invalid/y",
		"https://host/e.png",
	}
	collector := newCollectorForTest(t,
		stubValidator{reject: map[string]bool{urls[1]: true, urls[3]: true}},
		stubFetcher{})

	slots, err := collector.Collect(context.Background(), inbound.CollectFramesParams{
		URLs: urls,
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.Equal(t, []int{0, 2, 4}, []int{slots[0].InputIndex, slots[1].InputIndex, slots[2].InputIndex})
	for i, slot := range slots {
		assert.Equal(t, i, slot.FrameIndex)
		assert.True(t, slot.Fetched())
		payload, err := os.ReadFile(slot.FileName)
		require.NoError(t, err)
		assert.Equal(t, slot.URL, string(payload))
	}
}

func TestFrameCollector_FetchFailureKeepsPlaceholder(t *testing.T) {
	urls := []string{"https://host/a.png", "https://host/b.png", "https://host/c.png"}
	collector := newCollectorForTest(t,
		stubValidator{},
		stubFetcher{fail: map[string]bool{urls[1]: true}})

	slots, err := collector.Collect(context.Background(), inbound.CollectFramesParams{
		URLs: urls,
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].Fetched())
	assert.False(t, slots[1].Fetched())
	assert.Empty(t, slots[1].FileName)
	assert.Equal(t, urls[1], slots[1].URL)
	assert.True(t, slots[2].Fetched())
}

func TestFrameCollector_FrameCountMatchesReachableSubset(t *testing.T) {
	const n = 20
	urls := make([]string, 0, n)
	reject := make(map[string]bool)
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("https://host/%d.png", i)
		urls = append(urls, u)
		if i%3 == 0 {
			reject[u] = true
		}
	}
	collector := newCollectorForTest(t, stubValidator{reject: reject}, stubFetcher{})

	slots, err := collector.Collect(context.Background(), inbound.CollectFramesParams{
		URLs: urls,
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Len(t, slots, n-len(reject))
}

func TestFrameCollector_EmptyInput(t *testing.T) {
	collector := newCollectorForTest(t, stubValidator{}, stubFetcher{})

	slots, err := collector.Collect(context.Background(), inbound.CollectFramesParams{
		URLs: nil,
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestFrameCollector_NothingValidates(t *testing.T) {
	urls := []string{"https://bad.invalid/x", "https://bad.invalid/y"}
	collector := newCollectorForTest(t,
		stubValidator{reject: map[string]bool{urls[0]: true, urls[1]: true}},
		stubFetcher{})

	slots, err := collector.Collect(context.Background(), inbound.CollectFramesParams{
		URLs: urls,
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
