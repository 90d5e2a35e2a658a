package syncstore_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/syncalc/pattern"
	"github.com/katalvlaran/syncalc/syncat"
	"github.com/katalvlaran/syncalc/syncstore"
)

// memStore is an in-memory Store for exercising the cache discipline
// without touching disk.
type memStore struct {
	values map[string][]byte
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string][]byte)}
}

func (m *memStore) Get(key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, syncstore.ErrNotFound
	}

	return v, nil
}

func (m *memStore) Set(key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value

	return nil
}

func (m *memStore) Close() error { return nil }

// sampleReport builds a small but non-trivial report.
func sampleReport() *syncat.Report {
	var aabcde, abcdef pattern.Pattern
	copy(aabcde[:], "AABCDE")
	copy(abcdef[:], "ABCDEF")

	return &syncat.Report{
		Patterns: map[syncat.PairKey][]pattern.Pattern{
			{Person: "12", Number: "sp"}: {aabcde, abcdef},
		},
		Total: []pattern.Pattern{aabcde, abcdef},
	}
}

// TestCache_MissComputesAndWritesBack verifies the first read computes,
// stores, and the second read never recomputes.
func TestCache_MissComputesAndWritesBack(t *testing.T) {
	store := newMemStore()
	cache := syncstore.NewCache(store)

	calls := 0
	compute := func() (*syncat.Report, error) {
		calls++

		return sampleReport(), nil
	}

	first, err := cache.Report("syncretisms", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, sampleReport(), first)
	require.Contains(t, store.values, "syncretisms")

	second, err := cache.Report("syncretisms", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "hit must not recompute")
	assert.Equal(t, first, second)
}

// TestCache_CorruptValueIsAMiss verifies garbage under the key triggers
// recompute and the garbage is replaced by a valid encoding.
func TestCache_CorruptValueIsAMiss(t *testing.T) {
	store := newMemStore()
	store.values["syncretisms"] = []byte("not a report")
	cache := syncstore.NewCache(store)

	calls := 0
	report, err := cache.Report("syncretisms", func() (*syncat.Report, error) {
		calls++

		return sampleReport(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, sampleReport(), report)

	// The replacement must now decode cleanly.
	again, err := cache.Report("syncretisms", func() (*syncat.Report, error) {
		t.Fatal("unexpected recompute after repair")

		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

// TestCache_StaleVersionIsAMiss verifies a value with a foreign version
// byte is recomputed even when the remainder is a valid encoding.
func TestCache_StaleVersionIsAMiss(t *testing.T) {
	store := newMemStore()
	cache := syncstore.NewCache(store)

	_, err := cache.Report("syncretisms", func() (*syncat.Report, error) {
		return sampleReport(), nil
	})
	require.NoError(t, err)

	// Flip the version byte in place.
	store.values["syncretisms"][0] ^= 0xFF

	calls := 0
	_, err = cache.Report("syncretisms", func() (*syncat.Report, error) {
		calls++

		return sampleReport(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

// TestCache_StoreFailuresSurface verifies infrastructure errors are
// returned as-is rather than demoted to misses, and compute errors pass
// through untouched.
func TestCache_StoreFailuresSurface(t *testing.T) {
	broken := newMemStore()
	broken.getErr = errors.New("disk on fire")
	cache := syncstore.NewCache(broken)

	_, err := cache.Report("syncretisms", func() (*syncat.Report, error) {
		t.Fatal("must not compute when the store itself fails")

		return nil, nil
	})
	assert.EqualError(t, err, "disk on fire")

	healthy := newMemStore()
	healthy.setErr = errors.New("read-only volume")
	cache = syncstore.NewCache(healthy)
	_, err = cache.Report("syncretisms", func() (*syncat.Report, error) {
		return sampleReport(), nil
	})
	assert.ErrorIs(t, err, healthy.setErr)
}

// TestCache_ComputeErrorKeepsIdentity verifies the recompute error is
// returned unwrapped so callers can errors.Is against their own
// sentinels.
func TestCache_ComputeErrorKeepsIdentity(t *testing.T) {
	cache := syncstore.NewCache(newMemStore())
	sentinel := errors.New("validation failed")

	_, err := cache.Report("syncretisms", func() (*syncat.Report, error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

// TestBadgerStore_RoundTrip verifies the badger-backed store satisfies
// the Store contract on a throwaway directory.
func TestBadgerStore_RoundTrip(t *testing.T) {
	store, err := syncstore.Open(t.TempDir())
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	_, err = store.Get("absent")
	assert.ErrorIs(t, err, syncstore.ErrNotFound)

	require.NoError(t, store.Set("syncretisms", []byte{1, 2, 3}))
	got, err := store.Get("syncretisms")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	require.NoError(t, store.Set("syncretisms", []byte{4}))
	got, err = store.Get("syncretisms")
	require.NoError(t, err)
	assert.Equal(t, []byte{4}, got)
}

// TestBadgerStore_Persistence verifies values survive a close/reopen
// cycle of the same directory.
func TestBadgerStore_Persistence(t *testing.T) {
	dir := t.TempDir()

	store, err := syncstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("syncretisms", []byte("v1")))
	require.NoError(t, store.Close())

	reopened, err := syncstore.Open(dir)
	require.NoError(t, err)
	defer func() { require.NoError(t, reopened.Close()) }()

	got, err := reopened.Get("syncretisms")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}
