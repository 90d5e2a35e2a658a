package syncstore

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"

	"github.com/katalvlaran/syncalc/syncat"
)

// reportVersion is bumped whenever the encoded Report layout changes;
// stored values carrying any other version count as stale and are
// recomputed.
const reportVersion byte = 1

// Cache is a read-through, write-on-miss memoization layer over a Store.
type Cache struct {
	store Store
}

// NewCache wraps a Store. The Cache does not own the Store's lifecycle;
// close the Store where you opened it.
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// Report returns the report cached under name, or — on a missing key, a
// stale version, or an undecodable value — recomputes it via compute,
// writes the fresh encoding back, and returns it.
//
// Storage failures other than a plain miss are returned as syncstore
// errors; compute errors pass through untouched so algebra validation
// failures keep their own identity.
func (c *Cache) Report(name string, compute func() (*syncat.Report, error)) (*syncat.Report, error) {
	// 1) Attempt the read; only ErrNotFound demotes to a miss.
	raw, err := c.store.Get(name)
	switch {
	case err == nil:
		if report, decErr := decodeReport(raw); decErr == nil {
			return report, nil
		}
		// Corrupt or stale value: fall through and recompute.
	case errors.Is(err, ErrNotFound):
		// Plain miss: fall through and recompute.
	default:
		return nil, err
	}

	// 2) Recompute from the pure engine.
	report, err := compute()
	if err != nil {
		return nil, err
	}

	// 3) Write back; a failed write-back invalidates the cache, not the
	//    result, but the caller should know its store is broken.
	raw, err = encodeReport(report)
	if err != nil {
		return nil, err
	}
	if err = c.store.Set(name, raw); err != nil {
		return nil, err
	}

	return report, nil
}

func encodeReport(report *syncat.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte(reportVersion)
	if err := gob.NewEncoder(&buf).Encode(report); err != nil {
		return nil, errors.Wrap(err, "syncstore: encode report")
	}

	return buf.Bytes(), nil
}

func decodeReport(raw []byte) (*syncat.Report, error) {
	if len(raw) == 0 || raw[0] != reportVersion {
		return nil, errors.Errorf("syncstore: stale report version")
	}
	var report syncat.Report
	if err := gob.NewDecoder(bytes.NewReader(raw[1:])).Decode(&report); err != nil {
		return nil, errors.Wrap(err, "syncstore: decode report")
	}

	return &report, nil
}
