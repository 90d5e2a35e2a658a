package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/syncalc/pattern"
)

var (
	// ErrRowWidth indicates a data row without exactly six fields.
	ErrRowWidth = errors.New("dataset: row must have exactly six labels")
	// ErrEmptyLabel indicates an empty field inside a data row.
	ErrEmptyLabel = errors.New("dataset: labels must be non-empty")
)

// Row is one observed pattern: six form labels in presentation order.
type Row [pattern.Cells]string

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	comma  rune
	header bool
}

// WithComma sets the field delimiter. Default is ','.
func WithComma(comma rune) Option {
	return func(o *loadOptions) { o.comma = comma }
}

// WithHeader skips the first line when true. Default is false.
func WithHeader(header bool) Option {
	return func(o *loadOptions) { o.header = header }
}

// Load reads observed-pattern rows from delimited text. Every row must
// carry exactly six non-empty fields; violations are reported with
// their 1-based line number and the matching sentinel.
func Load(r io.Reader, opts ...Option) ([]Row, error) {
	cfg := loadOptions{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.TrimLeadingSpace = true
	// Width is validated per row below, with a friendlier error.
	reader.FieldsPerRecord = -1

	var rows []Row
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read: %w", err)
		}
		line++
		if cfg.header && line == 1 {
			continue
		}
		if len(record) != pattern.Cells {
			return nil, fmt.Errorf("%w: line %d has %d", ErrRowWidth, line, len(record))
		}
		var row Row
		for i, field := range record {
			if field == "" {
				return nil, fmt.Errorf("%w: line %d, field %d", ErrEmptyLabel, line, i+1)
			}
			row[i] = field
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts ...Option) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Patterns canonicalizes every row and returns the distinct patterns,
// sorted. Rows written with different form labels but describing the
// same partition collapse onto one pattern.
func Patterns(rows []Row) []pattern.Pattern {
	seen := make(map[pattern.Pattern]struct{}, len(rows))
	for _, row := range rows {
		seen[pattern.Canonicalize([pattern.Cells]string(row))] = struct{}{}
	}

	out := make([]pattern.Pattern, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}
