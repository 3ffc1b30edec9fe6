package pipeline

import (
	"fmt"
	"time"

	"github.com/theirongolddev/spendview/assets"
	"github.com/theirongolddev/spendview/internal/model"
	"github.com/theirongolddev/spendview/internal/source"
)

// BundledSource is the LoadResult.Source value for the embedded payload.
const BundledSource = "bundled"

// LoadResult holds the output of the data loading step.
type LoadResult struct {
	Entries    []model.ExpenseEntry
	Source     string // file path, or BundledSource
	Categories int
	LoadTime   time.Duration
}

// Load parses the payload at path, or the bundled payload when path is empty.
// Any error is fatal for the caller: there is no partial result.
func Load(path string) (*LoadResult, error) {
	start := time.Now()

	var (
		entries []model.ExpenseEntry
		err     error
		src     = path
	)
	if path == "" {
		src = BundledSource
		entries, err = source.ParseBytes(assets.Payload)
		if err != nil {
			return nil, fmt.Errorf("parsing bundled payload: %w", err)
		}
	} else {
		entries, err = source.ParseFile(path)
		if err != nil {
			return nil, err
		}
	}

	return &LoadResult{
		Entries:    entries,
		Source:     src,
		Categories: len(Categories(entries)),
		LoadTime:   time.Since(start),
	}, nil
}
