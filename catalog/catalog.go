// Package catalog loads the category and detail datasets into an immutable
// Snapshot. A Snapshot is built once at startup and shared read-only by
// every request.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	cerr "ctgapi/errors"
	"ctgapi/models"
	"ctgapi/repositories/memRepos"
)

type Snapshot struct {
	Source     string
	Categories *memRepos.Category
	Details    *memRepos.Detail
}

// Load reads both datasets from src and checks them. Every failure is a
// *cerr.LoadError.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	categories, err := src.Categories(ctx)
	if err != nil {
		return nil, cerr.NewLoadError(CategoriesDataset, err)
	}
	if err = checkCategories(categories); err != nil {
		return nil, cerr.NewLoadError(CategoriesDataset, err)
	}
	ctg := memRepos.NewCategory(categories)

	details, err := src.Details(ctx)
	if err != nil {
		return nil, cerr.NewLoadError(DetailsDataset, err)
	}
	if err = checkDetails(ctg.Ids(), details); err != nil {
		return nil, cerr.NewLoadError(DetailsDataset, err)
	}

	return &Snapshot{
		Source:     src.Name(),
		Categories: ctg,
		Details:    memRepos.NewDetail(details),
	}, nil
}

func checkCategories(categories []models.Category) error {
	if len(categories) == 0 {
		return errors.New("dataset has no categories")
	}

	seen := make(map[int32]int, len(categories))
	for i, category := range categories {
		if err := category.Validate(); err != nil {
			return fmt.Errorf("category %d at index %d: %w", category.Id, i, err)
		}
		if first, ok := seen[category.Id]; ok {
			return fmt.Errorf("duplicate category id %d at index %d and %d", category.Id, first, i)
		}
		seen[category.Id] = i
	}
	return nil
}

// checkDetails enforces that the detail keys are exactly the known ids.
func checkDetails(ids models.KnownIds, details map[int32]models.Detail) error {
	var missing, unknown []int32
	for _, id := range ids.Slice() {
		if _, ok := details[id]; !ok {
			missing = append(missing, id)
		}
	}
	for id := range details {
		if !ids.Contains(id) {
			unknown = append(unknown, id)
		}
	}
	if len(missing) == 0 && len(unknown) == 0 {
		return nil
	}

	slices.Sort(unknown)
	return fmt.Errorf("detail keys do not match category ids: missing %v, unknown %v", missing, unknown)
}

type State int32

const (
	StateUninitialized State = iota
	StateLoaded
	StateServing
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateServing:
		return "serving"
	default:
		return "uninitialized"
	}
}

// Loader runs Load at most once and tracks the process state
// Uninitialized -> Loaded -> Serving. A failed load never leaves
// Uninitialized; every later call returns the same error.
type Loader struct {
	src   Source
	once  sync.Once
	snap  *Snapshot
	err   error
	state atomic.Int32
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	l.once.Do(func() {
		l.snap, l.err = Load(ctx, l.src)
		if l.err == nil {
			l.state.Store(int32(StateLoaded))
		}
	})
	return l.snap, l.err
}

func (l *Loader) State() State {
	return State(l.state.Load())
}

// MarkServing moves Loaded to Serving. It reports false in any other state.
func (l *Loader) MarkServing() bool {
	return l.state.CompareAndSwap(int32(StateLoaded), int32(StateServing))
}

func (l *Loader) Source() string {
	return l.src.Name()
}
