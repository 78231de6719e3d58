package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerr "ctgapi/errors"
	"ctgapi/models"
)

func TestLoadEmbedded(t *testing.T) {
	snap, err := Load(context.Background(), Embedded())
	require.NoError(t, err)

	assert.Equal(t, "embedded", snap.Source)
	assert.Equal(t, 12, snap.Categories.Total())

	first := snap.Categories.Prefix(1)
	assert.Equal(t, int32(2), first[0].Id)
	assert.Equal(t, "baseball", first[0].Title)

	category, ok := snap.Categories.ById(2)
	require.True(t, ok)
	assert.Equal(t, "baseball", category.Title)

	_, ok = snap.Categories.ById(25)
	assert.False(t, ok)

	all := snap.Details.All()
	assert.Len(t, all, snap.Categories.Ids().Len())
	for _, id := range snap.Categories.Ids().Slice() {
		assert.Contains(t, all, id)
	}
}

func TestLoadEmbeddedIsDeterministic(t *testing.T) {
	first, err := Load(context.Background(), Embedded())
	require.NoError(t, err)
	second, err := Load(context.Background(), Embedded())
	require.NoError(t, err)

	assert.Equal(t, first.Categories.Prefix(first.Categories.Total()), second.Categories.Prefix(second.Categories.Total()))
	assert.Equal(t, first.Details.All(), second.Details.All())
}

func TestLoadYAMLDir(t *testing.T) {
	fsys := fstest.MapFS{
		"categories.yaml": {Data: []byte(`
- id: 2
  title: baseball
  image: b.png
- id: 3
  title: basketball
`)},
		"category_details.yml": {Data: []byte(`
"2":
  origin: United States
  equipment: [bat, ball]
"3": null
`)},
	}

	snap, err := Load(context.Background(), FS("test", fsys))
	require.NoError(t, err)

	categories := snap.Categories.Prefix(2)
	assert.Equal(t, "baseball", categories[0].Title)
	assert.JSONEq(t, `"b.png"`, string(categories[0].Attributes["image"]))
	assert.Equal(t, "basketball", categories[1].Title)

	detail, ok := snap.Details.ByKey(2)
	require.True(t, ok)
	assert.JSONEq(t, `{"origin": "United States", "equipment": ["bat", "ball"]}`, string(detail[2]))
}

func TestLoadErrors(t *testing.T) {
	tt := []struct {
		name       string
		categories string
		details    string
		dataset    string
	}{
		{
			name:    "missing categories",
			details: `{}`,
			dataset: CategoriesDataset,
		},
		{
			name:       "malformed categories",
			categories: `[{"id": 2, "title": "baseball"`,
			details:    `{"2": {}}`,
			dataset:    CategoriesDataset,
		},
		{
			name:       "empty categories",
			categories: `[]`,
			details:    `{}`,
			dataset:    CategoriesDataset,
		},
		{
			name:       "empty title",
			categories: `[{"id": 2, "title": ""}]`,
			details:    `{"2": {}}`,
			dataset:    CategoriesDataset,
		},
		{
			name:       "duplicate id",
			categories: `[{"id": 2, "title": "baseball"}, {"id": 2, "title": "basketball"}]`,
			details:    `{"2": {}}`,
			dataset:    CategoriesDataset,
		},
		{
			name:       "missing details",
			categories: `[{"id": 2, "title": "baseball"}]`,
			dataset:    DetailsDataset,
		},
		{
			name:       "malformed details",
			categories: `[{"id": 2, "title": "baseball"}]`,
			details:    `{"2": `,
			dataset:    DetailsDataset,
		},
		{
			name:       "detail missing for a category",
			categories: `[{"id": 2, "title": "baseball"}, {"id": 3, "title": "basketball"}]`,
			details:    `{"2": {}}`,
			dataset:    DetailsDataset,
		},
		{
			name:       "detail for an unknown category",
			categories: `[{"id": 2, "title": "baseball"}]`,
			details:    `{"2": {}, "25": {}}`,
			dataset:    DetailsDataset,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			if tc.categories != "" {
				fsys["categories.json"] = &fstest.MapFile{Data: []byte(tc.categories)}
			}
			if tc.details != "" {
				fsys["category_details.json"] = &fstest.MapFile{Data: []byte(tc.details)}
			}

			snap, err := Load(context.Background(), FS("test", fsys))
			require.Error(t, err)
			assert.Nil(t, snap)

			var loadErr *cerr.LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tc.dataset, loadErr.Dataset)
		})
	}
}

func TestCheckDetailsMessage(t *testing.T) {
	known := models.NewKnownIds([]int32{2, 3, 4})
	err := checkDetails(known, map[int32]models.Detail{2: nil, 30: nil, 25: nil})

	require.Error(t, err)
	assert.Equal(t, "detail keys do not match category ids: missing [3 4], unknown [25 30]", err.Error())
}

type countingSource struct {
	Source
	calls atomic.Int32
}

func (s *countingSource) Categories(ctx context.Context) ([]models.Category, error) {
	s.calls.Add(1)
	return s.Source.Categories(ctx)
}

func TestLoaderLoadsOnce(t *testing.T) {
	src := &countingSource{Source: Embedded()}
	loader := NewLoader(src)
	assert.Equal(t, StateUninitialized, loader.State())

	var wg sync.WaitGroup
	snaps := make([]*Snapshot, 8)
	for i := range snaps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := loader.Load(context.Background())
			assert.NoError(t, err)
			snaps[i] = snap
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for _, snap := range snaps {
		assert.Same(t, snaps[0], snap)
	}

	assert.Equal(t, StateLoaded, loader.State())
	assert.True(t, loader.MarkServing())
	assert.Equal(t, StateServing, loader.State())
	assert.False(t, loader.MarkServing())
	assert.Equal(t, "serving", loader.State().String())
}

func TestLoaderFailureIsPermanent(t *testing.T) {
	loader := NewLoader(FS("empty", fstest.MapFS{}))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	_, again := loader.Load(context.Background())
	assert.Same(t, err, again)

	assert.Equal(t, StateUninitialized, loader.State())
	assert.False(t, loader.MarkServing())
	assert.Equal(t, StateUninitialized, loader.State())
	assert.Equal(t, "empty", loader.Source())
}
