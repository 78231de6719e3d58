package memRepos

import (
	"fmt"

	"ctgapi/models"
)

// Category is the ordered category catalog. It is never written after
// NewCategory returns, so readers need no lock.
type Category struct {
	storage []models.Category
	index   map[int32]int
	ids     models.KnownIds
}

// NewCategory copies categories; ids are expected to be unique.
func NewCategory(categories []models.Category) *Category {
	storage := make([]models.Category, len(categories))
	index := make(map[int32]int, len(categories))
	ids := make([]int32, len(categories))
	for i, category := range categories {
		storage[i] = category.Clone()
		index[category.Id] = i
		ids[i] = category.Id
	}

	return &Category{
		storage: storage,
		index:   index,
		ids:     models.NewKnownIds(ids),
	}
}

func (ctg *Category) Total() int {
	return len(ctg.storage)
}

func (ctg *Category) Ids() models.KnownIds {
	return ctg.ids
}

// Prefix returns copies of the first count categories in dataset order.
// Callers validate count first; an out-of-range count panics.
func (ctg *Category) Prefix(count int) []models.Category {
	if count < 1 || count > len(ctg.storage) {
		panic(fmt.Sprintf("memRepos: prefix count %d out of range [1, %d]", count, len(ctg.storage)))
	}

	categories := make([]models.Category, count)
	for i := range categories {
		categories[i] = ctg.storage[i].Clone()
	}
	return categories
}

func (ctg *Category) ById(id int32) (models.Category, bool) {
	i, ok := ctg.index[id]
	if !ok {
		return models.Category{}, false
	}
	return ctg.storage[i].Clone(), true
}
