package services

import (
	cerr "ctgapi/errors"
	"ctgapi/models"
)

type CategoryRepository interface {
	Total() int
	Ids() models.KnownIds
	Prefix(count int) []models.Category
	ById(id int32) (models.Category, bool)
}

type Category struct {
	repo CategoryRepository
}

func NewCategory(repo CategoryRepository) *Category {
	return &Category{
		repo: repo,
	}
}

func (ctg *Category) Total() int {
	return ctg.repo.Total()
}

func (ctg *Category) Ids() models.KnownIds {
	return ctg.repo.Ids()
}

// List returns the first count categories in dataset order. An empty count
// lists them all.
func (ctg *Category) List(count string) ([]models.Category, cerr.CError) {
	n, cErr := ParseCount(count, ctg.repo.Total())
	if cErr != nil {
		return nil, cErr
	}

	return ctg.repo.Prefix(n), nil
}

// Get returns the category as a one-element list.
func (ctg *Category) Get(id string) ([]models.Category, cerr.CError) {
	n, cErr := ParseId(id, cerr.FieldId, ctg.repo.Ids())
	if cErr != nil {
		return nil, cErr
	}

	category, ok := ctg.repo.ById(n)
	if !ok {
		return nil, cerr.NewInternalInconsistency("category", n)
	}
	return []models.Category{category}, nil
}
