package services

import (
	cerr "ctgapi/errors"
	"ctgapi/models"
)

type DetailRepository interface {
	All() map[int32]models.Detail
	ByKey(id int32) (map[int32]models.Detail, bool)
}

// Detail serves category details. Ids are checked against the category
// catalog's known ids, not the detail keys.
type Detail struct {
	repo  DetailRepository
	known models.KnownIds
}

func NewDetail(repo DetailRepository, known models.KnownIds) *Detail {
	return &Detail{
		repo:  repo,
		known: known,
	}
}

func (dtl *Detail) All() map[int32]models.Detail {
	return dtl.repo.All()
}

func (dtl *Detail) Get(categoryNumber string) (map[int32]models.Detail, cerr.CError) {
	id, cErr := ParseId(categoryNumber, cerr.FieldCategoryNumber, dtl.known)
	if cErr != nil {
		return nil, cErr
	}

	detail, ok := dtl.repo.ByKey(id)
	if !ok {
		return nil, cerr.NewInternalInconsistency("category detail", id)
	}
	return detail, nil
}
