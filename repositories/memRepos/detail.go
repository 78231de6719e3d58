package memRepos

import "ctgapi/models"

// Detail is the category detail catalog keyed by category id.
type Detail struct {
	storage map[int32]models.Detail
}

func NewDetail(details map[int32]models.Detail) *Detail {
	storage := make(map[int32]models.Detail, len(details))
	for id, detail := range details {
		storage[id] = detail.Clone()
	}

	return &Detail{
		storage: storage,
	}
}

func (dtl *Detail) Len() int {
	return len(dtl.storage)
}

func (dtl *Detail) All() map[int32]models.Detail {
	details := make(map[int32]models.Detail, len(dtl.storage))
	for id, detail := range dtl.storage {
		details[id] = detail.Clone()
	}
	return details
}

// ByKey returns a single-entry map {id: detail}.
func (dtl *Detail) ByKey(id int32) (map[int32]models.Detail, bool) {
	detail, ok := dtl.storage[id]
	if !ok {
		return nil, false
	}
	return map[int32]models.Detail{id: detail.Clone()}, true
}
