package services

import (
	"fmt"
	"strconv"

	cerr "ctgapi/errors"
	"ctgapi/models"
	"ctgapi/shared"
)

// ValidCount reports whether 1 <= n <= total.
func ValidCount(n, total int) bool {
	return shared.Validate.Var(n, fmt.Sprintf("gte=1,lte=%d", total)) == nil
}

// ValidId reports whether id is the decimal form of a known id.
func ValidId(id string, known models.KnownIds) bool {
	n, ok := models.ParseId(id)
	return ok && known.Contains(n)
}

// ParseCount turns the raw count query value into a validated count. An
// empty value means every category.
func ParseCount(raw string, total int) (int, cerr.CError) {
	if raw == "" {
		return total, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || !ValidCount(n, total) {
		return 0, cerr.NewInvalidCount(raw, total)
	}
	return n, nil
}

// ParseId turns a raw path id into a known category id. field selects the
// wording of the error.
func ParseId(raw, field string, known models.KnownIds) (int32, cerr.CError) {
	if !ValidId(raw, known) {
		return 0, cerr.NewInvalidId(field, raw, known.String())
	}

	id, _ := models.ParseId(raw)
	return id, nil
}
