package shared

import "github.com/go-playground/validator/v10"

// Validate is safe for concurrent use and caches struct metadata, so one
// instance is shared by every package.
var Validate = validator.New()
