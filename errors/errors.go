package errors

import (
	"fmt"
	"net/http"
)

// Kind classifies a CError independently of its HTTP status.
type Kind string

const (
	KindInvalidCount          Kind = "InvalidCount"
	KindInvalidId             Kind = "InvalidId"
	KindInternalInconsistency Kind = "InternalInconsistency"
	KindNotFound              Kind = "NotFound"
	KindMethodNotAllowed      Kind = "MethodNotAllowed"
	KindInternal              Kind = "Internal"
)

// CError is an error that knows which status it should be reported with.
type CError interface {
	GetStatusCode() int
	Kind() Kind
	Error() string
}

type InvalidCount struct {
	StatusCode int
	Value      string
	Total      int
}

func (e InvalidCount) GetStatusCode() int {
	return e.StatusCode
}
func (e InvalidCount) Kind() Kind {
	return KindInvalidCount
}
func (e InvalidCount) Error() string {
	return fmt.Sprintf("Invalid count. Count must be between 1 and %d; got %s", e.Total, e.Value)
}
func NewInvalidCount(value string, total int) InvalidCount {
	return InvalidCount{
		StatusCode: http.StatusBadRequest,
		Value:      value,
		Total:      total,
	}
}

const (
	FieldId             = "id"
	FieldCategoryNumber = "category_number"
)

// InvalidId reports an id outside the known id set. Known is the rendered set.
type InvalidId struct {
	StatusCode int
	Field      string
	Value      string
	Known      string
}

func (e InvalidId) GetStatusCode() int {
	return e.StatusCode
}
func (e InvalidId) Kind() Kind {
	return KindInvalidId
}
func (e InvalidId) Error() string {
	if e.Field == FieldCategoryNumber {
		return fmt.Sprintf("Invalid category number. Category number must be one of %s; got %s", e.Known, e.Value)
	}
	return fmt.Sprintf("Invalid id. ID must be in %s; got %s", e.Known, e.Value)
}
func NewInvalidId(field, value, known string) InvalidId {
	return InvalidId{
		StatusCode: http.StatusBadRequest,
		Field:      field,
		Value:      value,
		Known:      known,
	}
}

// InternalInconsistency means a value passed validation but the catalog has no
// record for it.
type InternalInconsistency struct {
	StatusCode int
	Resource   string
	Id         int32
}

func (e InternalInconsistency) GetStatusCode() int {
	return e.StatusCode
}
func (e InternalInconsistency) Kind() Kind {
	return KindInternalInconsistency
}
func (e InternalInconsistency) Error() string {
	return fmt.Sprintf("Internal inconsistency: %s %d passed validation but is missing from the catalog", e.Resource, e.Id)
}
func NewInternalInconsistency(resource string, id int32) InternalInconsistency {
	return InternalInconsistency{
		StatusCode: http.StatusInternalServerError,
		Resource:   resource,
		Id:         id,
	}
}

type Internal struct {
	StatusCode int
}

func (e Internal) GetStatusCode() int {
	return e.StatusCode
}
func (e Internal) Kind() Kind {
	return KindInternal
}
func (e Internal) Error() string {
	return "Unexpected error occurred"
}
func NewInternal() Internal {
	return Internal{
		StatusCode: http.StatusInternalServerError,
	}
}

type NotFound struct {
	StatusCode int
	Field      string
}

func (e NotFound) GetStatusCode() int {
	return e.StatusCode
}
func (e NotFound) Kind() Kind {
	return KindNotFound
}
func (e NotFound) Error() string {
	return fmt.Sprintf("This %s doesn't exist", e.Field)
}
func NewNotFound(field string) NotFound {
	return NotFound{
		StatusCode: http.StatusNotFound,
		Field:      field,
	}
}

type MethodNotAllowed struct {
	StatusCode int
	Method     string
}

func (e MethodNotAllowed) GetStatusCode() int {
	return e.StatusCode
}
func (e MethodNotAllowed) Kind() Kind {
	return KindMethodNotAllowed
}
func (e MethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %s is not allowed on this route", e.Method)
}
func NewMethodNotAllowed(method string) MethodNotAllowed {
	return MethodNotAllowed{
		StatusCode: http.StatusMethodNotAllowed,
		Method:     method,
	}
}

// LoadError is returned when a dataset cannot be loaded. It is fatal: nothing
// is served after a LoadError.
type LoadError struct {
	Dataset string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Dataset, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewLoadError(dataset string, err error) *LoadError {
	return &LoadError{
		Dataset: dataset,
		Err:     err,
	}
}
