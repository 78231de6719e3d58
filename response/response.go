// Package response turns service outcomes into the JSON bodies and status
// codes sent to clients. It holds no business logic.
package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	cerr "ctgapi/errors"
	"ctgapi/models"
)

type CategoriesBody struct {
	Categories []models.Category `json:"categories"`
}

// DetailsBody is keyed by category id; encoding/json writes the keys as
// decimal strings.
type DetailsBody struct {
	Details map[int32]models.Detail `json:"details"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

// Result is either a success payload or a failure. The zero value is a
// success with a null payload.
type Result struct {
	payload any
	err     cerr.CError
}

func Success(payload any) Result {
	return Result{payload: payload}
}

func Fail(err cerr.CError) Result {
	return Result{err: err}
}

func Categories(categories []models.Category, err cerr.CError) Result {
	if err != nil {
		return Fail(err)
	}
	return Success(CategoriesBody{Categories: categories})
}

func Details(details map[int32]models.Detail, err cerr.CError) Result {
	if err != nil {
		return Fail(err)
	}
	return Success(DetailsBody{Details: details})
}

func (r Result) Ok() bool {
	return r.err == nil
}

// Kind is empty for a success.
func (r Result) Kind() cerr.Kind {
	if r.err == nil {
		return ""
	}
	return r.err.Kind()
}

func (r Result) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result) Status() int {
	if r.err == nil {
		return http.StatusOK
	}

	switch r.err.Kind() {
	case cerr.KindInvalidCount, cerr.KindInvalidId:
		return http.StatusBadRequest
	case cerr.KindNotFound:
		return http.StatusNotFound
	case cerr.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cerr.KindInternalInconsistency, cerr.KindInternal:
		return http.StatusInternalServerError
	}
	if status := r.err.GetStatusCode(); status != 0 {
		return status
	}
	return http.StatusInternalServerError
}

func (r Result) Body() any {
	if r.err != nil {
		return ErrorBody{Error: r.err.Error()}
	}
	return r.payload
}

const internalBody = `{"error":"Unexpected error occurred"}` + "\n"

// Write encodes the result. If the body cannot be encoded nothing of it is
// sent; the client gets a 500 and the encoding error is returned.
func Write(w http.ResponseWriter, r Result) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(r.Body()); err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(internalBody))
		return err
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(r.Status())
	_, err := w.Write(buf.Bytes())
	return err
}
