package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"ctgapi/response"
)

func (app *App) listDetails(w http.ResponseWriter, r *http.Request) {
	app.write(w, r, response.Details(app.dtl.All(), nil))
}

func (app *App) getDetail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	details, cErr := app.dtl.Get(vars["category_number"])
	app.write(w, r, response.Details(details, cErr))
}
