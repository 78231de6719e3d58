package app

import (
	"net/http"

	"github.com/gorilla/mux"

	"ctgapi/response"
)

func (app *App) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, cErr := app.ctg.List(r.URL.Query().Get("count"))
	app.write(w, r, response.Categories(categories, cErr))
}

func (app *App) getCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categories, cErr := app.ctg.Get(vars["id"])
	app.write(w, r, response.Categories(categories, cErr))
}
