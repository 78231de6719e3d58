package app

import (
	"net/http"

	"ctgapi/response"
)

type healthBody struct {
	State      string `json:"state"`
	Source     string `json:"source"`
	Categories int    `json:"categories"`
}

func (app *App) health(w http.ResponseWriter, r *http.Request) {
	app.write(w, r, response.Success(healthBody{
		State:      app.loader.State().String(),
		Source:     app.loader.Source(),
		Categories: app.ctg.Total(),
	}))
}
