package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Handler is the full HTTP stack: CORS around the router.
func (app *App) Handler() http.Handler {
	xrs := cors.New(cors.Options{
		AllowedOrigins:   app.config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})
	return xrs.Handler(app.buildRouter())
}

func (app *App) buildRouter() *httprouter.Router {
	r := httprouter.New()

	r.GET("/healthz", app.healthz)

	r.Handler(http.MethodPost, "/accounts/authenticate", app.api)
	r.Handler(http.MethodGet, "/accounts", app.api)
	r.Handler(http.MethodGet, "/accounts/:id", app.api)
	r.Handler(http.MethodPut, "/accounts/:id", app.api)
	r.Handler(http.MethodDelete, "/accounts/:id", app.api)

	return r
}

func (app *App) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
