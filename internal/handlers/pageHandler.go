package handlers

import (
	"net/http"

	"github.com/akolanti/lexgate/internal/api"
	"github.com/akolanti/lexgate/internal/config"
	"github.com/akolanti/lexgate/internal/navigation"
)

// HealthHandler godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok"})
}

// PageHandler serves the shell for one page. Login and signup render without the menu.
func PageHandler(page navigation.Item, withMenu bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := navigation.RenderShell(w, page, withMenu); err != nil {
			logRH.Trace(r.Context()).Error("Couldn't render page", "route", page.Route, "err", err)
		}
	}
}

func RootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, config.DashboardPath, http.StatusFound)
}
