package profile

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfile, h.handleEdit)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfile, h.handleSave)
}
