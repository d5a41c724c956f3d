package connections

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppConnections, h.handleIndex)
}
