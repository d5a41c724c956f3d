package requests

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppRequests, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.RequestReviewPattern, h.handleReview)
	mux.HandleFunc(routepath.RequestsPrefix, h.WriteNotFound)
}
