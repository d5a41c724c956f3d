package feed

import (
	"net/http"

	"github.com/devtinder/web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppRootPattern, h.handleFeed)
	mux.HandleFunc(http.MethodPost+" "+routepath.FeedDecisionPattern, h.handleDecision)
	mux.HandleFunc(routepath.FeedPrefix, h.WriteNotFound)
}
