package app

import (
	"net/http"

	module "github.com/devtinder/web/internal/services/web/module"
	"github.com/devtinder/web/internal/services/web/platform/httpx"
)

type healthEntry struct {
	id       string
	reporter module.HealthReporter
}

func appendHealth(entries []healthEntry, feature module.Module) []healthEntry {
	reporter, ok := feature.(module.HealthReporter)
	if !ok {
		return entries
	}
	return append(entries, healthEntry{id: feature.ID(), reporter: reporter})
}

type healthReport struct {
	Status  string          `json:"status"`
	Modules map[string]bool `json:"modules"`
}

// healthHandler reports "degraded" while any module lacks its gateway. The
// process still answers 200 so load balancers keep routing.
func healthHandler(entries []healthEntry) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		report := healthReport{Status: "ok", Modules: make(map[string]bool, len(entries))}
		for _, entry := range entries {
			healthy := entry.reporter.Healthy()
			report.Modules[entry.id] = healthy
			if !healthy {
				report.Status = "degraded"
			}
		}
		_ = httpx.WriteJSON(w, http.StatusOK, report)
	})
}
