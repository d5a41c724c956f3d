package requests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devtinder/web/internal/services/web/routepath"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(&fakeGateway{}, nil), testBase()))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(&fakeGateway{}, nil), testBase()))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "index", method: http.MethodGet, path: routepath.AppRequests, wantStatus: http.StatusOK},
		{name: "review post", method: http.MethodPost, path: routepath.RequestReview("r1", "accepted"), wantStatus: http.StatusSeeOther},
		{name: "review get", method: http.MethodGet, path: routepath.RequestReview("r1", "accepted"), wantStatus: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := webfakes.WithSession(httptest.NewRequest(tc.method, tc.path, nil), f.sess)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestModuleContract(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "requests" {
		t.Fatalf("ID() = %q", got)
	}
	if New().Healthy() {
		t.Fatal("degraded module reported healthy")
	}
	if !NewWithGateway(NewAPIGateway(), testBase()).Healthy() {
		t.Fatal("api gateway module reported unhealthy")
	}
	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.RequestsPrefix || len(mount.Aliases) != 1 || mount.Aliases[0] != routepath.AppRequests {
		t.Fatalf("mount = %+v", mount)
	}
}
