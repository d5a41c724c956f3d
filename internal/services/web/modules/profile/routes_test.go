package profile

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

func TestRegisterRoutesMethodContract(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t, nil)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(&fakeGateway{}, nil), testBase()))

	tests := []struct {
		method     string
		wantStatus int
	}{
		{method: http.MethodGet, wantStatus: http.StatusOK},
		{method: http.MethodHead, wantStatus: http.StatusOK},
		{method: http.MethodDelete, wantStatus: http.StatusMethodNotAllowed},
	}
	for _, tc := range tests {
		req := webfakes.WithSession(httptest.NewRequest(tc.method, routepath.AppProfile, nil), sess)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, req)
		if rr.Code != tc.wantStatus {
			t.Fatalf("%s status = %d, want %d", tc.method, rr.Code, tc.wantStatus)
		}
	}
}

func TestModuleContract(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "profile" {
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
	if mount.Prefix != routepath.AppProfile {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
}
