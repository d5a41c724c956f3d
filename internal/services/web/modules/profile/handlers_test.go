package profile

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/devtinder/web/internal/services/web/platform/notice"
	"github.com/devtinder/web/internal/services/web/routepath"
	"github.com/devtinder/web/internal/testkit/webfakes"
)

func serve(t *testing.T, m Module, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, r)
	return rr
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.AppProfile, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestEditPrefillsFormFromSession(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t, nil)
	req := webfakes.WithSession(httptest.NewRequest(http.MethodGet, routepath.AppProfile, nil), sess)
	rr := serve(t, NewWithGateway(&fakeGateway{}, testBase()), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{`value="Lovelace"`, `value="math, poetry"`, `value="female" selected`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
	if strings.Contains(body, `data-live="swap"`) {
		t.Fatal("profile page must not be swapped by live refresh")
	}
}

func TestSaveRedirectsWithSuccessNotice(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t, nil)
	req := webfakes.WithSession(postForm(url.Values{"firstName": {"Augusta"}, "skills": {"go"}}), sess)
	rr := serve(t, NewWithGateway(&fakeGateway{}, testBase()), req)

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != routepath.AppProfile {
		t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	active := sess.Notices.Active()
	if len(active) != 1 || active[0].Kind != notice.KindSuccess || active[0].Message != "Profile updated successfully!" {
		t.Fatalf("notices = %+v", active)
	}
}

func TestSaveInvalidInputRerendersForm(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t, nil)
	gateway := &fakeGateway{}
	req := webfakes.WithSession(postForm(url.Values{"firstName": {"Ada"}, "age": {"-3"}, "about": {"kept <b>"}}), sess)
	rr := serve(t, NewWithGateway(gateway, testBase()), req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Age must be a positive number.") || !strings.Contains(body, "kept &lt;b&gt;") {
		t.Fatalf("body = %s", body)
	}
	if _, n := gateway.lastEdit(); n != 0 {
		t.Fatalf("edits = %d, want 0", n)
	}
}

func TestSaveUpstreamFailureShowsServerMessage(t *testing.T) {
	t.Parallel()

	upstream := webfakes.NewUpstream()
	upstream.Set(http.MethodPatch, "/profile/edit", http.StatusBadRequest, `{"message":"Invalid Edit Request"}`)
	sess := signedInSession(t, upstream)
	req := webfakes.WithSession(postForm(url.Values{"firstName": {"Augusta"}}), sess)
	rr := serve(t, NewWithGateway(NewAPIGateway(), testBase()), req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `value="Augusta"`) {
		t.Fatal("submitted values were not kept")
	}
	active := sess.Notices.Active()
	if len(active) != 1 || active[0].Kind != notice.KindError || active[0].Message != "Invalid Edit Request" {
		t.Fatalf("notices = %+v", active)
	}
	user, _ := sess.Store.Session().User()
	if user.FirstName != "Ada" {
		t.Fatalf("session user changed to %+v", user)
	}
}

func TestSaveFallsBackToGenericFailureMessage(t *testing.T) {
	t.Parallel()

	sess := signedInSession(t, nil)
	req := webfakes.WithSession(postForm(url.Values{"firstName": {"Augusta"}}), sess)
	serve(t, New(), req)

	active := sess.Notices.Active()
	if len(active) != 1 || active[0].Message != "Failed to save profile. Check server connection." {
		t.Fatalf("notices = %+v", active)
	}
}
