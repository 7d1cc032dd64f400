package mockmode

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cookie   string
		fallback bool
		want     bool
	}{
		{name: "no cookie uses fallback false", cookie: "", fallback: false, want: false},
		{name: "no cookie uses fallback true", cookie: "", fallback: true, want: true},
		{name: "cookie true", cookie: "true", fallback: false, want: true},
		{name: "cookie false overrides fallback", cookie: "false", fallback: true, want: false},
		{name: "garbage cookie value is off", cookie: "yes", fallback: true, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/mock-mode", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			if got := Enabled(req, tc.fallback); got != tc.want {
				t.Fatalf("Enabled() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHandleGet(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	NewServer(true).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mock-mode", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got["mockMode"] {
		t.Fatal("mockMode = false, want fallback true")
	}
}

func TestHandleSetWritesCookie(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	NewServer(false).Register(mux)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mock-mode", strings.NewReader(`{"enabled":true}`))
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Success  bool `json:"success"`
		MockMode bool `json:"mockMode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !got.Success || !got.MockMode {
		t.Fatalf("response = %+v, want success and mockMode true", got)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName || c.Value != "true" {
		t.Fatalf("cookie = %s=%s, want %s=true", c.Name, c.Value, CookieName)
	}
	if c.Path != "/" {
		t.Fatalf("cookie path = %q, want /", c.Path)
	}
	if c.MaxAge != cookieMaxAge {
		t.Fatalf("cookie max-age = %d, want %d", c.MaxAge, cookieMaxAge)
	}
}

func TestHandleSetDisable(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	NewServer(true).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mock-mode", strings.NewReader(`{"enabled":false}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "false" {
		t.Fatalf("expected a single %s=false cookie, got %+v", CookieName, cookies)
	}

	// The explicit cookie now beats the fallback.
	req := httptest.NewRequest(http.MethodGet, "/mock-mode", nil)
	req.AddCookie(cookies[0])
	if Enabled(req, true) {
		t.Fatal("Enabled() = true after disabling via cookie")
	}
}

func TestHandleSetRejectsBadBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	NewServer(false).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mock-mode", strings.NewReader("not json")))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "BAD_REQUEST" {
		t.Fatalf("error code = %q, want BAD_REQUEST", envelope.Error.Code)
	}
}
