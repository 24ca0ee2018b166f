package api_test

import (
	"net/http"
	"testing"

	"github.com/meridianlaw/cms/internal/auth"
)

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantError  string
	}{
		{
			name:       "InvalidJSON",
			body:       "{not json",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request",
		},
		{
			name:       "MissingFields",
			body:       map[string]string{"email": testAdminEmail},
			wantStatus: http.StatusBadRequest,
			wantError:  "email and password are required",
		},
		{
			name:       "UnknownEmail",
			body:       map[string]string{"email": "nobody@example.com", "password": testAdminPassword},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid credentials",
		},
		{
			name:       "WrongPassword",
			body:       map[string]string{"email": testAdminEmail, "password": "nope"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid credentials",
		},
		{
			name:       "Success",
			body:       map[string]string{"email": testAdminEmail, "password": testAdminPassword},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/v1/auth/login", tt.body, nil)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantError != "" {
				var resp struct {
					Error string `json:"error"`
				}
				decodeBody(t, w, &resp)
				if resp.Error != tt.wantError {
					t.Fatalf("error = %q, want %q", resp.Error, tt.wantError)
				}
				return
			}

			var resp struct {
				Admin struct {
					ID    string `json:"id"`
					Email string `json:"email"`
				} `json:"admin"`
			}
			decodeBody(t, w, &resp)
			if resp.Admin.Email != testAdminEmail || resp.Admin.ID == "" {
				t.Fatalf("unexpected admin: %+v", resp.Admin)
			}

			var session *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == auth.SessionCookieName {
					session = c
				}
			}
			if session == nil {
				t.Fatal("login did not set session cookie")
			}
			if !session.HttpOnly {
				t.Fatal("session cookie not HttpOnly")
			}
		})
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	router, _ := newTestRouter(t)

	unknown := doJSON(t, router, http.MethodPost, "/v1/auth/login",
		map[string]string{"email": "nobody@example.com", "password": testAdminPassword}, nil)
	wrongPw := doJSON(t, router, http.MethodPost, "/v1/auth/login",
		map[string]string{"email": testAdminEmail, "password": "nope"}, nil)

	if unknown.Code != wrongPw.Code || unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("responses differ: %d %s vs %d %s",
			unknown.Code, unknown.Body.String(), wrongPw.Code, wrongPw.Body.String())
	}
}

func TestMe(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous me: status = %d", w.Code)
	}

	cookies := login(t, router)
	w = doJSON(t, router, http.MethodGet, "/v1/auth/me", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated me: status = %d body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Admin struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	decodeBody(t, w, &resp)
	if resp.Admin.Email != testAdminEmail {
		t.Fatalf("me email = %q", resp.Admin.Email)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newTestRouter(t)
	cookies := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/v1/auth/logout", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: status = %d", w.Code)
	}

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge != -1 || cleared.Value != "" {
		t.Fatalf("logout did not clear the session cookie: %+v", cleared)
	}
}
