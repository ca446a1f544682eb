package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sirivaram/sirictl/internal/domain"

	"github.com/google/go-cmp/cmp"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens string

func (s staticTokens) Token() (string, error) { return string(s), nil }

// newTestClient starts an httptest server with the given routes and
// returns a client pointed at it. Routes map "METHOD /path" to handlers.
func newTestClient(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL, staticTokens("test-token"))
}

func TestListUsers_DecodesArray(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/users": func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id":"1","name":"Rajesh","mobile":"9876543210","village":"Sirivaram","role":"member","status":"PENDING"},
				{"id":"2","name":"Sita","mobile":"9876500000","village":"Sirivaram","role":"member","status":"APPROVED"}
			]`))
		},
	})

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}

	want := []domain.User{
		{ID: "1", Name: "Rajesh", Mobile: "9876543210", Village: "Sirivaram", Role: "member", Status: "PENDING"},
		{ID: "2", Name: "Sita", Mobile: "9876500000", Village: "Sirivaram", Role: "member", Status: "APPROVED"},
	}
	if diff := cmp.Diff(want, users); diff != "" {
		t.Errorf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestList_NonArrayBodyYieldsEmptyList(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/users": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"message":"nothing here"}`))
		},
	})

	users, err := client.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("non-array body should decode as empty, got %d users", len(users))
	}
}

func TestApproveUser_ReturnsServerMessage(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"PUT /api/users/7/approve": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"message":"User approved"}`))
		},
	})

	msg, err := client.ApproveUser(context.Background(), "7")
	if err != nil {
		t.Fatalf("ApproveUser failed: %v", err)
	}
	if msg != "User approved" {
		t.Errorf("expected server message, got %q", msg)
	}
}

func TestMutate_ExplicitSuccessFalseIsError(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"PUT /api/users/7/approve": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"message":"user already reviewed"}`))
		},
	})

	_, err := client.ApproveUser(context.Background(), "7")
	if err == nil {
		t.Fatal("a 2xx body with success:false should be an error")
	}
	if !strings.Contains(err.Error(), "user already reviewed") {
		t.Errorf("error should carry the server message, got: %v", err)
	}
}

func TestMutate_EmptyBodyIsSuccess(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"DELETE /api/users/9": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	})

	if _, err := client.DeleteUser(context.Background(), "9"); err != nil {
		t.Errorf("2xx with empty body should succeed, got: %v", err)
	}
}

func TestStatusErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
	}

	for _, tt := range tests {
		client := newTestClient(t, map[string]http.HandlerFunc{
			"DELETE /api/users/9": func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message":"nope"}`))
			},
		})

		_, err := client.DeleteUser(context.Background(), "9")
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d should map to %v, got %v", tt.status, tt.want, err)
		}
	}
}

func TestStatusError_ServerErrorCarriesMessage(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"DELETE /api/users/9": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"database unavailable"}`))
		},
	})

	_, err := client.DeleteUser(context.Background(), "9")
	if err == nil {
		t.Fatal("HTTP 500 should be an error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "database unavailable") {
		t.Errorf("error should carry status and message, got: %v", err)
	}
}

func TestTransportError_CancelledContextMapsToTimeout(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/users": func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.ListUsers(ctx)
	if !errors.Is(err, domain.ErrTimeout) {
		t.Errorf("context deadline should map to ErrTimeout, got %v", err)
	}
}

func TestLogin_RequiresToken(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"user":{"name":"Raj"}}}`))
		},
	})

	_, err := client.Login(context.Background(), Credentials{Mobile: "9876543210", Password: "pw"})
	if err == nil {
		t.Fatal("a login response without a token should be an error")
	}
}

func TestLogin_DecodesEnvelopeData(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"POST /api/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"token":"jwt-123","user":{"name":"Raj","mobile":"9876543210","role":"admin"}}}`))
		},
	})

	result, err := client.Login(context.Background(), Credentials{Mobile: "9876543210", Password: "pw"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token != "jwt-123" {
		t.Errorf("expected token jwt-123, got %q", result.Token)
	}
	if result.User.Name != "Raj" || result.User.Role != "admin" {
		t.Errorf("unexpected user blob: %+v", result.User)
	}
}

func TestGetFooter_UnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/footer": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"about":"Community site","email":"hello@sirivaram.org","phone":"9876543210","address":"Sirivaram"}}`))
		},
	})

	footer, err := client.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("GetFooter failed: %v", err)
	}
	if footer.About != "Community site" || footer.Email != "hello@sirivaram.org" {
		t.Errorf("unexpected footer: %+v", footer)
	}
}

func TestGetFooter_AcceptsBareObject(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/footer": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"about":"Community site","email":"hello@sirivaram.org"}`))
		},
	})

	footer, err := client.GetFooter(context.Background())
	if err != nil {
		t.Fatalf("GetFooter failed: %v", err)
	}
	if footer.About != "Community site" {
		t.Errorf("unexpected footer: %+v", footer)
	}
}

func TestListPayments_StatusFilterForwarded(t *testing.T) {
	var gotStatus string
	client := newTestClient(t, map[string]http.HandlerFunc{
		"GET /api/admin/payments": func(w http.ResponseWriter, r *http.Request) {
			gotStatus = r.URL.Query().Get("status")
			w.Write([]byte(`[]`))
		},
	})

	if _, err := client.ListPayments(context.Background(), domain.PaymentPendingVerification); err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if gotStatus != domain.PaymentPendingVerification {
		t.Errorf("expected status query forwarded, got %q", gotStatus)
	}
}
