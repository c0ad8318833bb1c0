package handlers_test_suite

import (
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func login(t *testing.T, c *client, password string) (*handler.LoginResult, int) {
	t.Helper()
	w := c.do(http.MethodPost, "/auth/login", handler.CredentialsRequest{Password: password})
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var result handler.LoginResult
	decodeJSON(t, w, &result)
	return &result, w.Code
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	_, code := login(t, c, "wrong")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", code)
	}
}

func TestLogin_IssuesToken(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	result, code := login(t, c, adminPassword)
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
}

func TestAdminOrders_RequiresToken(t *testing.T) {
	t.Cleanup(resetState)
	c := newClient(t)

	w := c.do(http.MethodGet, "/admin/orders", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}

	c.headers["Authorization"] = "Bearer not-a-token"
	w = c.do(http.MethodGet, "/admin/orders", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized for garbage token, got %d", w.Code)
	}
}

func TestAdminOrders_AggregatesSessions(t *testing.T) {
	t.Cleanup(resetState)

	shopper := newClient(t)
	addItem(shopper, "p1")
	w := shopper.do(http.MethodPost, "/checkout", validCustomer())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	admin := newClient(t)
	result, code := login(t, admin, adminPassword)
	if code != http.StatusOK {
		t.Fatalf("login failed with %d", code)
	}
	admin.headers["Authorization"] = "Bearer " + result.Token

	w = admin.do(http.MethodGet, "/admin/orders", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var sessions []handler.SessionOrders
	decodeJSON(t, w, &sessions)

	total := 0
	for _, s := range sessions {
		total += len(s.Orders)
	}
	if total != 1 {
		t.Errorf("expected 1 order across sessions, got %d", total)
	}
}
