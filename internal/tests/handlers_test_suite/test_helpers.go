package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/rogerio-castellano/storefront/internal/promo"
	"github.com/rogerio-castellano/storefront/internal/session"
	"github.com/rogerio-castellano/storefront/internal/store"
)

const adminPassword = "secret"

var stateStore *store.InMemoryStateStore

func init() {
	handler.SetCatalog(testCatalog())
	handler.SetPromoTable(promo.Default())

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		panic(err)
	}
	handler.SetAdminPasswordHash(hash)

	resetState()
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]models.Product{
		{ID: "p1", Title: "Wireless Headphones", Category: "audio", Tags: []string{"bluetooth", "over-ear"}, Price: 100, Rating: 4.7},
		{ID: "p2", Title: "Portable Speaker", Category: "audio", Tags: []string{"bluetooth", "waterproof"}, Price: 50, Rating: 4.3},
		{ID: "p3", Title: "Mechanical Keyboard", Category: "peripherals", Tags: []string{"usb-c", "backlit"}, Price: 80, Rating: 4.8},
		{ID: "p4", Title: "Gaming Mouse", Category: "peripherals", Tags: []string{"wireless", "rgb"}, Price: 50, Rating: 4.5},
		{ID: "p5", Title: "Charging Pad", Category: "accessories", Tags: []string{"wireless", "fast charge"}, Price: 0, Rating: 3.9},
	})
}

// resetState swaps in a fresh state store and session manager so tests do
// not leak sessions into each other.
func resetState() {
	stateStore = store.NewInMemoryStateStore()
	handler.SetSessionManager(session.NewManager(stateStore, time.Millisecond))
}

// client is a minimal test client that carries the session cookie between
// requests, so consecutive calls hit the same session state.
type client struct {
	t       *testing.T
	router  http.Handler
	cookies []*http.Cookie
	headers map[string]string
}

func newClient(t *testing.T) *client {
	return &client{t: t, router: api.NewRouter(), headers: map[string]string{}}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("error encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(into); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
}

func addItem(c *client, productID string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, "/cart/items", handler.AddItemRequest{ProductID: productID})
}
