package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"bidwars/internal/auth"
	bidding "bidwars/internal/biddingService"
	catalog "bidwars/internal/catalogService"
	"bidwars/internal/itemlock"
	lifecycle "bidwars/internal/lifecycleService"
	model "bidwars/internal/models"
	"bidwars/internal/repository"
	"bidwars/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "integration-test-secret"
	testIssuer = "bidwars"
)

// TestEnv bundles the router with direct access to the store and token
// issuing for test setup.
type TestEnv struct {
	Router  *gin.Engine
	Store   *repository.MemoryStore
	Catalog *catalog.Service
	manager *auth.Manager
}

// SetupTestEnv wires the full application over an in-memory store.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	locks := itemlock.NewLocker()
	manager := auth.NewManager(testSecret, testIssuer)
	catalogSvc := catalog.NewService(store)

	router := server.SetupRouter(server.Services{
		Bidding:   bidding.NewBiddingService(store, locks),
		Catalog:   catalogSvc,
		Lifecycle: lifecycle.NewService(store, locks),
	}, manager)

	return &TestEnv{Router: router, Store: store, Catalog: catalogSvc, manager: manager}
}

// TokenFor issues a bearer token for the given identity.
func (e *TestEnv) TokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := e.manager.Issue(model.User{UserID: userID, Username: userID, Role: role}, time.Hour)
	require.NoError(t, err)
	return token
}

// CreateItem seeds an item directly through the catalog service and returns
// its generated ID.
func (e *TestEnv) CreateItem(t *testing.T, title, startingPrice, maxAmount string) string {
	t.Helper()
	item, err := e.Catalog.CreateItem(title, title+" description", "demo_admin", startingPrice, maxAmount)
	require.NoError(t, err)
	return item.ItemID
}

// Do executes an HTTP request with the given bearer token and parses the
// JSON envelope.
func (e *TestEnv) Do(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}
