package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL, Timeout: 2 * time.Second})
	return a.(*httpServerAdapter)
}

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("test-issuer", userID, time.Hour, "test-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestRegister_StoresToken(t *testing.T) {
	bearer := signedTestToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "anna", user.Login)

		w.Header().Set("Authorization", "Bearer "+bearer)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.User{Login: "anna", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, bearer, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "anna", Password: "secret"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "anna", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestListSupplies_SendsQueryAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/supplies", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		q := r.URL.Query()
		assert.Equal(t, "wool", q.Get("q"))
		assert.Equal(t, []string{"Yarn", "Fabric"}, q["category"])
		assert.Equal(t, "quantity", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("dir"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("page_size"))

		_ = json.NewEncoder(w).Encode(models.SupplyList{
			Items:    []models.Supply{{ID: 1, Name: "Wool"}},
			Total:    21,
			Page:     2,
			PageSize: 10,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-123")

	list, err := a.ListSupplies(context.Background(), models.SupplyQuery{
		Q:          "wool",
		Categories: []string{"Yarn", "Fabric"},
		SortBy:     models.SortByQuantity,
		SortDir:    models.SortDesc,
		Page:       2,
		PageSize:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, 21, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Wool", list.Items[0].Name)
}

func TestAllSupplies_PagesThroughList(t *testing.T) {
	pages := map[string][]models.Supply{
		"0": make([]models.Supply, allSuppliesPageSize),
		"1": {{ID: 999, Name: "Last"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		_ = json.NewEncoder(w).Encode(models.SupplyList{
			Items: pages[page],
			Total: allSuppliesPageSize + 1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	supplies, err := a.AllSupplies(context.Background())
	require.NoError(t, err)
	assert.Len(t, supplies, allSuppliesPageSize+1)
}

func TestCreateSupply_DecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/supplies", r.URL.Path)

		var supply models.Supply
		require.NoError(t, json.NewDecoder(r.Body).Decode(&supply))
		supply.ID = 11

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(supply)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateSupply(context.Background(), models.Supply{Name: "Buttons", Category: "Notion", Unit: "pcs"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lookup/999", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("catalog product not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Lookup(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetProjectStatus_PatchesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/projects/3/status", r.URL.Path)

		var body map[string]models.ProjectStatus
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.StatusFinished, body["status"])

		_ = json.NewEncoder(w).Encode(models.Project{ID: 3, Name: "Hat", Status: models.StatusFinished})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	project, err := a.SetProjectStatus(context.Background(), 3, models.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, project.Status)
}

func TestConvert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "100", q.Get("value"))
		assert.Equal(t, "g", q.Get("from"))
		assert.Equal(t, "oz", q.Get("to"))

		_ = json.NewEncoder(w).Encode(models.Conversion{Value: 100, From: "g", To: "oz", Result: 3.527})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	conversion, err := a.Convert(context.Background(), 100, "g", "oz")
	require.NoError(t, err)
	assert.InDelta(t, 3.527, conversion.Result, 1e-9)
}
