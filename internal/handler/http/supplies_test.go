package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/craft-stash/internal/service"
	"github.com/avoronova/craft-stash/internal/store"
	"github.com/avoronova/craft-stash/models"
)

// doRouted sends the request through the full router so that URL parameters,
// middleware, and the default permissive auth mock are all in play.
func doRouted(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer test.jwt.token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestListSupplies_ParsesQueryParameters(t *testing.T) {
	var captured models.SupplyQuery
	supplies := &mockSupplyService{
		listFn: func(_ context.Context, userID int64, query models.SupplyQuery) (models.SupplyList, error) {
			require.Equal(t, int64(1), userID)
			captured = query
			return models.SupplyList{Items: []models.Supply{}}, nil
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	target := "/api/supplies?q=wool&category=Yarn&category=Fabric&unit=g&color=blue&tag=winter&sort=quantity&dir=desc&page=2&page_size=25"
	req := httptest.NewRequest(http.MethodGet, target, nil)

	rec := doRouted(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wool", captured.Q)
	assert.Equal(t, []string{models.CategoryYarn, models.CategoryFabric}, captured.Categories)
	assert.Equal(t, []string{"g"}, captured.Units)
	assert.Equal(t, "blue", captured.Color)
	assert.Equal(t, "winter", captured.Tag)
	assert.Equal(t, models.SortByQuantity, captured.SortBy)
	assert.Equal(t, models.SortDesc, captured.SortDir)
	assert.Equal(t, 2, captured.Page)
	assert.Equal(t, 25, captured.PageSize)
}

func TestListSupplies_WritesPaginatedResponse(t *testing.T) {
	supplies := &mockSupplyService{
		listFn: func(_ context.Context, _ int64, _ models.SupplyQuery) (models.SupplyList, error) {
			return models.SupplyList{
				Items:    []models.Supply{{ID: 1, Name: "DK Yarn", Category: models.CategoryYarn, Unit: "skein"}},
				Total:    11,
				Page:     0,
				PageSize: 10,
			}, nil
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	req := httptest.NewRequest(http.MethodGet, "/api/supplies", nil)

	rec := doRouted(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var list models.SupplyList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, "DK Yarn", list.Items[0].Name)
	assert.Equal(t, 11, list.Total)
}

func TestCreateSupply_Success(t *testing.T) {
	supplies := &mockSupplyService{
		createFn: func(_ context.Context, supply models.Supply) (models.Supply, error) {
			require.Equal(t, int64(1), supply.UserID)
			supply.ID = 7
			return supply, nil
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	body := `{"name":"DK Yarn","category":"Yarn","quantity":3,"unit":"skein"}`
	req := httptest.NewRequest(http.MethodPost, "/api/supplies", strings.NewReader(body))

	rec := doRouted(h, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Supply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
}

func TestCreateSupply_ValidationError(t *testing.T) {
	supplies := &mockSupplyService{
		createFn: func(_ context.Context, _ models.Supply) (models.Supply, error) {
			return models.Supply{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	req := httptest.NewRequest(http.MethodPost, "/api/supplies", strings.NewReader(`{"name":""}`))

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSupply_NotFound(t *testing.T) {
	supplies := &mockSupplyService{
		getFn: func(_ context.Context, _, _ int64) (models.Supply, error) {
			return models.Supply{}, store.ErrSupplyNotFound
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	req := httptest.NewRequest(http.MethodGet, "/api/supplies/99", nil)

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSupply_InvalidID(t *testing.T) {
	h := newTestHandler(&service.Services{SupplyService: &mockSupplyService{}})
	req := httptest.NewRequest(http.MethodGet, "/api/supplies/abc", nil)

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSupply_TakesIDFromURL(t *testing.T) {
	supplies := &mockSupplyService{
		updateFn: func(_ context.Context, supply models.Supply) (models.Supply, error) {
			require.Equal(t, int64(5), supply.ID)
			require.Equal(t, int64(1), supply.UserID)
			return supply, nil
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	// The body carries a different id; the URL must win.
	body := `{"id":999,"name":"DK Yarn","category":"Yarn","quantity":3,"unit":"skein"}`
	req := httptest.NewRequest(http.MethodPut, "/api/supplies/5", strings.NewReader(body))

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteSupply_Success(t *testing.T) {
	var deletedID int64
	supplies := &mockSupplyService{
		deleteFn: func(_ context.Context, _, supplyID int64) error {
			deletedID = supplyID
			return nil
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	req := httptest.NewRequest(http.MethodDelete, "/api/supplies/5", nil)

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(5), deletedID)
}

func TestDeleteSupply_NotFound(t *testing.T) {
	supplies := &mockSupplyService{
		deleteFn: func(_ context.Context, _, _ int64) error {
			return store.ErrSupplyNotFound
		},
	}

	h := newTestHandler(&service.Services{SupplyService: supplies})
	req := httptest.NewRequest(http.MethodDelete, "/api/supplies/5", nil)

	rec := doRouted(h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
