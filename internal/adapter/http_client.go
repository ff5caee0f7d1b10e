package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/avoronova/craft-stash/internal/utils"
	"github.com/avoronova/craft-stash/models"
	"github.com/go-resty/resty/v2"
)

// allSuppliesPageSize is the page size used when the cache refresh worker
// drains the list endpoint.
const allSuppliesPageSize = 200

// HTTPClientConfig configures the REST implementation of [ServerAdapter].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] speaking the server's REST
// API over resty.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

// authenticate posts credentials, extracts the bearer token from the
// Authorization response header, and stores it for subsequent requests.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("auth parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) ListSupplies(ctx context.Context, query models.SupplyQuery) (models.SupplyList, error) {
	query.Normalize()

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(supplyQueryValues(query)).
		Get("/api/supplies")
	if err != nil {
		return models.SupplyList{}, fmt.Errorf("list supplies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SupplyList{}, err
	}

	var list models.SupplyList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.SupplyList{}, fmt.Errorf("decode supply list response: %w", err)
	}

	return list, nil
}

func (h *httpServerAdapter) AllSupplies(ctx context.Context) ([]models.Supply, error) {
	var all []models.Supply

	for page := 0; ; page++ {
		list, err := h.ListSupplies(ctx, models.SupplyQuery{Page: page, PageSize: allSuppliesPageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, list.Items...)

		if len(all) >= list.Total || len(list.Items) == 0 {
			return all, nil
		}
	}
}

func (h *httpServerAdapter) CreateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(supply).
		Post("/api/supplies")
	if err != nil {
		return models.Supply{}, fmt.Errorf("create supply request: %w", err)
	}

	return decodeSupply(resp)
}

func (h *httpServerAdapter) GetSupply(ctx context.Context, supplyID int64) (models.Supply, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/supplies/" + strconv.FormatInt(supplyID, 10))
	if err != nil {
		return models.Supply{}, fmt.Errorf("get supply request: %w", err)
	}

	return decodeSupply(resp)
}

func (h *httpServerAdapter) UpdateSupply(ctx context.Context, supply models.Supply) (models.Supply, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(supply).
		Put("/api/supplies/" + strconv.FormatInt(supply.ID, 10))
	if err != nil {
		return models.Supply{}, fmt.Errorf("update supply request: %w", err)
	}

	return decodeSupply(resp)
}

func (h *httpServerAdapter) DeleteSupply(ctx context.Context, supplyID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/supplies/" + strconv.FormatInt(supplyID, 10))
	if err != nil {
		return fmt.Errorf("delete supply request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListProjects(ctx context.Context) ([]models.Project, error) {
	resp, err := h.authedRequest(ctx).Get("/api/projects")
	if err != nil {
		return nil, fmt.Errorf("list projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var projects []models.Project
	if err = json.Unmarshal(resp.Body(), &projects); err != nil {
		return nil, fmt.Errorf("decode project list response: %w", err)
	}

	return projects, nil
}

func (h *httpServerAdapter) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		Post("/api/projects")
	if err != nil {
		return models.Project{}, fmt.Errorf("create project request: %w", err)
	}

	return decodeProject(resp)
}

func (h *httpServerAdapter) GetProject(ctx context.Context, projectID int64) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/projects/" + strconv.FormatInt(projectID, 10))
	if err != nil {
		return models.Project{}, fmt.Errorf("get project request: %w", err)
	}

	return decodeProject(resp)
}

func (h *httpServerAdapter) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(project).
		Put("/api/projects/" + strconv.FormatInt(project.ID, 10))
	if err != nil {
		return models.Project{}, fmt.Errorf("update project request: %w", err)
	}

	return decodeProject(resp)
}

func (h *httpServerAdapter) SetProjectStatus(ctx context.Context, projectID int64, status models.ProjectStatus) (models.Project, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]models.ProjectStatus{"status": status}).
		Patch("/api/projects/" + strconv.FormatInt(projectID, 10) + "/status")
	if err != nil {
		return models.Project{}, fmt.Errorf("set project status request: %w", err)
	}

	return decodeProject(resp)
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, projectID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/projects/" + strconv.FormatInt(projectID, 10))
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) AddMaterial(ctx context.Context, material models.ProjectMaterial) (models.ProjectMaterial, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(material).
		Post("/api/projects/" + strconv.FormatInt(material.ProjectID, 10) + "/materials")
	if err != nil {
		return models.ProjectMaterial{}, fmt.Errorf("add material request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProjectMaterial{}, err
	}

	var added models.ProjectMaterial
	if err = json.Unmarshal(resp.Body(), &added); err != nil {
		return models.ProjectMaterial{}, fmt.Errorf("decode material response: %w", err)
	}

	return added, nil
}

func (h *httpServerAdapter) DeleteMaterial(ctx context.Context, projectID, materialID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/projects/" + strconv.FormatInt(projectID, 10) + "/materials/" + strconv.FormatInt(materialID, 10))
	if err != nil {
		return fmt.Errorf("delete material request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ShoppingList(ctx context.Context) ([]models.ShoppingItem, error) {
	resp, err := h.authedRequest(ctx).Get("/api/shopping-list")
	if err != nil {
		return nil, fmt.Errorf("shopping list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.ShoppingItem
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode shopping list response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) Lookup(ctx context.Context, barcode string) (models.CatalogProduct, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/lookup/" + url.PathEscape(barcode))
	if err != nil {
		return models.CatalogProduct{}, fmt.Errorf("lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CatalogProduct{}, err
	}

	var product models.CatalogProduct
	if err = json.Unmarshal(resp.Body(), &product); err != nil {
		return models.CatalogProduct{}, fmt.Errorf("decode lookup response: %w", err)
	}

	return product, nil
}

func (h *httpServerAdapter) Convert(ctx context.Context, value float64, from, to string) (models.Conversion, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"value": strconv.FormatFloat(value, 'f', -1, 64),
			"from":  from,
			"to":    to,
		}).
		Get("/api/convert")
	if err != nil {
		return models.Conversion{}, fmt.Errorf("convert request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversion{}, err
	}

	var conversion models.Conversion
	if err = json.Unmarshal(resp.Body(), &conversion); err != nil {
		return models.Conversion{}, fmt.Errorf("decode conversion response: %w", err)
	}

	return conversion, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeSupply(resp *resty.Response) (models.Supply, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Supply{}, err
	}

	var supply models.Supply
	if err := json.Unmarshal(resp.Body(), &supply); err != nil {
		return models.Supply{}, fmt.Errorf("decode supply response: %w", err)
	}

	return supply, nil
}

func decodeProject(resp *resty.Response) (models.Project, error) {
	if err := mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	var project models.Project
	if err := json.Unmarshal(resp.Body(), &project); err != nil {
		return models.Project{}, fmt.Errorf("decode project response: %w", err)
	}

	return project, nil
}

// supplyQueryValues flattens a supply query into the list endpoint's query
// string parameters. Zero values are omitted.
func supplyQueryValues(query models.SupplyQuery) url.Values {
	values := url.Values{}

	if query.Q != "" {
		values.Set("q", query.Q)
	}
	for _, category := range query.Categories {
		values.Add("category", category)
	}
	for _, unit := range query.Units {
		values.Add("unit", unit)
	}
	if query.Color != "" {
		values.Set("color", query.Color)
	}
	if query.Tag != "" {
		values.Set("tag", query.Tag)
	}
	values.Set("sort", query.SortBy)
	values.Set("dir", query.SortDir)
	values.Set("page", strconv.Itoa(query.Page))
	values.Set("page_size", strconv.Itoa(query.PageSize))

	return values
}
