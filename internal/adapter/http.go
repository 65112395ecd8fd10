package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/hero-api/internal/logger"
	"github.com/MKhiriev/hero-api/internal/utils"
	"github.com/MKhiriev/hero-api/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the server at address. A bare "host:port" address is treated as http.
// A positive requestTimeout overrides the client default.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if requestTimeout > 0 {
		client.SetTimeout(requestTimeout)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login POSTs credentials to /login and stores the returned access token.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	var out models.Response[models.AccessToken]

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&out).
		Post("/login")
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessToken{}, err
	}

	h.SetToken(out.Data.AccessToken)
	h.logger.Debug().Str("func", "httpServerAdapter.Login").Msg("logged in")
	return out.Data, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListHeroes(ctx context.Context, params models.Params) (models.Page[models.HeroWithTeam], error) {
	var out models.Response[models.Page[models.HeroWithTeam]]

	resp, err := h.authedRequest(ctx).
		SetQueryParams(pageQuery(params)).
		SetResult(&out).
		Get("/hero")
	if err != nil {
		return models.Page[models.HeroWithTeam]{}, fmt.Errorf("list heroes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.HeroWithTeam]{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) ListHeroesByCreatedAt(ctx context.Context, params models.Params, order models.Order) (models.Page[models.HeroWithTeam], error) {
	var out models.Response[models.Page[models.HeroWithTeam]]

	resp, err := h.authedRequest(ctx).
		SetQueryParams(pageQuery(params)).
		SetQueryParam("order", string(order)).
		SetResult(&out).
		Get("/hero/by_created_at")
	if err != nil {
		return models.Page[models.HeroWithTeam]{}, fmt.Errorf("list heroes by created_at request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.HeroWithTeam]{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) GetHero(ctx context.Context, id uuid.UUID) (models.HeroWithTeam, error) {
	var out models.Response[models.HeroWithTeam]

	resp, err := h.authedRequest(ctx).
		SetPathParam("hero_id", id.String()).
		SetResult(&out).
		Get("/hero/{hero_id}")
	if err != nil {
		return models.HeroWithTeam{}, fmt.Errorf("get hero request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HeroWithTeam{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) CreateHero(ctx context.Context, hero models.HeroCreate) (models.Hero, error) {
	var out models.Response[models.Hero]

	resp, err := h.authedRequest(ctx).
		SetBody(hero).
		SetResult(&out).
		Post("/hero")
	if err != nil {
		return models.Hero{}, fmt.Errorf("create hero request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Hero{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) UpdateHero(ctx context.Context, id uuid.UUID, patch models.HeroUpdate) (models.Hero, error) {
	var out models.Response[models.Hero]

	resp, err := h.authedRequest(ctx).
		SetPathParam("hero_id", id.String()).
		SetBody(patch).
		SetResult(&out).
		Put("/hero/{hero_id}")
	if err != nil {
		return models.Hero{}, fmt.Errorf("update hero request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Hero{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) DeleteHero(ctx context.Context, id uuid.UUID) (models.Hero, error) {
	var out models.Response[models.Hero]

	resp, err := h.authedRequest(ctx).
		SetPathParam("hero_id", id.String()).
		SetResult(&out).
		Delete("/hero/{hero_id}")
	if err != nil {
		return models.Hero{}, fmt.Errorf("delete hero request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Hero{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) CreateTeam(ctx context.Context, team models.TeamCreate) (models.Team, error) {
	var out models.Response[models.Team]

	resp, err := h.authedRequest(ctx).
		SetBody(team).
		SetResult(&out).
		Post("/team")
	if err != nil {
		return models.Team{}, fmt.Errorf("create team request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Team{}, err
	}
	return out.Data, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// pageQuery leaves zero values out so the server defaults apply.
func pageQuery(params models.Params) map[string]string {
	query := make(map[string]string, 2)
	if params.Page > 0 {
		query["page"] = strconv.Itoa(params.Page)
	}
	if params.Size > 0 {
		query["size"] = strconv.Itoa(params.Size)
	}
	return query
}
