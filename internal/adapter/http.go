package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/models"
	"github.com/go-resty/resty/v2"
)

type httpFastingClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPFastingClient constructs an HTTP/REST implementation of
// [FastingClient]. address may omit the scheme, "http://" is assumed then.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPFastingClient(address string, timeout time.Duration, logger *logger.Logger) (FastingClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpFastingClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
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

func (h *httpFastingClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpFastingClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpFastingClient) Status(ctx context.Context) (string, error) {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/status")
	if err != nil {
		return "", fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return status.Status, nil
}

// Register POSTs the credentials to /api/users. The password is not echoed
// back.
func (h *httpFastingClient) Register(ctx context.Context, user models.User) (models.User, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&registered).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return models.User{UserID: registered.ID, Username: registered.Username, Email: registered.Email}, nil
}

// Login POSTs email and password to /api/login. The bearer token is taken
// from the Authorization response header and its userId claim is read
// without verification.
func (h *httpFastingClient) Login(ctx context.Context, user models.User) (models.Token, error) {
	var loggedIn models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Email: user.Email, Password: user.Password}).
		SetResult(&loggedIn).
		Post("/api/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Int64("user_id", userID).Msg("logged in")

	return models.Token{SignedString: token, UserID: userID, Username: loggedIn.Username}, nil
}

func (h *httpFastingClient) CreateSession(ctx context.Context, req models.NewSessionRequest) (int64, error) {
	var created models.CreateSessionResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/logs")
	if err != nil {
		return 0, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (h *httpFastingClient) ListSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error) {
	return h.listSessions(ctx, "/api/logs", rng)
}

func (h *httpFastingClient) ListOpenSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error) {
	return h.listSessions(ctx, "/api/open-logs", rng)
}

func (h *httpFastingClient) listSessions(ctx context.Context, path string, rng models.SessionRange) ([]models.FastingSession, error) {
	req := h.authedRequest(ctx)
	if rng.StartTime != "" {
		req.SetQueryParam("startTime", rng.StartTime)
	}
	if rng.EndTime != "" {
		req.SetQueryParam("endTime", rng.EndTime)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("list sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeSessions(resp.Body())
}

// decodeSessions reads either a session array or the informational
// {"message": ...} the server sends instead of an empty array.
func decodeSessions(body []byte) ([]models.FastingSession, error) {
	sessions := make([]models.FastingSession, 0)

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		var msg models.MessageResponse
		if err := json.Unmarshal(body, &msg); err != nil {
			return nil, fmt.Errorf("decode sessions response: %w", err)
		}
		return sessions, nil
	}

	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("decode sessions response: %w", err)
	}
	return sessions, nil
}

func (h *httpFastingClient) EditSessions(ctx context.Context, req models.EditRequest) (int64, error) {
	var edited models.EditResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&edited).
		Put("/api/logs/edit")
	if err != nil {
		return 0, fmt.Errorf("edit sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return edited.Updated, nil
}

func (h *httpFastingClient) DeleteOpenSessions(ctx context.Context, userID int64) (int64, error) {
	var deleted models.DeleteResponse

	req := h.authedRequest(ctx).SetResult(&deleted)
	if userID != 0 {
		req.SetQueryParam("userId", strconv.FormatInt(userID, 10))
	}

	resp, err := req.Delete("/api/logs")
	if err != nil {
		return 0, fmt.Errorf("delete open sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return deleted.Deleted, nil
}

func (h *httpFastingClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
