// Package store provides the HTTP client for the external expense store API.
// The store owns persistence, authentication, and all AI processing; this
// client only speaks its request/response contract.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "paisa/internal/errors"
	"paisa/internal/logger"
	"paisa/internal/models"
)

// Config is the explicit HTTP-client configuration for the store.
// Idempotent reads are retried up to RetryAttempts with a fixed RetryDelay;
// mutations are never retried.
type Config struct {
	BaseURL       string
	RetryAttempts int
	RetryDelay    time.Duration
}

// TokenSource supplies the current bearer token, or "" when logged out.
type TokenSource interface {
	Token() string
}

// Client communicates with the expense store API.
//
// The one documented side effect: any 401 on an authenticated request invokes
// the onUnauthorized hook (session invalidation) and surfaces ErrSessionExpired.
type Client struct {
	cfg            Config
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	validate       *validator.Validate
	log            *zap.SugaredLogger
}

// NewClient creates a new expense store client.
func NewClient(cfg Config, httpClient *http.Client, tokens TokenSource, onUnauthorized func()) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &Client{
		cfg:            cfg,
		httpClient:     httpClient,
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		validate:       newValidator(),
		log:            logger.Get(),
	}
}

// Register creates a new account. Registration does not log the user in.
func (c *Client) Register(ctx context.Context, email, fullName, password string) (User, error) {
	body := struct {
		Email    string `json:"email"`
		FullName string `json:"full_name"`
		Password string `json:"password"`
	}{Email: email, FullName: fullName, Password: password}

	var user User
	if err := c.postJSON(ctx, "/api/auth/register", body, &user); err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == "INVALID_INPUT" && strings.Contains(appErr.Message, "already registered") {
			return User{}, apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return User{}, err
	}
	return user, nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return Token{}, apperrors.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return Token{}, c.statusError("login", resp)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return Token{}, fmt.Errorf("decoding login response: %w", err)
	}
	return token, nil
}

// Me fetches the authenticated user's account record.
func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	if err := c.getJSON(ctx, "/api/auth/me", &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ListExpenses returns the full current expense collection for the user.
func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := c.getJSON(ctx, "/api/expenses", &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// CreateExpense persists a new manual expense after local validation.
func (c *Client) CreateExpense(ctx context.Context, req CreateExpenseRequest) (models.Expense, error) {
	if err := c.validate.Struct(req); err != nil {
		return models.Expense{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	var created models.Expense
	if err := c.postJSON(ctx, "/api/expenses", req, &created); err != nil {
		return models.Expense{}, err
	}
	return created, nil
}

// DeleteExpense removes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.cfg.BaseURL+"/api/expenses/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return apperrors.ErrExpenseNotFound
	default:
		return c.statusError("delete expense", resp)
	}
}

// UploadReceipt submits a receipt image for OCR extraction. The store may
// auto-create an expense; the result reports whether it did.
func (c *Client) UploadReceipt(ctx context.Context, filename string, r io.Reader) (ReceiptResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filepath.Base(filename)))
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return ReceiptResult{}, fmt.Errorf("creating form part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return ReceiptResult{}, fmt.Errorf("reading receipt image: %w", err)
	}
	if err := w.Close(); err != nil {
		return ReceiptResult{}, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/expenses/receipt", &buf)
	if err != nil {
		return ReceiptResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return ReceiptResult{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return ReceiptResult{}, c.statusError("upload receipt", resp)
	}

	var result ReceiptResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return ReceiptResult{}, fmt.Errorf("decoding receipt response: %w", err)
	}
	return result, nil
}

// MonthlyAnalytics fetches per-month totals for the last `months` months.
func (c *Client) MonthlyAnalytics(ctx context.Context, months int) ([]MonthlyTotal, error) {
	var totals []MonthlyTotal
	path := fmt.Sprintf("/api/analytics/monthly?months=%d", months)
	if err := c.getJSON(ctx, path, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// Insights fetches the store's spending overview.
func (c *Client) Insights(ctx context.Context) (Insights, error) {
	var insights Insights
	if err := c.getJSON(ctx, "/api/insights", &insights); err != nil {
		return Insights{}, err
	}
	return insights, nil
}

// Dashboard fetches the combined dashboard view.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var dash Dashboard
	if err := c.getJSON(ctx, "/api/user/dashboard", &dash); err != nil {
		return Dashboard{}, err
	}
	return dash, nil
}

// do sends a request with auth and correlation headers. A 401 on an
// authenticated request fires the invalidation hook exactly once per call.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-ID", uuid.NewString())

	authed := false
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
			authed = true
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && authed {
		_ = resp.Body.Close()
		c.log.Warnw("store rejected token, invalidating session", "path", req.URL.Path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, apperrors.ErrSessionExpired
	}
	return resp, nil
}

// getJSON performs an idempotent GET with the configured retry policy.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.cfg.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}

		resp, err := c.do(req)
		if err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return err
			}
			lastErr = err
			c.log.Debugw("store request failed", "path", path, "attempt", attempt, "error", err)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			c.log.Debugw("store request failed", "path", path, "attempt", attempt, "status", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			err := c.statusError(path, resp)
			_ = resp.Body.Close()
			return err
		}

		decodeErr := json.NewDecoder(resp.Body).Decode(out)
		_ = resp.Body.Close()
		if decodeErr != nil {
			return fmt.Errorf("decoding %s response: %w", path, decodeErr)
		}
		return nil
	}
	return apperrors.Wrap(apperrors.ErrStoreUnavailable, lastErr)
}

// postJSON performs a non-retried JSON POST.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(path, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// statusError maps a non-OK store response to an AppError, carrying the
// store's detail message when one is present.
func (c *Client) statusError(op string, resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	detail := payload.Detail
	if detail == "" {
		detail = fmt.Sprintf("%s: unexpected status %d", op, resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return apperrors.WithMessage(apperrors.ErrInvalidInput, detail)
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.WithMessage(apperrors.ErrNotFound, detail)
	case resp.StatusCode >= http.StatusInternalServerError:
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, fmt.Errorf("%s: status %d", op, resp.StatusCode))
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, detail))
	}
}
