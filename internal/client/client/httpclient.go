package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
	"github.com/dmitrijs2005/salesdesk/internal/common"
	"github.com/dmitrijs2005/salesdesk/internal/logging"
	"github.com/dmitrijs2005/salesdesk/internal/netx"
	"github.com/google/uuid"
)

const (
	loginPath  = "/login/"
	signupPath = "/signup/"
	uploadPath = "/upload_sales_data/"
	aiPath     = "/ai_query/"

	uploadField = "file"

	maxBodySize = 32 << 20
)

// HTTPClient talks to the sales data API over HTTP. After Login it keeps the
// credential needed by authenticated endpoints; ClearCredentials wipes it.
// It is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	now     func() time.Time

	mu   sync.Mutex
	cred credential
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request; zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func withClock(now func() time.Time) Option {
	return func(c *HTTPClient) { c.now = now }
}

func NewSalesClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login sends the credentials as a Basic-Auth header. On success the token
// from the response is kept when the server issues one; otherwise a private
// copy of the password is kept for later Basic-Auth calls.
func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) error {
	req, err := c.newRequest(ctx, http.MethodPost, loginPath, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(username, string(password))

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer netx.DrainAndClose(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return c.statusError(resp)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	_ = json.Unmarshal(raw, &body)

	var cred credential
	if body.AccessToken != "" {
		cred = newBearerCredential(body.AccessToken)
	} else {
		cred = newBasicCredential(username, password)
	}
	c.setCredential(cred)

	return nil
}

// Signup registers a new account. It never authenticates the client.
func (c *HTTPClient) Signup(ctx context.Context, sr SignupRequest) error {
	payload, err := json.Marshal(sr)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, signupPath, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer netx.DrainAndClose(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return c.statusError(resp)
	}
	return nil
}

// UploadSalesData streams r as the multipart field "file" and returns the
// cleaned dataset exactly as the server sent it.
func (c *HTTPClient) UploadSalesData(ctx context.Context, filename string, r io.Reader) (*models.CleanedDataset, error) {
	cred := c.credential()
	if cred == nil {
		return nil, ErrNotAuthenticated
	}

	body, contentType := netx.MultipartFile(uploadField, filename, r)

	req, err := c.newRequest(ctx, http.MethodPost, uploadPath, body)
	if err != nil {
		_ = body.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	if err := cred.authorize(req, c.now()); err != nil {
		_ = body.Close()
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer netx.DrainAndClose(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return nil, c.statusError(resp)
	}

	var ds models.CleanedDataset
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return &ds, nil
}

// AskAI posts a natural-language question and returns the generated SQL and
// optional result text.
func (c *HTTPClient) AskAI(ctx context.Context, question string) (models.Answer, error) {
	payload, err := json.Marshal(struct {
		Question string `json:"question"`
	}{Question: question})
	if err != nil {
		return models.Answer{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, aiPath, bytes.NewReader(payload))
	if err != nil {
		return models.Answer{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return models.Answer{}, err
	}
	defer netx.DrainAndClose(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return models.Answer{}, c.statusError(resp)
	}

	var answer models.Answer
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&answer); err != nil {
		return models.Answer{}, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}
	return answer, nil
}

// Authenticated reports whether a credential from a successful login is held.
func (c *HTTPClient) Authenticated() bool {
	return c.credential() != nil
}

// ClearCredentials wipes the stored credential. No request is made.
func (c *HTTPClient) ClearCredentials() {
	c.setCredential(nil)
}

func (c *HTTPClient) Close() error {
	c.ClearCredentials()
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) credential() credential {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cred
}

func (c *HTTPClient) setCredential(cred credential) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cred != nil {
		c.cred.wipe()
	}
	c.cred = cred
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return req, nil
}

// do sends req and maps transport failures to ErrUnavailable.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	log := c.log.With(
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"method", req.Method,
		"path", req.URL.Path,
	)

	start := c.now()
	resp, err := c.http.Do(req)
	elapsed := c.now().Sub(start)

	if err != nil {
		log.Warn(req.Context(), "request failed", "error", err, "duration", elapsed)
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	log.Info(req.Context(), "request done", "status", resp.StatusCode, "duration", elapsed)
	return resp, nil
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(raw)}
}
