package cloudns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"dario.lol/cdns/internal/config"
	"dario.lol/cdns/internal/constants"
	"github.com/charmbracelet/log"
)

const (
	defaultBaseURL    = "https://api.cloudns.net"
	requestTimeout    = 30 * time.Second
	maxAttempts       = 3
	defaultRetryDelay = time.Second

	alreadySharedMarker = "already shared"
)

func userAgent() string {
	return fmt.Sprintf("%s/%s (%s; %s) +%s", constants.AppName, constants.Version, runtime.GOOS, runtime.GOARCH, constants.ProjectURL)
}

// Config carries everything a Client needs to talk to the API.
type Config struct {
	AuthID       string
	AuthPassword string
	BaseURL      string
}

// Client is a ClouDNS API client. All endpoints take form-encoded POST
// parameters; the client injects the credentials into every call.
type Client struct {
	baseURL      string
	authID       string
	authPassword string
	httpClient   *http.Client
	logger       *log.Logger
	retryDelay   time.Duration
	sleep        func(time.Duration)
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger replaces the default stderr logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetryDelay sets the delay before the first retry. The delay doubles
// after every failed attempt.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// New builds a Client. It fails fast with ErrMissingCredentials when
// either credential is empty, so no request can ever leave without auth
// parameters.
func New(cfg Config, opts ...Option) (*Client, error) {
	authID := strings.TrimSpace(cfg.AuthID)
	authPassword := strings.TrimSpace(cfg.AuthPassword)
	if authID == "" || authPassword == "" {
		return nil, ErrMissingCredentials
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL:      baseURL,
		authID:       authID,
		authPassword: authPassword,
		httpClient:   &http.Client{Timeout: requestTimeout},
		logger:       log.New(os.Stderr),
		retryDelay:   defaultRetryDelay,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NewClient builds a Client from the resolved CLI configuration.
func NewClient() (*Client, error) {
	if err := config.LoadConfig(); err != nil {
		return nil, err
	}

	level := log.Level(config.Cfg.LogLevel)
	if config.Cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: constants.AppName,
	})

	return New(Config{
		AuthID:       config.Cfg.AuthID,
		AuthPassword: config.Cfg.AuthPassword,
		BaseURL:      config.Cfg.APIURL,
	}, WithLogger(logger))
}

// call runs one authenticated API call. Transport failures, HTTP error
// statuses and unparseable bodies are retried up to maxAttempts with a
// doubling delay; an answer the API itself marked as failed is not
// retried, it is classified instead.
func (c *Client) call(ctx context.Context, endpoint string, params url.Values) (Response, error) {
	form := url.Values{}
	for key, values := range params {
		for _, value := range values {
			form.Add(key, value)
		}
	}
	form.Set("auth-id", c.authID)
	form.Set("auth-password", c.authPassword)

	endpointURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	body := form.Encode()

	var lastErr error
	var lastKind ErrorKind
	delay := c.retryDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := c.send(ctx, endpointURL, body)
		if err != nil {
			lastErr = err
			lastKind = KindNetwork
		} else {
			resp, decodeErr := decodeResponse(raw)
			if decodeErr == nil {
				return c.classify(endpoint, resp)
			}
			lastErr = fmt.Errorf("unable to parse API response: %w", decodeErr)
			lastKind = KindMalformed
		}

		c.logger.Warn("request failed", "endpoint", endpoint, "attempt", attempt, "err", lastErr)
		if attempt < maxAttempts {
			c.logger.Debug("retrying", "endpoint", endpoint, "delay", delay)
			c.sleep(delay)
			delay *= 2
		}
	}

	return Response{}, &RequestError{
		Kind:     lastKind,
		Endpoint: endpoint,
		Attempts: maxAttempts,
		Err:      lastErr,
	}
}

func (c *Client) send(ctx context.Context, endpointURL, body string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

// classify turns a decoded body into a result. Objects with a failed
// status become an APIError, with one carve-out: the share endpoint
// reports an existing grant as a failure whose description contains
// "already shared". That answer is benign and handed back to the caller.
func (c *Client) classify(endpoint string, resp Response) (Response, error) {
	if !resp.Failed() {
		return resp, nil
	}

	desc := resp.StatusDescription()
	if desc == "" {
		desc = "Unknown error"
	}
	if isAlreadyShared(desc) {
		return resp, nil
	}
	return Response{}, &APIError{Endpoint: endpoint, Description: desc}
}

func isAlreadyShared(description string) bool {
	return strings.Contains(strings.ToLower(description), alreadySharedMarker)
}

// Login checks the configured credentials against the API. Every command
// runs it before doing real work so bad credentials fail once, up front.
func (c *Client) Login(ctx context.Context) error {
	resp, err := c.call(ctx, "login/login.json", nil)
	if err != nil {
		return err
	}
	if !resp.Succeeded() {
		desc := resp.StatusDescription()
		if desc == "" {
			desc = "Unknown error"
		}
		return &APIError{Endpoint: "login/login.json", Description: desc}
	}
	return nil
}
