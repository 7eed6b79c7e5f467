package authapi

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/user"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/resilience"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

// errTransient marks failures that should count against the circuit
// breaker: network errors and 5xx responses, not auth denials.
var errTransient = crerr.New("auth introspection transient failure")

type Config struct {
	BaseURL        string
	IntrospectPath string
	Timeout        time.Duration
	CacheTTL       time.Duration
	CacheMax       int
	Breaker        resilience.BreakerConfig
}

// Client verifies bearer tokens against the account service's introspection
// endpoint. Verified principals are cached briefly so a busy draft room does
// not hammer the account service, and a circuit breaker sheds load when the
// service is down.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	cache         *principalCache
	breaker       *resilience.Breaker
	logger        *logging.Logger
}

func NewClient(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var breaker *resilience.Breaker
	if cfg.Breaker.Enabled {
		breaker = resilience.NewBreaker(cfg.Breaker)
	}

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		cache:         newPrincipalCache(cfg.CacheTTL, cfg.CacheMax),
		breaker:       breaker,
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if principal, ok := c.cache.Get(cacheKey); ok {
		return principal, nil
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, fmt.Errorf("%w: account service circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	principal, err := c.introspect(ctx, token)
	if c.breaker != nil {
		if crerr.Is(err, errTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		if crerr.Is(err, errTransient) {
			return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return user.Principal{}, err
	}

	c.cache.Set(cacheKey, principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	encoded, err := jsoniter.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, crerr.Mark(fmt.Errorf("request token introspection: %w", err), errTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, crerr.Mark(fmt.Errorf("read introspect response: %w", err), errTransient)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "token introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, crerr.Mark(fmt.Errorf("token introspection failed with status %d", resp.StatusCode), errTransient)
	}

	var decoded introspectResponse
	if err := jsoniter.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("invalid introspect response: user_id is empty")
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
		Role:   decoded.Role,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
