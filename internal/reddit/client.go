// Package reddit implements the source feed adapter: an OAuth2
// script-app client that turns community listings into items.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/kamik423/quadrant/internal/cache"
	"github.com/kamik423/quadrant/internal/model"
)

const (
	defaultAuthBaseURL = "https://www.reddit.com"
	defaultAPIBaseURL  = "https://oauth.reddit.com"
)

// Client fetches community listings over the authenticated API.
type Client struct {
	http    *resty.Client
	creds   model.Credentials
	limiter *rate.Limiter

	authBaseURL string
	apiBaseURL  string
	mode        string
	limit       int

	store    cache.Cache // nil disables caching
	cacheTTL time.Duration

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Option customizes the client, mainly for tests.
type Option func(*Client)

// WithBaseURLs points the client at alternate auth and API endpoints.
func WithBaseURLs(authBase, apiBase string) Option {
	return func(c *Client) {
		c.authBaseURL = authBase
		c.apiBaseURL = apiBase
	}
}

// WithCache attaches a listing cache with the given TTL.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.store = store
		c.cacheTTL = ttl
	}
}

// NewClient creates a client from the run configuration. Credentials are
// passed in explicitly; nothing is read from process globals.
func NewClient(cfg *model.Config, opts ...Option) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.HTTP.Timeout).
		SetRetryCount(cfg.HTTP.RetryCount).
		SetHeader("User-Agent", cfg.Credentials.UserAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() >= 500
		})

	rps := cfg.HTTP.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.HTTP.Burst
	if burst <= 0 {
		burst = 1
	}

	c := &Client{
		http:        httpClient,
		creds:       cfg.Credentials,
		limiter:     rate.NewLimiter(rate.Limit(rps), burst),
		authBaseURL: defaultAuthBaseURL,
		apiBaseURL:  defaultAPIBaseURL,
		mode:        cfg.Mode,
		limit:       cfg.Limit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate performs the password grant and caches the bearer token.
// Called once up front so credential rejection aborts before any fetch.
func (c *Client) Authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshTokenLocked(ctx)
}

func (c *Client) refreshTokenLocked(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   c.creds.Username,
			"password":   c.creds.Password,
		}).
		SetResult(&tok).
		ForceContentType("application/json").
		Post(c.authBaseURL + "/api/v1/access_token")
	if err != nil {
		return &model.AuthError{Reason: "token request failed", Err: err}
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return &model.AuthError{Reason: fmt.Sprintf("client credentials rejected (%d)", resp.StatusCode())}
	}
	if resp.StatusCode() != 200 {
		return &model.AuthError{Reason: fmt.Sprintf("unexpected token status %d", resp.StatusCode())}
	}
	// The endpoint reports bad user credentials as 200 + error field.
	if tok.Error != "" {
		return &model.AuthError{Reason: fmt.Sprintf("grant rejected: %s", tok.Error)}
	}
	if tok.AccessToken == "" {
		return &model.AuthError{Reason: "empty access token"}
	}

	c.token = tok.AccessToken
	// Refresh a minute early so in-flight fetches never carry a stale token.
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - time.Minute)
	return nil
}

func (c *Client) bearer(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" || time.Now().After(c.tokenExpiry) {
		if err := c.refreshTokenLocked(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// Fetch retrieves the configured listing for one community and maps it
// to items. Unreachable, unauthorized, or nonexistent communities yield
// a FetchError; the caller may skip them and continue.
func (c *Client) Fetch(ctx context.Context, community string) ([]model.Item, error) {
	key := cache.ListingKey(community, c.mode, c.limit)
	if c.store != nil {
		if data, found := c.store.Get(key); found {
			var items []model.Item
			if err := json.Unmarshal(data, &items); err == nil {
				log.WithFields(log.Fields{"community": community, "items": len(items)}).
					Debug("listing cache hit")
				return items, nil
			}
			_ = c.store.Delete(key)
		}
	}

	var items []model.Item
	var err error
	switch c.mode {
	case model.ModeComments:
		items, err = c.fetchComments(ctx, community)
	default:
		items, err = c.fetchPosts(ctx, community, c.mode)
	}
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if data, merr := json.Marshal(items); merr == nil {
			if serr := c.store.Set(key, data, c.cacheTTL); serr != nil {
				log.WithError(serr).Warn("listing cache write failed")
			}
		}
	}
	return items, nil
}

// fetchPosts pulls one hot/top listing page of up to limit posts.
func (c *Client) fetchPosts(ctx context.Context, community, mode string) ([]model.Item, error) {
	listing, err := c.getListing(ctx, community, fmt.Sprintf("/r/%s/%s", community, mode))
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(listing.Data.Children))
	for _, thing := range listing.Data.Children {
		if thing.Kind != "t3" {
			continue
		}
		text := thing.Data.Title
		if thing.Data.SelfText != "" {
			text += "\n\n" + thing.Data.SelfText
		}
		items = append(items, model.Item{
			Text:   text,
			Flair:  thing.Data.AuthorFlairText,
			Weight: thing.Data.Score,
		})
	}
	return items, nil
}

// fetchComments pulls the comments on the newest limit posts.
func (c *Client) fetchComments(ctx context.Context, community string) ([]model.Item, error) {
	listing, err := c.getListing(ctx, community, fmt.Sprintf("/r/%s/new", community))
	if err != nil {
		return nil, err
	}

	var items []model.Item
	for _, post := range listing.Data.Children {
		if post.Kind != "t3" || post.Data.ID == "" {
			continue
		}
		comments, err := c.getComments(ctx, community, post.Data.ID)
		if err != nil {
			// One deleted or locked post should not sink the community.
			log.WithFields(log.Fields{"community": community, "post": post.Data.ID}).
				WithError(err).Warn("skipping post comments")
			continue
		}
		items = append(items, comments...)
	}
	return items, nil
}

func (c *Client) getListing(ctx context.Context, community, path string) (*Listing, error) {
	var listing Listing
	if _, err := c.get(ctx, community, path, &listing); err != nil {
		return nil, err
	}
	if listing.Kind != "Listing" {
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("unexpected response kind %q", listing.Kind)}
	}
	return &listing, nil
}

func (c *Client) getComments(ctx context.Context, community, postID string) ([]model.Item, error) {
	// The comments endpoint returns a two-element array: the post
	// listing, then the comment tree.
	var pair []Listing
	if _, err := c.get(ctx, community, fmt.Sprintf("/r/%s/comments/%s", community, postID), &pair); err != nil {
		return nil, err
	}
	if len(pair) < 2 {
		return nil, nil
	}

	var items []model.Item
	for _, thing := range pair[1].Data.Children {
		if thing.Kind != "t1" || thing.Data.Body == "" {
			continue
		}
		items = append(items, model.Item{
			Text:   thing.Data.Body,
			Flair:  thing.Data.AuthorFlairText,
			Weight: thing.Data.Score,
		})
	}
	return items, nil
}

// get performs one rate-limited, authenticated API request, decoding
// the JSON body into out.
func (c *Client) get(ctx context.Context, community, path string, out any) (*resty.Response, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &model.FetchError{Community: community, Err: err}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"limit":    fmt.Sprintf("%d", c.limit),
			"raw_json": "1",
		}).
		Get(c.apiBaseURL + path)
	if err != nil {
		return nil, &model.FetchError{Community: community, Err: err}
	}

	switch {
	case resp.StatusCode() == 404:
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("community does not exist")}
	case resp.StatusCode() == 403:
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("access denied (private or quarantined)")}
	case resp.StatusCode() != 200:
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}

	body := resp.Body()
	if !strings.HasPrefix(strings.TrimSpace(string(body)), "{") &&
		!strings.HasPrefix(strings.TrimSpace(string(body)), "[") {
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("non-JSON response")}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &model.FetchError{Community: community, Err: fmt.Errorf("decode listing: %w", err)}
	}
	return resp, nil
}
