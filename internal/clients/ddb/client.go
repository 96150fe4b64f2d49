// Package ddb fetches character sheets and compendium data from the
// D&D Beyond character service.
package ddb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

const (
	// DefaultBaseURL is the character service root
	DefaultBaseURL = "https://character-service.dndbeyond.com/character/v5"
	// DefaultHTTPTimeout bounds a single request
	DefaultHTTPTimeout = 25 * time.Second
	// DefaultUserAgent identifies the importer
	DefaultUserAgent = "ddb-importer"

	sessionCookieName = "CobaltSession"
	errorBodyLimit    = 4 << 10
)

var characterIDPattern = regexp.MustCompile(`/characters/(\d+)`)
var numericID = regexp.MustCompile(`^\d+$`)

// Config configures the client
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration
	UserAgent   string
	HTTPClient  *http.Client
}

// Validate fills defaults and checks the base url
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	vb := errors.NewValidationBuilder()
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		vb.InvalidField("BaseURL", "must be an http(s) url")
	}
	return vb.Build()
}

// Client talks to the character service
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

// ParseCharacterID accepts a character page url or a bare numeric id
func ParseCharacterID(urlOrID string) (string, error) {
	s := strings.TrimSpace(urlOrID)
	if numericID.MatchString(s) {
		return s, nil
	}
	if m := characterIDPattern.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	return "", errors.InvalidArgumentf("no character id in %q", urlOrID)
}

// GetCharacterInput identifies the sheet to fetch
type GetCharacterInput struct {
	CharacterID string
	// Session is the CobaltSession cookie value; private sheets need it
	Session string
}

// GetCharacterOutput carries the raw response envelope
type GetCharacterOutput struct {
	// Data is the full response body, as pasted into an import payload
	Data json.RawMessage
	Name string
}

// GetCharacter fetches one character sheet
func (c *Client) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !numericID.MatchString(input.CharacterID) {
		return nil, errors.InvalidArgumentf("invalid character id %q", input.CharacterID)
	}

	body, err := c.get(ctx, "/character/"+input.CharacterID, input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch character %s", input.CharacterID)
	}

	envelope := gjson.ParseBytes(body)
	if success := envelope.Get("success"); success.Exists() && !success.Bool() {
		msg := envelope.Get("message").String()
		if msg == "" {
			msg = "character service refused the request"
		}
		return nil, errors.NotFoundf("character %s: %s", input.CharacterID, msg)
	}
	if !envelope.Get("data").IsObject() {
		return nil, errors.Internalf("character %s: response has no data", input.CharacterID)
	}

	slog.InfoContext(ctx, "fetched character",
		"character_id", input.CharacterID,
		"name", envelope.Get("data.name").String(),
		"bytes", len(body))

	return &GetCharacterOutput{
		Data: json.RawMessage(body),
		Name: envelope.Get("data.name").String(),
	}, nil
}

// GetCompendiumInput carries the session
type GetCompendiumInput struct {
	Session string
}

// GetCompendiumOutput is a bundle {"items": [...], "classes": [...]}
type GetCompendiumOutput struct {
	Bundle  json.RawMessage
	Items   int
	Classes int
}

// GetCompendium fetches the item and class game data. A failed section is
// logged and left empty so the character can still be exported.
func (c *Client) GetCompendium(ctx context.Context, input *GetCompendiumInput) (*GetCompendiumOutput, error) {
	if input == nil {
		input = &GetCompendiumInput{}
	}

	items, itemCount := c.section(ctx, "/game-data/items", input.Session)
	classes, classCount := c.section(ctx, "/game-data/classes", input.Session)
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "compendium fetch canceled")
	}

	bundle, err := json.Marshal(map[string]json.RawMessage{
		"items":   items,
		"classes": classes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode compendium bundle")
	}

	return &GetCompendiumOutput{Bundle: bundle, Items: itemCount, Classes: classCount}, nil
}

// section returns the array under data, results, or the body itself
func (c *Client) section(ctx context.Context, path, session string) (json.RawMessage, int) {
	empty := json.RawMessage("[]")

	body, err := c.get(ctx, path, session)
	if err != nil {
		slog.WarnContext(ctx, "compendium section unavailable",
			"path", path,
			"error", err.Error())
		return empty, 0
	}

	root := gjson.ParseBytes(body)
	for _, candidate := range []gjson.Result{root.Get("data"), root.Get("results"), root} {
		if candidate.IsArray() {
			return json.RawMessage(candidate.Raw), len(candidate.Array())
		}
	}
	return empty, 0
}

func (c *Client) get(ctx context.Context, path, session string) ([]byte, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "request canceled")
		}
		return nil, errors.Unavailablef("request to %s failed: %v", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, statusError(resp.StatusCode, path, string(b))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Unavailablef("failed to read %s: %v", path, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Internalf("response from %s is not json", path)
	}
	return body, nil
}

func statusError(code int, path, body string) error {
	msg := fmt.Sprintf("character service status %d for %s: %s", code, path, strings.TrimSpace(body))
	switch code {
	case http.StatusUnauthorized:
		return errors.Unauthenticated(msg)
	case http.StatusForbidden:
		return errors.PermissionDenied(msg)
	case http.StatusNotFound:
		return errors.NotFound(msg)
	case http.StatusTooManyRequests:
		return errors.ResourceExhausted(msg)
	default:
		if code >= 500 {
			return errors.Unavailable(msg)
		}
		return errors.Internal(msg)
	}
}
