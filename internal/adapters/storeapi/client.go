// Package storeapi is the HTTP client for the remote store API.
// Every business operation of the storefront goes through it; it owns no state.
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/oauth2"

	domainauth "github.com/target/storefront-ui/internal/domain/auth"
	apperrors "github.com/target/storefront-ui/internal/errors"
)

const maxResponseBytes = 4 << 20

// Evaluator abstracts JMESPath operations for testability.
type Evaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

type jmespathLibEvaluator struct{}

func (jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// CallObserver receives the outcome of every API call.
type CallObserver func(op string, took time.Duration, err error)

// Paths holds the JMESPath expressions used to read API responses.
type Paths struct {
	Data    string // payload inside a success envelope; "@" is the whole body
	Error   string // message inside an error body
	Token   string // access token in a login/register payload
	Refresh string // refresh token in a login/register payload
}

func (p *Paths) applyDefaults() {
	if strings.TrimSpace(p.Data) == "" {
		p.Data = "@"
	}
	if strings.TrimSpace(p.Error) == "" {
		p.Error = "message || error"
	}
	if strings.TrimSpace(p.Token) == "" {
		p.Token = "token"
	}
	if strings.TrimSpace(p.Refresh) == "" {
		p.Refresh = "refresh"
	}
}

// ClientOptions groups dependencies for NewClient.
type ClientOptions struct {
	BaseURL    string       // Required: API root
	HTTPClient *http.Client // Optional: defaults to a client with Timeout
	Timeout    time.Duration
	UserAgent  string
	Paths      Paths
	Evaluator  Evaluator
	Observer   CallObserver
	Logger     *slog.Logger
}

// Client talks JSON to the store API, authenticating with the session in the request context.
type Client struct {
	base      *url.URL
	http      *http.Client
	userAgent string
	paths     Paths
	jems      Evaluator
	observe   CallObserver
	logger    *slog.Logger
}

// NewClient validates options and constructs a Client.
func NewClient(opts ClientOptions) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL scheme: %q", base.Scheme)
	}
	if strings.TrimSpace(base.Host) == "" {
		return nil, errors.New("invalid API base URL: missing host")
	}

	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	paths := opts.Paths
	paths.applyDefaults()
	for name, expr := range map[string]string{
		"data": paths.Data, "error": paths.Error, "token": paths.Token, "refresh": paths.Refresh,
	} {
		if vErr := jems.Validate(expr); vErr != nil {
			return nil, fmt.Errorf("invalid %s JMESPath %q: %w", name, expr, vErr)
		}
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	// Bearer auth is added per request from the session in ctx.
	authed := *hc
	authed.Transport = &sessionTransport{base: hc.Transport}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:      base,
		http:      &authed,
		userAgent: opts.UserAgent,
		paths:     paths,
		jems:      jems,
		observe:   opts.Observer,
		logger:    logger.With("component", "storeapi"),
	}, nil
}

// sessionTransport attaches the credential of the request's session as a bearer token.
type sessionTransport struct {
	base http.RoundTripper
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	token := domainauth.TokenFromContext(req.Context())
	if token == "" {
		return base.RoundTrip(req)
	}
	ot := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   base,
	}
	return ot.RoundTrip(req)
}

// call describes one API request.
type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	// raw receives the decoded body before the data path is applied.
	raw *any
}

// endpoint joins the escaped path p onto the base URL. Path holds the decoded
// form and RawPath the escaped one, so ids are encoded exactly once.
func (c *Client) endpoint(p string, q url.Values) string {
	u := *c.base
	raw := strings.TrimRight(u.EscapedPath(), "/") + "/" + strings.TrimLeft(p, "/")
	if decoded, err := url.PathUnescape(raw); err == nil {
		u.Path, u.RawPath = decoded, raw
	} else {
		u.Path, u.RawPath = raw, ""
	}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// do performs the call and decodes the payload selected by the data path into out (when non-nil).
func (c *Client) do(ctx context.Context, cl call, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.observe != nil {
			c.observe(cl.op, time.Since(start), err)
		}
	}()

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.FromTransport(err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.DebugContext(ctx, "close response body", "op", cl.op, "error", cerr)
		}
	}()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.FromTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := c.decodeError(resp.StatusCode, payload)
		c.logger.DebugContext(ctx, "store API error",
			"op", cl.op, "status", resp.StatusCode, "code", apiErr.Code)
		return apiErr
	}

	if out == nil && cl.raw == nil {
		return nil
	}
	return c.decodeData(payload, cl.raw, out)
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s request", cl.op)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, c.endpoint(cl.path, cl.query), body)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "build %s request", cl.op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

func (c *Client) decodeData(payload []byte, raw *any, out any) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		if out == nil {
			return nil
		}
		return apperrors.Internal("store API returned an empty body")
	}

	if c.paths.Data == "@" && raw == nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode store API response")
		}
		return nil
	}

	doc, err := decodeAny(payload)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode store API response")
	}
	if raw != nil {
		*raw = doc
	}
	if out == nil {
		return nil
	}
	data := doc
	if c.paths.Data != "@" {
		if data, err = c.jems.Evaluate(c.paths.Data, doc); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "evaluate data path")
		}
	}
	return remarshal(data, out)
}

func (c *Client) decodeError(status int, payload []byte) *apperrors.AppError {
	doc, err := decodeAny(payload)
	if err != nil {
		return apperrors.FromHTTPStatus(status, "")
	}
	msg := ""
	if v, evalErr := c.jems.Evaluate(c.paths.Error, doc); evalErr == nil {
		if s, ok := v.(string); ok {
			msg = s
		}
	}
	appErr := apperrors.FromHTTPStatus(status, msg)
	if appErr.Code == apperrors.ErrCodeValidation {
		if fields := fieldMessages(doc); len(fields) > 0 {
			appErr.Fields = fields
		}
	}
	return appErr
}

// fieldMessages reads {"errors": {"field": "message" | ["message", ...]}}.
func fieldMessages(doc any) map[string]string {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := obj["errors"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		switch tv := v.(type) {
		case string:
			out[k] = tv
		case []any:
			if len(tv) > 0 {
				if s, isStr := tv[0].(string); isStr {
					out[k] = s
				}
			}
		}
	}
	return out
}

func decodeAny(payload []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	// Keep numbers exact so decimal amounts survive re-encoding.
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func remarshal(data, out any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "re-encode store API payload")
	}
	if err := json.Unmarshal(b, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode store API payload")
	}
	return nil
}

// stringAt evaluates expr against doc and returns a string result.
func (c *Client) stringAt(expr string, doc any) string {
	v, err := c.jems.Evaluate(expr, doc)
	if err != nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return strings.TrimSpace(tv)
	case json.Number:
		return tv.String()
	default:
		return ""
	}
}

func pathID(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if offset > 0 {
		q.Set("offset", fmt.Sprint(offset))
	}
	return q
}
