package viewer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quickgraph/quickgraph/pkg/buildinfo"
	qgerrors "github.com/quickgraph/quickgraph/pkg/errors"
	"github.com/quickgraph/quickgraph/pkg/graph"
	"github.com/quickgraph/quickgraph/pkg/observability"
)

// DefaultHost is the public visualization service.
const DefaultHost = "159.89.136.108"

const (
	graphsPath = "/api/graphs"
	viewPath   = "/graphs/"

	httpTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Client posts finalized graphs to a visualization service.
type Client struct {
	host    string
	http    *http.Client
	headers map[string]string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithHeaders adds headers to every request. They override the defaults for
// the same key.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// Receipt describes an accepted submission.
type Receipt struct {
	ID         string // Identifier assigned by the service
	URL        string // Browser URL for the graph
	RequestID  string // X-Request-Id sent with the request
	StatusCode int
}

// New creates a client for host, a bare address or hostname with optional
// port. Returns an INVALID_HOST error if host is malformed.
func New(host string, opts ...Option) (*Client, error) {
	if err := qgerrors.ValidateHost(host); err != nil {
		return nil, err
	}
	c := &Client{
		host: host,
		http: NewHTTPClient(),
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "quickgraph/" + buildinfo.Version,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewHTTPClient creates an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// Host returns the service host.
func (c *Client) Host() string { return c.host }

// GraphsURL returns the endpoint graphs are posted to.
func (c *Client) GraphsURL() string {
	return "http://" + c.host + graphsPath
}

// ViewURL returns the browser URL for the graph with the given id.
func (c *Client) ViewURL(id string) string {
	return "http://" + c.host + viewPath + url.PathEscape(id)
}

// Submit posts doc and returns the id and view URL assigned by the service.
func (c *Client) Submit(ctx context.Context, doc graph.Document) (*Receipt, error) {
	body, err := graph.MarshalDocument(doc)
	if err != nil {
		return nil, qgerrors.Wrap(qgerrors.ErrCodeInternal, err, "encode graph")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GraphsURL(), bytes.NewReader(body))
	if err != nil {
		return nil, qgerrors.Wrap(qgerrors.ErrCodeInternal, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodPost, c.host, graphsPath)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodPost, c.host, graphsPath, err)
		return nil, transportError(err, c.GraphsURL())
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, http.MethodPost, c.host, graphsPath, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	id, err := decodeID(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Receipt{
		ID:         id,
		URL:        c.ViewURL(id),
		RequestID:  requestID,
		StatusCode: resp.StatusCode,
	}, nil
}

func transportError(err error, target string) error {
	var ue *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ue) && ue.Timeout()) {
		return qgerrors.Wrap(qgerrors.ErrCodeTimeout, err, "post %s", target)
	}
	return qgerrors.Wrap(qgerrors.ErrCodeNetwork, err, "post %s", target)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if msg := strings.TrimSpace(string(snippet)); msg != "" {
		return qgerrors.New(qgerrors.ErrCodeNetwork, "status %d: %s", resp.StatusCode, msg)
	}
	return qgerrors.New(qgerrors.ErrCodeNetwork, "status %d", resp.StatusCode)
}

// decodeID reads a JSON object and returns its "id" member as a string.
// Numeric ids are kept in their literal form. The whole body must be a
// single JSON object.
func decodeID(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", qgerrors.Wrap(qgerrors.ErrCodeNetwork, err, "read response")
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", qgerrors.Wrap(qgerrors.ErrCodeInvalidResponse, err, "decode response")
	}
	if payload == nil {
		return "", qgerrors.New(qgerrors.ErrCodeInvalidResponse, "response is not a JSON object")
	}

	raw, ok := payload["id"]
	if !ok {
		return "", qgerrors.New(qgerrors.ErrCodeMissingID, "response has no id")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", qgerrors.Wrap(qgerrors.ErrCodeInvalidResponse, err, "decode id")
	}

	var id string
	switch v := v.(type) {
	case string:
		id = v
	case json.Number:
		id = v.String()
	case nil:
	default:
		return "", qgerrors.New(qgerrors.ErrCodeInvalidResponse, "id has unsupported type %T", v)
	}
	if id == "" {
		return "", qgerrors.New(qgerrors.ErrCodeMissingID, "response id is empty")
	}
	return id, nil
}
