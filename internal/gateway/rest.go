package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// restClient speaks the hosted backend's REST table conventions: tables are
// addressed by path, filters and ordering travel as query parameters, row
// counts come back in the Content-Range header.
type restClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewRESTClient(baseURL, apiKey string, log *zap.Logger) TableAPI {
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

func (c *restClient) Mode() string { return "rest" }

func (c *restClient) endpoint(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

func (c *restClient) newRequest(ctx context.Context, method, rawURL string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *restClient) Select(ctx context.Context, table string, opts SelectOptions) ([]json.RawMessage, int64, error) {
	q := url.Values{}
	q.Set("select", "*")
	for col, val := range opts.Eq {
		q.Set(col, "eq."+val)
	}
	if opts.OrderBy != "" {
		order := opts.OrderBy
		if opts.Desc {
			order += ".desc"
		}
		q.Set("order", order)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint(table)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Op: "select", Table: table, Err: err}
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &Error{Kind: KindNetwork, Op: "select", Table: table, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, 0, c.classify("select", table, resp.StatusCode, body)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, 0, &Error{Kind: KindUnknown, Op: "select", Table: table, Err: err}
	}

	total := int64(len(rows))
	if n, ok := parseContentRange(resp.Header.Get("Content-Range")); ok {
		total = n
	}

	c.log.Debug("gateway select", zap.String("table", table), zap.Int("rows", len(rows)), zap.Int64("total", total))
	return rows, total, nil
}

func (c *restClient) Insert(ctx context.Context, table string, row json.RawMessage) (json.RawMessage, error) {
	return c.write(ctx, "insert", http.MethodPost, c.endpoint(table), table, row)
}

func (c *restClient) Update(ctx context.Context, table string, id int64, row json.RawMessage) (json.RawMessage, error) {
	rawURL := fmt.Sprintf("%s?id=eq.%d", c.endpoint(table), id)
	return c.write(ctx, "update", http.MethodPatch, rawURL, table, row)
}

func (c *restClient) write(ctx context.Context, op, method, rawURL, table string, row json.RawMessage) (json.RawMessage, error) {
	req, err := c.newRequest(ctx, method, rawURL, row)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Table: table, Err: err}
	}
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Table: table, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, c.classify(op, table, resp.StatusCode, body)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Table: table, Err: err}
	}
	if len(rows) == 0 {
		return nil, &Error{Kind: KindNotFound, Op: op, Table: table, Message: "no row returned"}
	}

	c.log.Debug("gateway write", zap.String("op", op), zap.String("table", table))
	return rows[0], nil
}

func (c *restClient) Delete(ctx context.Context, table string, id int64) error {
	rawURL := fmt.Sprintf("%s?id=eq.%d", c.endpoint(table), id)
	req, err := c.newRequest(ctx, http.MethodDelete, rawURL, nil)
	if err != nil {
		return &Error{Kind: KindUnknown, Op: "delete", Table: table, Err: err}
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "delete", Table: table, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return c.classify("delete", table, resp.StatusCode, body)
	}

	c.log.Debug("gateway delete", zap.String("table", table), zap.Int64("id", id))
	return nil
}

func (c *restClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return &Error{Kind: KindUnknown, Op: "ping", Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "ping", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return &Error{Kind: KindUnknown, Op: "ping", Message: resp.Status}
	}
	return nil
}

// apiError is the REST surface's error body: a Postgres SQLSTATE in code plus
// a human message.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *restClient) classify(op, table string, status int, body []byte) error {
	var ae apiError
	_ = json.Unmarshal(body, &ae)

	kind := KindUnknown
	switch {
	case ae.Code == "23503" || ae.Code == "23505" || status == http.StatusConflict:
		kind = KindConflict
	case ae.Code == "42501" || status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindForbidden
	case status == http.StatusNotFound || status == http.StatusNotAcceptable:
		kind = KindNotFound
	}

	msg := ae.Message
	if msg == "" {
		msg = http.StatusText(status)
	}

	c.log.Warn("gateway call failed",
		zap.String("op", op),
		zap.String("table", table),
		zap.Int("status", status),
		zap.String("kind", kind.String()),
	)
	return &Error{Kind: kind, Op: op, Table: table, Message: msg}
}

// parseContentRange reads the "0-24/57" convention; the part after the slash
// is the exact total.
func parseContentRange(header string) (int64, bool) {
	_, after, ok := strings.Cut(header, "/")
	if !ok || after == "*" {
		return 0, false
	}
	n, err := strconv.ParseInt(after, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
