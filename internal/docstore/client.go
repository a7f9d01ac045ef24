package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/able-wong/firekit/internal/config"
	"github.com/able-wong/firekit/internal/logger"
	"github.com/able-wong/firekit/internal/utils"
	"github.com/able-wong/firekit/models"
	"github.com/go-resty/resty/v2"
)

type httpStore struct {
	client *utils.HTTPClient

	documentsPath string
	token         string

	logger *logger.Logger
}

// NewClient constructs the HTTP/REST implementation of [Store]. It
// normalises and validates the base URL from cfg.BaseURL, configures
// the underlying HTTP client with the resolved base URL, the request
// timeout, and the optional bounded-retry policy, and scopes every
// request to the given project.
//
// token may be empty for anonymous access; the store's own access
// rules then gate every operation. Returns an error if projectID is
// empty or cfg.BaseURL cannot be parsed as a valid URL.
func NewClient(cfg config.Store, projectID, token string, log *logger.Logger) (Store, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("empty project ID")
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid store base URL: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	// retries stay off unless configured; failures surface immediately
	if cfg.RetryCount > 0 {
		client.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(cfg.RetryWait * 8).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
	}

	return &httpStore{
		client:        client,
		documentsPath: fmt.Sprintf("/projects/%s/databases/(default)/documents", projectID),
		token:         strings.TrimSpace(token),
		logger:        log,
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

// SetToken implements [Store]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpStore) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [Store]. It returns the bearer credential currently
// held, or an empty string if none has been set.
func (h *httpStore) Token() string {
	return h.token
}

// FetchCollection implements [Store]. A zero query descriptor issues
// the plain listing request for the named collection; any populated
// field switches to exactly one structured-query request.
func (h *httpStore) FetchCollection(ctx context.Context, name string, query models.Query) ([]models.Document, error) {
	if err := ValidateCollectionName(name); err != nil {
		return nil, err
	}

	if query.IsZero() {
		return h.listDocuments(ctx, name)
	}
	return h.queryDocuments(ctx, name, query)
}

func (h *httpStore) listDocuments(ctx context.Context, name string) ([]models.Document, error) {
	resp, err := h.authedRequest(ctx).Get(h.documentsPath + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("list collection request: %w", err)
	}
	if err = h.mapRemoteError(resp, name, "list"); err != nil {
		return nil, err
	}

	var listing struct {
		Documents []wireDocument `json:"documents"`
	}
	if err = json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, fmt.Errorf("decode collection listing: %w", err)
	}

	docs := make([]models.Document, 0, len(listing.Documents))
	for _, doc := range listing.Documents {
		if doc.Name == "" && len(doc.Fields) == 0 {
			continue
		}
		docs = append(docs, decodeDocument(doc))
	}
	return docs, nil
}

func (h *httpStore) queryDocuments(ctx context.Context, name string, query models.Query) ([]models.Document, error) {
	sq, err := buildStructuredQuery(name, query)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"structuredQuery": sq}).
		Post(h.documentsPath + ":runQuery")
	if err != nil {
		return nil, fmt.Errorf("run query request: %w", err)
	}
	if err = h.mapRemoteError(resp, name, "query"); err != nil {
		return nil, err
	}

	var entries []struct {
		Document *wireDocument `json:"document"`
	}
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode query response: %w", err)
	}

	docs := make([]models.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.Document == nil || entry.Document.Name == "" {
			continue
		}
		docs = append(docs, decodeDocument(*entry.Document))
	}
	return docs, nil
}

// FetchDocument implements [Store]. It retrieves one document by its
// even-segment collection/document path.
func (h *httpStore) FetchDocument(ctx context.Context, path string) (models.Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return models.Document{}, err
	}

	resp, err := h.authedRequest(ctx).Get(h.documentsPath + "/" + path)
	if err != nil {
		return models.Document{}, fmt.Errorf("fetch document request: %w", err)
	}
	if err = h.mapRemoteError(resp, path, "fetch"); err != nil {
		return models.Document{}, err
	}

	var doc wireDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode document: %w", err)
	}
	return decodeDocument(doc), nil
}

// CreateDocument implements [Store]. It inserts a new document into the
// named collection and returns the stored record as the remote reports
// it, id included.
func (h *httpStore) CreateDocument(ctx context.Context, collection string, payload map[string]any) (models.Document, error) {
	if err := ValidateCollectionName(collection); err != nil {
		return models.Document{}, err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(encodePayload(payload)).
		Post(h.documentsPath + "/" + collection)
	if err != nil {
		return models.Document{}, fmt.Errorf("create document request: %w", err)
	}
	if err = h.mapRemoteError(resp, collection, "create"); err != nil {
		return models.Document{}, err
	}

	var doc wireDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode created document: %w", err)
	}
	return decodeDocument(doc), nil
}

// UpdateDocument implements [Store]. It patches the document at path,
// restricting the write to the payload's top-level fields via the
// wire's update mask so untouched fields survive.
func (h *httpStore) UpdateDocument(ctx context.Context, path string, payload map[string]any) (models.Document, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return models.Document{}, err
	}

	body := encodePayload(payload)
	mask := url.Values{}
	if fields, ok := body["fields"].(map[string]any); ok {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		mask["updateMask.fieldPaths"] = names
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParamsFromValues(mask).
		SetBody(body).
		Patch(h.documentsPath + "/" + path)
	if err != nil {
		return models.Document{}, fmt.Errorf("update document request: %w", err)
	}
	if err = h.mapRemoteError(resp, path, "update"); err != nil {
		return models.Document{}, err
	}

	var doc wireDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.Document{}, fmt.Errorf("decode updated document: %w", err)
	}
	return decodeDocument(doc), nil
}

// DeleteDocument implements [Store]. It removes the document at path.
func (h *httpStore) DeleteDocument(ctx context.Context, path string) error {
	if err := ValidateDocumentPath(path); err != nil {
		return err
	}

	resp, err := h.authedRequest(ctx).Delete(h.documentsPath + "/" + path)
	if err != nil {
		return fmt.Errorf("delete document request: %w", err)
	}

	return h.mapRemoteError(resp, path, "delete")
}

func (h *httpStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
