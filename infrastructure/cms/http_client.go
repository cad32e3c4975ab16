// Package cms implements the HTTP client for the case-management API.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"applicant-corrector/domain/dto"
	"applicant-corrector/domain/entities"
	"applicant-corrector/domain/interfaces"
)

// Endpoint paths relative to the configured base URL.
const (
	occupationEndpoint = "/cms/v2/applicants/%s/occupation"
	commentEndpoint    = "/cms/v2/applicants/%s/institutions/%s/comment"
)

// ClientConfig holds the settings for the CMS client.
type ClientConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// client implements the CMSClient interface over net/http.
type client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     interfaces.Logger
}

// NewClient creates a new CMS API client.
func NewClient(config ClientConfig, logger interfaces.Logger) interfaces.CMSClient {
	return &client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing).
func (c *client) SetHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		c.httpClient = httpClient
	}
}

// UpdateOccupation issues the occupation correction for one applicant.
func (c *client) UpdateOccupation(
	ctx context.Context,
	applicantID string,
	payload dto.OccupationUpdateRequest,
) entities.RowResult {
	url := c.config.BaseURL + fmt.Sprintf(occupationEndpoint, applicantID)
	return c.send(ctx, "PUT", url, payload)
}

// AddComment appends the correction comment to one applicant's institution record.
func (c *client) AddComment(
	ctx context.Context,
	applicantID string,
	institutionKey string,
	payload dto.CommentRequest,
) entities.RowResult {
	url := c.config.BaseURL + fmt.Sprintf(commentEndpoint, applicantID, institutionKey)
	return c.send(ctx, "POST", url, payload)
}

// Close releases idle connections held by the client.
func (c *client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// send issues one request and classifies its outcome. Transport problems and
// API rejections both come back as row results, never as Go errors.
func (c *client) send(ctx context.Context, method, url string, payload interface{}) entities.RowResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.TransportFailure(err)
	}

	c.logger.Debug("Sending CMS request", "method", method, "url", url, "payload", string(body))

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(body))
	if err != nil {
		return entities.TransportFailure(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("CMS request failed", "method", method, "url", url, "error", err)
		return entities.TransportFailure(err)
	}
	defer resp.Body.Close()

	return c.classify(resp)
}

// classify maps one HTTP response onto a row result. The body is inspected
// for the success code regardless of HTTP status; a body that is not a JSON
// object falls back to the status code and raw text as diagnostics.
func (c *client) classify(resp *http.Response) entities.RowResult {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.TransportFailure(err)
	}

	var apiResp dto.APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return entities.ApplicationFailure(
			strconv.Itoa(resp.StatusCode),
			strings.TrimSpace(string(raw)),
			"",
		)
	}

	if apiResp.Succeeded() {
		return entities.Success()
	}

	code := dto.FieldText(apiResp.Code)
	if code == "" {
		code = strconv.Itoa(resp.StatusCode)
	}

	return entities.ApplicationFailure(code, dto.FieldText(apiResp.Desc), dto.FieldText(apiResp.Data))
}
