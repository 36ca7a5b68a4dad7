package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"talent-sift/internal/domain"
	"talent-sift/pkg/apperror"
	"talent-sift/pkg/logger"
)

// DefaultEndpoint is the workflow execution API used when none is configured
const DefaultEndpoint = "https://agentic-ai.co.in/api/agentic-ai/workflow-exe"

// payloadField is the multipart field carrying the JSON-encoded payload
const payloadField = "data"

// Client posts workflow payloads to the execution API. One attempt per call, no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a workflow client. A zero timeout keeps the transport default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// executionResponse is the part of the API response the client reads
type executionResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type executionData struct {
	Result []json.RawMessage `json:"result"`
}

// Submit sends the payload as the "data" field of a multipart form and
// returns data.result[0] from the response
func (c *Client) Submit(ctx context.Context, payload domain.WorkflowPayload) (domain.WorkflowResult, error) {
	body, contentType, err := encodeForm(payload)
	if err != nil {
		return domain.WorkflowResult{}, apperror.RequestFailed(err.Error(), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return domain.WorkflowResult{}, apperror.RequestFailed(err.Error(), err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Error("Workflow request failed", "workflow_id", payload.WorkflowID, "error", err)
		return domain.WorkflowResult{}, apperror.RequestFailed(err.Error(), err)
	}
	defer resp.Body.Close()

	logger.Log.Info("Workflow request completed",
		"workflow_id", payload.WorkflowID,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.WorkflowResult{}, apperror.RequestFailed(err.Error(), err)
	}

	var decoded executionResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := decoded.Message
		if decodeErr != nil || msg == "" {
			msg = fmt.Sprintf("Upload failed with status %d", resp.StatusCode)
		}
		return domain.WorkflowResult{}, apperror.RequestFailed(msg, fmt.Errorf("workflow %s: status %d", payload.WorkflowID, resp.StatusCode))
	}

	if !json.Valid(raw) {
		return domain.WorkflowResult{}, apperror.RequestFailed(decodeErr.Error(), decodeErr)
	}

	// Well-formed JSON of another shape ([], "ok", {"data": 5}) carries no
	// data.result[0]; decodeErr only reports the type mismatch.
	return ParseResult(firstResult(decoded.Data)), nil
}

// encodeForm builds the multipart body with the JSON payload in a single field
func encodeForm(payload domain.WorkflowPayload) (io.Reader, string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("marshal workflow payload: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField(payloadField, string(encoded)); err != nil {
		return nil, "", fmt.Errorf("write form field: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// firstResult returns data.result[0], or nil when any step of the path is missing
func firstResult(data json.RawMessage) json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	var d executionData
	if err := json.Unmarshal(data, &d); err != nil || len(d.Result) == 0 {
		return nil
	}
	return d.Result[0]
}

// ParseResult decides the result kind once: arrays become Q&A lists,
// strings become text, anything else is kept as its JSON text
func ParseResult(raw json.RawMessage) domain.WorkflowResult {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.WorkflowResult{}
	}

	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return domain.TextResult(string(raw))
		}
		pairs := make([]domain.QAPair, 0, len(items))
		for _, item := range items {
			var qa domain.QAPair
			// Elements that are not objects still count as a (blank) block
			_ = json.Unmarshal(item, &qa)
			pairs = append(pairs, qa)
		}
		return domain.QAListResult(pairs)

	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return domain.TextResult(string(raw))
		}
		return domain.TextResult(text)

	default:
		return domain.TextResult(string(raw))
	}
}
