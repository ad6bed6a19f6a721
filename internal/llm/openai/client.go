package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invoicepilot/invoicepilot/internal/llm"
)

// Extract implements llm.Extractor using chat/completions with the uploaded
// document attached inline. Images go as an image_url content part; PDFs as a
// file content part. The raw message content is returned untouched so the
// pipeline's parser owns fence stripping and shape checks.
func (c *Client) Extract(ctx context.Context, req llm.ExtractRequest) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"filename", req.Document.Filename,
		"content_type", req.Document.ContentType,
		"bytes", len(req.Document.Bytes),
		"default_currency", req.DefaultCurrency,
	)

	schema := llm.BuildInvoiceJSONSchema()
	sys := buildSystemPrompt(req)
	userParts, err := buildUserContent(req)
	if err != nil {
		c.logger.Error("llm.extract.attach_error", "req_id", rid, "error", err)
		return nil, err
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": userParts},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in openai response")
	}
	content := strings.TrimSpace(cc.Choices[0].Message.Content)

	// Advisory schema check; the pipeline parser remains the authority on
	// whether the payload is usable.
	if vErr := llm.ValidateJSONAgainstSchema(schema, []byte(llm.StripCodeFence(content))); vErr != nil {
		c.logger.Warn("llm.extract.schema_mismatch",
			"req_id", rid, "error", vErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"content_bytes", len(content),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return []byte(content), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt(req llm.ExtractRequest) string {
	defCur := req.DefaultCurrency
	if defCur == "" {
		defCur = "USD"
	}
	parts := []string{
		"You are an invoice validation and extraction service. Return ONLY JSON matching the JSON Schema provided.",
		"First judge whether the attached document is a genuine invoice. Set validation.status to \"valid\" or \"invalid\".",
		"When invalid, list every problem you found in validation.errors and omit the data payload.",
		"When valid, fill data with the invoice fields you can read.",
		"Use ISO-8601 timestamps for issueDate and dueDate.",
		"Currency must be a 3-letter ISO 4217 code; default to " + defCur + " if uncertain.",
		"Amounts are plain decimal numbers, never formatted strings.",
		"List every billable line under lineItems with description, quantity, unitPrice and totalPrice where visible.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserContent(req llm.ExtractRequest) ([]map[string]any, error) {
	note := strings.TrimSpace(req.UserNote)
	if note == "" {
		note = "Please validate and extract this invoice."
	}
	parts := []map[string]any{
		{"type": "text", "text": note},
	}

	dataURL := toDataURL(req.Document.ContentType, req.Document.Bytes)
	switch {
	case strings.HasPrefix(req.Document.ContentType, "image/"):
		parts = append(parts, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": dataURL},
		})
	case req.Document.ContentType == "application/pdf":
		parts = append(parts, map[string]any{
			"type": "file",
			"file": map[string]any{
				"filename":  req.Document.Filename,
				"file_data": dataURL,
			},
		})
	default:
		return nil, fmt.Errorf("unsupported content type %q", req.Document.ContentType)
	}
	return parts, nil
}

func toDataURL(contentType string, b []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(b)
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
