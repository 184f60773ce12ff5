package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/suneye-cli/internal/core/domain"
	"github.com/custodia-labs/suneye-cli/internal/logger"
	"github.com/custodia-labs/suneye-cli/internal/metrics"
)

// Multipart field names.
const (
	fieldInputType = "input_type"
	fieldLatitude  = "latitude"
	fieldLongitude = "longitude"
	fieldFile      = "file"
	fieldImage     = "image"
)

// Analyze submits the envelope as multipart form data and returns the
// response document unchanged.
func (c *Client) Analyze(ctx context.Context, envelope domain.Envelope) (domain.AnalysisResult, error) {
	start := time.Now()
	result, err := c.analyze(ctx, envelope)

	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.ObserveBackend("analyze", outcome, time.Since(start))
	return result, err
}

func (c *Client) analyze(ctx context.Context, envelope domain.Envelope) (domain.AnalysisResult, error) {
	body, contentType, err := encodeEnvelope(envelope)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AnalyzePath, body)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: create request: %w", domain.ErrTransport, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.do(ctx, req)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	if !json.Valid(bytes.TrimSpace(resp.body)) {
		if !succeeded(resp.status) {
			return domain.AnalysisResult{}, fmt.Errorf("%w: status %d", domain.ErrTransport, resp.status)
		}
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode response: body is not JSON", domain.ErrTransport)
	}
	// A JSON body is the result whatever the status, error documents included.
	if !succeeded(resp.status) {
		logger.Warn("Analyze returned status %d: %s", resp.status, serviceError(resp.body))
	}
	result, err := domain.NewAnalysisResult(resp.body)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: decode response: %w", domain.ErrTransport, err)
	}
	return result, nil
}

// encodeEnvelope writes the multipart body for one envelope. Only the
// fields of the envelope's own mode are written.
func encodeEnvelope(envelope domain.Envelope) (*bytes.Buffer, string, error) {
	if !envelope.Valid() {
		return nil, "", fmt.Errorf("%w: malformed envelope", domain.ErrInvalidInput)
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	if err := w.WriteField(fieldInputType, envelope.Mode.WireName()); err != nil {
		return nil, "", fmt.Errorf("write %s: %w", fieldInputType, err)
	}

	switch p := envelope.Payload.(type) {
	case domain.CoordinatePayload:
		if err := w.WriteField(fieldLatitude, p.Latitude); err != nil {
			return nil, "", fmt.Errorf("write %s: %w", fieldLatitude, err)
		}
		if err := w.WriteField(fieldLongitude, p.Longitude); err != nil {
			return nil, "", fmt.Errorf("write %s: %w", fieldLongitude, err)
		}
	case domain.FilePayload:
		if err := writeBlob(w, fieldFile, p.File); err != nil {
			return nil, "", err
		}
	case domain.ImagePayload:
		if err := writeBlob(w, fieldImage, p.Image); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	logger.Debug("Encoded %s envelope (%d bytes)", envelope.Mode.WireName(), buf.Len())
	return buf, w.FormDataContentType(), nil
}

func writeBlob(w *multipart.Writer, field string, blob domain.Blob) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		field, escapeQuotes(blob.Name)))
	h.Set("Content-Type", contentTypeOf(blob))

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", field, err)
	}
	if _, err := part.Write(blob.Data); err != nil {
		return fmt.Errorf("write %s part: %w", field, err)
	}
	return nil
}

// contentTypeOf guesses the blob's media type from its extension, then
// from its leading bytes.
func contentTypeOf(blob domain.Blob) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(blob.Name))); t != "" {
		return t
	}
	return http.DetectContentType(blob.Data)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
