// Package remote calls the sibling services. Every call is attempted once
// with the configured timeout. Read calls never fail: they log and return a
// fallback value. RegisterDoctor is the only call whose failure is returned.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ariebrainware/clinique/config"
	"github.com/ariebrainware/clinique/logging"
	"github.com/ariebrainware/clinique/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Sibling service names used as metric and span labels.
const (
	TargetAuth     = "auth"
	TargetPatients = "patients"
	TargetDoctors  = "doctors"
	TargetRDV      = "rdv"
)

const maxBodyBytes = 4 << 20

var tracer = otel.Tracer("github.com/ariebrainware/clinique/remote")

// ErrStatus is returned for non-2xx answers.
var ErrStatus = errors.New("unexpected status")

// Client calls the sibling services.
type Client struct {
	endpoints config.Endpoints
	http      *http.Client
	metrics   *metrics.Metrics
}

// New builds a client for endpoints. m may be nil.
func New(endpoints config.Endpoints, timeout time.Duration, m *metrics.Metrics) *Client {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		endpoints: endpoints,
		http:      &http.Client{Timeout: timeout},
		metrics:   m,
	}
}

// Endpoints returns the sibling URLs the client talks to.
func (c *Client) Endpoints() config.Endpoints {
	return c.endpoints
}

func (c *Client) base(target string) string {
	switch target {
	case TargetAuth:
		return c.endpoints.Auth
	case TargetPatients:
		return c.endpoints.Patients
	case TargetDoctors:
		return c.endpoints.Doctors
	default:
		return c.endpoints.RDV
	}
}

// do performs one request and decodes a 2xx JSON body into out (when non-nil).
func (c *Client) do(ctx context.Context, target, operation, method, path string, body, out any) (err error) {
	endpoint := c.base(target) + path
	ctx, span := tracer.Start(ctx, "remote."+target+"."+operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", endpoint),
		attribute.String("peer.service", target),
	)

	outcome := metrics.OutcomeOK
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		c.metrics.ObserveRemote(target, operation, outcome)
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			outcome = metrics.OutcomeError
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		outcome = metrics.OutcomeError
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = metrics.OutcomeError
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = metrics.OutcomeStatus
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%s %s: %w %d", method, endpoint, ErrStatus, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		outcome = metrics.OutcomeDecode
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, target, operation, path string, out any) error {
	return c.do(ctx, target, operation, http.MethodGet, path, nil, out)
}

func (c *Client) fallback(target, operation string, err error) {
	c.metrics.ObserveRemote(target, operation, metrics.OutcomeFallback)
	logging.L().Warn().Err(err).
		Str("target", target).
		Str("operation", operation).
		Msg("sibling service unavailable, using fallback")
}

func escape(id string) string {
	return url.PathEscape(id)
}
