// Package rest provides a read-only JSON-over-HTTP client for public REST APIs.
// It issues GET requests through a retrying HTTP client and maps every failure
// into the fault taxonomy: transport failures become fault.ErrNetwork and non-2xx
// statuses become fault.ErrResponse. A body that is not a single JSON value is
// fault.ErrParse; valid JSON with a wrongly typed field is fault.ErrSchema.
//
// Each call is recorded as an OpenTelemetry span and counted in the
// "rest.client.requests" metric, using the globally registered providers.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/btcwatch/internal/pkg/fault"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies this package to the OpenTelemetry providers.
const instrumentationName = "github.com/gabapcia/btcwatch/internal/pkg/transport/rest"

// userAgent is sent with every request.
const userAgent = "btcwatch/1.0"

// Client defines the interface for a generic read-only REST client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Get requests path (relative to the base URL) with the given query
	// parameters and decodes the JSON response body into out.
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// client is the default implementation of the Client interface.
type client struct {
	baseURL    string                // API root, without a trailing slash
	httpClient *retryablehttp.Client // retrying HTTP client used to perform requests
	tracer     trace.Tracer
	requests   metric.Int64Counter
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// outcome returns the metric label for err.
func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return fault.Classify(err).String()
}

// Get implements Client.
func (c *client) Get(ctx context.Context, path string, query url.Values, out any) (err error) {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	ctx, span := c.tracer.Start(ctx, "GET "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()

		c.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome(err))))
	}()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", fault.ErrNetwork, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", fault.ErrNetwork, err)
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s returned %d", fault.ErrResponse, path, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: reading GET %s body: %w", fault.ErrNetwork, path, err)
	}

	return decode(body, out)
}

// decode unmarshals body into out. Trailing data after the JSON value is a
// parse fault.
func decode(body []byte, out any) error {
	err := json.Unmarshal(body, out)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %w", fault.ErrSchema, err)
	}

	return fmt.Errorf("%w: %w", fault.ErrParse, err)
}

// NewClient constructs and returns a Client that sends requests to baseURL
// using the given retrying HTTP client.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *client {
	var requests metric.Int64Counter = noop.Int64Counter{}
	if counter, err := otel.Meter(instrumentationName).Int64Counter(
		"rest.client.requests",
		metric.WithDescription("Number of REST API requests by outcome."),
	); err == nil {
		requests = counter
	}

	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		tracer:     otel.Tracer(instrumentationName),
		requests:   requests,
	}
}
