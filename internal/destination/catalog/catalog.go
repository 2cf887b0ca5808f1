// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package catalog

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

	"github.com/caarlos0/env/v11"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mia-platform/atlanctl/internal/destination"
	"github.com/mia-platform/atlanctl/internal/info"
	"github.com/mia-platform/atlanctl/internal/logger"
	"github.com/mia-platform/atlanctl/internal/typedef"
)

const (
	loggerName = "atlanctl:catalog"

	typeDefsPath     = "/api/meta/types/typedefs"
	typeDefNamePath  = "/api/meta/types/typedef/name/"
	indexSearchPath  = "/api/meta/search/indexsearch"
	requestIDHeader  = "X-Atlan-Request-Id"
	jsonContentType  = "application/json"
	maxElapsedTime   = 2 * time.Minute
	defaultPageSize  = 100
	customMetadataQS = "business_metadata"
)

var (
	errInvalidTenant = errors.New("tenant must be an absolute http or https URL")

	_ destination.Destination = &catalogDestination{}
)

// CatalogError wraps every failure returned by the catalog destination.
type CatalogError struct {
	err error
}

func (e *CatalogError) Error() string {
	return "catalog: " + e.err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.err
}

func (e *CatalogError) Is(target error) bool {
	cre, ok := target.(*CatalogError)
	if !ok {
		return false
	}

	return e.err.Error() == cre.err.Error()
}

// ResponseError is an unsuccessful response of the catalog API.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// retryable reports whether the same request can succeed later.
func (e *ResponseError) retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// catalogDestination implements destination.Destination on top of the Atlan REST API.
type catalogDestination struct {
	Tenant     string        `env:"ATLAN_TENANT,required,notEmpty"`
	APIKey     string        `env:"ATLAN_API_KEY,required,notEmpty"`
	Timeout    time.Duration `env:"ATLAN_TIMEOUT" envDefault:"30s"`
	MaxRetries uint64        `env:"ATLAN_MAX_RETRIES" envDefault:"3"`

	baseURL    *url.URL
	client     *http.Client
	newBackOff func() backoff.BackOff
}

// NewDestination returns a new destination.Destination configured to connect to an
// Atlan tenant. Its configuration is read from environment variables.
func NewDestination() (destination.Destination, error) {
	destination := new(catalogDestination)
	if err := env.Parse(destination); err != nil {
		return nil, handleError(err)
	}

	if err := destination.init(); err != nil {
		return nil, handleError(err)
	}

	return destination, nil
}

// init validates the tenant URL and prepares the authenticated HTTP client.
func (d *catalogDestination) init() error {
	baseURL, err := url.Parse(d.Tenant)
	if err != nil {
		return err
	}

	if (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidTenant, d.Tenant)
	}

	d.baseURL = baseURL
	d.client = &http.Client{
		Timeout:   d.Timeout,
		Transport: newTransport(d.APIKey),
	}

	if d.newBackOff == nil {
		d.newBackOff = newExponentialBackOff
	}

	return nil
}

// newTransport returns a transport that sends the API key as a bearer token.
func newTransport(apiKey string) http.RoundTripper {
	return &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: apiKey,
			TokenType:   "Bearer",
		}),
		Base: http.DefaultTransport,
	}
}

func newExponentialBackOff() backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.MaxElapsedTime = maxElapsedTime
	return exponential
}

// GetCustomMetadataDef implements destination.Destination.
func (d *catalogDestination) GetCustomMetadataDef(ctx context.Context, displayName string) (*typedef.CustomMetadataDef, error) {
	query := url.Values{"type": []string{customMetadataQS}}
	typeDefs := new(typedef.TypeDefs)
	if err := d.doRequest(ctx, http.MethodGet, typeDefsPath, query, nil, typeDefs); err != nil {
		return nil, handleError(err)
	}

	for _, def := range typeDefs.CustomMetadataDefs {
		if def != nil && def.DisplayName == displayName {
			return def, nil
		}
	}

	return nil, handleError(fmt.Errorf("custom metadata %q: %w", displayName, destination.ErrNotFound))
}

// GetEnumDef implements destination.Destination.
func (d *catalogDestination) GetEnumDef(ctx context.Context, name string) (*typedef.EnumDef, error) {
	enumDef := new(typedef.EnumDef)
	if err := d.doRequest(ctx, http.MethodGet, typeDefNamePath+url.PathEscape(name), nil, nil, enumDef); err != nil {
		return nil, handleError(err)
	}

	if enumDef.Category != "" && enumDef.Category != typedef.CategoryEnum {
		return nil, handleError(fmt.Errorf("definition %q has category %s, not %s", name, enumDef.Category, typedef.CategoryEnum))
	}

	return enumDef, nil
}

// CreateTypeDefs implements destination.Destination.
func (d *catalogDestination) CreateTypeDefs(ctx context.Context, typeDefs *typedef.TypeDefs) error {
	return handleError(d.doRequest(ctx, http.MethodPost, typeDefsPath, nil, typeDefs, nil))
}

// UpdateTypeDefs implements destination.Destination.
func (d *catalogDestination) UpdateTypeDefs(ctx context.Context, typeDefs *typedef.TypeDefs) error {
	return handleError(d.doRequest(ctx, http.MethodPut, typeDefsPath, nil, typeDefs, nil))
}

// SearchQualifiedNames implements destination.Destination.
func (d *catalogDestination) SearchQualifiedNames(ctx context.Context, typeName string) ([]string, error) {
	log := logger.FromContext(ctx).WithName(loggerName)

	names := make([]string, 0)
	for from := 0; ; {
		response := new(searchResponse)
		if err := d.doRequest(ctx, http.MethodPost, indexSearchPath, nil, newSearchRequest(typeName, from, defaultPageSize), response); err != nil {
			return nil, handleError(err)
		}

		for _, entity := range response.Entities {
			if entity.Attributes.QualifiedName != "" {
				names = append(names, entity.Attributes.QualifiedName)
			}
		}

		from += len(response.Entities)
		if len(response.Entities) == 0 || from >= response.ApproximateCount {
			break
		}
	}

	log.Debug("search completed", "typeName", typeName, "results", len(names))
	return names, nil
}

// doRequest sends a JSON request, retrying on network errors, 429 and 5xx responses.
// A non nil target receives the decoded response body.
func (d *catalogDestination) doRequest(ctx context.Context, method, path string, query url.Values, body, target any) error {
	log := logger.FromContext(ctx).WithName(loggerName)

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	endpoint := d.baseURL.JoinPath(path)
	endpoint.RawQuery = query.Encode()
	requestID := uuid.NewString()

	operation := func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		request, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
		if err != nil {
			return backoff.Permanent(err)
		}

		request.Header.Set("User-Agent", info.UserAgent())
		request.Header.Set("Accept", jsonContentType)
		request.Header.Set(requestIDHeader, requestID)
		if payload != nil {
			request.Header.Set("Content-Type", jsonContentType)
		}

		log.Trace("sending request", "method", method, "path", endpoint.Path, "requestId", requestID)
		response, err := d.client.Do(request)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer response.Body.Close()

		if response.StatusCode >= http.StatusBadRequest {
			responseErr := &ResponseError{StatusCode: response.StatusCode, Message: errorMessage(response)}
			switch {
			case response.StatusCode == http.StatusNotFound:
				return backoff.Permanent(fmt.Errorf("%w: %w", destination.ErrNotFound, responseErr))
			case responseErr.retryable():
				return responseErr
			default:
				return backoff.Permanent(responseErr)
			}
		}

		if target == nil {
			_, _ = io.Copy(io.Discard, response.Body)
			return nil
		}

		if err := json.NewDecoder(response.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
			return backoff.Permanent(fmt.Errorf("decoding response: %w", err))
		}

		return nil
	}

	notify := func(err error, wait time.Duration) {
		log.Warn("request failed, retrying", "method", method, "path", endpoint.Path, "requestId", requestID, "error", err.Error(), "wait", wait.String())
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(d.newBackOff(), d.MaxRetries), ctx)
	return backoff.RetryNotify(operation, policy, notify)
}

// errorMessage extracts the platform error message from a failed response.
func errorMessage(response *http.Response) string {
	body := struct {
		ErrorMessage string `json:"errorMessage"`
		Message      string `json:"message"`
	}{}

	if err := json.NewDecoder(response.Body).Decode(&body); err == nil {
		switch {
		case body.ErrorMessage != "":
			return body.ErrorMessage
		case body.Message != "":
			return body.Message
		}
	}

	return http.StatusText(response.StatusCode)
}

func handleError(err error) error {
	if err == nil {
		return nil
	}

	var parseErr env.AggregateError
	if errors.As(err, &parseErr) {
		err = parseErr.Errors[0]
	}

	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}

	return &CatalogError{
		err: err,
	}
}
