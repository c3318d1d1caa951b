// Package pokeapi fetches the roster and per-Pokemon detail records from the
// PokeAPI REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/notjagan/dexview/pkg/model"
)

const tracerName = "github.com/notjagan/dexview/pkg/pokeapi"

var (
	ErrRequest   = errors.New("request to pokeapi failed")
	ErrNotFound  = errors.New("pokeapi resource not found")
	ErrStatus    = errors.New("unexpected pokeapi response status")
	ErrMalformed = errors.New("malformed pokeapi response")
)

type Config struct {
	BaseURL string
	Timeout time.Duration

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
	tracer  trace.Tracer
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		tracer:  tp.Tracer(tracerName),
	}, nil
}

// Roster fetches the first model.RosterLimit entries of the pokemon list.
func (c *Client) Roster(ctx context.Context) (model.Roster, error) {
	u := c.baseURL.JoinPath("pokemon")
	q := u.Query()
	q.Set("limit", strconv.Itoa(model.RosterLimit))
	u.RawQuery = q.Encode()

	var resp listResponse
	err := c.get(ctx, "pokeapi.Roster", u.String(), &resp)
	if err != nil {
		return nil, fmt.Errorf("error while fetching roster: %w", err)
	}

	roster := resp.roster()
	c.logger.Debug("fetched roster", zap.Int("entries", len(roster)), zap.Int("count", resp.Count))

	return roster, nil
}

// Detail fetches the record a roster entry's detail reference points at.
// Relative references are resolved against the base URL.
func (c *Client) Detail(ctx context.Context, ref string) (*model.PokemonDetail, error) {
	u, err := c.baseURL.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid detail reference %q: %w", ref, ErrRequest)
	}

	var resp pokemonResponse
	err = c.get(ctx, "pokeapi.Detail", u.String(), &resp)
	if err != nil {
		return nil, fmt.Errorf("error while fetching detail %q: %w", ref, err)
	}

	detail, err := resp.detail()
	if err != nil {
		return nil, fmt.Errorf("error while decoding detail %q: %w", ref, err)
	}

	return detail, nil
}

func (c *Client) get(ctx context.Context, spanName string, u string, v any) (err error) {
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("url.full", u)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not build request for %q: %w", u, errors.Join(ErrRequest, err))
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %q: %w", u, errors.Join(ErrRequest, err))
	}
	defer res.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))
	c.logger.Debug("pokeapi response",
		zap.String("url", u),
		zap.Int("status", res.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("GET %q: %w", u, ErrNotFound)
	case res.StatusCode < 200 || res.StatusCode > 299:
		return fmt.Errorf("GET %q returned %d: %w", u, res.StatusCode, ErrStatus)
	}

	err = json.NewDecoder(res.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("could not decode body of %q: %w", u, errors.Join(ErrMalformed, err))
	}

	return nil
}
