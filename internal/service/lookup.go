package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"platelookup/internal/model"
	"platelookup/internal/upstream"
)

var (
	// ErrUpstreamFailure covers every failed upstream exchange. Callers cannot tell
	// a missing plate from an outage or a malformed payload.
	ErrUpstreamFailure = errors.New("upstream lookup failed")
	// ErrInvalidPlate is only returned in strict mode.
	ErrInvalidPlate = errors.New("invalid license plate")
)

// plateAllowList bounds plates accepted in strict mode: Danish letters, digits and hyphen.
var plateAllowList = regexp.MustCompile(`^[A-Za-z0-9ÆØÅæøå-]{1,10}$`)

var tracer = otel.Tracer("platelookup/internal/service")

// LookupService is the framework-agnostic plate lookup shared by every HTTP mounting.
type LookupService interface {
	// Lookup forwards one plate to the upstream service and returns its JSON body unchanged.
	// Any upstream problem is reported as ErrUpstreamFailure.
	Lookup(ctx context.Context, plate string) (*model.LookupResult, error)
}

// Option customizes the lookup service.
type Option func(*lookupService)

// WithStrictPlates rejects plates outside the allow-list and path-escapes accepted ones.
func WithStrictPlates(strict bool) Option {
	return func(s *lookupService) { s.strict = strict }
}

type lookupService struct {
	source upstream.VehicleSource
	strict bool
}

// NewLookupService constructs a LookupService over the given upstream source.
func NewLookupService(source upstream.VehicleSource, opts ...Option) LookupService {
	s := &lookupService{source: source}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *lookupService) Lookup(ctx context.Context, plate string) (*model.LookupResult, error) {
	ctx, span := tracer.Start(ctx, "LookupService.Lookup")
	defer span.End()
	span.SetAttributes(attribute.Bool("lookup.strict", s.strict))

	segment := plate
	if s.strict {
		if !plateAllowList.MatchString(plate) {
			span.SetStatus(codes.Error, ErrInvalidPlate.Error())
			return nil, ErrInvalidPlate
		}
		segment = url.PathEscape(plate)
	}

	body, err := s.source.Fetch(ctx, segment)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream failure")
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	return &model.LookupResult{LicensePlate: plate, Body: body}, nil
}
