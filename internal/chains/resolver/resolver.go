package resolver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/chains/registry"
)

// Kind tags how an input was resolved to an endpoint.
type Kind string

const (
	// KindResolved marks a deliberate endpoint: a raw URL input or a
	// catalog hit.
	KindResolved Kind = "resolved"
	// KindFallback marks an input that matched nothing in the catalog
	// and is passed through verbatim as a last resort.
	KindFallback Kind = "fallback"
)

// Result is the outcome of a resolution. Record is nil for raw URL
// inputs and fallbacks.
type Result struct {
	Kind   Kind           `json:"kind"`
	Input  string         `json:"input"`
	RPCURL string         `json:"rpcUrl"`
	Record *chains.Record `json:"record,omitempty"`
}

// IsFallback reports whether the input matched nothing in the catalog.
func (r Result) IsFallback() bool {
	return r.Kind == KindFallback
}

// DisplayName returns the catalog name if resolved from the catalog,
// otherwise the raw input.
func (r Result) DisplayName() string {
	if r.Record != nil {
		return r.Record.Name
	}

	return r.Input
}

// Service resolves user supplied chain identifiers to RPC endpoints.
type Service interface {
	Resolve(ctx context.Context, input string) (Result, error)
}

type service struct {
	registry registry.Service
}

//nolint:ireturn
func New(reg registry.Service) Service {
	return &service{registry: reg}
}

// Resolve maps an input to an endpoint, in order: URL passthrough, exact
// name, exact slug, substring in either direction over the catalog, and
// finally the verbatim input tagged as fallback. Resolution only fails
// when the catalog has never been loadable at all.
func (s *service) Resolve(ctx context.Context, input string) (Result, error) {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return Result{Kind: KindResolved, Input: input, RPCURL: input}, nil
	}

	records, err := s.registry.All(ctx)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed to resolve chain %q", input)
	}

	lower := strings.ToLower(input)

	for i := range records {
		if strings.ToLower(records[i].Name) == lower {
			return s.hit(records[i], input), nil
		}
	}

	for i := range records {
		if records[i].Slug != "" && strings.ToLower(records[i].Slug) == lower {
			return s.hit(records[i], input), nil
		}
	}

	// substring in either direction, first catalog entry wins
	for i := range records {
		name := strings.ToLower(records[i].Name)
		if name == "" {
			continue
		}
		if strings.Contains(name, lower) || strings.Contains(lower, name) {
			return s.hit(records[i], input), nil
		}
	}

	log.Debug().Str("input", input).Msg("Chain not found in catalog, passing input through verbatim")

	return Result{Kind: KindFallback, Input: input, RPCURL: input}, nil
}

func (s *service) hit(record chains.Record, input string) Result {
	r := record

	return Result{
		Kind:   KindResolved,
		Input:  input,
		RPCURL: record.RPCURL,
		Record: &r,
	}
}
