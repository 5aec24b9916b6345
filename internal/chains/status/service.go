package status

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/chains/node"
	"github/orbitpulse/orbit-gateway/internal/chains/registry"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
)

// Service aggregates chain health information. The comprehensive report
// never fails once a chain identifier resolved, unreachable upstreams
// surface inside the affected sub-reports instead.
type Service interface {
	ChainStatus(ctx context.Context, chain string) (*Report, error)
	BatchPostingStatus(ctx context.Context, chain string) (*BatchPostingReport, error)
	AssertionStatus(ctx context.Context, chain string) (*AssertionReport, error)
	GasPrice(ctx context.Context, chain string) (*GasReport, error)
	ArbOSVersion(ctx context.Context, chain string) (string, error)
}

type service struct {
	cfg      config.Server
	registry registry.Service
	resolver resolver.Service
	metrics  *metrics.Service
}

//nolint:ireturn
func New(cfg config.Server, reg registry.Service, res resolver.Service, m *metrics.Service) Service {
	return &service{
		cfg:      cfg,
		registry: reg,
		resolver: res,
		metrics:  m,
	}
}

// ChainStatus resolves the chain and runs the four sub-queries
// concurrently. Every branch settles into its own slot of the report,
// a failing branch never cancels or aborts the others.
func (s *service) ChainStatus(ctx context.Context, chain string) (*Report, error) {
	res, err := s.resolver.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() {
		s.metrics.ObserveStatusDuration(time.Since(started))
	}()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RPC.RequestTimeout)
	defer cancel()

	child, childErr := node.Dial(ctx, res.RPCURL)
	if childErr == nil {
		defer child.Close()
	}

	parent, parentErr := s.dialParent(ctx, res)
	if parentErr == nil {
		defer parent.Close()
	}

	report := &Report{
		Chain: ChainInfo{
			Name:       res.DisplayName(),
			RPCURL:     res.RPCURL,
			Resolution: string(res.Kind),
		},
	}
	if res.Record != nil {
		report.Chain.ChainID = res.Record.ChainID
	}

	// each goroutine writes a distinct report field
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		report.ArbOSVersion = s.arbOSVersion(ctx, child, childErr)
	}()
	go func() {
		defer wg.Done()
		report.BatchPosting = s.batchPosting(ctx, res, child, childErr, parent, parentErr)
	}()
	go func() {
		defer wg.Done()
		report.Assertions = s.assertions(ctx, res, parent, parentErr)
	}()
	go func() {
		defer wg.Done()
		report.Gas = s.gasPrice(ctx, child, childErr)
	}()

	wg.Wait()

	return report, nil
}

func (s *service) BatchPostingStatus(ctx context.Context, chain string) (*BatchPostingReport, error) {
	res, err := s.resolver.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RPC.RequestTimeout)
	defer cancel()

	child, childErr := node.Dial(ctx, res.RPCURL)
	if childErr == nil {
		defer child.Close()
	}

	parent, parentErr := s.dialParent(ctx, res)
	if parentErr == nil {
		defer parent.Close()
	}

	report := s.batchPosting(ctx, res, child, childErr, parent, parentErr)

	return &report, nil
}

func (s *service) AssertionStatus(ctx context.Context, chain string) (*AssertionReport, error) {
	res, err := s.resolver.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RPC.RequestTimeout)
	defer cancel()

	parent, parentErr := s.dialParent(ctx, res)
	if parentErr == nil {
		defer parent.Close()
	}

	report := s.assertions(ctx, res, parent, parentErr)

	return &report, nil
}

func (s *service) GasPrice(ctx context.Context, chain string) (*GasReport, error) {
	res, err := s.resolver.Resolve(ctx, chain)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RPC.RequestTimeout)
	defer cancel()

	child, childErr := node.Dial(ctx, res.RPCURL)
	if childErr == nil {
		defer child.Close()
	}

	report := s.gasPrice(ctx, child, childErr)

	return &report, nil
}

func (s *service) ArbOSVersion(ctx context.Context, chain string) (string, error) {
	res, err := s.resolver.Resolve(ctx, chain)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RPC.RequestTimeout)
	defer cancel()

	child, childErr := node.Dial(ctx, res.RPCURL)
	if childErr == nil {
		defer child.Close()
	}

	return s.arbOSVersion(ctx, child, childErr), nil
}

// dialParent connects to the parent chain carrying the rollup
// contracts. Chains resolved from a raw URL have no known parent.
// Configured parent URLs win over the catalog, orbit chains rolling up
// to Arbitrum One find their parent there.
func (s *service) dialParent(ctx context.Context, res resolver.Result) (*node.Client, error) {
	if res.Record == nil || res.Record.ParentChainID == 0 {
		return nil, errors.New("parent chain unknown for this endpoint")
	}

	parentID := res.Record.ParentChainID

	if url, ok := s.cfg.RPC.ParentChainURLs[parentID]; ok && url != "" {
		return node.Dial(ctx, url)
	}

	parent, err := s.registry.Find(ctx, func(r chains.Record) bool {
		return r.ChainID == parentID
	})
	if err == nil && parent != nil && parent.RPCURL != "" {
		return node.Dial(ctx, parent.RPCURL)
	}

	return nil, errors.Errorf("no parent chain RPC known for chain id %d", parentID)
}
