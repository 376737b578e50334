// Package connexplugin adapts the Connex SDK to the provider contract.
package connexplugin

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/dapplink-baas/connex-provider/connex"
	"github.com/dapplink-baas/connex-provider/contract"
	"github.com/dapplink-baas/connex-provider/provider"
)

const (
	ProviderType provider.Type = "connex"

	DefaultGas uint64 = 300_000
)

var (
	ErrMissingSettings       = errors.New("missing onReady settings")
	ErrUnsupportedConnection = errors.New("connection is not a connex instance")
)

// Settings are the values OnReady needs before any SDK call can be made.
type Settings struct {
	Connex         connex.Connex
	ChainTag       string
	DefaultAccount string
}

type Plugin struct {
	contract *contract.Import

	Connex         connex.Connex
	ChainTag       string
	DefaultAccount string
	Address        string
}

var _ provider.Provider = (*Plugin)(nil)

func New(imp *contract.Import) provider.Provider {
	return NewPlugin(imp)
}

func NewPlugin(imp *contract.Import) *Plugin {
	return &Plugin{contract: imp}
}

func (p *Plugin) Describe() string {
	return fmt.Sprintf("contract address: %s\nchain tag: %s\nowner: %s\n", p.Address, p.ChainTag, p.DefaultAccount)
}

func (p *Plugin) ProviderType() provider.Type {
	return ProviderType
}

// OnReady stores the settings and connects.
func (p *Plugin) OnReady(settings Settings) error {
	p.Connex = settings.Connex
	p.ChainTag = settings.ChainTag
	p.DefaultAccount = settings.DefaultAccount
	return p.Connect()
}

// Connect resolves the contract address for the configured chain tag.
func (p *Plugin) Connect() error {
	if p.Connex == nil || p.ChainTag == "" || p.DefaultAccount == "" {
		log.Error("connect without settings", "hasConnex", p.Connex != nil, "chainTag", p.ChainTag, "defaultAccount", p.DefaultAccount)
		return ErrMissingSettings
	}
	addr, err := p.contract.AddressOf(p.ChainTag)
	if err != nil {
		return err
	}
	p.Address = addr
	log.Info("connex provider connected", "address", addr, "chainTag", p.ChainTag, "owner", p.DefaultAccount)
	return nil
}

func (p *Plugin) SetInstanceOptions(inst provider.Instance) error {
	if inst.Connection == nil {
		p.Connex = nil
	} else {
		c, ok := inst.Connection.(connex.Connex)
		if !ok {
			return errors.Wrapf(ErrUnsupportedConnection, "got %T", inst.Connection)
		}
		p.Connex = c
	}
	if inst.Options.ChainTag != "" {
		p.ChainTag = inst.Options.ChainTag
	}
	if inst.Options.DefaultAccount != "" {
		p.DefaultAccount = inst.Options.DefaultAccount
	}
	return nil
}

// Definition looks up a method or event of the contract by name.
func (p *Plugin) Definition(name string) (contract.Definition, error) {
	return p.contract.Table.Lookup(name)
}

func (p *Plugin) account() (connex.AccountVisitor, error) {
	if p.Connex == nil || p.ChainTag == "" || p.DefaultAccount == "" {
		return nil, ErrMissingSettings
	}
	addr, err := p.contract.AddressOf(p.ChainTag)
	if err != nil {
		return nil, err
	}
	return p.Connex.Thor().Account(addr), nil
}

func (p *Plugin) method(name string) (connex.Method, error) {
	def, err := p.contract.Table.Method(name)
	if err != nil {
		return nil, err
	}
	acc, err := p.account()
	if err != nil {
		return nil, err
	}
	return acc.Method(def), nil
}

// Method is an SDK method bound to the contract, with a gas explainer.
type Method struct {
	connex.Method
	p *Plugin
}

// ExplainGas dry-runs the call with the given sender and gas.
func (m *Method) ExplainGas(ctx context.Context, cfg provider.CallOptions, args ...interface{}) ([]provider.CallResult, error) {
	return m.p.explain(ctx, m.Method, cfg, args)
}

func (p *Plugin) Method(name string) (*Method, error) {
	m, err := p.method(name)
	if err != nil {
		return nil, err
	}
	return &Method{Method: m, p: p}, nil
}

func (p *Plugin) CallMethod(ctx context.Context, name string, args []interface{}) (*provider.CallResult, error) {
	m, err := p.method(name)
	if err != nil {
		return nil, err
	}
	log.Debug("call method", "address", p.Address, "method", name, "args", len(args))
	out, err := m.Call(ctx, args...)
	if err != nil {
		return nil, err
	}
	res := callResult(*out)
	return &res, nil
}

func (p *Plugin) ExplainGas(ctx context.Context, name string, opts provider.CallOptions, args []interface{}) ([]provider.CallResult, error) {
	m, err := p.method(name)
	if err != nil {
		return nil, err
	}
	return p.explain(ctx, m, opts, args)
}

func (p *Plugin) explain(ctx context.Context, m connex.Method, cfg provider.CallOptions, args []interface{}) ([]provider.CallResult, error) {
	if p.Connex == nil {
		return nil, ErrMissingSettings
	}
	clause, err := m.AsClause(args...)
	if err != nil {
		return nil, err
	}
	outs, err := p.Connex.Thor().Explain().
		Gas(p.gas(cfg.Gas)).
		Caller(p.from(cfg.From)).
		Execute(ctx, []connex.Clause{clause})
	if err != nil {
		return nil, err
	}
	res := make([]provider.CallResult, 0, len(outs))
	for _, o := range outs {
		res = append(res, callResult(o))
	}
	return res, nil
}

// PrepareSigning encodes the call and returns a signer for it. Nothing is
// sent to the wallet until RequestSigning is called.
func (p *Plugin) PrepareSigning(ctx context.Context, name string, opts provider.CallOptions, args []interface{}) (provider.Signer, error) {
	m, err := p.method(name)
	if err != nil {
		return nil, err
	}
	svc := p.Connex.Vendor().SignTx().
		Signer(p.from(opts.From)).
		Gas(p.gas(opts.Gas))

	payload, err := m.AsClause(args...)
	if err != nil {
		return nil, err
	}
	log.Debug("prepared signing request", "address", p.Address, "method", name, "signer", p.from(opts.From))
	return NewSigner(svc, payload), nil
}

// Event returns the SDK event visitor for the named event.
func (p *Plugin) Event(name string) (connex.EventVisitor, error) {
	def, err := p.contract.Table.Event(name)
	if err != nil {
		return nil, err
	}
	acc, err := p.account()
	if err != nil {
		return nil, err
	}
	return acc.Event(def), nil
}

// GetEvents queries past events. A nil filter fetches the first page with the
// SDK's default ordering.
func (p *Plugin) GetEvents(ctx context.Context, name string, filter *provider.EventFilter) ([]provider.Event, error) {
	ev, err := p.Event(name)
	if err != nil {
		return nil, err
	}

	offset, limit := provider.DefaultOffset, provider.DefaultLimit

	if filter == nil {
		raw, err := ev.Filter([]connex.Indexed{}).Apply(ctx, offset, limit)
		if err != nil {
			return nil, err
		}
		return events(raw), nil
	}

	flt := ev.Filter(indexed(filter.Filter))
	if filter.Topics != nil {
		flt = flt.Criteria(criteriaSet(filter.Topics.Get()))
	}
	if filter.Range != nil {
		flt = flt.Range(connex.Range{
			Unit: connex.RangeUnit(filter.Range.Unit),
			From: filter.Range.From,
			To:   filter.Range.To,
		})
	}
	order := connex.OrderDesc
	if filter.Order != "" {
		order = connex.Order(filter.Order)
	}
	flt = flt.Order(order)

	if filter.PageOptions != nil {
		offset = filter.PageOptions.Offset
		limit = filter.PageOptions.Limit
	}
	log.Debug("get events", "address", p.Address, "event", name, "order", order, "offset", offset, "limit", limit)
	raw, err := flt.Apply(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return events(raw), nil
}

func (p *Plugin) from(addr string) string {
	if addr != "" {
		return addr
	}
	return p.DefaultAccount
}

func (p *Plugin) gas(gas uint64) uint64 {
	if gas != 0 {
		return gas
	}
	return DefaultGas
}
