// Package connextest provides a recording in-memory Connex for tests.
package connextest

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/dapplink-baas/connex-provider/connex"
)

// Fake records every SDK interaction and answers with the canned results set
// on it. The zero value is ready to use.
type Fake struct {
	Accounts []string
	Methods  []*abi.Method
	Events   []*abi.Event

	CallOutput *connex.VMOutput
	CallErr    error
	Calls      [][]interface{}

	Clause       connex.Clause
	ClauseErr    error
	ClauseInputs [][]interface{}

	Filters      []*Filter
	EventResults []connex.Event
	ApplyErr     error

	Explainers     []*Explainer
	ExplainOutputs []connex.VMOutput
	ExplainErr     error

	SigningServices []*SigningService
	TxResponse      *connex.TxResponse
	SignErr         error
}

var _ connex.Connex = (*Fake)(nil)

func (f *Fake) Thor() connex.Thor     { return thor{f} }
func (f *Fake) Vendor() connex.Vendor { return vendor{f} }

// LastFilter returns the most recently started event query, or nil.
func (f *Fake) LastFilter() *Filter {
	if len(f.Filters) == 0 {
		return nil
	}
	return f.Filters[len(f.Filters)-1]
}

// LastSigningService returns the most recently opened signing service, or nil.
func (f *Fake) LastSigningService() *SigningService {
	if len(f.SigningServices) == 0 {
		return nil
	}
	return f.SigningServices[len(f.SigningServices)-1]
}

type thor struct{ f *Fake }

func (t thor) Account(addr string) connex.AccountVisitor {
	t.f.Accounts = append(t.f.Accounts, addr)
	return account{f: t.f, addr: addr}
}

func (t thor) Explain() connex.Explainer {
	e := &Explainer{f: t.f}
	t.f.Explainers = append(t.f.Explainers, e)
	return e
}

type account struct {
	f    *Fake
	addr string
}

func (a account) Method(def *abi.Method) connex.Method {
	a.f.Methods = append(a.f.Methods, def)
	return method{f: a.f, def: def}
}

func (a account) Event(def *abi.Event) connex.EventVisitor {
	a.f.Events = append(a.f.Events, def)
	return event{f: a.f, def: def}
}

type method struct {
	f   *Fake
	def *abi.Method
}

func (m method) Call(_ context.Context, args ...interface{}) (*connex.VMOutput, error) {
	m.f.Calls = append(m.f.Calls, args)
	if m.f.CallErr != nil {
		return nil, m.f.CallErr
	}
	if m.f.CallOutput == nil {
		return &connex.VMOutput{}, nil
	}
	return m.f.CallOutput, nil
}

func (m method) AsClause(args ...interface{}) (connex.Clause, error) {
	m.f.ClauseInputs = append(m.f.ClauseInputs, args)
	return m.f.Clause, m.f.ClauseErr
}

type event struct {
	f   *Fake
	def *abi.Event
}

func (e event) Filter(indexed []connex.Indexed) connex.Filter {
	flt := &Filter{f: e.f, Indexed: indexed}
	e.f.Filters = append(e.f.Filters, flt)
	return flt
}

// Filter records the query it was built with.
type Filter struct {
	f *Fake

	Indexed     []connex.Indexed
	CriteriaSet []connex.Criteria
	RangeSet    *connex.Range
	OrderSet    connex.Order
	Applied     bool
	Offset      int
	Limit       int
}

func (flt *Filter) Criteria(set []connex.Criteria) connex.Filter {
	flt.CriteriaSet = set
	return flt
}

func (flt *Filter) Range(r connex.Range) connex.Filter {
	flt.RangeSet = &r
	return flt
}

func (flt *Filter) Order(o connex.Order) connex.Filter {
	flt.OrderSet = o
	return flt
}

func (flt *Filter) Apply(_ context.Context, offset, limit int) ([]connex.Event, error) {
	flt.Applied = true
	flt.Offset = offset
	flt.Limit = limit
	if flt.f.ApplyErr != nil {
		return nil, flt.f.ApplyErr
	}
	return flt.f.EventResults, nil
}

type Explainer struct {
	f *Fake

	GasSet    uint64
	CallerSet string
	Clauses   []connex.Clause
}

func (e *Explainer) Gas(gas uint64) connex.Explainer {
	e.GasSet = gas
	return e
}

func (e *Explainer) Caller(addr string) connex.Explainer {
	e.CallerSet = addr
	return e
}

func (e *Explainer) Execute(_ context.Context, clauses []connex.Clause) ([]connex.VMOutput, error) {
	e.Clauses = clauses
	return e.f.ExplainOutputs, e.f.ExplainErr
}

type vendor struct{ f *Fake }

func (v vendor) SignTx() connex.TxSigningService {
	s := &SigningService{f: v.f}
	v.f.SigningServices = append(v.f.SigningServices, s)
	return s
}

// SigningService records the signer options and every request made through it.
type SigningService struct {
	f *Fake

	SignerSet string
	GasSet    uint64
	Requests  [][]connex.TxMessageItem
}

func (s *SigningService) Signer(addr string) connex.TxSigningService {
	s.SignerSet = addr
	return s
}

func (s *SigningService) Gas(gas uint64) connex.TxSigningService {
	s.GasSet = gas
	return s
}

func (s *SigningService) Request(_ context.Context, msg []connex.TxMessageItem) (*connex.TxResponse, error) {
	s.Requests = append(s.Requests, msg)
	if s.f.SignErr != nil {
		return nil, s.f.SignErr
	}
	return s.f.TxResponse, nil
}
