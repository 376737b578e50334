// Package connex describes the surface of the Connex SDK the provider plugin
// drives. The SDK itself (ledger client, ABI codec, wallet vendor) lives
// outside this module and is supplied as an implementation of Connex.
package connex

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

type Connex interface {
	Thor() Thor
	Vendor() Vendor
}

type Thor interface {
	// Account returns a visitor scoped to the contract at addr.
	Account(addr string) AccountVisitor
	Explain() Explainer
}

type AccountVisitor interface {
	Method(def *abi.Method) Method
	Event(def *abi.Event) EventVisitor
}

// Method is a contract method bound to an account.
type Method interface {
	Call(ctx context.Context, args ...interface{}) (*VMOutput, error)
	// AsClause encodes a call to the method as a transaction clause.
	AsClause(args ...interface{}) (Clause, error)
}

type EventVisitor interface {
	// Filter starts an event query. Each element of indexed is a set of
	// indexed argument values, OR-ed together.
	Filter(indexed []Indexed) Filter
}

// Filter is a fluent event query. Setters return the filter they were called on.
type Filter interface {
	Criteria(set []Criteria) Filter
	Range(r Range) Filter
	Order(o Order) Filter
	Apply(ctx context.Context, offset, limit int) ([]Event, error)
}

type Explainer interface {
	Gas(gas uint64) Explainer
	Caller(addr string) Explainer
	Execute(ctx context.Context, clauses []Clause) ([]VMOutput, error)
}

type Vendor interface {
	SignTx() TxSigningService
}

type TxSigningService interface {
	Signer(addr string) TxSigningService
	Gas(gas uint64) TxSigningService
	Request(ctx context.Context, msg []TxMessageItem) (*TxResponse, error)
}
