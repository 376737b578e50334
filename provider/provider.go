// Package provider defines the capability contract a chain SDK adapter
// implements so contract bindings can run without knowing the SDK.
package provider

import (
	"context"

	"github.com/dapplink-baas/connex-provider/topic"
)

type Type string

const (
	DefaultOffset = 0
	DefaultLimit  = 25
)

// Provider is implemented by every provider plugin.
type Provider interface {
	Describe() string
	ProviderType() Type

	SetInstanceOptions(inst Instance) error
	Connect() error

	CallMethod(ctx context.Context, name string, args []interface{}) (*CallResult, error)
	PrepareSigning(ctx context.Context, name string, opts CallOptions, args []interface{}) (Signer, error)
	ExplainGas(ctx context.Context, name string, opts CallOptions, args []interface{}) ([]CallResult, error)
	GetEvents(ctx context.Context, name string, filter *EventFilter) ([]Event, error)
}

// Signer is a prepared transaction awaiting wallet approval.
type Signer interface {
	RequestSigning(ctx context.Context) (*SigningResult, error)
}

// Instance binds a provider to a live SDK connection.
type Instance struct {
	Connection interface{}
	Options    InstanceOptions
}

type InstanceOptions struct {
	ChainTag       string
	DefaultAccount string
}

// CallOptions override the sender and gas of a call. Zero values fall back
// to the provider defaults.
type CallOptions struct {
	From string
	Gas  uint64
}

type CallResult struct {
	Data     string
	Decoded  map[string]interface{}
	GasUsed  uint64
	Reverted bool
	VMError  string
}

type SigningResult struct {
	TxID   string
	Signer string
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Range struct {
	Unit string
	From uint64
	To   uint64
}

type PageOptions struct {
	Offset int
	Limit  int
}

// EventFilter narrows an event query. Every field is optional.
type EventFilter struct {
	Range       *Range
	Filter      []map[string]interface{}
	Order       Order
	PageOptions *PageOptions
	Topics      *topic.Builder
}

type EventMeta struct {
	BlockID        string
	BlockNumber    uint32
	BlockTimestamp uint64
	TxID           string
	TxOrigin       string
	ClauseIndex    uint32
}

type Event struct {
	Address string
	Topics  []string
	Data    string
	Decoded map[string]interface{}
	Meta    *EventMeta
}
