// Package binding turns contract method and event names into callable
// functions bound to a provider, and wires providers into a module.
package binding

import (
	"context"

	"github.com/dapplink-baas/connex-provider/provider"
)

type MethodCaller interface {
	CallMethod(ctx context.Context, name string, args []interface{}) (*provider.CallResult, error)
}

type SigningPreparer interface {
	PrepareSigning(ctx context.Context, name string, opts provider.CallOptions, args []interface{}) (provider.Signer, error)
}

type EventGetter interface {
	GetEvents(ctx context.Context, name string, filter *provider.EventFilter) ([]provider.Event, error)
}

type GasExplainer interface {
	ExplainGas(ctx context.Context, name string, opts provider.CallOptions, args []interface{}) ([]provider.CallResult, error)
}

type ReadFunc func(ctx context.Context, args ...interface{}) (*provider.CallResult, error)

// Read binds a constant method call.
func Read(target MethodCaller, name string) ReadFunc {
	return func(ctx context.Context, args ...interface{}) (*provider.CallResult, error) {
		return target.CallMethod(ctx, name, args)
	}
}

type WriteFunc func(args ...interface{}) *WriteCall

// WriteCall is a state-changing call with its arguments fixed.
type WriteCall struct {
	target SigningPreparer
	name   string
	args   []interface{}
}

// Write binds a state-changing method. Calling the returned WriteCall
// prepares a signing request; the request is sent to the wallet only when
// the signer's RequestSigning is called.
func Write(target SigningPreparer, name string) WriteFunc {
	return func(args ...interface{}) *WriteCall {
		return &WriteCall{target: target, name: name, args: args}
	}
}

func (w *WriteCall) Call(ctx context.Context, opts provider.CallOptions) (provider.Signer, error) {
	return w.target.PrepareSigning(ctx, w.name, opts, w.args)
}

type EventsFunc func(ctx context.Context, filter *provider.EventFilter) ([]provider.Event, error)

// GetEvents binds an event query. defaults is used when the caller passes a
// nil filter.
func GetEvents(target EventGetter, name string, defaults *provider.EventFilter) EventsFunc {
	return func(ctx context.Context, filter *provider.EventFilter) ([]provider.Event, error) {
		if filter == nil {
			filter = defaults
		}
		return target.GetEvents(ctx, name, filter)
	}
}

type ExplainFunc func(ctx context.Context, opts provider.CallOptions, args ...interface{}) ([]provider.CallResult, error)

func Explain(target GasExplainer, name string) ExplainFunc {
	return func(ctx context.Context, opts provider.CallOptions, args ...interface{}) ([]provider.CallResult, error) {
		return target.ExplainGas(ctx, name, opts, args)
	}
}
