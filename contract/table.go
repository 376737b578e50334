// Package contract holds contract import descriptors: the interface
// definitions of a contract and the address it is deployed at per chain.
package contract

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

var (
	ErrDefinitionNotFound = errors.New("definition not found")
	ErrKindMismatch       = errors.New("definition kind mismatch")
)

type Kind int

const (
	KindMethod Kind = iota + 1
	KindEvent
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Definition is a named method or event. Exactly one of Method and Event is
// set, according to Kind.
type Definition struct {
	Name   string
	Kind   Kind
	Method *abi.Method
	Event  *abi.Event
}

// Table resolves definitions by name. When a name is declared more than once
// (overloads, or a method and an event sharing a name) the first declaration wins.
type Table struct {
	abi   abi.ABI
	names []string
	defs  map[string]Definition
}

type abiEntry struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func NewTable(abiJSON []byte) (*Table, error) {
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, errors.Wrap(err, "parse abi")
	}
	var entries []abiEntry
	if err := json.Unmarshal(abiJSON, &entries); err != nil {
		return nil, errors.Wrap(err, "parse abi entries")
	}

	t := &Table{
		abi:  parsed,
		defs: make(map[string]Definition),
	}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		if _, ok := t.defs[e.Name]; ok {
			continue
		}
		var def Definition
		switch e.Type {
		case "function", "":
			// abi.JSON keeps the bare name for the first overload only
			m, ok := parsed.Methods[e.Name]
			if !ok {
				continue
			}
			def = Definition{Name: e.Name, Kind: KindMethod, Method: &m}
		case "event":
			ev, ok := parsed.Events[e.Name]
			if !ok {
				continue
			}
			def = Definition{Name: e.Name, Kind: KindEvent, Event: &ev}
		default:
			continue
		}
		t.defs[e.Name] = def
		t.names = append(t.names, e.Name)
	}
	return t, nil
}

func (t *Table) Lookup(name string) (Definition, error) {
	def, ok := t.defs[name]
	if !ok {
		return Definition{}, errors.Wrapf(ErrDefinitionNotFound, "%q", name)
	}
	return def, nil
}

func (t *Table) Method(name string) (*abi.Method, error) {
	def, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	if def.Kind != KindMethod {
		return nil, errors.Wrapf(ErrKindMismatch, "%q is an %s", name, def.Kind)
	}
	return def.Method, nil
}

func (t *Table) Event(name string) (*abi.Event, error) {
	def, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	if def.Kind != KindEvent {
		return nil, errors.Wrapf(ErrKindMismatch, "%q is a %s", name, def.Kind)
	}
	return def.Event, nil
}

// Names lists definition names in declaration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) ABI() abi.ABI {
	return t.abi
}
