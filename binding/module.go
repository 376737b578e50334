package binding

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"

	"github.com/dapplink-baas/connex-provider/config"
	"github.com/dapplink-baas/connex-provider/contract"
	"github.com/dapplink-baas/connex-provider/provider"
	"github.com/dapplink-baas/connex-provider/provider/connexplugin"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrMissingInstance     = errors.New("no instance for provider")
)

type Factory func(imp *contract.Import) provider.Provider

// ContractSpec declares a contract of a module and the provider it runs on.
type ContractSpec struct {
	Name     string
	Import   *contract.Import
	Provider provider.Type
}

type Module struct {
	specs     []ContractSpec
	factories map[provider.Type]Factory
}

func NewModule(specs []ContractSpec) *Module {
	return &Module{
		specs: specs,
		factories: map[provider.Type]Factory{
			connexplugin.ProviderType: connexplugin.New,
		},
	}
}

// NewModuleFromConfig loads every contract import named by conf.
func NewModuleFromConfig(conf *config.Config) (*Module, error) {
	specs := make([]ContractSpec, 0, len(conf.Contracts))
	for _, c := range conf.Contracts {
		imp, err := contract.LoadImport(c.Import)
		if err != nil {
			log.Error("load contract import fail", "contract", c.Name, "err", err)
			return nil, err
		}
		specs = append(specs, ContractSpec{
			Name:     c.Name,
			Import:   imp,
			Provider: provider.Type(c.Provider),
		})
	}
	return NewModule(specs), nil
}

// Register adds or replaces the factory used for a provider type.
func (m *Module) Register(t provider.Type, f Factory) {
	m.factories[t] = f
}

// BindContracts creates a provider per contract and applies the instance
// registered for its provider type.
func (m *Module) BindContracts(instances map[provider.Type]provider.Instance) (*Contracts, error) {
	contracts := &Contracts{byName: make(map[string]provider.Provider, len(m.specs))}
	for _, cs := range m.specs {
		factory, ok := m.factories[cs.Provider]
		if !ok {
			supported := make([]provider.Type, 0, len(m.factories))
			for t := range m.factories {
				supported = append(supported, t)
			}
			log.Error("unsupported provider", "contract", cs.Name, "provider", cs.Provider, "supportedProviders", supported)
			return nil, errors.Wrapf(ErrUnsupportedProvider, "%s for contract %s", cs.Provider, cs.Name)
		}
		inst, ok := instances[cs.Provider]
		if !ok {
			return nil, errors.Wrapf(ErrMissingInstance, "%s for contract %s", cs.Provider, cs.Name)
		}
		p := factory(cs.Import)
		if err := p.SetInstanceOptions(inst); err != nil {
			return nil, errors.Wrapf(err, "bind contract %s", cs.Name)
		}
		contracts.byName[cs.Name] = p
		contracts.names = append(contracts.names, cs.Name)
	}
	return contracts, nil
}

// Contracts are the bound providers of a module, by contract name.
type Contracts struct {
	byName map[string]provider.Provider
	names  []string
}

// Connect connects every contract, stopping at the first failure.
func (c *Contracts) Connect() (*Contracts, error) {
	for _, name := range c.names {
		if err := c.byName[name].Connect(); err != nil {
			return nil, errors.Wrapf(err, "connect contract %s", name)
		}
	}
	return c, nil
}

func (c *Contracts) Get(name string) (provider.Provider, bool) {
	p, ok := c.byName[name]
	return p, ok
}

func (c *Contracts) Names() []string {
	return append([]string(nil), c.names...)
}
