package contract

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

var ErrAddressNotFound = errors.New("no contract address for chain tag")

// Import is a contract's interface definitions together with its deployed
// address on each chain, keyed by chain tag.
type Import struct {
	Table   *Table
	Address map[string]string
}

type importFile struct {
	ABI     json.RawMessage   `json:"abi"`
	Address map[string]string `json:"address"`
}

// ParseImport reads a descriptor of the form {"abi": [...], "address": {"0x4a": "0x..."}}.
func ParseImport(data []byte) (*Import, error) {
	var f importFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse import")
	}
	if len(f.ABI) == 0 {
		return nil, errors.New("import has no abi")
	}
	table, err := NewTable(f.ABI)
	if err != nil {
		return nil, err
	}
	imp := &Import{
		Table:   table,
		Address: make(map[string]string, len(f.Address)),
	}
	for tag, addr := range f.Address {
		if !common.IsHexAddress(addr) {
			return nil, errors.Errorf("invalid address %q for chain tag %s", addr, tag)
		}
		imp.Address[NormalizeChainTag(tag)] = strings.ToLower(addr)
	}
	return imp, nil
}

func LoadImport(path string) (*Import, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("read import fail", "path", path, "err", err)
		return nil, errors.Wrapf(err, "read import %s", path)
	}
	imp, err := ParseImport(data)
	if err != nil {
		return nil, errors.Wrapf(err, "import %s", path)
	}
	log.Debug("loaded contract import", "path", path, "definitions", len(imp.Table.Names()), "chains", len(imp.Address))
	return imp, nil
}

func (i *Import) AddressOf(chainTag string) (string, error) {
	addr, ok := i.Address[NormalizeChainTag(chainTag)]
	if !ok {
		return "", errors.Wrapf(ErrAddressNotFound, "chain tag %s", chainTag)
	}
	return addr, nil
}

// NormalizeChainTag lower-cases a chain tag such as "0x4A".
func NormalizeChainTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
