package main

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/dapplink-baas/connex-provider/config"
	"github.com/dapplink-baas/connex-provider/contract"
	"github.com/dapplink-baas/connex-provider/provider"
	"github.com/dapplink-baas/connex-provider/provider/connexplugin"
)

func runABI(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one import file")
	}
	imp, err := contract.LoadImport(ctx.Args().First())
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	for _, name := range imp.Table.Names() {
		def, err := imp.Table.Lookup(name)
		if err != nil {
			return err
		}
		switch def.Kind {
		case contract.KindMethod:
			fmt.Fprintf(out, "method %-24s %s %s\n", name, hexutil.Encode(def.Method.ID), def.Method.Sig)
		case contract.KindEvent:
			fmt.Fprintf(out, "event  %-24s %s %s\n", name, def.Event.ID.Hex(), def.Event.Sig)
		}
		if ctx.Bool(VerboseFlag.Name) {
			spew.Fdump(out, def)
		}
	}
	return nil
}

func runDescribe(ctx *cli.Context) error {
	conf, err := config.New(ctx.Path(ConfigFlag.Name))
	if err != nil {
		return err
	}
	out := ctx.App.Writer
	for _, c := range conf.Contracts {
		imp, err := contract.LoadImport(c.Import)
		if err != nil {
			return err
		}
		p := connexplugin.NewPlugin(imp)
		if err := p.SetInstanceOptions(provider.Instance{Options: conf.InstanceOptions()}); err != nil {
			return err
		}
		addr, err := imp.AddressOf(conf.ChainTag)
		if err != nil {
			log.Warn("contract not deployed on chain", "contract", c.Name, "chainTag", conf.ChainTag)
		}
		p.Address = addr
		fmt.Fprintf(out, "%s (%s)\n%s\n", c.Name, c.Provider, p.Describe())
	}
	return nil
}

func runCriteria(ctx *cli.Context) error {
	b, err := parseCriteria(ctx.Args().Slice())
	if err != nil {
		return err
	}
	data, err := json.Marshal(b.Get())
	if err != nil {
		return errors.Wrap(err, "marshal criteria")
	}
	fmt.Fprintln(ctx.App.Writer, string(data))
	return nil
}
