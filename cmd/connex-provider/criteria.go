package main

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/dapplink-baas/connex-provider/topic"
)

// parseCriteria reads "<op> <slot> <value>" triples, where op is topic, and
// or or, and replays them on a topic builder.
func parseCriteria(args []string) (*topic.Builder, error) {
	if len(args) == 0 || len(args)%3 != 0 {
		return nil, errors.New("criteria must be given as <op> <slot> <value> triples")
	}
	b := topic.New()
	for i := 0; i < len(args); i += 3 {
		op, value := args[i], args[i+2]
		slot, err := strconv.Atoi(args[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "slot %q", args[i+1])
		}
		switch op {
		case "topic":
			b.Topic(slot, value)
		case "and":
			b.And(slot, value)
		case "or":
			b.Or(slot, value)
		default:
			return nil, errors.Errorf("unknown operator %q", op)
		}
	}
	return b, nil
}
