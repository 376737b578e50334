package connexplugin

import (
	"github.com/dapplink-baas/connex-provider/connex"
	"github.com/dapplink-baas/connex-provider/provider"
	"github.com/dapplink-baas/connex-provider/topic"
)

func callResult(out connex.VMOutput) provider.CallResult {
	return provider.CallResult{
		Data:     out.Data,
		Decoded:  out.Decoded,
		GasUsed:  out.GasUsed,
		Reverted: out.Reverted,
		VMError:  out.VMError,
	}
}

func events(raw []connex.Event) []provider.Event {
	out := make([]provider.Event, 0, len(raw))
	for _, e := range raw {
		ev := provider.Event{
			Address: e.Address,
			Topics:  e.Topics,
			Data:    e.Data,
			Decoded: e.Decoded,
		}
		if e.Meta != nil {
			ev.Meta = &provider.EventMeta{
				BlockID:        e.Meta.BlockID,
				BlockNumber:    e.Meta.BlockNumber,
				BlockTimestamp: e.Meta.BlockTimestamp,
				TxID:           e.Meta.TxID,
				TxOrigin:       e.Meta.TxOrigin,
				ClauseIndex:    e.Meta.ClauseIndex,
			}
		}
		out = append(out, ev)
	}
	return out
}

func indexed(clauses []map[string]interface{}) []connex.Indexed {
	out := make([]connex.Indexed, 0, len(clauses))
	for _, c := range clauses {
		out = append(out, connex.Indexed(c))
	}
	return out
}

func criteriaSet(groups []topic.Criteria) []connex.Criteria {
	out := make([]connex.Criteria, 0, len(groups))
	for _, g := range groups {
		out = append(out, connex.Criteria(g))
	}
	return out
}
