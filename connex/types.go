package connex

// Indexed maps indexed event argument names to the values to match.
type Indexed map[string]interface{}

// Criteria is a single AND-group of topic constraints, keyed topic0..topic4.
type Criteria map[string]string

type RangeUnit string

const (
	RangeBlock RangeUnit = "block"
	RangeTime  RangeUnit = "time"
)

type Range struct {
	Unit RangeUnit `json:"unit"`
	From uint64    `json:"from"`
	To   uint64    `json:"to"`
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Clause struct {
	To    *string `json:"to"`
	Value string  `json:"value"`
	Data  string  `json:"data"`
}

type TxMessageItem struct {
	Clause
	Comment string `json:"comment,omitempty"`
}

type TxResponse struct {
	TxID   string `json:"txid"`
	Signer string `json:"signer"`
}

type LogMeta struct {
	BlockID        string `json:"blockID"`
	BlockNumber    uint32 `json:"blockNumber"`
	BlockTimestamp uint64 `json:"blockTimestamp"`
	TxID           string `json:"txID"`
	TxOrigin       string `json:"txOrigin"`
	ClauseIndex    uint32 `json:"clauseIndex"`
}

type Event struct {
	Address string                 `json:"address"`
	Topics  []string               `json:"topics"`
	Data    string                 `json:"data"`
	Meta    *LogMeta               `json:"meta,omitempty"`
	Decoded map[string]interface{} `json:"decoded,omitempty"`
}

type VMOutput struct {
	Data     string                 `json:"data"`
	VMError  string                 `json:"vmError"`
	GasUsed  uint64                 `json:"gasUsed"`
	Reverted bool                   `json:"reverted"`
	Events   []Event                `json:"events"`
	Decoded  map[string]interface{} `json:"decoded,omitempty"`
}
