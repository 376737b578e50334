package topic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderScenario(t *testing.T) {
	seq := New().
		Topic(0, "0xc").
		And(1, "0xb").
		Or(2, "0xa").
		Get()

	assert.Equal(t, []Criteria{
		{"topic0": "0xc", "topic1": "0xb"},
		{"topic2": "0xa"},
	}, seq)
}

func TestBuilderGrouping(t *testing.T) {
	seq := New().
		Topic(0, "0x01").
		Or(1, "0x02").And(2, "0x03").
		Or(0, "0x04").
		Or(3, "0x05").And(4, "0x06").And(0, "0x07").
		Get()

	require.Len(t, seq, 4)
	assert.Equal(t, Criteria{"topic0": "0x01"}, seq[0])
	assert.Equal(t, Criteria{"topic1": "0x02", "topic2": "0x03"}, seq[1])
	assert.Equal(t, Criteria{"topic0": "0x04"}, seq[2])
	assert.Equal(t, Criteria{"topic3": "0x05", "topic4": "0x06", "topic0": "0x07"}, seq[3])
}

func TestBuilderLastWriteWins(t *testing.T) {
	seq := New().Topic(1, "0xv1").And(1, "0xv2").Get()
	assert.Equal(t, []Criteria{{"topic1": "0xv2"}}, seq)

	seq = New().Topic(0, "0xa").Or(0, "0xb").And(0, "0xc").Get()
	assert.Equal(t, []Criteria{{"topic0": "0xa"}, {"topic0": "0xc"}}, seq)
}

func TestBuilderOrFirst(t *testing.T) {
	seq := New().Or(2, "0xa").And(0, "0xb").Get()
	assert.Equal(t, []Criteria{{"topic2": "0xa", "topic0": "0xb"}}, seq)
}

func TestBuilderNoDedup(t *testing.T) {
	seq := New().Topic(0, "0xa").Or(0, "0xa").Get()
	assert.Len(t, seq, 2)
}

func TestBuilderEmpty(t *testing.T) {
	seq := New().Get()
	assert.NotNil(t, seq)
	assert.Empty(t, seq)
}

func TestBuilderPermissiveSlots(t *testing.T) {
	seq := New().Topic(MaxSlots+3, "0xa").And(-1, "0xb").Get()
	assert.Equal(t, []Criteria{{"topic8": "0xa", "topic-1": "0xb"}}, seq)
}

func TestGetReturnsCopies(t *testing.T) {
	b := New().Topic(0, "0xa")
	seq := b.Get()
	seq[0]["topic0"] = "0xmutated"

	assert.Equal(t, []Criteria{{"topic0": "0xa"}}, b.Get())
}

func TestCriteriaJSON(t *testing.T) {
	b, err := json.Marshal(New().Topic(0, "0xc").And(1, "0xb").Or(2, "0xa").Get())
	require.NoError(t, err)
	assert.JSONEq(t, `[{"topic0":"0xc","topic1":"0xb"},{"topic2":"0xa"}]`, string(b))
}
