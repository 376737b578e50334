package connexplugin

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapplink-baas/connex-provider/connex"
	"github.com/dapplink-baas/connex-provider/connex/connextest"
)

func TestSignerForwardsPayload(t *testing.T) {
	fake := &connextest.Fake{TxResponse: &connex.TxResponse{TxID: "0x01", Signer: "0x02"}}
	svc := fake.Vendor().SignTx()
	payload := connex.Clause{Value: "0x0", Data: "0xdeadbeef"}

	s := NewSigner(svc, payload)
	res, err := s.RequestSigning(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "0x01", res.TxID)
	assert.Equal(t, "0x02", res.Signer)
	assert.Equal(t, [][]connex.TxMessageItem{{{Clause: payload}}}, fake.LastSigningService().Requests)
}

func TestSignerPropagatesErrors(t *testing.T) {
	rejected := errors.New("user rejected")
	fake := &connextest.Fake{SignErr: rejected}

	s := NewSigner(fake.Vendor().SignTx(), connex.Clause{})
	_, err := s.RequestSigning(context.Background())
	assert.Equal(t, rejected, err)
}
