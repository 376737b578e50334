package connexplugin

import (
	"context"

	"github.com/ethereum/go-ethereum/log"

	"github.com/dapplink-baas/connex-provider/connex"
	"github.com/dapplink-baas/connex-provider/provider"
)

// Signer forwards a prepared clause to the wallet vendor's signing service.
type Signer struct {
	svc     connex.TxSigningService
	Payload connex.Clause
}

var _ provider.Signer = (*Signer)(nil)

func NewSigner(svc connex.TxSigningService, payload connex.Clause) *Signer {
	return &Signer{svc: svc, Payload: payload}
}

func (s *Signer) RequestSigning(ctx context.Context) (*provider.SigningResult, error) {
	resp, err := s.svc.Request(ctx, []connex.TxMessageItem{{Clause: s.Payload}})
	if err != nil {
		log.Error("signing request fail", "err", err)
		return nil, err
	}
	if resp == nil {
		return &provider.SigningResult{}, nil
	}
	log.Info("signing request success", "txid", resp.TxID, "signer", resp.Signer)
	return &provider.SigningResult{TxID: resp.TxID, Signer: resp.Signer}, nil
}
