package payment

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

// RefundGateway issues refunds against the payment provider for an
// approved return.
type RefundGateway interface {
	Refund(orderRef string, amount float64, reason string) (string, error)
}

type midtransGateway struct {
	client coreapi.Client
}

func NewMidtransGateway(serverKey string, isProd bool) RefundGateway {
	env := midtrans.Sandbox
	if isProd {
		env = midtrans.Production
	}

	var client coreapi.Client
	client.New(serverKey, env)

	return &midtransGateway{client: client}
}

func (g *midtransGateway) Refund(orderRef string, amount float64, reason string) (string, error) {
	// Midtrans refund amounts are in whole currency units
	req := &coreapi.RefundReq{
		Amount: int64(amount),
		Reason: reason,
	}

	resp, midErr := g.client.RefundTransaction(orderRef, req)
	if midErr != nil {
		return "", fmt.Errorf("midtrans refund error: %v", midErr.GetMessage())
	}

	return resp.RefundKey, nil
}

// noopGateway satisfies RefundGateway when no provider is configured,
// e.g. local development without Midtrans credentials.
type noopGateway struct{}

func NewNoopGateway() RefundGateway {
	return noopGateway{}
}

func (noopGateway) Refund(orderRef string, amount float64, reason string) (string, error) {
	return "noop-" + orderRef, nil
}
