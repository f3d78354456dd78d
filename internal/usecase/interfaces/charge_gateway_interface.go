package interfaces

import (
	"context"
	"encoding/json"
)

// IChargeGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The lab uses it to register a charge against the clinic when a service
// order is settled; the provider response payload is kept for traceability.
type IChargeGateway interface {
	CreateCharge(ctx context.Context, referenceID, description string, amount float64) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error)
}
