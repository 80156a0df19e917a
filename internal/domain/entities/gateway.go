package entities

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// GatewayCall is one outbound request to the payment provider.
//
// IdempotencyKey is sent on mutating calls. Reusing the key for a retry of the
// same caller intent lets the provider deduplicate; an empty key gets a fresh one.
type GatewayCall struct {
	Method         string
	Path           string
	Body           any
	IdempotencyKey string
}

// Mutating reports whether the call carries a body and an idempotency key.
func (c GatewayCall) Mutating() bool {
	return c.Method == http.MethodPost || c.Method == http.MethodPut
}

// GatewayResult is the classified outcome of a GatewayCall. It is always a
// value; Err is one of the pkg gateway error kinds when Success is false.
// HTTPStatus is zero on transport failures.
type GatewayResult struct {
	Success        bool
	Data           json.RawMessage
	HTTPStatus     int
	Err            error
	IdempotencyKey string
}

// Decode unmarshals the response body into v.
func (r GatewayResult) Decode(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	return json.Unmarshal(r.Data, v)
}

func NewIdempotencyToken() string {
	return uuid.NewString()
}
