package payments

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// IsRetryableResult reports whether the same call may succeed later: transport
// failures, provider throttling and provider 5xx.
func IsRetryableResult(result entities.GatewayResult) bool {
	if result.Success || result.Err == nil {
		return false
	}
	if errors.Is(result.Err, pkg.ErrNetwork) {
		return true
	}
	var httpErr *pkg.HTTPError
	if errors.As(result.Err, &httpErr) {
		return httpErr.Retryable()
	}
	return false
}

// RetryingGateway retries retryable results with linear backoff. The
// idempotency key is fixed before the first attempt so every retry of a
// mutating call is the same logical request for the provider.
//
// budget bounds the whole attempt loop, backoff included; zero leaves it to
// the caller's context.
type RetryingGateway struct {
	next        interfaces.IPaymentGateway
	maxAttempts int
	backoff     time.Duration
	budget      time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      logrus.FieldLogger
}

var _ interfaces.IPaymentGateway = (*RetryingGateway)(nil)

func NewRetryingGateway(next interfaces.IPaymentGateway, maxAttempts int, backoff, budget time.Duration) *RetryingGateway {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryingGateway{
		next:        next,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		budget:      budget,
		sleep:       sleepContext,
		logger:      logging.NewModuleLogger("payment-gateway-retry"),
	}
}

func (g *RetryingGateway) Execute(ctx context.Context, call entities.GatewayCall) entities.GatewayResult {
	if call.Mutating() && call.IdempotencyKey == "" {
		call.IdempotencyKey = entities.NewIdempotencyToken()
	}
	if g.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.budget)
		defer cancel()
	}

	var result entities.GatewayResult
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		result = g.next.Execute(ctx, call)
		if !IsRetryableResult(result) || attempt == g.maxAttempts {
			return result
		}

		g.logger.WithFields(logrus.Fields{
			"method":      call.Method,
			"path":        call.Path,
			"attempt":     attempt,
			"http_status": result.HTTPStatus,
		}).WithError(result.Err).Warn("retrying provider call")

		if err := g.sleep(ctx, g.backoff*time.Duration(attempt)); err != nil {
			return result
		}
	}
	return result
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
