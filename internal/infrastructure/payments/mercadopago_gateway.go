package payments

import (
	"billing_gateway/config"
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/internal/usecase/interfaces"
	"billing_gateway/pkg"
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	headerIdempotencyKey = "X-Idempotency-Key"
	maxResponseBytes     = 4 << 20
)

// MercadoPagoGateway executes calls against the Mercado Pago REST API.
//
// Every call carries the bearer token and a JSON content type; POST and PUT
// also carry an idempotency key. TLS certificates are always verified.
type MercadoPagoGateway struct {
	baseURL     string
	accessToken string
	client      *http.Client
	logger      logrus.FieldLogger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = config.DefaultMercadoPagoBaseURL
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = config.MercadoPagoHTTPTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}

	return &MercadoPagoGateway{
		baseURL:     baseURL,
		accessToken: cfg.AccessToken,
		client:      &http.Client{Timeout: timeout, Transport: transport},
		logger:      logging.NewModuleLogger("payment-gateway"),
	}, nil
}

func (g *MercadoPagoGateway) Execute(ctx context.Context, call entities.GatewayCall) entities.GatewayResult {
	start := time.Now()
	result := entities.GatewayResult{}

	var body io.Reader
	if call.Mutating() {
		if call.IdempotencyKey == "" {
			call.IdempotencyKey = entities.NewIdempotencyToken()
		}
		result.IdempotencyKey = call.IdempotencyKey
		if call.Body != nil {
			b, err := json.Marshal(call.Body)
			if err != nil {
				result.Err = pkg.NewValidationError("body", "cannot be encoded: "+err.Error())
				return result
			}
			body = bytes.NewReader(b)
		}
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, g.baseURL+call.Path, body)
	if err != nil {
		result.Err = pkg.NewValidationError("request", err.Error())
		return result
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if call.Mutating() {
		req.Header.Set(headerIdempotencyKey, call.IdempotencyKey)
	}

	log := g.logger.WithFields(logrus.Fields{"method": call.Method, "path": call.Path})

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).WithField("latency", time.Since(start).String()).Warn("provider call failed")
		result.Err = &pkg.NetworkError{Err: err}
		return result
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		// The status line arrived but the exchange did not complete, so the
		// result carries no HTTP status.
		log.WithError(err).WithField("status", resp.StatusCode).Warn("provider body read failed")
		result.Err = &pkg.NetworkError{Err: err}
		return result
	}

	result.HTTPStatus = resp.StatusCode
	log = log.WithFields(logrus.Fields{"status": resp.StatusCode, "latency": time.Since(start).String()})

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		result.Success = true
		if len(bytes.TrimSpace(raw)) > 0 {
			result.Data = json.RawMessage(raw)
		}
		log.Debug("provider call succeeded")
		return result
	}

	httpErr := &pkg.HTTPError{Status: resp.StatusCode, Message: providerErrorMessage(raw)}
	if json.Valid(raw) {
		httpErr.Body = json.RawMessage(raw)
		result.Data = httpErr.Body
	}
	result.Err = httpErr
	log.WithField("provider_message", httpErr.Message).Info("provider call rejected")
	return result
}

// providerErrorMessage pulls the human readable part of a provider error body.
func providerErrorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}
