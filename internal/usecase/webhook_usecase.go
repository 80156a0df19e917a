package usecase

import (
	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/infrastructure/logging"
	"billing_gateway/pkg"
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrMissingWebhookSecret = errors.New("missing webhook secret")

type IWebhookReceiver interface {
	Authenticate(body []byte, signature string) (entities.WebhookNotification, error)
	Dispatch(ctx context.Context, n entities.WebhookNotification) (entities.WebhookOutcome, error)
	Process(ctx context.Context, body []byte, signature string) (entities.WebhookOutcome, error)
}

// WebhookReceiver authenticates provider notifications and hands them to the
// status reconciler.
//
// A delivery moves from unverified to verified once its HMAC-SHA256 signature
// matches; it then ends either processed or rejected. Nothing is parsed before
// the signature has been checked.
type WebhookReceiver struct {
	secret     []byte
	reconciler IStatusReconciler
	logger     logrus.FieldLogger
}

var _ IWebhookReceiver = (*WebhookReceiver)(nil)

func NewWebhookReceiver(secret string, reconciler IStatusReconciler) (*WebhookReceiver, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingWebhookSecret
	}
	return &WebhookReceiver{
		secret:     []byte(secret),
		reconciler: reconciler,
		logger:     logging.NewModuleLogger("webhook-receiver"),
	}, nil
}

// SignWebhookPayload returns the hex HMAC-SHA256 of body under secret.
func SignWebhookPayload(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Authenticate verifies the signature and parses the envelope.
func (w *WebhookReceiver) Authenticate(body []byte, signature string) (entities.WebhookNotification, error) {
	if !w.validSignature(body, signature) {
		w.logger.WithField("body_len", len(body)).Warn("webhook rejected: bad signature")
		return entities.WebhookNotification{}, pkg.ErrSignature
	}

	n, err := parseNotification(body)
	if err != nil {
		w.logger.WithError(err).Warn("webhook rejected: malformed envelope")
		return entities.WebhookNotification{}, err
	}
	return n, nil
}

// Dispatch reconciles the resource a verified notification points at.
func (w *WebhookReceiver) Dispatch(ctx context.Context, n entities.WebhookNotification) (entities.WebhookOutcome, error) {
	outcome := entities.WebhookOutcome{State: entities.WebhookStateVerified, Notification: n}
	log := w.logger.WithFields(logrus.Fields{"topic": n.RawTopic, "resource_id": n.ResourceID})

	switch n.Topic {
	case entities.TopicPayment:
		snap, err := w.reconciler.ReconcilePayment(ctx, n.ResourceID)
		if err != nil {
			log.WithError(err).Warn("webhook rejected: payment reconciliation failed")
			outcome.State = entities.WebhookStateRejected
			return outcome, err
		}
		outcome.Payment = &snap
	case entities.TopicSubscription:
		snap, err := w.reconciler.ReconcileSubscription(ctx, n.ResourceID)
		if err != nil {
			log.WithError(err).Warn("webhook rejected: subscription reconciliation failed")
			outcome.State = entities.WebhookStateRejected
			return outcome, err
		}
		outcome.Subscription = &snap
	default:
		log.Warn("webhook rejected: unsupported topic")
		outcome.State = entities.WebhookStateRejected
		return outcome, fmt.Errorf("%w: %q", pkg.ErrUnsupportedTopic, n.RawTopic)
	}

	outcome.State = entities.WebhookStateProcessed
	log.Info("webhook processed")
	return outcome, nil
}

// Process runs Authenticate then Dispatch.
func (w *WebhookReceiver) Process(ctx context.Context, body []byte, signature string) (entities.WebhookOutcome, error) {
	n, err := w.Authenticate(body, signature)
	if err != nil {
		return entities.WebhookOutcome{State: entities.WebhookStateRejected}, err
	}
	return w.Dispatch(ctx, n)
}

// validSignature accepts "<hex>", "sha256=<hex>" and "ts=<n>,v1=<hex>".
func (w *WebhookReceiver) validSignature(body []byte, header string) bool {
	provided := signatureDigest(header)
	if provided == "" {
		return false
	}
	got, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, w.secret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

func signatureDigest(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.Contains(header, "v1=") {
		for _, part := range strings.Split(header, ",") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "v1=") {
				return strings.TrimSpace(strings.TrimPrefix(part, "v1="))
			}
		}
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "sha256="))
}

type notificationEnvelope struct {
	Topic string          `json:"topic"`
	Type  string          `json:"type"`
	ID    json.RawMessage `json:"id"`
	Data  struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
}

// parseNotification accepts {topic, id} and {type, data: {id}}. When both ids
// are present data.id wins, since the top-level id then names the delivery.
func parseNotification(body []byte) (entities.WebhookNotification, error) {
	var env notificationEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return entities.WebhookNotification{}, fmt.Errorf("%w: %v", pkg.ErrMalformedNotification, err)
	}

	rawTopic := strings.TrimSpace(env.Topic)
	if rawTopic == "" {
		rawTopic = strings.TrimSpace(env.Type)
	}
	id := rawIdentifier(env.Data.ID)
	if id == "" {
		id = rawIdentifier(env.ID)
	}

	switch {
	case rawTopic == "" && id == "":
		return entities.WebhookNotification{}, fmt.Errorf("%w: missing topic and id", pkg.ErrMalformedNotification)
	case rawTopic == "":
		return entities.WebhookNotification{}, fmt.Errorf("%w: missing topic", pkg.ErrMalformedNotification)
	case id == "":
		return entities.WebhookNotification{}, fmt.Errorf("%w: missing id", pkg.ErrMalformedNotification)
	}

	return entities.WebhookNotification{
		Topic:      entities.ParseTopic(rawTopic),
		RawTopic:   rawTopic,
		ResourceID: id,
	}, nil
}

// rawIdentifier reads an id that may be sent as a JSON string or number.
func rawIdentifier(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
