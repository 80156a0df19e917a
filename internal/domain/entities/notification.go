package entities

// Topic is the kind of resource a webhook notification refers to.
type Topic string

const (
	TopicPayment      Topic = "payment"
	TopicSubscription Topic = "subscription"
	TopicUnsupported  Topic = "unsupported"
)

// ParseTopic folds the provider topic vocabulary onto Topic.
func ParseTopic(raw string) Topic {
	switch raw {
	case "payment":
		return TopicPayment
	case "subscription", "preapproval", "subscription_preapproval":
		return TopicSubscription
	default:
		return TopicUnsupported
	}
}

// WebhookNotification is the minimal envelope of an authenticated notification.
type WebhookNotification struct {
	Topic      Topic  `json:"topic"`
	RawTopic   string `json:"raw_topic"`
	ResourceID string `json:"resource_id"`
}

// Key identifies the resource the notification refers to.
func (n WebhookNotification) Key() string {
	return string(n.Topic) + ":" + n.ResourceID
}

type WebhookState string

const (
	WebhookStateUnverified WebhookState = "unverified"
	WebhookStateVerified   WebhookState = "verified"
	WebhookStateProcessed  WebhookState = "processed"
	WebhookStateRejected   WebhookState = "rejected"
)

// WebhookOutcome is the terminal result of processing one delivery. Exactly one
// of Payment and Subscription is set when State is processed.
type WebhookOutcome struct {
	State        WebhookState          `json:"state"`
	Notification WebhookNotification   `json:"notification"`
	Payment      *PaymentSnapshot      `json:"payment,omitempty"`
	Subscription *SubscriptionSnapshot `json:"subscription,omitempty"`
}
