package repository

import (
	"context"
	"encoding/json"

	"billing_gateway/internal/domain/entities"
	"billing_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultSubscriptionsTableName = "subscriptions"

type subscriptionSnapshotItem struct {
	ID                string `dynamodbav:"id"`
	Status            string `dynamodbav:"status"`
	RawStatus         string `dynamodbav:"raw_status"`
	PlanID            string `dynamodbav:"plan_id"`
	ExternalReference string `dynamodbav:"external_reference"`
	PayerEmail        string `dynamodbav:"payer_email"`
	StartAt           string `dynamodbav:"start_at"`
	EndAt             string `dynamodbav:"end_at"`
	NextPaymentAt     string `dynamodbav:"next_payment_at"`
	RawPayload        string `dynamodbav:"raw_payload"`
}

// SubscriptionSnapshotDynamoRepository persists reconciled subscription
// snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Upsert is a single UpdateItem that rewrites every attribute, so a missing
// item is created and an existing one is replaced in place.

type SubscriptionSnapshotDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionSnapshotRepository = (*SubscriptionSnapshotDynamoRepository)(nil)

func NewSubscriptionSnapshotDynamoRepository(ddb *dynamodb.Client, tableName string) *SubscriptionSnapshotDynamoRepository {
	return newSubscriptionSnapshotRepository(ddb, tableName)
}

func newSubscriptionSnapshotRepository(ddb dynamoAPI, tableName string) *SubscriptionSnapshotDynamoRepository {
	if tableName == "" {
		tableName = DefaultSubscriptionsTableName
	}
	return &SubscriptionSnapshotDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SubscriptionSnapshotDynamoRepository) Upsert(ctx context.Context, s entities.SubscriptionSnapshot) (entities.SubscriptionSnapshot, error) {
	it := toSubscriptionSnapshotItem(s)

	expr := "SET #status = :status, #raw_status = :raw_status, #plan_id = :plan_id, " +
		"#external_reference = :external_reference, #payer_email = :payer_email, " +
		"#start_at = :start_at, #end_at = :end_at, #next_payment_at = :next_payment_at, " +
		"#raw_payload = :raw_payload"
	values := map[string]types.AttributeValue{
		":status":             &types.AttributeValueMemberS{Value: it.Status},
		":raw_status":         &types.AttributeValueMemberS{Value: it.RawStatus},
		":plan_id":            &types.AttributeValueMemberS{Value: it.PlanID},
		":external_reference": &types.AttributeValueMemberS{Value: it.ExternalReference},
		":payer_email":        &types.AttributeValueMemberS{Value: it.PayerEmail},
		":start_at":           &types.AttributeValueMemberS{Value: it.StartAt},
		":end_at":             &types.AttributeValueMemberS{Value: it.EndAt},
		":next_payment_at":    &types.AttributeValueMemberS{Value: it.NextPaymentAt},
		":raw_payload":        &types.AttributeValueMemberS{Value: it.RawPayload},
	}
	names := map[string]string{
		"#status":             "status",
		"#raw_status":         "raw_status",
		"#plan_id":            "plan_id",
		"#external_reference": "external_reference",
		"#payer_email":        "payer_email",
		"#start_at":           "start_at",
		"#end_at":             "end_at",
		"#next_payment_at":    "next_payment_at",
		"#raw_payload":        "raw_payload",
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: s.ID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
	})
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	return s, nil
}

func (r *SubscriptionSnapshotDynamoRepository) GetByID(ctx context.Context, id string) (entities.SubscriptionSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.SubscriptionSnapshot{}, nil
	}

	var it subscriptionSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SubscriptionSnapshot{}, err
	}
	return fromSubscriptionSnapshotItem(it), nil
}

func toSubscriptionSnapshotItem(s entities.SubscriptionSnapshot) subscriptionSnapshotItem {
	return subscriptionSnapshotItem{
		ID:                s.ID,
		Status:            string(s.Status),
		RawStatus:         s.RawStatus,
		PlanID:            s.PlanID,
		ExternalReference: s.ExternalReference,
		PayerEmail:        s.PayerEmail,
		StartAt:           formatTime(s.StartAt),
		EndAt:             formatOptionalTime(s.EndAt),
		NextPaymentAt:     formatOptionalTime(s.NextPaymentAt),
		RawPayload:        string(s.Raw),
	}
}

func fromSubscriptionSnapshotItem(it subscriptionSnapshotItem) entities.SubscriptionSnapshot {
	s := entities.SubscriptionSnapshot{
		ID:                it.ID,
		Status:            entities.SubscriptionStatus(it.Status),
		RawStatus:         it.RawStatus,
		PlanID:            it.PlanID,
		ExternalReference: it.ExternalReference,
		PayerEmail:        it.PayerEmail,
		StartAt:           parseTime(it.StartAt),
		EndAt:             parseOptionalTime(it.EndAt),
		NextPaymentAt:     parseOptionalTime(it.NextPaymentAt),
	}
	if it.RawPayload != "" {
		s.Raw = json.RawMessage(it.RawPayload)
	}
	return s
}
