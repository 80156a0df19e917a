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

const (
	DefaultPaymentsTableName       = "payments"
	paymentsExternalReferenceIndex = "external_reference-index"
)

type paymentSnapshotItem struct {
	ID                string `dynamodbav:"id"`
	Status            string `dynamodbav:"status"`
	RawStatus         string `dynamodbav:"raw_status"`
	StatusDetail      string `dynamodbav:"status_detail,omitempty"`
	Amount            string `dynamodbav:"amount"`
	ExternalReference string `dynamodbav:"external_reference,omitempty"`
	PayerEmail        string `dynamodbav:"payer_email,omitempty"`
	Method            string `dynamodbav:"method,omitempty"`
	CreatedAt         string `dynamodbav:"created_at,omitempty"`
	ApprovedAt        string `dynamodbav:"approved_at,omitempty"`
	RawPayload        string `dynamodbav:"raw_payload,omitempty"`
}

// PaymentSnapshotDynamoRepository persists reconciled payment snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: external_reference-index (PK: external_reference)

type PaymentSnapshotDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentSnapshotRepository = (*PaymentSnapshotDynamoRepository)(nil)

func NewPaymentSnapshotDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentSnapshotDynamoRepository {
	return newPaymentSnapshotRepository(ddb, tableName)
}

func newPaymentSnapshotRepository(ddb dynamoAPI, tableName string) *PaymentSnapshotDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentSnapshotDynamoRepository{ddb: ddb, tableName: tableName}
}

// Upsert overwrites whatever is stored under the snapshot id.
func (r *PaymentSnapshotDynamoRepository) Upsert(ctx context.Context, p entities.PaymentSnapshot) (entities.PaymentSnapshot, error) {
	av, err := attributevalue.MarshalMap(toPaymentSnapshotItem(p))
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	return p, nil
}

func (r *PaymentSnapshotDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentSnapshot{}, nil
	}

	var it paymentSnapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentSnapshot{}, err
	}
	return fromPaymentSnapshotItem(it), nil
}

func (r *PaymentSnapshotDynamoRepository) ListByExternalReference(ctx context.Context, externalReference string) ([]entities.PaymentSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsExternalReferenceIndex),
		KeyConditionExpression: aws.String("external_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalReference},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentSnapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentSnapshotItem(it))
	}
	return items, nil
}

func toPaymentSnapshotItem(p entities.PaymentSnapshot) paymentSnapshotItem {
	return paymentSnapshotItem{
		ID:                p.ID,
		Status:            string(p.Status),
		RawStatus:         p.RawStatus,
		StatusDetail:      p.StatusDetail,
		Amount:            floatToString(p.Amount),
		ExternalReference: p.ExternalReference,
		PayerEmail:        p.PayerEmail,
		Method:            p.Method,
		CreatedAt:         formatTime(p.CreatedAt),
		ApprovedAt:        formatOptionalTime(p.ApprovedAt),
		RawPayload:        string(p.Raw),
	}
}

func fromPaymentSnapshotItem(it paymentSnapshotItem) entities.PaymentSnapshot {
	p := entities.PaymentSnapshot{
		ID:                it.ID,
		Status:            entities.PaymentStatus(it.Status),
		RawStatus:         it.RawStatus,
		StatusDetail:      it.StatusDetail,
		Amount:            stringToFloat(it.Amount),
		ExternalReference: it.ExternalReference,
		PayerEmail:        it.PayerEmail,
		Method:            it.Method,
		CreatedAt:         parseTime(it.CreatedAt),
		ApprovedAt:        parseOptionalTime(it.ApprovedAt),
	}
	if it.RawPayload != "" {
		p.Raw = json.RawMessage(it.RawPayload)
	}
	return p
}
