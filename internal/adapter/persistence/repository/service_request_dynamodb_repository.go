package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultServiceRequestsTableName = "service_requests"
	defaultCountersTableName        = "counters"
	requestsCompanyIDIndex          = "company_id-index"
	requestsClientIDIndex           = "client_id-index"
	requestsTxIDIndex               = "txid-index"
)

type attachmentItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	URL        string `dynamodbav:"url"`
	UploadedBy string `dynamodbav:"uploaded_by"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type chatMessageItem struct {
	ID        string `dynamodbav:"id"`
	Sender    string `dynamodbav:"sender"`
	Role      string `dynamodbav:"role"`
	Text      string `dynamodbav:"text"`
	Timestamp string `dynamodbav:"timestamp"`
}

type auditEntryItem struct {
	ID        string `dynamodbav:"id"`
	Action    string `dynamodbav:"action"`
	Actor     string `dynamodbav:"actor"`
	Detail    string `dynamodbav:"detail,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

type serviceRequestItem struct {
	ID              string            `dynamodbav:"id"`
	Protocol        string            `dynamodbav:"protocol"`
	Title           string            `dynamodbav:"title"`
	Description     string            `dynamodbav:"description"`
	TypeID          string            `dynamodbav:"type_id"`
	Price           string            `dynamodbav:"price"`
	Status          string            `dynamodbav:"status"`
	PaymentStatus   string            `dynamodbav:"payment_status"`
	ClientID        string            `dynamodbav:"client_id"`
	CompanyID       string            `dynamodbav:"company_id"`
	CreatedAt       string            `dynamodbav:"created_at"`
	UpdatedAt       string            `dynamodbav:"updated_at"`
	DeletedAt       string            `dynamodbav:"deleted_at,omitempty"`
	DeletedBy       string            `dynamodbav:"deleted_by,omitempty"`
	TxID            string            `dynamodbav:"txid,omitempty"`
	PayloadCode     string            `dynamodbav:"payload_code,omitempty"`
	PixExpiresAt    string            `dynamodbav:"pix_expires_at,omitempty"`
	Attachments     []attachmentItem  `dynamodbav:"attachments"`
	Chat            []chatMessageItem `dynamodbav:"chat"`
	AuditLog        []auditEntryItem  `dynamodbav:"audit_log"`
	DocumentID      string            `dynamodbav:"document_id,omitempty"`
	DocumentPending bool              `dynamodbav:"document_pending"`
	Version         int64             `dynamodbav:"version"`
}

// ServiceRequestDynamoRepository persists the ServiceRequest aggregate in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: company_id-index (PK: company_id)
//   - GSI: client_id-index (PK: client_id)
//   - GSI: txid-index (PK: txid), sparse
//
// Protocol numbers come from the counters table (PK: name) through an atomic
// ADD, one row per year.

type ServiceRequestDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	if sr.Version == 0 {
		sr.Version = 1
	}
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// GetByTxID resolves the request currently holding txid. The index is
// eventually consistent, so the hit is re-read by primary key.
func (r *ServiceRequestDynamoRepository) GetByTxID(ctx context.Context, txid string) (entities.ServiceRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsTxIDIndex),
		KeyConditionExpression: aws.String("txid = :txid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":txid": &types.AttributeValueMemberS{Value: txid},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Items) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	sr, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.Pix == nil || sr.Pix.TxID != txid {
		return entities.ServiceRequest{}, nil
	}
	return sr, nil
}

// Update replaces the whole item, conditioned on the stored version, so a
// state change and its audit entry land together or not at all.
func (r *ServiceRequestDynamoRepository) Update(ctx context.Context, sr entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error) {
	sr.Version = expectedVersion + 1
	av, err := attributevalue.MarshalMap(toServiceRequestItem(sr))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, interfaces.ErrStaleVersion
		}
		return entities.ServiceRequest{}, err
	}
	return sr, nil
}

func (r *ServiceRequestDynamoRepository) List(ctx context.Context, q interfaces.ListQuery) ([]entities.ServiceRequest, error) {
	index, key, value := requestsCompanyIDIndex, "company_id", q.CompanyID
	if q.ClientID != "" {
		index, key, value = requestsClientIDIndex, "client_id", q.ClientID
	}
	if value == "" {
		return nil, errors.New("list requires company_id or client_id")
	}

	filter := "attribute_not_exists(#deleted_at)"
	if q.Deleted {
		filter = "attribute_exists(#deleted_at)"
	}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#pk = :pk"),
		FilterExpression:       aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#pk":         key,
			"#deleted_at": "deleted_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: value},
		},
	})

	items := make([]entities.ServiceRequest, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceRequestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sr := fromServiceRequestItem(it)
			if q.Matches(sr) {
				items = append(items, sr)
			}
		}
	}
	return items, nil
}

func (r *ServiceRequestDynamoRepository) NextProtocolSequence(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: fmt.Sprintf("protocol#%d", year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	var counter struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

func toServiceRequestItem(sr entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:              sr.ID,
		Protocol:        sr.Protocol,
		Title:           sr.Title,
		Description:     sr.Description,
		TypeID:          sr.TypeID,
		Price:           sr.Price.String(),
		Status:          string(sr.Status),
		PaymentStatus:   string(sr.PaymentStatus),
		ClientID:        sr.ClientID,
		CompanyID:       sr.CompanyID,
		CreatedAt:       formatTime(sr.CreatedAt),
		UpdatedAt:       formatTime(sr.UpdatedAt),
		DeletedBy:       sr.DeletedBy,
		Attachments:     toAttachmentItems(sr.Attachments),
		Chat:            toChatMessageItems(sr.Chat),
		AuditLog:        toAuditEntryItems(sr.AuditLog),
		DocumentID:      sr.DocumentID,
		DocumentPending: sr.DocumentPending,
		Version:         sr.Version,
	}
	if sr.DeletedAt != nil {
		it.DeletedAt = formatTime(*sr.DeletedAt)
	}
	if sr.Pix != nil {
		it.TxID = sr.Pix.TxID
		it.PayloadCode = sr.Pix.PayloadCode
		it.PixExpiresAt = formatTime(sr.Pix.ExpiresAt)
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	price := parsePrice(it.Price)
	sr := entities.ServiceRequest{
		ID:              it.ID,
		Protocol:        it.Protocol,
		Title:           it.Title,
		Description:     it.Description,
		TypeID:          it.TypeID,
		Price:           price,
		Status:          entities.RequestStatus(it.Status),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		ClientID:        it.ClientID,
		CompanyID:       it.CompanyID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		DeletedBy:       it.DeletedBy,
		Attachments:     fromAttachmentItems(it.Attachments),
		Chat:            fromChatMessageItems(it.Chat),
		AuditLog:        fromAuditEntryItems(it.AuditLog),
		DocumentID:      it.DocumentID,
		DocumentPending: it.DocumentPending,
		Version:         it.Version,
	}
	if it.DeletedAt != "" {
		d := parseTime(it.DeletedAt)
		sr.DeletedAt = &d
	}
	if it.TxID != "" {
		sr.Pix = &entities.PixCharge{
			TxID:        it.TxID,
			PayloadCode: it.PayloadCode,
			ExpiresAt:   parseTime(it.PixExpiresAt),
		}
	}
	return sr
}

func toAttachmentItems(in []entities.Attachment) []attachmentItem {
	out := make([]attachmentItem, 0, len(in))
	for _, a := range in {
		out = append(out, attachmentItem{ID: a.ID, Name: a.Name, URL: a.URL, UploadedBy: a.UploadedBy, CreatedAt: formatTime(a.CreatedAt)})
	}
	return out
}

func fromAttachmentItems(in []attachmentItem) []entities.Attachment {
	out := make([]entities.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, entities.Attachment{ID: a.ID, Name: a.Name, URL: a.URL, UploadedBy: a.UploadedBy, CreatedAt: parseTime(a.CreatedAt)})
	}
	return out
}

func toChatMessageItems(in []entities.ChatMessage) []chatMessageItem {
	out := make([]chatMessageItem, 0, len(in))
	for _, m := range in {
		out = append(out, chatMessageItem{ID: m.ID, Sender: m.Sender, Role: string(m.Role), Text: m.Text, Timestamp: formatTime(m.Timestamp)})
	}
	return out
}

func fromChatMessageItems(in []chatMessageItem) []entities.ChatMessage {
	out := make([]entities.ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, entities.ChatMessage{ID: m.ID, Sender: m.Sender, Role: entities.Role(m.Role), Text: m.Text, Timestamp: parseTime(m.Timestamp)})
	}
	return out
}

func toAuditEntryItems(in []entities.AuditEntry) []auditEntryItem {
	out := make([]auditEntryItem, 0, len(in))
	for _, e := range in {
		out = append(out, auditEntryItem{ID: e.ID, Action: e.Action, Actor: e.Actor, Detail: e.Detail, Timestamp: formatTime(e.Timestamp)})
	}
	return out
}

func fromAuditEntryItems(in []auditEntryItem) []entities.AuditEntry {
	out := make([]entities.AuditEntry, 0, len(in))
	for _, e := range in {
		out = append(out, entities.AuditEntry{ID: e.ID, Action: e.Action, Actor: e.Actor, Detail: e.Detail, Timestamp: parseTime(e.Timestamp)})
	}
	return out
}
