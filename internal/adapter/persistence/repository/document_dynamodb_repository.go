package repository

import (
	"context"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultDocumentsTableName = "documents"

type documentItem struct {
	ID            string            `dynamodbav:"id"`
	RequestID     string            `dynamodbav:"request_id"`
	Title         string            `dynamodbav:"title"`
	Category      string            `dynamodbav:"category"`
	ReferenceDate string            `dynamodbav:"reference_date"`
	CompanyID     string            `dynamodbav:"company_id"`
	Chat          []chatMessageItem `dynamodbav:"chat"`
	Attachments   []attachmentItem  `dynamodbav:"attachments"`
	AuditLog      []auditEntryItem  `dynamodbav:"audit_log"`
	CreatedAt     string            `dynamodbav:"created_at"`
}

// DocumentDynamoRepository is the document store resolved requests emit into.
//
// Table requirements:
//   - PK: id (string)
//
// Document ids are deterministic per resolution, so Create overwrites on retry
// instead of duplicating.

type DocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDocumentStore = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, doc entities.Document) (string, error) {
	av, err := attributevalue.MarshalMap(documentItem{
		ID:            doc.ID,
		RequestID:     doc.RequestID,
		Title:         doc.Title,
		Category:      doc.Category,
		ReferenceDate: formatTime(doc.ReferenceDate),
		CompanyID:     doc.CompanyID,
		Chat:          toChatMessageItems(doc.Chat),
		Attachments:   toAttachmentItems(doc.Attachments),
		AuditLog:      toAuditEntryItems(doc.AuditLog),
		CreatedAt:     formatTime(doc.CreatedAt),
	})
	if err != nil {
		return "", err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}
