package repository

import (
	"context"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestTypesTableName = "request_types"

type requestTypeItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Price     string `dynamodbav:"price"`
	CreatedAt string `dynamodbav:"created_at"`
}

// RequestTypeDynamoRepository persists the request type catalog.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so List scans.

type RequestTypeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestTypeRepository = (*RequestTypeDynamoRepository)(nil)

func NewRequestTypeDynamoRepository(ddb *dynamodb.Client) *RequestTypeDynamoRepository {
	return &RequestTypeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUEST_TYPES_TABLE", defaultRequestTypesTableName),
	}
}

func (r *RequestTypeDynamoRepository) Create(ctx context.Context, t entities.RequestType) (entities.RequestType, error) {
	av, err := attributevalue.MarshalMap(toRequestTypeItem(t))
	if err != nil {
		return entities.RequestType{}, err
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
		return entities.RequestType{}, err
	}
	return t, nil
}

func (r *RequestTypeDynamoRepository) GetByID(ctx context.Context, id string) (entities.RequestType, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.RequestType{}, err
	}
	if len(out.Item) == 0 {
		return entities.RequestType{}, nil
	}

	var it requestTypeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RequestType{}, err
	}
	return fromRequestTypeItem(it), nil
}

func (r *RequestTypeDynamoRepository) List(ctx context.Context) ([]entities.RequestType, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.RequestType, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it requestTypeItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRequestTypeItem(it))
		}
	}
	return items, nil
}

func toRequestTypeItem(t entities.RequestType) requestTypeItem {
	return requestTypeItem{
		ID:        t.ID,
		Name:      t.Name,
		Price:     t.Price.String(),
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func fromRequestTypeItem(it requestTypeItem) entities.RequestType {
	price := parsePrice(it.Price)
	return entities.RequestType{
		ID:        it.ID,
		Name:      it.Name,
		Price:     price,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
