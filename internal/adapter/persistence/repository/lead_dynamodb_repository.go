package repository

import (
	"context"
	"fmt"

	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/domain/entities"
	"github.com/vladimirspecalp-hub/MS-PRO-Ecosystems/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultLeadsTableName = "leads"

type leadItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Phone       string `dynamodbav:"phone"`
	Email       string `dynamodbav:"email"`
	ServiceType string `dynamodbav:"service_type"`
	Message     string `dynamodbav:"message"`
	Source      string `dynamodbav:"source"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Listing uses a full Scan; the leads table of a marketing site stays small.

type LeadDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoDBAPI, tableName string) *LeadDynamoRepository {
	if tableName == "" {
		tableName = DefaultLeadsTableName
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, fmt.Errorf("put lead: %w", err)
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	var items []leadItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan leads: %w", err)
		}
		for _, raw := range page.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}

	sortByCreatedAt(items, func(it leadItem) (string, string) { return it.CreatedAt, it.ID })

	out := make([]entities.Lead, 0, len(items))
	for _, it := range items {
		l, err := fromLeadItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:          l.ID,
		Name:        l.Name,
		Phone:       l.Phone,
		Email:       l.Email,
		ServiceType: string(l.ServiceType),
		Message:     l.Message,
		Source:      l.Source,
		CreatedAt:   l.CreatedAt.UTC().Format(sortableTimeLayout),
	}
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	var createdAt sqlTime
	if err := createdAt.parse(it.CreatedAt); err != nil {
		return entities.Lead{}, fmt.Errorf("lead %s created_at: %w", it.ID, err)
	}
	return entities.Lead{
		ID:          it.ID,
		Name:        it.Name,
		Phone:       it.Phone,
		Email:       it.Email,
		ServiceType: entities.ServiceType(it.ServiceType),
		Message:     it.Message,
		Source:      it.Source,
		CreatedAt:   createdAt.Time,
	}, nil
}
