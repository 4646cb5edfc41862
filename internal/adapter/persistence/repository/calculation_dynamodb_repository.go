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

const DefaultCalculationsTableName = "calculations"

type calculationItem struct {
	ID           string   `dynamodbav:"id"`
	ServiceType  string   `dynamodbav:"service_type"`
	CoatingType  string   `dynamodbav:"coating_type"`
	Height       float64  `dynamodbav:"height"`
	Diameter     *float64 `dynamodbav:"diameter,omitempty"`
	SurfaceArea  float64  `dynamodbav:"surface_area"`
	BasePrice    float64  `dynamodbav:"base_price"`
	MaterialCost float64  `dynamodbav:"material_cost"`
	LaborCost    float64  `dynamodbav:"labor_cost"`
	TotalCost    float64  `dynamodbav:"total_cost"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// CalculationDynamoRepository persists Calculation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CalculationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICalculationRepository = (*CalculationDynamoRepository)(nil)

func NewCalculationDynamoRepository(ddb DynamoDBAPI, tableName string) *CalculationDynamoRepository {
	if tableName == "" {
		tableName = DefaultCalculationsTableName
	}
	return &CalculationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CalculationDynamoRepository) Create(ctx context.Context, c entities.Calculation) (entities.Calculation, error) {
	av, err := attributevalue.MarshalMap(toCalculationItem(c))
	if err != nil {
		return entities.Calculation{}, err
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
		return entities.Calculation{}, fmt.Errorf("put calculation: %w", err)
	}
	return c, nil
}

func (r *CalculationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Calculation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Calculation{}, fmt.Errorf("get calculation: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.Calculation{}, nil
	}

	var it calculationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Calculation{}, err
	}
	return fromCalculationItem(it)
}

func toCalculationItem(c entities.Calculation) calculationItem {
	return calculationItem{
		ID:           c.ID,
		ServiceType:  string(c.ServiceType),
		CoatingType:  string(c.CoatingType),
		Height:       c.Height,
		Diameter:     c.Diameter,
		SurfaceArea:  c.SurfaceArea,
		BasePrice:    c.BasePrice,
		MaterialCost: c.MaterialCost,
		LaborCost:    c.LaborCost,
		TotalCost:    c.TotalCost,
		CreatedAt:    c.CreatedAt.UTC().Format(sortableTimeLayout),
	}
}

func fromCalculationItem(it calculationItem) (entities.Calculation, error) {
	var createdAt sqlTime
	if err := createdAt.parse(it.CreatedAt); err != nil {
		return entities.Calculation{}, fmt.Errorf("calculation %s created_at: %w", it.ID, err)
	}
	return entities.Calculation{
		ID: it.ID,
		ProjectInput: entities.ProjectInput{
			ServiceType: entities.ServiceType(it.ServiceType),
			Height:      it.Height,
			Diameter:    it.Diameter,
			SurfaceArea: it.SurfaceArea,
			CoatingType: entities.CoatingType(it.CoatingType),
		},
		BasePrice:    it.BasePrice,
		MaterialCost: it.MaterialCost,
		LaborCost:    it.LaborCost,
		TotalCost:    it.TotalCost,
		CreatedAt:    createdAt.Time,
	}, nil
}
