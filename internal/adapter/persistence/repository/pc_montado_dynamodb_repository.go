package repository

import (
	"context"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPCsMontadosTableName = "pcs_montados"

type pcMontadoItem struct {
	EmpresaID      string              `dynamodbav:"empresa_id"`
	ID             string              `dynamodbav:"id"`
	Name           string              `dynamodbav:"name"`
	Components     []componentLineItem `dynamodbav:"components"`
	CostPrice      string              `dynamodbav:"cost_price"`
	ProfitMargin   string              `dynamodbav:"profit_margin"`
	SuggestedPrice string              `dynamodbav:"suggested_price"`
	EstimatedPower int                 `dynamodbav:"estimated_power"`
	Status         string              `dynamodbav:"status"`
	Quantity       string              `dynamodbav:"quantity"`
	DataMontagem   string              `dynamodbav:"data_montagem"`
}

// PCMontadoDynamoRepository persists assembled PCs in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)

type PCMontadoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPCMontadoRepository = (*PCMontadoDynamoRepository)(nil)

func NewPCMontadoDynamoRepository(ddb *dynamodb.Client) *PCMontadoDynamoRepository {
	return &PCMontadoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PCS_MONTADOS_TABLE", defaultPCsMontadosTableName),
	}
}

func (r *PCMontadoDynamoRepository) Create(ctx context.Context, pc entities.PCMontado) (entities.PCMontado, error) {
	av, err := attributevalue.MarshalMap(toPCMontadoItem(pc))
	if err != nil {
		return entities.PCMontado{}, err
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
		return entities.PCMontado{}, err
	}
	return pc, nil
}

func (r *PCMontadoDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.PCMontado, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PCMontado{}, err
	}
	if len(out.Item) == 0 {
		return entities.PCMontado{}, nil
	}

	var it pcMontadoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PCMontado{}, err
	}
	return fromPCMontadoItem(it), nil
}

func (r *PCMontadoDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.PCMontado, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#empresa_id = :empresa_id"),
		ExpressionAttributeNames: map[string]string{
			"#empresa_id": "empresa_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empresa_id": &types.AttributeValueMemberS{Value: empresaID},
		},
	})
	if err != nil {
		return nil, err
	}

	pcs := make([]entities.PCMontado, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pcMontadoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pcs = append(pcs, fromPCMontadoItem(it))
	}
	return pcs, nil
}

func (r *PCMontadoDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

func toPCMontadoItem(pc entities.PCMontado) pcMontadoItem {
	components := make([]componentLineItem, 0, len(pc.Components))
	for _, c := range pc.Components {
		components = append(components, componentLineItem{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			SKU:      c.SKU,
			Price:    floatToString(c.Price),
			Qty:      floatToString(c.Qty),
		})
	}
	return pcMontadoItem{
		EmpresaID:      pc.EmpresaID,
		ID:             pc.ID,
		Name:           pc.Name,
		Components:     components,
		CostPrice:      floatToString(pc.CostPrice),
		ProfitMargin:   floatToString(pc.ProfitMargin),
		SuggestedPrice: floatToString(pc.SuggestedPrice),
		EstimatedPower: pc.EstimatedPower,
		Status:         pc.Status,
		Quantity:       floatToString(pc.Quantity),
		DataMontagem:   timeToString(pc.DataMontagem),
	}
}

func fromPCMontadoItem(it pcMontadoItem) entities.PCMontado {
	components := make([]entities.ComponentLine, 0, len(it.Components))
	for _, c := range it.Components {
		components = append(components, entities.ComponentLine{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			SKU:      c.SKU,
			Price:    stringToFloat(c.Price),
			Qty:      stringToFloat(c.Qty),
		})
	}
	return entities.PCMontado{
		EmpresaID:      it.EmpresaID,
		ID:             it.ID,
		Name:           it.Name,
		Components:     components,
		CostPrice:      stringToFloat(it.CostPrice),
		ProfitMargin:   stringToFloat(it.ProfitMargin),
		SuggestedPrice: stringToFloat(it.SuggestedPrice),
		EstimatedPower: it.EstimatedPower,
		Status:         it.Status,
		Quantity:       stringToFloat(it.Quantity),
		DataMontagem:   stringToTime(it.DataMontagem),
	}
}
