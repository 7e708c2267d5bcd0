package repository

import (
	"context"
	"strconv"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInventarioTableName = "inventario"

type inventoryItemItem struct {
	EmpresaID string `dynamodbav:"empresa_id"`
	ID        string `dynamodbav:"id"`
	Component string `dynamodbav:"component"`
	Category  string `dynamodbav:"category"`
	SKU       string `dynamodbav:"sku,omitempty"`
	Quantity  string `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
	Socket    string `dynamodbav:"socket,omitempty"`
	RAMType   string `dynamodbav:"ram_type,omitempty"`
	Watt      int    `dynamodbav:"watt,omitempty"`
	Power     int    `dynamodbav:"power,omitempty"`
}

// InventarioDynamoRepository persists InventoryItem entities in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)
//
// Quantities are stored as numeric strings, so the optimistic conditions of
// AdjustQuantities compare the exact previous string value instead of doing
// arithmetic in the database.

type InventarioDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInventarioRepository = (*InventarioDynamoRepository)(nil)

func NewInventarioDynamoRepository(ddb *dynamodb.Client) *InventarioDynamoRepository {
	return &InventarioDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVENTARIO_TABLE", defaultInventarioTableName),
	}
}

func (r *InventarioDynamoRepository) Create(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemItem(item))
	if err != nil {
		return entities.InventoryItem{}, err
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
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func (r *InventarioDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.InventoryItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.InventoryItem{}, nil
	}

	var it inventoryItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.InventoryItem{}, err
	}
	return fromInventoryItemItem(it), nil
}

func (r *InventarioDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.InventoryItem, error) {
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

	items := make([]entities.InventoryItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it inventoryItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInventoryItemItem(it))
	}
	return items, nil
}

func (r *InventarioDynamoRepository) Update(ctx context.Context, item entities.InventoryItem) (entities.InventoryItem, error) {
	av, err := attributevalue.MarshalMap(toInventoryItemItem(item))
	if err != nil {
		return entities.InventoryItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.InventoryItem{}, mapTransactError(err)
	}
	return item, nil
}

func (r *InventarioDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

// AdjustQuantities applies the whole batch as one write transaction. Each
// member asserts existence and the previously observed quantity string, so
// the batch fails closed when any item raced or disappeared.
func (r *InventarioDynamoRepository) AdjustQuantities(ctx context.Context, empresaID string, adjustments []interfaces.StockAdjustment) error {
	if len(adjustments) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(adjustments))
	for _, adj := range adjustments {
		items = append(items, quantityUpdate(r.tableName, empresaID, adj))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return mapTransactError(err)
	}
	return nil
}

// quantityUpdate builds the conditional quantity write shared by the adjust
// and reconcile transactions.
func quantityUpdate(tableName, empresaID string, adj interfaces.StockAdjustment) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(tableName),
			Key:                 tenantKey(empresaID, adj.ItemID),
			UpdateExpression:    aws.String("SET #quantity = :new"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #quantity = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#id":       "id",
				"#quantity": "quantity",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":new":      &types.AttributeValueMemberS{Value: floatToString(adj.NewQuantity)},
				":expected": &types.AttributeValueMemberS{Value: floatToString(adj.ExpectedQuantity)},
			},
		},
	}
}

func toInventoryItemItem(item entities.InventoryItem) inventoryItemItem {
	return inventoryItemItem{
		EmpresaID: item.EmpresaID,
		ID:        item.ID,
		Component: item.Component,
		Category:  string(item.Category),
		SKU:       item.SKU,
		Quantity:  floatToString(item.Quantity),
		Price:     floatToString(item.Price),
		Socket:    item.Socket,
		RAMType:   item.RAMType,
		Watt:      item.Watt,
		Power:     item.Power,
	}
}

func fromInventoryItemItem(it inventoryItemItem) entities.InventoryItem {
	qty, _ := strconv.ParseFloat(it.Quantity, 64)
	return entities.InventoryItem{
		EmpresaID: it.EmpresaID,
		ID:        it.ID,
		Component: it.Component,
		Category:  entities.Categoria(it.Category),
		SKU:       it.SKU,
		Quantity:  qty,
		Price:     stringToFloat(it.Price),
		Socket:    it.Socket,
		RAMType:   it.RAMType,
		Watt:      it.Watt,
		Power:     it.Power,
	}
}
