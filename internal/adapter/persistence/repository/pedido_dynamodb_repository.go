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

const defaultPedidosTableName = "pedidos"

type componentLineItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Category string `dynamodbav:"category,omitempty"`
	SKU      string `dynamodbav:"sku,omitempty"`
	Price    string `dynamodbav:"price"`
	Qty      string `dynamodbav:"qty"`
}

type pedidoItem struct {
	EmpresaID       string              `dynamodbav:"empresa_id"`
	ID              string              `dynamodbav:"id"`
	ClienteID       string              `dynamodbav:"cliente_id,omitempty"`
	ClientName      string              `dynamodbav:"client_name"`
	Components      []componentLineItem `dynamodbav:"components"`
	CostPrice       string              `dynamodbav:"cost_price"`
	Total           string              `dynamodbav:"total"`
	ValorFinal      string              `dynamodbav:"valor_final"`
	ProfitMargin    string              `dynamodbav:"profit_margin"`
	Status          string              `dynamodbav:"status"`
	Notes           string              `dynamodbav:"notes,omitempty"`
	DataCriacao     string              `dynamodbav:"data_criacao"`
	DataAtualizacao string              `dynamodbav:"data_atualizacao"`
	DataEntrega     string              `dynamodbav:"data_entrega,omitempty"`
}

// PedidoDynamoRepository persists Pedido entities in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)
//
// CommitStatus spans the pedidos and inventario tables in one write
// transaction; the inventario table name must match the inventory
// repository's.

type PedidoDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	inventarioTable string
}

var _ interfaces.IPedidoRepository = (*PedidoDynamoRepository)(nil)

func NewPedidoDynamoRepository(ddb *dynamodb.Client) *PedidoDynamoRepository {
	return &PedidoDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PEDIDOS_TABLE", defaultPedidosTableName),
		inventarioTable: getenvDefault("INVENTARIO_TABLE", defaultInventarioTableName),
	}
}

func (r *PedidoDynamoRepository) Create(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	av, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return entities.Pedido{}, err
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
		return entities.Pedido{}, err
	}
	return p, nil
}

func (r *PedidoDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.Pedido, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pedido{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pedido{}, nil
	}

	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it), nil
}

func (r *PedidoDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Pedido, error) {
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

	pedidos := make([]entities.Pedido, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pedidoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, fromPedidoItem(it))
	}
	return pedidos, nil
}

func (r *PedidoDynamoRepository) Update(ctx context.Context, p entities.Pedido) (entities.Pedido, error) {
	av, err := attributevalue.MarshalMap(toPedidoItem(p))
	if err != nil {
		return entities.Pedido{}, err
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
		return entities.Pedido{}, mapTransactError(err)
	}
	return p, nil
}

// UpdateTotal is the one-way sync target of linked revenue edits.
func (r *PedidoDynamoRepository) UpdateTotal(ctx context.Context, empresaID, id string, total float64) (entities.Pedido, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 tenantKey(empresaID, id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #total = :total"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#total": "total",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":total": &types.AttributeValueMemberS{Value: floatToString(total)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Pedido{}, mapTransactError(err)
	}

	var it pedidoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Pedido{}, err
	}
	return fromPedidoItem(it), nil
}

func (r *PedidoDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

// CommitStatus performs the atomic reconciliation unit: the pedido status
// write and every stock adjustment in one transaction, each conditioned on
// the previously observed value.
func (r *PedidoDynamoRepository) CommitStatus(ctx context.Context, empresaID string, commit interfaces.StatusCommit, adjustments []interfaces.StockAdjustment) error {
	expr := "SET #status = :new, #data_atualizacao = :now"
	names := map[string]string{
		"#id":               "id",
		"#status":           "status",
		"#data_atualizacao": "data_atualizacao",
	}
	values := map[string]types.AttributeValue{
		":new":      &types.AttributeValueMemberS{Value: string(commit.NewStatus)},
		":expected": &types.AttributeValueMemberS{Value: string(commit.ExpectedStatus)},
	}
	if commit.DataEntrega != nil {
		values[":now"] = &types.AttributeValueMemberS{Value: timeToString(*commit.DataEntrega)}
	} else {
		values[":now"] = &types.AttributeValueMemberS{Value: timeToString(nowUTC())}
	}
	if commit.ValorFinal != nil {
		expr += ", #valor_final = :valor_final, #data_entrega = :data_entrega"
		names["#valor_final"] = "valor_final"
		names["#data_entrega"] = "data_entrega"
		values[":valor_final"] = &types.AttributeValueMemberS{Value: floatToString(*commit.ValorFinal)}
		values[":data_entrega"] = values[":now"]
	}

	items := make([]types.TransactWriteItem, 0, 1+len(adjustments))
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(r.tableName),
			Key:                       tenantKey(empresaID, commit.PedidoID),
			UpdateExpression:          aws.String(expr),
			ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
		},
	})
	for _, adj := range adjustments {
		items = append(items, quantityUpdate(r.inventarioTable, empresaID, adj))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return mapTransactError(err)
	}
	return nil
}

func toPedidoItem(p entities.Pedido) pedidoItem {
	components := make([]componentLineItem, 0, len(p.Components))
	for _, c := range p.Components {
		components = append(components, componentLineItem{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			SKU:      c.SKU,
			Price:    floatToString(c.Price),
			Qty:      floatToString(c.Qty),
		})
	}
	return pedidoItem{
		EmpresaID:       p.EmpresaID,
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		ClientName:      p.ClientName,
		Components:      components,
		CostPrice:       floatToString(p.CostPrice),
		Total:           floatToString(p.Total),
		ValorFinal:      floatToString(p.ValorFinal),
		ProfitMargin:    floatToString(p.ProfitMargin),
		Status:          string(p.Status),
		Notes:           p.Notes,
		DataCriacao:     timeToString(p.DataCriacao),
		DataAtualizacao: timeToString(p.DataAtualizacao),
		DataEntrega:     timeToString(p.DataEntrega),
	}
}

func fromPedidoItem(it pedidoItem) entities.Pedido {
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
	return entities.Pedido{
		EmpresaID:       it.EmpresaID,
		ID:              it.ID,
		ClienteID:       it.ClienteID,
		ClientName:      it.ClientName,
		Components:      components,
		CostPrice:       stringToFloat(it.CostPrice),
		Total:           stringToFloat(it.Total),
		ValorFinal:      stringToFloat(it.ValorFinal),
		ProfitMargin:    stringToFloat(it.ProfitMargin),
		Status:          entities.PedidoStatus(it.Status),
		Notes:           it.Notes,
		DataCriacao:     stringToTime(it.DataCriacao),
		DataAtualizacao: stringToTime(it.DataAtualizacao),
		DataEntrega:     stringToTime(it.DataEntrega),
	}
}
