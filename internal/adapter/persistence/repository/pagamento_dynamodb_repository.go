package repository

import (
	"context"
	"encoding/json"

	"informatica_xpto/internal/domain/entities"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPagamentosTableName = "pagamentos"

type pagamentoItem struct {
	EmpresaID string `dynamodbav:"empresa_id"`
	ID        string `dynamodbav:"id"`
	PedidoID  string `dynamodbav:"pedido_id"`
	Date      string `dynamodbav:"date"`
	Status    string `dynamodbav:"status"`
	MPPayload string `dynamodbav:"mp_payload,omitempty"`
}

// PagamentoDynamoRepository persists provider payments in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)
//
// The provider payload is stored verbatim as a JSON string for audit.

type PagamentoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPagamentoRepository = (*PagamentoDynamoRepository)(nil)

func NewPagamentoDynamoRepository(ddb *dynamodb.Client) *PagamentoDynamoRepository {
	return &PagamentoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAGAMENTOS_TABLE", defaultPagamentosTableName),
	}
}

func (r *PagamentoDynamoRepository) Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error) {
	av, err := attributevalue.MarshalMap(toPagamentoItem(p))
	if err != nil {
		return entities.Pagamento{}, err
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
		return entities.Pagamento{}, err
	}
	return p, nil
}

func (r *PagamentoDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.Pagamento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pagamento{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pagamento{}, nil
	}

	var it pagamentoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pagamento{}, err
	}
	return fromPagamentoItem(it), nil
}

func (r *PagamentoDynamoRepository) ListByPedidoID(ctx context.Context, empresaID, pedidoID string) ([]entities.Pagamento, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#empresa_id = :empresa_id"),
		FilterExpression:       aws.String("#pedido_id = :pedido_id"),
		ExpressionAttributeNames: map[string]string{
			"#empresa_id": "empresa_id",
			"#pedido_id":  "pedido_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empresa_id": &types.AttributeValueMemberS{Value: empresaID},
			":pedido_id":  &types.AttributeValueMemberS{Value: pedidoID},
		},
	})
	if err != nil {
		return nil, err
	}

	pagamentos := make([]entities.Pagamento, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pagamentoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		pagamentos = append(pagamentos, fromPagamentoItem(it))
	}
	return pagamentos, nil
}

func toPagamentoItem(p entities.Pagamento) pagamentoItem {
	return pagamentoItem{
		EmpresaID: p.EmpresaID,
		ID:        p.ID,
		PedidoID:  p.PedidoID,
		Date:      timeToString(p.Date),
		Status:    string(p.Status),
		MPPayload: string(p.MPPayloadRaw),
	}
}

func fromPagamentoItem(it pagamentoItem) entities.Pagamento {
	p := entities.Pagamento{
		EmpresaID: it.EmpresaID,
		ID:        it.ID,
		PedidoID:  it.PedidoID,
		Date:      stringToTime(it.Date),
		Status:    entities.PagamentoStatus(it.Status),
	}
	if it.MPPayload != "" {
		p.MPPayloadRaw = json.RawMessage(it.MPPayload)
		var parsed map[string]interface{}
		if err := json.Unmarshal(p.MPPayloadRaw, &parsed); err == nil {
			p.MPPayload = parsed
		}
	}
	return p
}
