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

const defaultTransacoesTableName = "transacoes"

type transacaoItem struct {
	EmpresaID   string `dynamodbav:"empresa_id"`
	ID          string `dynamodbav:"id"`
	Tipo        string `dynamodbav:"tipo"`
	Categoria   string `dynamodbav:"categoria"`
	Descricao   string `dynamodbav:"descricao"`
	Valor       string `dynamodbav:"valor"`
	Data        string `dynamodbav:"data"`
	Origem      string `dynamodbav:"origem,omitempty"`
	PedidoID    string `dynamodbav:"pedido_id,omitempty"`
	OSID        string `dynamodbav:"os_id,omitempty"`
	ClienteID   string `dynamodbav:"cliente_id,omitempty"`
	ClienteNome string `dynamodbav:"cliente_nome,omitempty"`
}

// TransacaoDynamoRepository persists financial ledger entries in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)

type TransacaoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransacaoRepository = (*TransacaoDynamoRepository)(nil)

func NewTransacaoDynamoRepository(ddb *dynamodb.Client) *TransacaoDynamoRepository {
	return &TransacaoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACOES_TABLE", defaultTransacoesTableName),
	}
}

func (r *TransacaoDynamoRepository) Create(ctx context.Context, t entities.Transacao) (entities.Transacao, error) {
	av, err := attributevalue.MarshalMap(toTransacaoItem(t))
	if err != nil {
		return entities.Transacao{}, err
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
		return entities.Transacao{}, err
	}
	return t, nil
}

func (r *TransacaoDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.Transacao, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Transacao{}, err
	}
	if len(out.Item) == 0 {
		return entities.Transacao{}, nil
	}

	var it transacaoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Transacao{}, err
	}
	return fromTransacaoItem(it), nil
}

func (r *TransacaoDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Transacao, error) {
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

	transacoes := make([]entities.Transacao, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transacaoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		transacoes = append(transacoes, fromTransacaoItem(it))
	}
	return transacoes, nil
}

func (r *TransacaoDynamoRepository) Update(ctx context.Context, t entities.Transacao) (entities.Transacao, error) {
	av, err := attributevalue.MarshalMap(toTransacaoItem(t))
	if err != nil {
		return entities.Transacao{}, err
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
		return entities.Transacao{}, mapTransactError(err)
	}
	return t, nil
}

func (r *TransacaoDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

func toTransacaoItem(t entities.Transacao) transacaoItem {
	return transacaoItem{
		EmpresaID:   t.EmpresaID,
		ID:          t.ID,
		Tipo:        string(t.Tipo),
		Categoria:   t.Categoria,
		Descricao:   t.Descricao,
		Valor:       floatToString(t.Valor),
		Data:        timeToString(t.Data),
		Origem:      t.Origem,
		PedidoID:    t.PedidoID,
		OSID:        t.OSID,
		ClienteID:   t.ClienteID,
		ClienteNome: t.ClienteNome,
	}
}

func fromTransacaoItem(it transacaoItem) entities.Transacao {
	return entities.Transacao{
		EmpresaID:   it.EmpresaID,
		ID:          it.ID,
		Tipo:        entities.TransacaoTipo(it.Tipo),
		Categoria:   it.Categoria,
		Descricao:   it.Descricao,
		Valor:       stringToFloat(it.Valor),
		Data:        stringToTime(it.Data),
		Origem:      it.Origem,
		PedidoID:    it.PedidoID,
		OSID:        it.OSID,
		ClienteID:   it.ClienteID,
		ClienteNome: it.ClienteNome,
	}
}
