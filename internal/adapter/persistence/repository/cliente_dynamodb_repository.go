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

const defaultClientesTableName = "clientes"

type clienteItem struct {
	EmpresaID   string `dynamodbav:"empresa_id"`
	ID          string `dynamodbav:"id"`
	Nome        string `dynamodbav:"nome"`
	Email       string `dynamodbav:"email,omitempty"`
	Telefone    string `dynamodbav:"telefone,omitempty"`
	Endereco    string `dynamodbav:"endereco,omitempty"`
	DataCriacao string `dynamodbav:"data_criacao"`
}

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)

type ClienteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb *dynamodb.Client) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTES_TABLE", defaultClientesTableName),
	}
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
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
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.Cliente, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cliente{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cliente{}, nil
	}

	var it clienteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.Cliente, error) {
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

	clientes := make([]entities.Cliente, 0, len(out.Items))
	for _, raw := range out.Items {
		var it clienteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clientes = append(clientes, fromClienteItem(it))
	}
	return clientes, nil
}

func (r *ClienteDynamoRepository) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, err
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
		return entities.Cliente{}, mapTransactError(err)
	}
	return c, nil
}

func (r *ClienteDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		EmpresaID:   c.EmpresaID,
		ID:          c.ID,
		Nome:        c.Nome,
		Email:       c.Email,
		Telefone:    c.Telefone,
		Endereco:    c.Endereco,
		DataCriacao: timeToString(c.DataCriacao),
	}
}

func fromClienteItem(it clienteItem) entities.Cliente {
	return entities.Cliente{
		EmpresaID:   it.EmpresaID,
		ID:          it.ID,
		Nome:        it.Nome,
		Email:       it.Email,
		Telefone:    it.Telefone,
		Endereco:    it.Endereco,
		DataCriacao: stringToTime(it.DataCriacao),
	}
}
