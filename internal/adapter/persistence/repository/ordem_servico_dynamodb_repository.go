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

const defaultOrdensServicoTableName = "ordens_servico"

type ordemServicoItem struct {
	EmpresaID        string `dynamodbav:"empresa_id"`
	ID               string `dynamodbav:"id"`
	ClienteID        string `dynamodbav:"cliente_id,omitempty"`
	ClienteNome      string `dynamodbav:"cliente_nome"`
	Equipamento      string `dynamodbav:"equipamento"`
	ProblemaRelatado string `dynamodbav:"problema_relatado"`
	ValorEstimado    string `dynamodbav:"valor_estimado"`
	ValorFinal       string `dynamodbav:"valor_final"`
	Status           string `dynamodbav:"status"`
	DataRecebimento  string `dynamodbav:"data_recebimento"`
	DataEntrega      string `dynamodbav:"data_entrega,omitempty"`
}

// OrdemServicoDynamoRepository persists OrdemServico entities in DynamoDB.
//
// Table requirements:
//   - PK: empresa_id (string), SK: id (string)

type OrdemServicoDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrdemServicoRepository = (*OrdemServicoDynamoRepository)(nil)

func NewOrdemServicoDynamoRepository(ddb *dynamodb.Client) *OrdemServicoDynamoRepository {
	return &OrdemServicoDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDENS_SERVICO_TABLE", defaultOrdensServicoTableName),
	}
}

func (r *OrdemServicoDynamoRepository) Create(ctx context.Context, o entities.OrdemServico) (entities.OrdemServico, error) {
	av, err := attributevalue.MarshalMap(toOrdemServicoItem(o))
	if err != nil {
		return entities.OrdemServico{}, err
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
		return entities.OrdemServico{}, err
	}
	return o, nil
}

func (r *OrdemServicoDynamoRepository) GetByID(ctx context.Context, empresaID, id string) (entities.OrdemServico, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            tenantKey(empresaID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrdemServico{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrdemServico{}, nil
	}

	var it ordemServicoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrdemServico{}, err
	}
	return fromOrdemServicoItem(it), nil
}

func (r *OrdemServicoDynamoRepository) ListByEmpresa(ctx context.Context, empresaID string) ([]entities.OrdemServico, error) {
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

	ordens := make([]entities.OrdemServico, 0, len(out.Items))
	for _, raw := range out.Items {
		var it ordemServicoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ordens = append(ordens, fromOrdemServicoItem(it))
	}
	return ordens, nil
}

func (r *OrdemServicoDynamoRepository) Update(ctx context.Context, o entities.OrdemServico) (entities.OrdemServico, error) {
	av, err := attributevalue.MarshalMap(toOrdemServicoItem(o))
	if err != nil {
		return entities.OrdemServico{}, err
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
		return entities.OrdemServico{}, mapTransactError(err)
	}
	return o, nil
}

// UpdateValorFinal is the one-way sync target of linked revenue edits.
func (r *OrdemServicoDynamoRepository) UpdateValorFinal(ctx context.Context, empresaID, id string, valor float64) (entities.OrdemServico, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 tenantKey(empresaID, id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #valor_final = :valor_final"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#valor_final": "valor_final",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":valor_final": &types.AttributeValueMemberS{Value: floatToString(valor)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.OrdemServico{}, mapTransactError(err)
	}

	var it ordemServicoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrdemServico{}, err
	}
	return fromOrdemServicoItem(it), nil
}

func (r *OrdemServicoDynamoRepository) Delete(ctx context.Context, empresaID, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       tenantKey(empresaID, id),
	})
	return err
}

// CommitStatus writes the status transition conditioned on the previously
// observed status. Repair tickets carry no stock, so this is a single
// conditional update rather than a transaction.
func (r *OrdemServicoDynamoRepository) CommitStatus(ctx context.Context, empresaID string, commit interfaces.OSStatusCommit) error {
	expr := "SET #status = :new"
	names := map[string]string{
		"#id":     "id",
		"#status": "status",
	}
	values := map[string]types.AttributeValue{
		":new":      &types.AttributeValueMemberS{Value: string(commit.NewStatus)},
		":expected": &types.AttributeValueMemberS{Value: string(commit.ExpectedStatus)},
	}
	if commit.ValorFinal != nil {
		expr += ", #valor_final = :valor_final"
		names["#valor_final"] = "valor_final"
		values[":valor_final"] = &types.AttributeValueMemberS{Value: floatToString(*commit.ValorFinal)}
	}
	if commit.DataEntrega != nil {
		expr += ", #data_entrega = :data_entrega"
		names["#data_entrega"] = "data_entrega"
		values[":data_entrega"] = &types.AttributeValueMemberS{Value: timeToString(*commit.DataEntrega)}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tenantKey(empresaID, commit.OSID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return mapTransactError(err)
	}
	return nil
}

func toOrdemServicoItem(o entities.OrdemServico) ordemServicoItem {
	return ordemServicoItem{
		EmpresaID:        o.EmpresaID,
		ID:               o.ID,
		ClienteID:        o.ClienteID,
		ClienteNome:      o.ClienteNome,
		Equipamento:      o.Equipamento,
		ProblemaRelatado: o.ProblemaRelatado,
		ValorEstimado:    floatToString(o.ValorEstimado),
		ValorFinal:       floatToString(o.ValorFinal),
		Status:           string(o.Status),
		DataRecebimento:  timeToString(o.DataRecebimento),
		DataEntrega:      timeToString(o.DataEntrega),
	}
}

func fromOrdemServicoItem(it ordemServicoItem) entities.OrdemServico {
	return entities.OrdemServico{
		EmpresaID:        it.EmpresaID,
		ID:               it.ID,
		ClienteID:        it.ClienteID,
		ClienteNome:      it.ClienteNome,
		Equipamento:      it.Equipamento,
		ProblemaRelatado: it.ProblemaRelatado,
		ValorEstimado:    stringToFloat(it.ValorEstimado),
		ValorFinal:       stringToFloat(it.ValorFinal),
		Status:           entities.OSStatus(it.Status),
		DataRecebimento:  stringToTime(it.DataRecebimento),
		DataEntrega:      stringToTime(it.DataEntrega),
	}
}
