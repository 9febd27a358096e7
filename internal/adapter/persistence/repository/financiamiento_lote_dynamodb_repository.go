package repository

import (
	"context"
	"strconv"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFinanciamientosTableName = "financiamientos_lote"
	financiamientosLoteIDIndex      = "lote_id-index"
	financiamientosPlanIDIndex      = "plan_financiamiento_id-index"
)

type financiamientoLoteItem struct {
	ID                   string `dynamodbav:"id"`
	LoteID               string `dynamodbav:"lote_id"`
	PlanFinanciamientoID string `dynamodbav:"plan_financiamiento_id"`
	CuotaInicial         string `dynamodbav:"cuota_inicial"`
	SaldoFinanciar       string `dynamodbav:"saldo_financiar"`
	InteresTotal         string `dynamodbav:"interes_total"`
	CuotaMensual         string `dynamodbav:"cuota_mensual"`
	PrecioTotalCredito   string `dynamodbav:"precio_total_credito"`
	CreatedAt            string `dynamodbav:"created_at"`
}

// FinanciamientoLoteDynamoRepository persists FinanciamientoLote entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lote_id-index (PK: lote_id)
//   - GSI: plan_financiamiento_id-index (PK: plan_financiamiento_id)
//
// The (lote_id, plan_financiamiento_id) pair is resolved via the lote GSI;
// the usecase pre-check via GetByPair is the guard on this backend.

type FinanciamientoLoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFinanciamientoLoteRepository = (*FinanciamientoLoteDynamoRepository)(nil)

func NewFinanciamientoLoteDynamoRepository(ddb *dynamodb.Client) *FinanciamientoLoteDynamoRepository {
	return &FinanciamientoLoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FINANCIAMIENTOS_TABLE", defaultFinanciamientosTableName),
	}
}

func (r *FinanciamientoLoteDynamoRepository) Create(ctx context.Context, f entities.FinanciamientoLote) (entities.FinanciamientoLote, error) {
	av, err := attributevalue.MarshalMap(toFinanciamientoLoteItem(f))
	if err != nil {
		return entities.FinanciamientoLote{}, err
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
		return entities.FinanciamientoLote{}, translateDynamoWriteError(err)
	}
	return f, nil
}

func (r *FinanciamientoLoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.FinanciamientoLote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FinanciamientoLote{}, err
	}
	if len(out.Item) == 0 {
		return entities.FinanciamientoLote{}, nil
	}

	var it financiamientoLoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FinanciamientoLote{}, err
	}
	return fromFinanciamientoLoteItem(it), nil
}

func (r *FinanciamientoLoteDynamoRepository) GetByPair(ctx context.Context, loteID, planFinanciamientoID string) (entities.FinanciamientoLote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(financiamientosLoteIDIndex),
		KeyConditionExpression: aws.String("lote_id = :lid"),
		FilterExpression:       aws.String("plan_financiamiento_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: loteID},
			":pid": &types.AttributeValueMemberS{Value: planFinanciamientoID},
		},
	})
	if err != nil {
		return entities.FinanciamientoLote{}, err
	}
	if len(out.Items) == 0 {
		return entities.FinanciamientoLote{}, nil
	}

	var it financiamientoLoteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.FinanciamientoLote{}, err
	}
	return fromFinanciamientoLoteItem(it), nil
}

func (r *FinanciamientoLoteDynamoRepository) List(ctx context.Context) ([]entities.FinanciamientoLote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.FinanciamientoLote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it financiamientoLoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromFinanciamientoLoteItem(it))
	}
	return items, nil
}

func (r *FinanciamientoLoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toFinanciamientoLoteItem(f entities.FinanciamientoLote) financiamientoLoteItem {
	return financiamientoLoteItem{
		ID:                   f.ID,
		LoteID:               f.LoteID,
		PlanFinanciamientoID: f.PlanFinanciamientoID,
		CuotaInicial:         floatToString(f.CuotaInicial),
		SaldoFinanciar:       floatToString(f.SaldoFinanciar),
		InteresTotal:         floatToString(f.InteresTotal),
		CuotaMensual:         floatToString(f.CuotaMensual),
		PrecioTotalCredito:   floatToString(f.PrecioTotalCredito),
		CreatedAt:            f.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromFinanciamientoLoteItem(it financiamientoLoteItem) entities.FinanciamientoLote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	cuotaInicial, _ := strconv.ParseFloat(it.CuotaInicial, 64)
	saldo, _ := strconv.ParseFloat(it.SaldoFinanciar, 64)
	interes, _ := strconv.ParseFloat(it.InteresTotal, 64)
	cuotaMensual, _ := strconv.ParseFloat(it.CuotaMensual, 64)
	precioTotal, _ := strconv.ParseFloat(it.PrecioTotalCredito, 64)
	return entities.FinanciamientoLote{
		ID:                   it.ID,
		LoteID:               it.LoteID,
		PlanFinanciamientoID: it.PlanFinanciamientoID,
		CuotaInicial:         cuotaInicial,
		SaldoFinanciar:       saldo,
		InteresTotal:         interes,
		CuotaMensual:         cuotaMensual,
		PrecioTotalCredito:   precioTotal,
		CreatedAt:            createdAt,
	}
}
