package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlanesTableName = "planes_financiamiento"

type planFinanciamientoItem struct {
	ID                string `dynamodbav:"id"`
	Nombre            string `dynamodbav:"nombre"`
	PorcentajeAnual   string `dynamodbav:"porcentaje_anual"`
	CantidadCuotas    int    `dynamodbav:"cantidad_cuotas"`
	TipoCuotaInicial  string `dynamodbav:"tipo_cuota_inicial"`
	ValorCuotaInicial string `dynamodbav:"valor_cuota_inicial"`
	Activo            bool   `dynamodbav:"activo"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PlanFinanciamientoDynamoRepository persists PlanFinanciamiento entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PlanFinanciamientoDynamoRepository struct {
	ddb                  *dynamodb.Client
	tableName            string
	financiamientosTable string
}

var _ interfaces.IPlanFinanciamientoRepository = (*PlanFinanciamientoDynamoRepository)(nil)

func NewPlanFinanciamientoDynamoRepository(ddb *dynamodb.Client) *PlanFinanciamientoDynamoRepository {
	return &PlanFinanciamientoDynamoRepository{
		ddb:                  ddb,
		tableName:            getenvDefault("PLANES_TABLE", defaultPlanesTableName),
		financiamientosTable: getenvDefault("FINANCIAMIENTOS_TABLE", defaultFinanciamientosTableName),
	}
}

func (r *PlanFinanciamientoDynamoRepository) Create(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error) {
	av, err := attributevalue.MarshalMap(toPlanFinanciamientoItem(p))
	if err != nil {
		return entities.PlanFinanciamiento{}, err
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
		return entities.PlanFinanciamiento{}, translateDynamoWriteError(err)
	}
	return p, nil
}

func (r *PlanFinanciamientoDynamoRepository) GetByID(ctx context.Context, id string) (entities.PlanFinanciamiento, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	if len(out.Item) == 0 {
		return entities.PlanFinanciamiento{}, nil
	}

	var it planFinanciamientoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	return fromPlanFinanciamientoItem(it), nil
}

func (r *PlanFinanciamientoDynamoRepository) GetByNombre(ctx context.Context, nombre string) (entities.PlanFinanciamiento, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#nombre = :nombre"),
		ExpressionAttributeNames: map[string]string{
			"#nombre": "nombre",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nombre": &types.AttributeValueMemberS{Value: nombre},
		},
	})
	if err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	if len(out.Items) == 0 {
		return entities.PlanFinanciamiento{}, nil
	}

	var it planFinanciamientoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	return fromPlanFinanciamientoItem(it), nil
}

func (r *PlanFinanciamientoDynamoRepository) List(ctx context.Context) ([]entities.PlanFinanciamiento, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PlanFinanciamiento, 0, len(out.Items))
	for _, raw := range out.Items {
		var it planFinanciamientoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPlanFinanciamientoItem(it))
	}
	return items, nil
}

func (r *PlanFinanciamientoDynamoRepository) Update(ctx context.Context, p entities.PlanFinanciamiento) (entities.PlanFinanciamiento, error) {
	it := toPlanFinanciamientoItem(p)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #nombre = :nombre, #porcentaje_anual = :porcentaje_anual, " +
			"#cantidad_cuotas = :cantidad_cuotas, #tipo_cuota_inicial = :tipo_cuota_inicial, " +
			"#valor_cuota_inicial = :valor_cuota_inicial, #activo = :activo, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                  "id",
			"#nombre":              "nombre",
			"#porcentaje_anual":    "porcentaje_anual",
			"#cantidad_cuotas":     "cantidad_cuotas",
			"#tipo_cuota_inicial":  "tipo_cuota_inicial",
			"#valor_cuota_inicial": "valor_cuota_inicial",
			"#activo":              "activo",
			"#updated_at":          "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nombre":              &types.AttributeValueMemberS{Value: it.Nombre},
			":porcentaje_anual":    &types.AttributeValueMemberS{Value: it.PorcentajeAnual},
			":cantidad_cuotas":     &types.AttributeValueMemberN{Value: strconv.Itoa(it.CantidadCuotas)},
			":tipo_cuota_inicial":  &types.AttributeValueMemberS{Value: it.TipoCuotaInicial},
			":valor_cuota_inicial": &types.AttributeValueMemberS{Value: it.ValorCuotaInicial},
			":activo":              &types.AttributeValueMemberBOOL{Value: it.Activo},
			":updated_at":          &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PlanFinanciamiento{}, fmt.Errorf("%w: plan %s", interfaces.ErrNotFound, p.ID)
		}
		return entities.PlanFinanciamiento{}, err
	}

	var updated planFinanciamientoItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.PlanFinanciamiento{}, err
	}
	return fromPlanFinanciamientoItem(updated), nil
}

func (r *PlanFinanciamientoDynamoRepository) Delete(ctx context.Context, id string) error {
	// DynamoDB has no referential integrity: re-check for financiamientos so
	// a bind racing the usecase pre-check still gets refused.
	n, err := r.CountFinanciamientos(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: plan %s has %d financiamiento(s)", interfaces.ErrForeignKeyViolation, id, n)
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *PlanFinanciamientoDynamoRepository) CountFinanciamientos(ctx context.Context, planID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.financiamientosTable),
		IndexName:              aws.String(financiamientosPlanIDIndex),
		KeyConditionExpression: aws.String("plan_financiamiento_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: planID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toPlanFinanciamientoItem(p entities.PlanFinanciamiento) planFinanciamientoItem {
	return planFinanciamientoItem{
		ID:                p.ID,
		Nombre:            p.Nombre,
		PorcentajeAnual:   floatToString(p.PorcentajeAnual),
		CantidadCuotas:    p.CantidadCuotas,
		TipoCuotaInicial:  string(p.TipoCuotaInicial),
		ValorCuotaInicial: floatToString(p.ValorCuotaInicial),
		Activo:            p.Activo,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPlanFinanciamientoItem(it planFinanciamientoItem) entities.PlanFinanciamiento {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	porcentaje, _ := strconv.ParseFloat(it.PorcentajeAnual, 64)
	valor, _ := strconv.ParseFloat(it.ValorCuotaInicial, 64)
	return entities.PlanFinanciamiento{
		ID:                it.ID,
		Nombre:            it.Nombre,
		PorcentajeAnual:   porcentaje,
		CantidadCuotas:    it.CantidadCuotas,
		TipoCuotaInicial:  entities.TipoCuotaInicial(it.TipoCuotaInicial),
		ValorCuotaInicial: valor,
		Activo:            it.Activo,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
