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

const (
	defaultLotesTableName    = "lotes"
	lotesUrbanizacionIDIndex = "urbanizacion_id-index"
)

type loteItem struct {
	ID             string `dynamodbav:"id"`
	Manzano        string `dynamodbav:"manzano"`
	Numero         int    `dynamodbav:"numero"`
	Nombre         string `dynamodbav:"nombre"`
	Zona           string `dynamodbav:"zona,omitempty"`
	SuperficieM2   string `dynamodbav:"superficie_m2"`
	PrecioM2       string `dynamodbav:"precio_m2"`
	PrecioContado  string `dynamodbav:"precio_contado"`
	Estado         string `dynamodbav:"estado"`
	FormaVenta     string `dynamodbav:"forma_venta,omitempty"`
	UrbanizacionID string `dynamodbav:"urbanizacion_id"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// LoteDynamoRepository persists Lote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: urbanizacion_id-index (PK: urbanizacion_id)
//
// The (urbanizacion_id, manzano, numero) uniqueness triple is resolved by
// querying the GSI; there is no table-level guard on this backend.

type LoteDynamoRepository struct {
	ddb                  *dynamodb.Client
	tableName            string
	financiamientosTable string
}

var _ interfaces.ILoteRepository = (*LoteDynamoRepository)(nil)

func NewLoteDynamoRepository(ddb *dynamodb.Client) *LoteDynamoRepository {
	return &LoteDynamoRepository{
		ddb:                  ddb,
		tableName:            getenvDefault("LOTES_TABLE", defaultLotesTableName),
		financiamientosTable: getenvDefault("FINANCIAMIENTOS_TABLE", defaultFinanciamientosTableName),
	}
}

func (r *LoteDynamoRepository) Create(ctx context.Context, l entities.Lote) (entities.Lote, error) {
	av, err := attributevalue.MarshalMap(toLoteItem(l))
	if err != nil {
		return entities.Lote{}, err
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
		return entities.Lote{}, translateDynamoWriteError(err)
	}
	return l, nil
}

func (r *LoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lote{}, nil
	}

	var it loteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lote{}, err
	}
	return fromLoteItem(it), nil
}

func (r *LoteDynamoRepository) FindByUbicacion(ctx context.Context, urbanizacionID, manzano string, numero int) (entities.Lote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lotesUrbanizacionIDIndex),
		KeyConditionExpression: aws.String("urbanizacion_id = :uid"),
		FilterExpression:       aws.String("#manzano = :manzano AND #numero = :numero"),
		ExpressionAttributeNames: map[string]string{
			"#manzano": "manzano",
			"#numero":  "numero",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":     &types.AttributeValueMemberS{Value: urbanizacionID},
			":manzano": &types.AttributeValueMemberS{Value: manzano},
			":numero":  &types.AttributeValueMemberN{Value: strconv.Itoa(numero)},
		},
	})
	if err != nil {
		return entities.Lote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Lote{}, nil
	}

	var it loteItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Lote{}, err
	}
	return fromLoteItem(it), nil
}

func (r *LoteDynamoRepository) List(ctx context.Context) ([]entities.Lote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Lote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it loteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLoteItem(it))
	}
	return items, nil
}

func (r *LoteDynamoRepository) Update(ctx context.Context, l entities.Lote) (entities.Lote, error) {
	it := toLoteItem(l)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: l.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #manzano = :manzano, #numero = :numero, #nombre = :nombre, " +
			"#zona = :zona, #superficie_m2 = :superficie_m2, #precio_m2 = :precio_m2, " +
			"#precio_contado = :precio_contado, #estado = :estado, #forma_venta = :forma_venta, " +
			"#urbanizacion_id = :urbanizacion_id, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#manzano":         "manzano",
			"#numero":          "numero",
			"#nombre":          "nombre",
			"#zona":            "zona",
			"#superficie_m2":   "superficie_m2",
			"#precio_m2":       "precio_m2",
			"#precio_contado":  "precio_contado",
			"#estado":          "estado",
			"#forma_venta":     "forma_venta",
			"#urbanizacion_id": "urbanizacion_id",
			"#updated_at":      "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":manzano":         &types.AttributeValueMemberS{Value: it.Manzano},
			":numero":          &types.AttributeValueMemberN{Value: strconv.Itoa(it.Numero)},
			":nombre":          &types.AttributeValueMemberS{Value: it.Nombre},
			":zona":            &types.AttributeValueMemberS{Value: it.Zona},
			":superficie_m2":   &types.AttributeValueMemberS{Value: it.SuperficieM2},
			":precio_m2":       &types.AttributeValueMemberS{Value: it.PrecioM2},
			":precio_contado":  &types.AttributeValueMemberS{Value: it.PrecioContado},
			":estado":          &types.AttributeValueMemberS{Value: it.Estado},
			":forma_venta":     &types.AttributeValueMemberS{Value: it.FormaVenta},
			":urbanizacion_id": &types.AttributeValueMemberS{Value: it.UrbanizacionID},
			":updated_at":      &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lote{}, fmt.Errorf("%w: lote %s", interfaces.ErrNotFound, l.ID)
		}
		return entities.Lote{}, err
	}

	var updated loteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.Lote{}, err
	}
	return fromLoteItem(updated), nil
}

// Delete removes the lot and every financiamiento bound to it, mirroring the
// cascade the relational backend gets from the schema.
func (r *LoteDynamoRepository) Delete(ctx context.Context, id string) error {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.financiamientosTable),
		IndexName:              aws.String(financiamientosLoteIDIndex),
		KeyConditionExpression: aws.String("lote_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: id},
		},
		ProjectionExpression: aws.String("id"),
	})
	if err != nil {
		return err
	}
	for _, raw := range out.Items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return err
		}
		_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.financiamientosTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: it.ID},
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toLoteItem(l entities.Lote) loteItem {
	return loteItem{
		ID:             l.ID,
		Manzano:        l.Manzano,
		Numero:         l.Numero,
		Nombre:         l.Nombre,
		Zona:           l.Zona,
		SuperficieM2:   floatToString(l.SuperficieM2),
		PrecioM2:       floatToString(l.PrecioM2),
		PrecioContado:  floatToString(l.PrecioContado),
		Estado:         string(l.Estado),
		FormaVenta:     string(l.FormaVenta),
		UrbanizacionID: l.UrbanizacionID,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLoteItem(it loteItem) entities.Lote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	superficie, _ := strconv.ParseFloat(it.SuperficieM2, 64)
	precioM2, _ := strconv.ParseFloat(it.PrecioM2, 64)
	precioContado, _ := strconv.ParseFloat(it.PrecioContado, 64)
	return entities.Lote{
		ID:             it.ID,
		Manzano:        it.Manzano,
		Numero:         it.Numero,
		Nombre:         it.Nombre,
		Zona:           it.Zona,
		SuperficieM2:   superficie,
		PrecioM2:       precioM2,
		PrecioContado:  precioContado,
		Estado:         entities.EstadoLote(it.Estado),
		FormaVenta:     entities.FormaVenta(it.FormaVenta),
		UrbanizacionID: it.UrbanizacionID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
