package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultUrbanizacionesTableName = "urbanizaciones"

type urbanizacionItem struct {
	ID        string `dynamodbav:"id"`
	Nombre    string `dynamodbav:"nombre"`
	Ubicacion string `dynamodbav:"ubicacion,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// UrbanizacionDynamoRepository persists Urbanizacion entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Nombre uniqueness has no native table-level guard in DynamoDB; the usecase
// pre-check via GetByNombre is the only line of defense on this backend.

type UrbanizacionDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	lotesTable string
}

var _ interfaces.IUrbanizacionRepository = (*UrbanizacionDynamoRepository)(nil)

func NewUrbanizacionDynamoRepository(ddb *dynamodb.Client) *UrbanizacionDynamoRepository {
	return &UrbanizacionDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("URBANIZACIONES_TABLE", defaultUrbanizacionesTableName),
		lotesTable: getenvDefault("LOTES_TABLE", defaultLotesTableName),
	}
}

func (r *UrbanizacionDynamoRepository) Create(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
	av, err := attributevalue.MarshalMap(toUrbanizacionItem(u))
	if err != nil {
		return entities.Urbanizacion{}, err
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
		return entities.Urbanizacion{}, translateDynamoWriteError(err)
	}
	return u, nil
}

func (r *UrbanizacionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Urbanizacion, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Urbanizacion{}, err
	}
	if len(out.Item) == 0 {
		return entities.Urbanizacion{}, nil
	}

	var it urbanizacionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Urbanizacion{}, err
	}
	return fromUrbanizacionItem(it), nil
}

func (r *UrbanizacionDynamoRepository) GetByNombre(ctx context.Context, nombre string) (entities.Urbanizacion, error) {
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
		return entities.Urbanizacion{}, err
	}
	if len(out.Items) == 0 {
		return entities.Urbanizacion{}, nil
	}

	var it urbanizacionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Urbanizacion{}, err
	}
	return fromUrbanizacionItem(it), nil
}

func (r *UrbanizacionDynamoRepository) List(ctx context.Context) ([]entities.Urbanizacion, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Urbanizacion, 0, len(out.Items))
	for _, raw := range out.Items {
		var it urbanizacionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUrbanizacionItem(it))
	}
	return items, nil
}

func (r *UrbanizacionDynamoRepository) Update(ctx context.Context, u entities.Urbanizacion) (entities.Urbanizacion, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: u.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #nombre = :nombre, #ubicacion = :ubicacion, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#nombre":     "nombre",
			"#ubicacion":  "ubicacion",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nombre":     &types.AttributeValueMemberS{Value: u.Nombre},
			":ubicacion":  &types.AttributeValueMemberS{Value: u.Ubicacion},
			":updated_at": &types.AttributeValueMemberS{Value: u.UpdatedAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Urbanizacion{}, fmt.Errorf("%w: urbanizacion %s", interfaces.ErrNotFound, u.ID)
		}
		return entities.Urbanizacion{}, err
	}

	var it urbanizacionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Urbanizacion{}, err
	}
	return fromUrbanizacionItem(it), nil
}

func (r *UrbanizacionDynamoRepository) Delete(ctx context.Context, id string) error {
	// DynamoDB has no referential integrity: re-check for lots so a write
	// racing the usecase pre-check still gets refused.
	n, err := r.CountLotes(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: urbanizacion %s has %d lote(s)", interfaces.ErrForeignKeyViolation, id, n)
	}

	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *UrbanizacionDynamoRepository) CountLotes(ctx context.Context, urbanizacionID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.lotesTable),
		IndexName:              aws.String(lotesUrbanizacionIDIndex),
		KeyConditionExpression: aws.String("urbanizacion_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: urbanizacionID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func toUrbanizacionItem(u entities.Urbanizacion) urbanizacionItem {
	return urbanizacionItem{
		ID:        u.ID,
		Nombre:    u.Nombre,
		Ubicacion: u.Ubicacion,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromUrbanizacionItem(it urbanizacionItem) entities.Urbanizacion {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Urbanizacion{
		ID:        it.ID,
		Nombre:    it.Nombre,
		Ubicacion: it.Ubicacion,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
