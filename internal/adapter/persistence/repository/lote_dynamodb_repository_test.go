package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// newStubDynamoClient points a real client at a local server that records the
// raw request body and replies with a canned DynamoDB JSON response.
func newStubDynamoClient(t *testing.T, status int, body string, captured *[]byte) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read request body: %v", err)
		}
		*captured = b
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("local", "local", ""),
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
		o.RetryMaxAttempts = 1
	})
}

func TestLoteDynamoRepository_Update(t *testing.T) {
	lote := entities.Lote{
		ID:             "lote-1",
		Manzano:        "A",
		Numero:         12,
		Nombre:         "A-12",
		Zona:           "Norte",
		SuperficieM2:   250,
		PrecioM2:       150,
		PrecioContado:  37500,
		Estado:         entities.EstadoLoteDisponible,
		FormaVenta:     entities.FormaVentaContado,
		UrbanizacionID: "urb-2",
		CreatedAt:      time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		UpdatedAt:      time.Date(2026, 1, 3, 15, 4, 5, 0, time.UTC),
	}

	t.Run("writes every column including urbanizacion_id", func(t *testing.T) {
		var captured []byte
		attrs := `{"Attributes":{"id":{"S":"lote-1"},"manzano":{"S":"A"},"numero":{"N":"12"},` +
			`"nombre":{"S":"A-12"},"zona":{"S":"Norte"},"superficie_m2":{"S":"250"},` +
			`"precio_m2":{"S":"150"},"precio_contado":{"S":"37500"},"estado":{"S":"DISPONIBLE"},` +
			`"forma_venta":{"S":"CONTADO"},"urbanizacion_id":{"S":"urb-2"},` +
			`"created_at":{"S":"2026-01-02T15:04:05Z"},"updated_at":{"S":"2026-01-03T15:04:05Z"}}}`
		repo := NewLoteDynamoRepository(newStubDynamoClient(t, http.StatusOK, attrs, &captured))

		updated, err := repo.Update(context.Background(), lote)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.UrbanizacionID != "urb-2" {
			t.Fatalf("expected urbanizacion urb-2, got %q", updated.UrbanizacionID)
		}

		var req struct {
			UpdateExpression          string                       `json:"UpdateExpression"`
			ExpressionAttributeValues map[string]map[string]string `json:"ExpressionAttributeValues"`
		}
		if err := json.Unmarshal(captured, &req); err != nil {
			t.Fatalf("decode captured request: %v", err)
		}
		// A move to another urbanizacion must reach the table, not only the
		// scalar columns.
		if !strings.Contains(req.UpdateExpression, "#urbanizacion_id = :urbanizacion_id") {
			t.Fatalf("urbanizacion_id missing from update expression: %q", req.UpdateExpression)
		}
		if got := req.ExpressionAttributeValues[":urbanizacion_id"]["S"]; got != "urb-2" {
			t.Fatalf("expected :urbanizacion_id urb-2, got %q", got)
		}
		if got := req.ExpressionAttributeValues[":zona"]["S"]; got != "Norte" {
			t.Fatalf("expected :zona Norte, got %q", got)
		}
	})

	t.Run("failed existence condition reports not found", func(t *testing.T) {
		var captured []byte
		errBody := `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException",` +
			`"message":"The conditional request failed"}`
		repo := NewLoteDynamoRepository(newStubDynamoClient(t, http.StatusBadRequest, errBody, &captured))

		_, err := repo.Update(context.Background(), lote)
		if !errors.Is(err, interfaces.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
