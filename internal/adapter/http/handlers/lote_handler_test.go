package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"terranova_lotes/internal/adapter/http/handlers/mocks"
	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase"
	"terranova_lotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLoteHandler_CreateLote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.POST("/v1/lotes", h.CreateLote)

		req := httptest.NewRequest(http.MethodPost, "/v1/lotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("expected success=false, got %s", w.Body.String())
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.POST("/v1/lotes", h.CreateLote)

		req := httptest.NewRequest(http.MethodPost, "/v1/lotes", bytes.NewBufferString(`{"manzano":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing zona", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.POST("/v1/lotes", h.CreateLote)

		req := httptest.NewRequest(http.MethodPost, "/v1/lotes",
			bytes.NewBufferString(`{"manzano":"A","numero":12,"superficie_m2":250,"precio_m2":150,"urbanizacion_id":"urb-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.POST("/v1/lotes", h.CreateLote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(usecase.LoteResult{}, pkg.NewConflict("El lote \"A-12\" ya existe").WithField("numero", "Número ocupado"))

		req := httptest.NewRequest(http.MethodPost, "/v1/lotes",
			bytes.NewBufferString(`{"manzano":"A","numero":12,"zona":"Norte","superficie_m2":250,"precio_m2":150,"urbanizacion_id":"urb-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["errors"] == nil {
			t.Fatalf("expected field errors in body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.POST("/v1/lotes", h.CreateLote)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateLoteInput{
			Manzano:        "A",
			Numero:         12,
			Zona:           "Norte",
			SuperficieM2:   250,
			PrecioM2:       150,
			UrbanizacionID: "urb-1",
		}).Return(usecase.LoteResult{
			Lote: entities.Lote{
				ID:             "lote-1",
				Manzano:        "A",
				Numero:         12,
				Nombre:         "A-12",
				Zona:           "Norte",
				SuperficieM2:   250,
				PrecioM2:       150,
				PrecioContado:  37500,
				Estado:         entities.EstadoLoteDisponible,
				UrbanizacionID: "urb-1",
			},
			AffectedViews: []views.View{views.LoteList, views.LoteDetail("lote-1"), views.UrbanizacionDetail("urb-1")},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/lotes",
			bytes.NewBufferString(`{"manzano":"A","numero":12,"zona":"Norte","superficie_m2":250,"precio_m2":150,"urbanizacion_id":"urb-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Success       bool     `json:"success"`
			AffectedViews []string `json:"affected_views"`
			Data          struct {
				Nombre        string  `json:"nombre"`
				PrecioContado float64 `json:"precio_contado"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Data.Nombre != "A-12" || body.Data.PrecioContado != 37500 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if len(body.AffectedViews) != 3 {
			t.Fatalf("expected 3 affected views, got %v", body.AffectedViews)
		}
	})
}

func TestLoteHandler_UpdateLote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("partial body forwards only supplied fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/lotes/:id", h.UpdateLote)

		uc.EXPECT().Update(gomock.Any(), "lote-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.UpdateLoteInput) (usecase.LoteResult, error) {
				if in.PrecioM2 == nil || *in.PrecioM2 != 200 {
					t.Fatalf("expected precio_m2 pointer 200, got %+v", in)
				}
				if in.Manzano != nil || in.Numero != nil {
					t.Fatalf("untouched fields must stay nil, got %+v", in)
				}
				return usecase.LoteResult{Lote: entities.Lote{ID: "lote-1"}}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/lotes/lote-1", bytes.NewBufferString(`{"precio_m2":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/lotes/:id", h.UpdateLote)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).
			Return(usecase.LoteResult{}, pkg.NewNotFound("Lote no encontrado"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/lotes/missing", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestLoteHandler_DeleteLote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILoteUseCase(ctrl)
	h := NewLoteHandler(uc)

	r := gin.New()
	r.DELETE("/v1/lotes/:id", h.DeleteLote)

	uc.EXPECT().Delete(gomock.Any(), "lote-1").Return(usecase.LoteResult{
		Lote:          entities.Lote{ID: "lote-1", Nombre: "A-12"},
		AffectedViews: []views.View{views.LoteList},
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/lotes/lote-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoteHandler_GetAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.GET("/v1/lotes/:id", h.GetLote)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Lote{}, pkg.NewNotFound("Lote no encontrado"))

		req := httptest.NewRequest(http.MethodGet, "/v1/lotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILoteUseCase(ctrl)
		h := NewLoteHandler(uc)

		r := gin.New()
		r.GET("/v1/lotes", h.ListLotes)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Lote{{ID: "lote-1"}, {ID: "lote-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/lotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data []json.RawMessage `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Data) != 2 {
			t.Fatalf("expected 2 lotes, got %s", w.Body.String())
		}
	})
}
