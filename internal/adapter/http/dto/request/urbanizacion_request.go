package request

import (
	"terranova_lotes/internal/usecase"
)

type CreateUrbanizacionRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Ubicacion string `json:"ubicacion"`
}

func (r CreateUrbanizacionRequest) ToInput() usecase.CreateUrbanizacionInput {
	return usecase.CreateUrbanizacionInput{
		Nombre:    r.Nombre,
		Ubicacion: r.Ubicacion,
	}
}

// UpdateUrbanizacionRequest is a partial patch: absent fields stay nil and
// keep their stored value.
type UpdateUrbanizacionRequest struct {
	Nombre    *string `json:"nombre"`
	Ubicacion *string `json:"ubicacion"`
}

func (r UpdateUrbanizacionRequest) ToInput() usecase.UpdateUrbanizacionInput {
	return usecase.UpdateUrbanizacionInput{
		Nombre:    r.Nombre,
		Ubicacion: r.Ubicacion,
	}
}
