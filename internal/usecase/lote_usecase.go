package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"terranova_lotes/internal/domain/entities"
	"terranova_lotes/internal/domain/finance"
	"terranova_lotes/internal/domain/rules"
	"terranova_lotes/internal/domain/views"
	"terranova_lotes/internal/usecase/interfaces"
	"terranova_lotes/pkg"

	"github.com/google/uuid"
)

// CreateLoteInput carries the shape-validated fields for a new lote. Estado
// defaults to DISPONIBLE when empty; FormaVenta is optional.
type CreateLoteInput struct {
	Manzano        string
	Numero         int
	Zona           string
	SuperficieM2   float64
	PrecioM2       float64
	Estado         entities.EstadoLote
	FormaVenta     entities.FormaVenta
	UrbanizacionID string
}

// UpdateLoteInput is a partial patch; nil fields keep their current value.
// The manager resolves every effective value against the loaded record before
// re-validating, and recomputes the derived fields whose inputs changed.
type UpdateLoteInput struct {
	Manzano        *string
	Numero         *int
	Zona           *string
	SuperficieM2   *float64
	PrecioM2       *float64
	Estado         *entities.EstadoLote
	FormaVenta     *entities.FormaVenta
	UrbanizacionID *string
}

// LoteResult is the success outcome of a lote mutation.
type LoteResult struct {
	Lote          entities.Lote
	AffectedViews []views.View
}

// ILoteUseCase manages lote records and their derived fields.
type ILoteUseCase interface {
	Create(ctx context.Context, in CreateLoteInput) (LoteResult, error)
	Update(ctx context.Context, id string, in UpdateLoteInput) (LoteResult, error)
	Delete(ctx context.Context, id string) (LoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Lote, error)
	List(ctx context.Context) ([]entities.Lote, error)
}

type LoteUseCase struct {
	repo    interfaces.ILoteRepository
	urbRepo interfaces.IUrbanizacionRepository
}

var _ ILoteUseCase = (*LoteUseCase)(nil)

func NewLoteUseCase(repo interfaces.ILoteRepository, urbRepo interfaces.IUrbanizacionRepository) *LoteUseCase {
	return &LoteUseCase{repo: repo, urbRepo: urbRepo}
}

func (u *LoteUseCase) Create(ctx context.Context, in CreateLoteInput) (LoteResult, error) {
	in.Manzano = strings.TrimSpace(in.Manzano)
	in.Zona = strings.TrimSpace(in.Zona)
	if in.Estado == "" {
		in.Estado = entities.EstadoLoteDisponible
	}
	if appErr := validateLoteFields(in.Manzano, in.Numero, in.Zona, in.SuperficieM2, in.PrecioM2, in.Estado, in.FormaVenta); appErr != nil {
		return LoteResult{}, appErr
	}

	urb, appErr := u.resolveUrbanizacion(ctx, in.UrbanizacionID)
	if appErr != nil {
		return LoteResult{}, appErr
	}

	conflicto, err := u.repo.FindByUbicacion(ctx, in.UrbanizacionID, in.Manzano, in.Numero)
	if err != nil {
		return LoteResult{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckLoteUbicacionLibre(asLote(conflicto), "", in.Manzano, in.Numero, urb.Nombre); ruleErr != nil {
		return LoteResult{}, ruleErr
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.Lote{
		ID:             uuid.NewString(),
		Manzano:        in.Manzano,
		Numero:         in.Numero,
		Nombre:         entities.LoteNombre(in.Manzano, in.Numero),
		Zona:           in.Zona,
		SuperficieM2:   in.SuperficieM2,
		PrecioM2:       in.PrecioM2,
		PrecioContado:  finance.CashPrice(in.SuperficieM2, in.PrecioM2),
		Estado:         in.Estado,
		FormaVenta:     in.FormaVenta,
		UrbanizacionID: in.UrbanizacionID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return LoteResult{}, u.classifyWriteError(err, in.Manzano, in.Numero, urb.Nombre)
	}

	log.Printf("[lote][usecase] created id=%s nombre=%q urbanizacion=%s", created.ID, created.Nombre, created.UrbanizacionID)
	return LoteResult{
		Lote: created,
		AffectedViews: []views.View{
			views.LoteList,
			views.LoteDetail(created.ID),
			views.UrbanizacionDetail(created.UrbanizacionID),
		},
	}, nil
}

func (u *LoteUseCase) Update(ctx context.Context, id string, in UpdateLoteInput) (LoteResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return LoteResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return LoteResult{}, pkg.NewNotFound("Lote no encontrado").
			WithField("id", "Lote especificado no existe")
	}

	// Resolve every effective value with fallback-to-current; the loaded
	// record itself is never mutated.
	merged := current
	if in.Manzano != nil {
		merged.Manzano = strings.TrimSpace(*in.Manzano)
	}
	if in.Numero != nil {
		merged.Numero = *in.Numero
	}
	if in.Zona != nil {
		merged.Zona = strings.TrimSpace(*in.Zona)
	}
	if in.SuperficieM2 != nil {
		merged.SuperficieM2 = *in.SuperficieM2
	}
	if in.PrecioM2 != nil {
		merged.PrecioM2 = *in.PrecioM2
	}
	if in.Estado != nil {
		merged.Estado = *in.Estado
	}
	if in.FormaVenta != nil {
		merged.FormaVenta = *in.FormaVenta
	}
	if in.UrbanizacionID != nil {
		merged.UrbanizacionID = *in.UrbanizacionID
	}

	if appErr := validateLoteFields(merged.Manzano, merged.Numero, merged.Zona, merged.SuperficieM2, merged.PrecioM2, merged.Estado, merged.FormaVenta); appErr != nil {
		return LoteResult{}, appErr
	}

	// Re-resolve the effective urbanizacion even when unchanged: the conflict
	// message needs its name, and a stored reference that no longer resolves
	// must refuse the write rather than write blind.
	urb, appErr := u.resolveUrbanizacion(ctx, merged.UrbanizacionID)
	if appErr != nil {
		return LoteResult{}, appErr
	}

	ubicacionChanged := in.Manzano != nil || in.Numero != nil || in.UrbanizacionID != nil
	if ubicacionChanged {
		conflicto, err := u.repo.FindByUbicacion(ctx, merged.UrbanizacionID, merged.Manzano, merged.Numero)
		if err != nil {
			return LoteResult{}, pkg.NewInternal(err)
		}
		if ruleErr := rules.CheckLoteUbicacionLibre(asLote(conflicto), id, merged.Manzano, merged.Numero, urb.Nombre); ruleErr != nil {
			return LoteResult{}, ruleErr
		}
		merged.Nombre = entities.LoteNombre(merged.Manzano, merged.Numero)
	}
	if in.SuperficieM2 != nil || in.PrecioM2 != nil {
		merged.PrecioContado = finance.CashPrice(merged.SuperficieM2, merged.PrecioM2)
	}

	merged.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, merged)
	if err != nil {
		return LoteResult{}, u.classifyWriteError(err, merged.Manzano, merged.Numero, urb.Nombre)
	}

	log.Printf("[lote][usecase] updated id=%s nombre=%q", updated.ID, updated.Nombre)
	return LoteResult{
		Lote: updated,
		AffectedViews: []views.View{
			views.LoteList,
			views.LoteDetail(id),
			views.LoteUpdateForm(id),
			views.UrbanizacionDetail(updated.UrbanizacionID),
		},
	}, nil
}

func (u *LoteUseCase) Delete(ctx context.Context, id string) (LoteResult, error) {
	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return LoteResult{}, pkg.NewInternal(err)
	}
	if current.ID == "" {
		return LoteResult{}, pkg.NewNotFound("Lote no encontrado").
			WithField("id", "Lote especificado no existe")
	}

	// The repository cascades to the financiamientos referencing this lot.
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[lote][usecase] delete failed id=%s err=%v", id, err)
		return LoteResult{}, pkg.NewInternal(err)
	}

	log.Printf("[lote][usecase] deleted id=%s nombre=%q", id, current.Nombre)
	return LoteResult{
		Lote: current,
		AffectedViews: []views.View{
			views.LoteList,
			views.UrbanizacionDetail(current.UrbanizacionID),
		},
	}, nil
}

func (u *LoteUseCase) GetByID(ctx context.Context, id string) (entities.Lote, error) {
	found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lote{}, pkg.NewInternal(err)
	}
	if found.ID == "" {
		return entities.Lote{}, pkg.NewNotFound("Lote no encontrado")
	}
	return found, nil
}

func (u *LoteUseCase) List(ctx context.Context) ([]entities.Lote, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, pkg.NewInternal(err)
	}
	return all, nil
}

func (u *LoteUseCase) resolveUrbanizacion(ctx context.Context, id string) (entities.Urbanizacion, *pkg.AppError) {
	urb, err := u.urbRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Urbanizacion{}, pkg.NewInternal(err)
	}
	if ruleErr := rules.CheckUrbanizacionReferencia(asUrbanizacion(urb)); ruleErr != nil {
		return entities.Urbanizacion{}, ruleErr
	}
	return urb, nil
}

// classifyWriteError re-classifies constraint failures that only surfaced at
// the persistence layer (a pre-check lost a race) into the same outcomes the
// rules would have produced.
func (u *LoteUseCase) classifyWriteError(err error, manzano string, numero int, urbNombre string) *pkg.AppError {
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		conflicto := &entities.Lote{ID: "concurrent"}
		return rules.CheckLoteUbicacionLibre(conflicto, "", manzano, numero, urbNombre)
	}
	if errors.Is(err, interfaces.ErrForeignKeyViolation) {
		return rules.CheckUrbanizacionReferencia(nil)
	}
	if errors.Is(err, interfaces.ErrNotFound) {
		// The lote was deleted between the lookup and the statement.
		return pkg.NewNotFound("Lote no encontrado")
	}
	log.Printf("[lote][usecase] write failed err=%v", err)
	return pkg.NewInternal(err)
}

func validateLoteFields(manzano string, numero int, zona string, superficieM2, precioM2 float64, estado entities.EstadoLote, formaVenta entities.FormaVenta) *pkg.AppError {
	switch {
	case manzano == "":
		return pkg.NewInvalidArgument("El manzano es requerido").
			WithField("manzano", "El manzano es requerido")
	case utf8.RuneCountInString(manzano) > 50:
		return pkg.NewInvalidArgument("El manzano no debe exceder de 50 caracteres").
			WithField("manzano", "El manzano no debe exceder de 50 caracteres")
	case numero <= 0:
		return pkg.NewInvalidArgument("El número debe ser positivo").
			WithField("numero", "El número debe ser positivo")
	case zona == "":
		return pkg.NewInvalidArgument("La zona es requerida").
			WithField("zona", "La zona es requerida")
	case utf8.RuneCountInString(zona) > 100:
		return pkg.NewInvalidArgument("La zona no debe exceder de 100 caracteres").
			WithField("zona", "La zona no debe exceder de 100 caracteres")
	case superficieM2 <= 0:
		return pkg.NewInvalidArgument("La superficie debe ser mayor a 0").
			WithField("superficieM2", "La superficie debe ser mayor a 0")
	case precioM2 <= 0:
		return pkg.NewInvalidArgument("El precio debe ser mayor a 0").
			WithField("precioM2", "El precio debe ser mayor a 0")
	case !entities.ValidEstadoLote(estado):
		return pkg.NewInvalidArgument("Estado de lote inválido").
			WithField("estado", "Estado de lote inválido")
	case !entities.ValidFormaVenta(formaVenta):
		return pkg.NewInvalidArgument("Forma de venta inválida").
			WithField("formaVenta", "Forma de venta inválida")
	}
	return nil
}

func asLote(l entities.Lote) *entities.Lote {
	if l.ID == "" {
		return nil
	}
	return &l
}

func asUrbanizacion(u entities.Urbanizacion) *entities.Urbanizacion {
	if u.ID == "" {
		return nil
	}
	return &u
}
