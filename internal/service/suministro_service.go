package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/dto"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/model"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// factorIVA is the Mexican VAT multiplier applied when include_iva is set.
var factorIVA = decimal.RequireFromString("1.16")

// maxConflictosMostrados caps how many folio matches travel in a 409 body;
// the full count is reported separately.
const maxConflictosMostrados = 3

// ValidacionError is a precondition failure detected before the transaction
// opens. Indice is the zero-based position of the offending line item, or -1
// when the header itself is invalid.
type ValidacionError struct {
	Indice  int
	Detalle string
}

func (e *ValidacionError) Error() string {
	if e.Indice < 0 {
		return e.Detalle
	}
	return fmt.Sprintf("suministro %d: %s", e.Indice, e.Detalle)
}

// FolioDuplicadoError carries the advisory duplicate matches; the caller
// decides whether to block or resubmit with permitir_duplicado.
type FolioDuplicadoError struct {
	Conflictos []dto.ConflictoFolio
	Total      int64
}

func (e *FolioDuplicadoError) Error() string {
	return fmt.Sprintf("el folio ya existe en %d registro(s)", e.Total)
}

type SuministroService interface {
	RegistrarMultiples(ctx context.Context, req dto.RegistrarSuministrosRequest) (*dto.RegistrarSuministrosResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSuministroRequest) (*dto.SuministroResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.SuministroResponse, error)
	Listar(ctx context.Context, filter dto.SuministroFilter) (*dto.SuministroListResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	ValidarFolio(ctx context.Context, folio string, excluir []uuid.UUID) (*dto.ValidarFolioResponse, error)
}

type suministroService struct {
	repo          repository.SuministroRepository
	proyectoRepo  repository.ProyectoRepository
	proveedorRepo repository.ProveedorRepository
	catalogoRepo  repository.CatalogoRepository
}

func NewSuministroService(
	repo repository.SuministroRepository,
	proyectoRepo repository.ProyectoRepository,
	proveedorRepo repository.ProveedorRepository,
	catalogoRepo repository.CatalogoRepository,
) SuministroService {
	return &suministroService{
		repo:          repo,
		proyectoRepo:  proyectoRepo,
		proveedorRepo: proveedorRepo,
		catalogoRepo:  catalogoRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// lineaResuelta is a submission line with every reference resolved and every
// derived amount computed, ready for the transaction body. ID is nil for a
// plain create and set when the client asked for an update (which still falls
// back to create when the row no longer exists).
type lineaResuelta struct {
	indice         int
	id             *uuid.UUID
	categoriaID    *uuid.UUID
	unidadMedidaID uuid.UUID
	cantidad       *decimal.Decimal
	precioUnitario *decimal.Decimal
	subtotal       *decimal.Decimal
	costoTotal     *decimal.Decimal
	req            dto.LineaSuministroRequest
}

// ── RegistrarMultiples ───────────────────────────────────────────────────────
// The receipt upsert engine:
//  1. Resolve header references (project, provider) — precondition failures,
//     reported before anything is written.
//  2. Advisory folio check (skipped when no folio or permitir_duplicado).
//  3. Resolve every line's references and derived amounts, failing fast with
//     the offending line index.
//  4. One transaction: per-line create/update plus explicit deletions. Any
//     error rolls everything back and propagates unchanged.
//  5. Re-read affected rows with associations for the response.

func (s *suministroService) RegistrarMultiples(ctx context.Context, req dto.RegistrarSuministrosRequest) (*dto.RegistrarSuministrosResponse, error) {
	proyectoID, err := uuid.Parse(req.InfoRecibo.ProyectoID)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_proyecto inválido"}
	}
	proveedorID, err := uuid.Parse(req.InfoRecibo.ProveedorID)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "id_proveedor inválido"}
	}
	fecha, err := time.Parse("2006-01-02", req.InfoRecibo.Fecha)
	if err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "fecha inválida, se espera YYYY-MM-DD"}
	}

	if _, err := s.proyectoRepo.FindByID(ctx, proyectoID); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el proyecto no existe"}
	}
	if _, err := s.proveedorRepo.FindByID(ctx, proveedorID); err != nil {
		return nil, &ValidacionError{Indice: -1, Detalle: "el proveedor no existe"}
	}

	eliminados := make([]uuid.UUID, 0, len(req.Eliminados))
	for _, raw := range req.Eliminados {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "suministros_eliminados contiene un id inválido"}
		}
		eliminados = append(eliminados, id)
	}

	// Advisory duplicate folio check. Lines that carry an ID are this
	// receipt's own rows and must not flag themselves.
	var advertencia *string
	if folio := folioNormalizado(req.InfoRecibo.Folio); folio != "" {
		propios := make([]uuid.UUID, 0, len(req.Suministros))
		for _, linea := range req.Suministros {
			if linea.ID != nil {
				if id, err := uuid.Parse(*linea.ID); err == nil {
					propios = append(propios, id)
				}
			}
		}
		matches, total, err := s.repo.BuscarPorFolio(ctx, folio, propios, maxConflictosMostrados)
		if err != nil {
			return nil, err
		}
		if total > 0 {
			if !req.PermitirDuplicado {
				return nil, &FolioDuplicadoError{Conflictos: conflictosToDTO(matches), Total: total}
			}
			msg := fmt.Sprintf("el folio ya existe en %d registro(s); se registró de todas formas", total)
			advertencia = &msg
		}
	}

	resueltas, err := s.resolverLineas(ctx, req.Suministros, req.IncludeIVA)
	if err != nil {
		return nil, err
	}

	results := make([]dto.ResultadoLinea, 0, len(resueltas))
	afectados := make([]uuid.UUID, 0, len(resueltas))

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range resueltas {
			linea := &resueltas[i]

			if linea.id != nil {
				existente, err := s.repo.FindByIDTx(tx, *linea.id)
				if err == nil {
					s.aplicarLinea(existente, linea, req)
					if err := s.repo.UpdateTx(ctx, tx, existente); err != nil {
						return err
					}
					results = append(results, dto.ResultadoLinea{Indice: linea.indice, ID: existente.ID.String(), Accion: "actualizado"})
					afectados = append(afectados, existente.ID)
					continue
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				// Stale ID — advisory only, fall through to create.
			}

			nuevo := s.nuevaFila(linea, proyectoID, proveedorID, fecha, req)
			if err := s.repo.CreateTx(ctx, tx, nuevo); err != nil {
				return err
			}
			results = append(results, dto.ResultadoLinea{Indice: linea.indice, ID: nuevo.ID.String(), Accion: "creado"})
			afectados = append(afectados, nuevo.ID)
		}

		for _, id := range eliminados {
			if err := s.repo.DeleteTx(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	filas, err := s.repo.FindByIDs(ctx, afectados)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]model.Suministro, len(filas))
	for _, f := range filas {
		porID[f.ID.String()] = f
	}
	created := make([]dto.SuministroResponse, 0, len(results))
	for _, res := range results {
		if f, ok := porID[res.ID]; ok {
			created = append(created, *suministroToResponse(&f))
		}
	}

	return &dto.RegistrarSuministrosResponse{
		Success:     true,
		Data:        dto.RegistrarSuministrosData{Results: results, Created: created},
		Advertencia: advertencia,
	}, nil
}

// resolverLineas validates every line's references and computes derived
// amounts before the transaction opens, so a bad line fails fast with its
// index and nothing is written.
func (s *suministroService) resolverLineas(ctx context.Context, lineas []dto.LineaSuministroRequest, includeIVA bool) ([]lineaResuelta, error) {
	resueltas := make([]lineaResuelta, 0, len(lineas))
	for i, linea := range lineas {
		r := lineaResuelta{indice: i, req: linea}

		if linea.ID != nil && *linea.ID != "" {
			id, err := uuid.Parse(*linea.ID)
			if err != nil {
				return nil, &ValidacionError{Indice: i, Detalle: "id inválido"}
			}
			r.id = &id
		}

		unidadID, err := uuid.Parse(linea.UnidadMedidaID)
		if err != nil {
			return nil, &ValidacionError{Indice: i, Detalle: "id_unidad_medida inválido"}
		}
		if _, err := s.catalogoRepo.FindUnidad(ctx, unidadID); err != nil {
			return nil, &ValidacionError{Indice: i, Detalle: "la unidad de medida no existe"}
		}
		r.unidadMedidaID = unidadID

		if linea.CategoriaID != nil && *linea.CategoriaID != "" {
			catID, err := uuid.Parse(*linea.CategoriaID)
			if err != nil {
				return nil, &ValidacionError{Indice: i, Detalle: "id_categoria_suministro inválido"}
			}
			if _, err := s.catalogoRepo.FindCategoria(ctx, catID); err != nil {
				return nil, &ValidacionError{Indice: i, Detalle: "la categoría no existe"}
			}
			r.categoriaID = &catID
		}

		r.cantidad = copiaDecimal(linea.Cantidad)
		r.precioUnitario = precioRedondeado(linea.PrecioUnitario)
		r.subtotal = calcularSubtotal(r.cantidad, r.precioUnitario)
		r.costoTotal = calcularTotal(r.subtotal, includeIVA)

		resueltas = append(resueltas, r)
	}
	return resueltas, nil
}

// aplicarLinea merges a resolved line onto an existing row. Fields the client
// left empty are skipped so an edit never blanks stored data. Derived amounts
// are recomputed only when cantidad or precio_unitario actually changed;
// otherwise stored subtotal, costo_total and include_iva are preserved
// untouched (idempotent resubmits).
func (s *suministroService) aplicarLinea(fila *model.Suministro, linea *lineaResuelta, req dto.RegistrarSuministrosRequest) {
	fila.ProyectoID = mustParse(req.InfoRecibo.ProyectoID)
	fila.ProveedorID = mustParse(req.InfoRecibo.ProveedorID)
	if f, err := time.Parse("2006-01-02", req.InfoRecibo.Fecha); err == nil {
		fila.Fecha = f
	}
	asignarStr(&fila.Folio, req.InfoRecibo.Folio)
	asignarStr(&fila.MetodoPago, req.InfoRecibo.MetodoPago)
	asignarStr(&fila.VehiculoTransporte, req.InfoRecibo.VehiculoTransporte)
	asignarStr(&fila.Operador, req.InfoRecibo.Operador)
	asignarStr(&fila.HoraSalida, req.InfoRecibo.HoraSalida)
	asignarStr(&fila.HoraLlegada, req.InfoRecibo.HoraLlegada)
	asignarStr(&fila.Observaciones, req.InfoRecibo.Observaciones)

	if linea.req.Nombre != "" {
		fila.Nombre = linea.req.Nombre
	}
	asignarStr(&fila.CodigoProducto, linea.req.CodigoProducto)
	asignarStr(&fila.DescripcionDetallada, linea.req.DescripcionDetallada)
	if linea.req.Estado != "" {
		fila.Estado = linea.req.Estado
	}
	if linea.categoriaID != nil {
		fila.CategoriaID = linea.categoriaID
	}
	fila.UnidadMedidaID = linea.unidadMedidaID
	if linea.req.M3Entregados != nil {
		fila.M3Entregados = copiaDecimal(linea.req.M3Entregados)
	}
	if linea.req.M3PorEntregar != nil {
		fila.M3PorEntregar = copiaDecimal(linea.req.M3PorEntregar)
	}
	if linea.req.M3Perdidos != nil {
		fila.M3Perdidos = copiaDecimal(linea.req.M3Perdidos)
	}

	cambio := decimalCambia(fila.Cantidad, linea.cantidad) || decimalCambia(fila.PrecioUnitario, linea.precioUnitario)
	if cambio {
		fila.Cantidad = linea.cantidad
		fila.PrecioUnitario = linea.precioUnitario
		fila.Subtotal = linea.subtotal
		fila.CostoTotal = linea.costoTotal
		fila.IncludeIVA = req.IncludeIVA
	}
}

func (s *suministroService) nuevaFila(linea *lineaResuelta, proyectoID, proveedorID uuid.UUID, fecha time.Time, req dto.RegistrarSuministrosRequest) *model.Suministro {
	estado := linea.req.Estado
	if estado == "" {
		estado = "Pendiente"
	}
	return &model.Suministro{
		ProyectoID:           proyectoID,
		ProveedorID:          proveedorID,
		Folio:                strOpcional(req.InfoRecibo.Folio),
		Fecha:                fecha,
		MetodoPago:           strOpcional(req.InfoRecibo.MetodoPago),
		VehiculoTransporte:   strOpcional(req.InfoRecibo.VehiculoTransporte),
		Operador:             strOpcional(req.InfoRecibo.Operador),
		HoraSalida:           strOpcional(req.InfoRecibo.HoraSalida),
		HoraLlegada:          strOpcional(req.InfoRecibo.HoraLlegada),
		Observaciones:        strOpcional(req.InfoRecibo.Observaciones),
		CategoriaID:          linea.categoriaID,
		Nombre:               linea.req.Nombre,
		CodigoProducto:       strOpcional(linea.req.CodigoProducto),
		DescripcionDetallada: strOpcional(linea.req.DescripcionDetallada),
		Cantidad:             linea.cantidad,
		UnidadMedidaID:       linea.unidadMedidaID,
		PrecioUnitario:       linea.precioUnitario,
		Subtotal:             linea.subtotal,
		CostoTotal:           linea.costoTotal,
		IncludeIVA:           req.IncludeIVA,
		Estado:               estado,
		M3Entregados:         copiaDecimal(linea.req.M3Entregados),
		M3PorEntregar:        copiaDecimal(linea.req.M3PorEntregar),
		M3Perdidos:           copiaDecimal(linea.req.M3Perdidos),
	}
}

// ── Actualizar ───────────────────────────────────────────────────────────────

// Actualizar applies a partial update to one line. Subtotal is recomputed
// only when cantidad or precio_unitario changed; costo_total additionally
// when include_iva flips (the stored amounts must stay consistent with the
// stored flag).
func (s *suministroService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSuministroRequest) (*dto.SuministroResponse, error) {
	fila, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoriaID != nil && *req.CategoriaID != "" {
		catID, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_categoria_suministro inválido"}
		}
		if _, err := s.catalogoRepo.FindCategoria(ctx, catID); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "la categoría no existe"}
		}
		fila.CategoriaID = &catID
	}
	if req.UnidadMedidaID != nil && *req.UnidadMedidaID != "" {
		unidadID, err := uuid.Parse(*req.UnidadMedidaID)
		if err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "id_unidad_medida inválido"}
		}
		if _, err := s.catalogoRepo.FindUnidad(ctx, unidadID); err != nil {
			return nil, &ValidacionError{Indice: -1, Detalle: "la unidad de medida no existe"}
		}
		fila.UnidadMedidaID = unidadID
	}

	if req.Nombre != nil && *req.Nombre != "" {
		fila.Nombre = *req.Nombre
	}
	asignarStr(&fila.CodigoProducto, req.CodigoProducto)
	asignarStr(&fila.DescripcionDetallada, req.DescripcionDetallada)
	asignarStr(&fila.Folio, req.Folio)
	asignarStr(&fila.MetodoPago, req.MetodoPago)
	asignarStr(&fila.Observaciones, req.Observaciones)
	if req.Estado != nil && *req.Estado != "" {
		fila.Estado = *req.Estado
	}
	if req.M3Entregados != nil {
		fila.M3Entregados = copiaDecimal(req.M3Entregados)
	}
	if req.M3PorEntregar != nil {
		fila.M3PorEntregar = copiaDecimal(req.M3PorEntregar)
	}
	if req.M3Perdidos != nil {
		fila.M3Perdidos = copiaDecimal(req.M3Perdidos)
	}

	cantidad := fila.Cantidad
	if req.Cantidad != nil {
		cantidad = copiaDecimal(req.Cantidad)
	}
	precio := fila.PrecioUnitario
	if req.PrecioUnitario != nil {
		precio = precioRedondeado(req.PrecioUnitario)
	}
	include := fila.IncludeIVA
	if req.IncludeIVA != nil {
		include = *req.IncludeIVA
	}

	montoCambia := decimalCambia(fila.Cantidad, cantidad) || decimalCambia(fila.PrecioUnitario, precio)
	if montoCambia {
		fila.Cantidad = cantidad
		fila.PrecioUnitario = precio
		fila.Subtotal = calcularSubtotal(cantidad, precio)
	}
	if montoCambia || include != fila.IncludeIVA {
		fila.IncludeIVA = include
		fila.CostoTotal = calcularTotal(fila.Subtotal, include)
	}

	if err := s.repo.UpdateTx(ctx, s.repo.DB(), fila); err != nil {
		return nil, err
	}
	actualizado, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return suministroToResponse(actualizado), nil
}

// ── Queries / delete ─────────────────────────────────────────────────────────

func (s *suministroService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.SuministroResponse, error) {
	fila, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return suministroToResponse(fila), nil
}

func (s *suministroService) Listar(ctx context.Context, filter dto.SuministroFilter) (*dto.SuministroListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	filas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SuministroResponse, 0, len(filas))
	for i := range filas {
		data = append(data, *suministroToResponse(&filas[i]))
	}
	return &dto.SuministroListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *suministroService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ValidarFolio is the detector as its own endpoint: the UI calls it while the
// capturist types, before submitting.
func (s *suministroService) ValidarFolio(ctx context.Context, folio string, excluir []uuid.UUID) (*dto.ValidarFolioResponse, error) {
	if folioNormalizado(&folio) == "" {
		return &dto.ValidarFolioResponse{Conflictos: []dto.ConflictoFolio{}}, nil
	}
	matches, total, err := s.repo.BuscarPorFolio(ctx, folio, excluir, maxConflictosMostrados)
	if err != nil {
		return nil, err
	}
	return &dto.ValidarFolioResponse{Conflictos: conflictosToDTO(matches), TotalConflictos: total}, nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func folioNormalizado(folio *string) string {
	if folio == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*folio))
}

// precioRedondeado rounds a unit price to cent granularity before any
// derivation; every downstream amount uses the rounded value.
func precioRedondeado(p *decimal.Decimal) *decimal.Decimal {
	if p == nil {
		return nil
	}
	r := p.Round(2)
	return &r
}

// calcularSubtotal requires both operands; a missing one yields NULL, not 0.
func calcularSubtotal(cantidad, precio *decimal.Decimal) *decimal.Decimal {
	if cantidad == nil || precio == nil {
		return nil
	}
	st := cantidad.Mul(*precio).Round(2)
	return &st
}

func calcularTotal(subtotal *decimal.Decimal, includeIVA bool) *decimal.Decimal {
	if subtotal == nil {
		return nil
	}
	if !includeIVA {
		c := *subtotal
		return &c
	}
	t := subtotal.Mul(factorIVA).Round(2)
	return &t
}

func copiaDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func decimalCambia(a, b *decimal.Decimal) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return !a.Equal(*b)
}

// asignarStr overwrites dst only when the client supplied a non-empty value;
// nil and "" both mean "leave the stored value alone".
func asignarStr(dst **string, src *string) {
	if src != nil && *src != "" {
		v := *src
		*dst = &v
	}
}

func strOpcional(src *string) *string {
	if src == nil || *src == "" {
		return nil
	}
	v := *src
	return &v
}

func mustParse(raw string) uuid.UUID {
	id, _ := uuid.Parse(raw)
	return id
}

func conflictosToDTO(filas []model.Suministro) []dto.ConflictoFolio {
	out := make([]dto.ConflictoFolio, 0, len(filas))
	for _, f := range filas {
		c := dto.ConflictoFolio{
			ID:     f.ID.String(),
			Folio:  f.Folio,
			Fecha:  f.Fecha.Format("2006-01-02"),
			Nombre: f.Nombre,
		}
		if f.Proveedor != nil {
			c.Proveedor = &f.Proveedor.Nombre
		}
		if f.Proyecto != nil {
			c.Proyecto = &f.Proyecto.Nombre
		}
		out = append(out, c)
	}
	return out
}

func suministroToResponse(f *model.Suministro) *dto.SuministroResponse {
	resp := &dto.SuministroResponse{
		ID:                   f.ID.String(),
		ProyectoID:           f.ProyectoID.String(),
		ProveedorID:          f.ProveedorID.String(),
		Folio:                f.Folio,
		Fecha:                f.Fecha.Format("2006-01-02"),
		MetodoPago:           f.MetodoPago,
		Nombre:               f.Nombre,
		CodigoProducto:       f.CodigoProducto,
		DescripcionDetallada: f.DescripcionDetallada,
		Cantidad:             f.Cantidad,
		UnidadMedidaID:       f.UnidadMedidaID.String(),
		PrecioUnitario:       f.PrecioUnitario,
		Subtotal:             f.Subtotal,
		CostoTotal:           f.CostoTotal,
		IncludeIVA:           f.IncludeIVA,
		Estado:               f.Estado,
		M3Entregados:         f.M3Entregados,
		M3PorEntregar:        f.M3PorEntregar,
		M3Perdidos:           f.M3Perdidos,
		Observaciones:        f.Observaciones,
		CreatedAt:            f.CreatedAt.UTC().Format(time.RFC3339),
	}
	if f.CategoriaID != nil {
		id := f.CategoriaID.String()
		resp.CategoriaID = &id
	}
	if f.Proyecto != nil {
		resp.Proyecto = &f.Proyecto.Nombre
	}
	if f.Proveedor != nil {
		resp.Proveedor = &f.Proveedor.Nombre
	}
	if f.Categoria != nil {
		resp.Categoria = &f.Categoria.Nombre
	}
	if f.UnidadMedida != nil {
		resp.UnidadMedida = &f.UnidadMedida.Nombre
	}
	return resp
}
