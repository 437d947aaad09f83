package registry

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/gestorpyme/gestor-api/internal/application/dto"
	"github.com/gestorpyme/gestor-api/internal/domain"
	"github.com/gestorpyme/gestor-api/internal/domain/repository"
)

// RegistryUseCase listados de caja, auditoría y facturas. Solo lectura.
type RegistryUseCase struct {
	registroRepo repository.RegistroRepository
}

// NewRegistryUseCase construye el caso de uso.
func NewRegistryUseCase(registroRepo repository.RegistroRepository) *RegistryUseCase {
	return &RegistryUseCase{registroRepo: registroRepo}
}

// Caja libro de caja completo con usuario y tipo resueltos.
func (uc *RegistryUseCase) Caja(ctx context.Context) ([]dto.MovimientoCajaItem, error) {
	rows, err := uc.registroRepo.ListCaja(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoCajaItem, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.MovimientoCajaItem{
			ID:      m.ID,
			Usuario: m.Usuario,
			Factura: m.Factura,
			Fecha:   m.Fecha.Format("2006-01-02"),
			Hora:    m.Hora,
			Monto:   m.Monto,
			Tipo:    m.Tipo,
		})
	}
	return out, nil
}

// Auditoria historial de cambios completo.
func (uc *RegistryUseCase) Auditoria(ctx context.Context) ([]dto.AuditoriaItem, error) {
	rows, err := uc.registroRepo.ListAuditoria(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditoriaItem, 0, len(rows))
	for _, a := range rows {
		out = append(out, toAuditoriaItem(a))
	}
	return out, nil
}

// AuditoriaDetalle fila de auditoría con los snapshots abiertos como
// mapa y sus listas de campos.
func (uc *RegistryUseCase) AuditoriaDetalle(ctx context.Context, id int64) (*dto.AuditoriaDetalleResponse, error) {
	row, err := uc.registroRepo.GetAuditoria(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	previos := parseSnapshot(row.ValoresPrevios)
	nuevos := parseSnapshot(row.ValoresNuevos)
	return &dto.AuditoriaDetalleResponse{
		AuditoriaItem:  toAuditoriaItem(&row.AuditoriaResumen),
		ValoresPrevios: previos,
		ValoresNuevos:  nuevos,
		CamposPrevios:  sortedKeys(previos),
		CamposNuevos:   sortedKeys(nuevos),
	}, nil
}

// Facturas listado unificado de facturas de venta y de compra.
func (uc *RegistryUseCase) Facturas(ctx context.Context) ([]dto.FacturaListadoItem, error) {
	rows, err := uc.registroRepo.ListFacturas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FacturaListadoItem, 0, len(rows))
	for _, f := range rows {
		out = append(out, dto.FacturaListadoItem{
			Numero:      f.Numero,
			Entidad:     f.Entidad,
			Monto:       f.Monto,
			Fecha:       f.Fecha.Format("2006-01-02"),
			Hora:        f.Hora,
			Tipo:        f.Tipo,
			TipoEntidad: f.TipoEntidad,
		})
	}
	return out, nil
}

// FacturaDetalle detalle de una factura según su tipo: los remitos
// cobrados para una venta, las líneas de compra para una compra.
func (uc *RegistryUseCase) FacturaDetalle(ctx context.Context, id int64, facturaType string) (*dto.FacturaDetalleResponse, error) {
	switch facturaType {
	case "venta":
		return uc.detalleVenta(ctx, id)
	case "compra":
		return uc.detalleCompra(ctx, id)
	default:
		return nil, domain.ErrInvalidInput
	}
}

func (uc *RegistryUseCase) detalleVenta(ctx context.Context, pagoID int64) (*dto.FacturaDetalleResponse, error) {
	cab, err := uc.registroRepo.GetFacturaVenta(ctx, pagoID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, domain.ErrNotFound
	}
	remitos, err := uc.registroRepo.RemitosDeCobranza(ctx, pagoID)
	if err != nil {
		return nil, err
	}
	resp := toFacturaDetalle(cab)
	for _, r := range remitos {
		resp.Remitos = append(resp.Remitos, dto.RemitoCobradoItem{
			RemitoID: r.RemitoID,
			Fecha:    r.Fecha.Format("2006-01-02"),
			Total:    r.Total,
			Saldo:    r.Saldo,
			Producto: r.Producto,
			Cantidad: r.Cantidad,
			Subtotal: r.Subtotal,
		})
	}
	return resp, nil
}

func (uc *RegistryUseCase) detalleCompra(ctx context.Context, facturaID int64) (*dto.FacturaDetalleResponse, error) {
	cab, err := uc.registroRepo.GetFacturaCompra(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	if cab == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.registroRepo.DetallesDeCompra(ctx, facturaID)
	if err != nil {
		return nil, err
	}
	resp := toFacturaDetalle(cab)
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleCompraItem{
			ProductoID: d.ProductoID,
			Producto:   d.Producto,
			Cantidad:   d.Cantidad,
			Subtotal:   d.Subtotal,
		})
	}
	return resp, nil
}

// parseSnapshot abre un snapshot JSON plano (campo -> valor). Las
// ocultaciones también son objetos, de un solo campo is_hidden.
func parseSnapshot(raw []byte) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toAuditoriaItem(a *repository.AuditoriaResumen) dto.AuditoriaItem {
	return dto.AuditoriaItem{
		ID:         a.ID,
		Usuario:    a.Usuario,
		Rol:        a.Rol,
		Fecha:      a.Fecha.Format("2006-01-02"),
		Hora:       a.Hora,
		Tabla:      a.Tabla,
		RegistroID: a.RegistroID,
		Tipo:       a.Tipo,
	}
}

func toFacturaDetalle(f *repository.FacturaDetalle) *dto.FacturaDetalleResponse {
	return &dto.FacturaDetalleResponse{
		Numero:    f.Numero,
		Entidad:   f.Entidad,
		Telefono:  f.Telefono,
		Direccion: f.Direccion,
		Monto:     f.Monto,
		Fecha:     f.Fecha.Format("2006-01-02"),
		Hora:      f.Hora,
		Tipo:      f.Tipo,
	}
}
