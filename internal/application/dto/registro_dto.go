package dto

import "github.com/shopspring/decimal"

// AuditoriaDetalleResponse fila de auditoría con los snapshots abiertos:
// el mapa campo -> valor y la lista de claves, para pintar la tabla de
// diferencias en el frontend.
type AuditoriaDetalleResponse struct {
	AuditoriaItem
	ValoresPrevios map[string]any `json:"valores_previos"`
	ValoresNuevos  map[string]any `json:"valores_nuevos"`
	CamposPrevios  []string       `json:"campos_previos"`
	CamposNuevos   []string       `json:"campos_nuevos"`
}

// FacturaListadoItem fila del listado unificado de facturas.
type FacturaListadoItem struct {
	Numero      int64           `json:"numero_factura"`
	Entidad     string          `json:"entidad"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       string          `json:"fecha"`
	Hora        string          `json:"hora"`
	Tipo        string          `json:"facturaType"`
	TipoEntidad string          `json:"tipo_entidad"`
}

// RemitoCobradoItem remito alcanzado por una cobranza, con una línea.
type RemitoCobradoItem struct {
	RemitoID int64           `json:"id_remito"`
	Fecha    string          `json:"fecha_remito"`
	Total    decimal.Decimal `json:"monto_total"`
	Saldo    decimal.Decimal `json:"saldo_restante"`
	Producto string          `json:"nombre_producto"`
	Cantidad int64           `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// DetalleCompraItem línea de una factura de compra.
type DetalleCompraItem struct {
	ProductoID int64           `json:"id_producto"`
	Producto   string          `json:"nombre_producto"`
	Cantidad   int64           `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// FacturaDetalleResponse cabecera de una factura con sus líneas: remitos
// cobrados para las de venta, detalles de compra para las de compra.
type FacturaDetalleResponse struct {
	Numero    int64               `json:"numero_factura"`
	Entidad   string              `json:"entidad"`
	Telefono  string              `json:"telefono"`
	Direccion string              `json:"direccion"`
	Monto     decimal.Decimal     `json:"monto"`
	Fecha     string              `json:"fecha"`
	Hora      string              `json:"hora"`
	Tipo      string              `json:"facturaType"`
	Remitos   []RemitoCobradoItem `json:"remitos,omitempty"`
	Detalles  []DetalleCompraItem `json:"detalles,omitempty"`
}
