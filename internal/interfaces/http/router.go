package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gestorpyme/gestor-api/internal/application/auth"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/registry"
	"github.com/gestorpyme/gestor-api/internal/application/remitos"
	"github.com/gestorpyme/gestor-api/internal/application/reports"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/application/users"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC    *catalog.ClienteUseCase
	ProveedorUC  *catalog.ProveedorUseCase
	ProductoUC   *catalog.ProductoUseCase
	UserUC       *users.UserUseCase
	RemitoUC     *remitos.RemitoUseCase
	PurchaseUC   *transactions.PurchaseUseCase
	CollectionUC *transactions.CollectionUseCase
	ReportUC     *reports.ReportUseCase
	RegistryUC   *registry.RegistryUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	JWTExpMin    int
}

// Router registra las rutas de la API. Las mutaciones auditadas, las
// transacciones y getLoginUser exigen la cookie de sesión; las altas y
// lecturas no (asimetría heredada del frontend original).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protegido := AuthMiddleware(deps.JWTSecret)

	// Sesión
	session := api.Group("/session")
	sessionHandler := NewSessionHandler(deps.AuthUC, deps.JWTExpMin)
	session.Post("/login", sessionHandler.Login)
	session.Post("/logout", sessionHandler.Logout)
	session.Get("/getLoginUser", protegido, sessionHandler.GetLoginUser)

	// Clientes
	customer := api.Group("/customer")
	customerHandler := NewCustomerHandler(deps.ClienteUC)
	customer.Post("/", customerHandler.Create)
	customer.Get("/", customerHandler.List)
	customer.Get("/:id", customerHandler.GetByID)
	customer.Put("/:id", protegido, customerHandler.Update)
	customer.Patch("/:id", protegido, customerHandler.Hide)

	// Proveedores
	proveedor := api.Group("/proveedor")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedor.Post("/", proveedorHandler.Create)
	proveedor.Get("/", proveedorHandler.List)
	proveedor.Get("/:id/productos", proveedorHandler.ProductosComprados)
	proveedor.Get("/:id", proveedorHandler.GetByID)
	proveedor.Put("/:id", protegido, proveedorHandler.Update)
	proveedor.Patch("/:id", protegido, proveedorHandler.Hide)

	// Productos (la ruta fija va antes que :id)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductoUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/minimumStockControl", productHandler.ControlStockMinimo)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", protegido, productHandler.Update)
	products.Patch("/:id", protegido, productHandler.Hide)

	// Usuarios del sistema (la ruta fija va antes que :id)
	user := api.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	user.Post("/", userHandler.Create)
	user.Get("/passwordReset", userHandler.RequestPasswordReset)
	user.Patch("/passwordReset", userHandler.ResetPassword)
	user.Get("/", userHandler.List)
	user.Get("/:id", userHandler.GetByID)
	user.Put("/:id", protegido, userHandler.Update)
	user.Patch("/:id", protegido, userHandler.Hide)

	// Remitos
	remitosGroup := api.Group("/remitos")
	remitoHandler := NewRemitoHandler(deps.RemitoUC)
	remitosGroup.Post("/", remitoHandler.Create)
	remitosGroup.Get("/", remitoHandler.List)
	remitosGroup.Get("/byClient/:clientId", remitoHandler.ByCliente)
	remitosGroup.Get("/:id", remitoHandler.GetByID)

	// Transacciones (protegidas: el usuario queda en el libro de caja)
	tx := api.Group("/transactions", protegido)
	txHandler := NewTransactionsHandler(deps.PurchaseUC, deps.CollectionUC)
	tx.Post("/purchase", txHandler.Purchase)
	tx.Post("/collectionAndBilling", txHandler.Collection)

	// Reportes
	report := api.Group("/report")
	reportHandler := NewReportHandler(deps.ReportUC)
	report.Get("/sales", reportHandler.Sales)
	report.Get("/inventory", reportHandler.Inventory)
	report.Get("/debt", reportHandler.Debt)
	report.Get("/purchase", reportHandler.Purchases)
	report.Get("/cashflow", reportHandler.CashFlow)
	report.Get("/audit", reportHandler.Audit)

	// Registros
	registros := api.Group("/registros")
	registryHandler := NewRegistryHandler(deps.RegistryUC)
	registros.Get("/caja", registryHandler.Caja)
	registros.Get("/auditoria", registryHandler.Auditoria)
	registros.Get("/auditorias/detail/:id", registryHandler.AuditoriaDetalle)
	registros.Get("/facturas", registryHandler.Facturas)
	registros.Get("/facturas/detail/:id", registryHandler.FacturaDetalle)
}
