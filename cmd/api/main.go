package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gestorpyme/gestor-api/internal/application/auth"
	"github.com/gestorpyme/gestor-api/internal/application/catalog"
	"github.com/gestorpyme/gestor-api/internal/application/registry"
	"github.com/gestorpyme/gestor-api/internal/application/remitos"
	"github.com/gestorpyme/gestor-api/internal/application/reports"
	"github.com/gestorpyme/gestor-api/internal/application/transactions"
	"github.com/gestorpyme/gestor-api/internal/application/users"
	"github.com/gestorpyme/gestor-api/internal/infrastructure/mail"
	"github.com/gestorpyme/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorpyme/gestor-api/internal/interfaces/http"
	"github.com/gestorpyme/gestor-api/pkg/config"
	"github.com/gestorpyme/gestor-api/pkg/logger"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	remitoRepo := postgres.NewRemitoRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	registroRepo := postgres.NewRegistroRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := mail.NewLogMailer(log, cfg.Mail.From)

	clienteUC := catalog.NewClienteUseCase(txRunner, clienteRepo)
	proveedorUC := catalog.NewProveedorUseCase(txRunner, proveedorRepo, compraRepo)
	productoUC := catalog.NewProductoUseCase(txRunner, productoRepo)
	userUC := users.NewUserUseCase(txRunner, usuarioRepo, mailer)
	remitoUC := remitos.NewRemitoUseCase(txRunner, remitoRepo, clienteRepo)
	purchaseUC := transactions.NewPurchaseUseCase(txRunner, proveedorRepo)
	collectionUC := transactions.NewCollectionUseCase(txRunner, clienteRepo)
	reportUC := reports.NewReportUseCase(reporteRepo)
	registryUC := registry.NewRegistryUseCase(registroRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:    clienteUC,
		ProveedorUC:  proveedorUC,
		ProductoUC:   productoUC,
		UserUC:       userUC,
		RemitoUC:     remitoUC,
		PurchaseUC:   purchaseUC,
		CollectionUC: collectionUC,
		ReportUC:     reportUC,
		RegistryUC:   registryUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		JWTExpMin:    cfg.JWT.Expiration,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
