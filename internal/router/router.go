package router

import (
	"time"

	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/config"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/handler"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/middleware"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/repository"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/service"
	"github.com/Grxson/sistema-gestion-vlock-sub003/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	oficioRepo := repository.NewOficioRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	contratoRepo := repository.NewContratoRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	proyectoRepo := repository.NewProyectoRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	suministroRepo := repository.NewSuministroRepository(db)
	adeudoRepo := repository.NewAdeudoRepository(db)
	presupuestoRepo := repository.NewPresupuestoRepository(db)
	bitacoraRepo := repository.NewBitacoraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	oficioSvc := service.NewOficioService(oficioRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, oficioRepo, proyectoRepo)
	contratoSvc := service.NewContratoService(contratoRepo, empleadoRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	proyectoSvc := service.NewProyectoService(proyectoRepo)
	catalogoSvc := service.NewCatalogoService(catalogoRepo)
	suministroSvc := service.NewSuministroService(suministroRepo, proyectoRepo, proveedorRepo, catalogoRepo)
	adeudoSvc := service.NewAdeudoService(adeudoRepo, proveedorRepo, proyectoRepo)
	presupuestoSvc := service.NewPresupuestoService(presupuestoRepo, proyectoRepo)
	bitacoraSvc := service.NewBitacoraService(bitacoraRepo)
	reporteSvc := service.NewReporteService(suministroRepo, adeudoRepo, proyectoRepo, dispatcher, cfg.ReporteStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc, bitacoraSvc)
	oficiosH := handler.NewOficiosHandler(oficioSvc, bitacoraSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc, bitacoraSvc)
	contratosH := handler.NewContratosHandler(contratoSvc, bitacoraSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc, bitacoraSvc)
	proyectosH := handler.NewProyectosHandler(proyectoSvc, bitacoraSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc, bitacoraSvc)
	suministrosH := handler.NewSuministrosHandler(suministroSvc, bitacoraSvc)
	adeudosH := handler.NewAdeudosHandler(adeudoSvc, bitacoraSvc)
	presupuestosH := handler.NewPresupuestosHandler(presupuestoSvc, bitacoraSvc)
	bitacoraH := handler.NewBitacoraHandler(bitacoraSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Roles: lector (read), supervisor (capture),
	// administrador (everything).
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	lectura := middleware.RequireRole("lector", "supervisor", "administrador")
	captura := middleware.RequireRole("supervisor", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		// Usuarios — administración exclusiva
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}

		// Oficios
		v1.GET("/oficios", lectura, oficiosH.Listar)
		oficios := v1.Group("/oficios", admin)
		{
			oficios.POST("", oficiosH.Crear)
			oficios.PUT("/:id", oficiosH.Actualizar)
			oficios.DELETE("/:id", oficiosH.Desactivar)
		}

		// Empleados
		v1.GET("/empleados", lectura, empleadosH.Listar)
		v1.GET("/empleados/:id", lectura, empleadosH.ObtenerPorID)
		empleados := v1.Group("/empleados", captura)
		{
			empleados.POST("", empleadosH.Crear)
			empleados.PUT("/:id", empleadosH.Actualizar)
			empleados.DELETE("/:id", empleadosH.Desactivar)
		}

		// Contratos
		v1.GET("/contratos", lectura, contratosH.Listar)
		v1.GET("/contratos/:id", lectura, contratosH.ObtenerPorID)
		contratos := v1.Group("/contratos", captura)
		{
			contratos.POST("", contratosH.Crear)
			contratos.PUT("/:id", contratosH.Actualizar)
			contratos.DELETE("/:id", contratosH.Desactivar)
		}

		// Proveedores
		v1.GET("/proveedores", lectura, proveedoresH.Listar)
		v1.GET("/proveedores/:id", lectura, proveedoresH.ObtenerPorID)
		proveedores := v1.Group("/proveedores", captura)
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Desactivar)
		}

		// Proyectos
		v1.GET("/proyectos", lectura, proyectosH.Listar)
		v1.GET("/proyectos/:id", lectura, proyectosH.ObtenerPorID)
		proyectos := v1.Group("/proyectos", captura)
		{
			proyectos.POST("", proyectosH.Crear)
			proyectos.PUT("/:id", proyectosH.Actualizar)
			proyectos.DELETE("/:id", proyectosH.Desactivar)
		}

		// Catálogos de suministro
		v1.GET("/categorias-suministro", lectura, catalogosH.ListarCategorias)
		v1.GET("/unidades-medida", lectura, catalogosH.ListarUnidades)
		categorias := v1.Group("/categorias-suministro", admin)
		{
			categorias.POST("", catalogosH.CrearCategoria)
			categorias.PUT("/:id", catalogosH.ActualizarCategoria)
			categorias.DELETE("/:id", catalogosH.DesactivarCategoria)
		}
		unidades := v1.Group("/unidades-medida", admin)
		{
			unidades.POST("", catalogosH.CrearUnidad)
			unidades.PUT("/:id", catalogosH.ActualizarUnidad)
			unidades.DELETE("/:id", catalogosH.DesactivarUnidad)
		}

		// Suministros — the receipt capture flow
		v1.GET("/suministros", lectura, suministrosH.Listar)
		v1.GET("/suministros/validar-folio", lectura, suministrosH.ValidarFolio)
		v1.GET("/suministros/:id", lectura, suministrosH.ObtenerPorID)
		suministros := v1.Group("/suministros", captura)
		{
			suministros.POST("/multiple", suministrosH.RegistrarMultiples)
			suministros.PUT("/:id", suministrosH.Actualizar)
			suministros.DELETE("/:id", suministrosH.Eliminar)
		}

		// Adeudos
		v1.GET("/adeudos", lectura, adeudosH.Listar)
		v1.GET("/adeudos/:id", lectura, adeudosH.ObtenerPorID)
		adeudos := v1.Group("/adeudos", captura)
		{
			adeudos.POST("", adeudosH.Crear)
			adeudos.PUT("/:id", adeudosH.Actualizar)
			adeudos.PATCH("/:id/pagos", adeudosH.RegistrarPago)
			adeudos.DELETE("/:id", adeudosH.Eliminar)
		}

		// Presupuestos
		v1.GET("/presupuestos", lectura, presupuestosH.Listar)
		v1.GET("/presupuestos/:id", lectura, presupuestosH.ObtenerPorID)
		presupuestos := v1.Group("/presupuestos", captura)
		{
			presupuestos.POST("", presupuestosH.Crear)
			presupuestos.PUT("/:id", presupuestosH.Actualizar)
			presupuestos.DELETE("/:id", presupuestosH.Desactivar)
		}

		// Bitácora — solo lectura, supervisores y administradores
		v1.GET("/bitacora", captura, bitacoraH.Listar)

		// Reportes
		reportes := v1.Group("/reportes", lectura)
		{
			reportes.GET("/suministros/excel", reportesH.Excel)
			reportes.GET("/suministros/pdf", reportesH.PDF)
			reportes.GET("/adeudos/excel", reportesH.AdeudosExcel)
		}
	}

	// Swagger UI — not exposed in production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
