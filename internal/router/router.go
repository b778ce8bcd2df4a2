package router

import (
	"time"

	"github.com/ELPELADASTER/control-stock/internal/config"
	"github.com/ELPELADASTER/control-stock/internal/handler"
	"github.com/ELPELADASTER/control-stock/internal/middleware"
	"github.com/ELPELADASTER/control-stock/internal/repository"
	"github.com/ELPELADASTER/control-stock/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	articuloRepo := repository.NewArticuloRepository(db)
	maquinaRepo := repository.NewMaquinaRepository(db)
	cargaRepo := repository.NewCargaRepository(db)
	conteoRepo := repository.NewConteoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	articuloSvc := service.NewArticuloService(articuloRepo, cargaRepo)
	maquinaSvc := service.NewMaquinaService(maquinaRepo, cargaRepo)
	cargaSvc := service.NewCargaService(cargaRepo, articuloRepo, maquinaRepo)
	conteoSvc := service.NewConteoService(conteoRepo, rdb)
	estadisticasSvc := service.NewEstadisticasService(conteoRepo, rdb, time.Duration(cfg.StatsCacheTTL)*time.Second)

	// ── Handlers ─────────────────────────────────────────────────────────────
	articulosH := handler.NewArticulosHandler(articuloSvc)
	maquinasH := handler.NewMaquinasHandler(maquinaSvc)
	cargasH := handler.NewCargasHandler(cargaSvc)
	conteosH := handler.NewConteosHandler(conteoSvc)
	estadisticasH := handler.NewEstadisticasHandler(estadisticasSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		articulos := api.Group("/articulos")
		{
			articulos.POST("", articulosH.Crear)
			articulos.GET("", articulosH.Listar)
			articulos.POST("/:id/utilizar", articulosH.Utilizar)
			articulos.PUT("/:id", articulosH.Actualizar)
			articulos.DELETE("/:id", articulosH.Eliminar)
		}

		maquinas := api.Group("/maquinas")
		{
			maquinas.POST("", maquinasH.Crear)
			maquinas.GET("", maquinasH.Listar)
			maquinas.GET("/edificios", maquinasH.Edificios)
			maquinas.PUT("/:id", maquinasH.Actualizar)
			maquinas.DELETE("/:id", maquinasH.Eliminar)
		}

		cargas := api.Group("/cargas")
		{
			cargas.POST("", cargasH.Crear)
			cargas.GET("", cargasH.Listar)
			cargas.GET("/agrupadas", cargasH.ListarAgrupadas)
			cargas.GET("/detalles/:maquina_id/:fecha", cargasH.ObtenerDetalles)
			cargas.GET("/resumen", cargasH.Resumen)
			cargas.DELETE("/:id", cargasH.Eliminar)
		}

		conteos := api.Group("/conteos")
		{
			conteos.POST("", conteosH.Crear)
			conteos.GET("/ultimos", conteosH.Ultimos)
			conteos.GET("/por-maquina/:maquina_id", conteosH.PorMaquina)
			conteos.PUT("/:id", conteosH.Actualizar)
			conteos.DELETE("/:id", conteosH.Eliminar)
		}

		estadisticas := api.Group("/estadisticas")
		{
			estadisticas.GET("", estadisticasH.Generales)
			estadisticas.GET("/maquinas", estadisticasH.PorMaquina)
			estadisticas.GET("/graficos", estadisticasH.Graficos)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
