package routes

import (
	"log"
	"os"

	_ "terranova_lotes/docs" // This will be auto-generated
	"terranova_lotes/internal/adapter/http/handlers"
	repository2 "terranova_lotes/internal/adapter/persistence/repository"
	"terranova_lotes/internal/infrastructure/database"
	"terranova_lotes/internal/infrastructure/metrics"
	"terranova_lotes/internal/usecase"
	"terranova_lotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// repositories groups one implementation of every persistence port.
type repositories struct {
	urbanizaciones  interfaces.IUrbanizacionRepository
	lotes           interfaces.ILoteRepository
	planes          interfaces.IPlanFinanciamientoRepository
	financiamientos interfaces.IFinanciamientoLoteRepository
}

// buildRepositories selects the persistence backend from DB_BACKEND:
// "sqlite" (default) or "dynamodb".
func buildRepositories() repositories {
	backend := os.Getenv("DB_BACKEND")
	if backend == "" {
		backend = "sqlite"
	}

	switch backend {
	case "dynamodb":
		log.Printf("[routes] persistence backend: dynamodb")
		ddb := database.ConnectDynamoDB()
		return repositories{
			urbanizaciones:  repository2.NewUrbanizacionDynamoRepository(ddb),
			lotes:           repository2.NewLoteDynamoRepository(ddb),
			planes:          repository2.NewPlanFinanciamientoDynamoRepository(ddb),
			financiamientos: repository2.NewFinanciamientoLoteDynamoRepository(ddb),
		}
	case "sqlite":
		log.Printf("[routes] persistence backend: sqlite")
		db := database.ConnectSQLite(os.Getenv("SQLITE_PATH"))
		return repositories{
			urbanizaciones:  repository2.NewUrbanizacionSQLiteRepository(db),
			lotes:           repository2.NewLoteSQLiteRepository(db),
			planes:          repository2.NewPlanFinanciamientoSQLiteRepository(db),
			financiamientos: repository2.NewFinanciamientoLoteSQLiteRepository(db),
		}
	default:
		log.Fatalf("unknown DB_BACKEND %q (want sqlite or dynamodb)", backend)
		return repositories{}
	}
}

func getRoutes() {
	repos := buildRepositories()

	urbanizacionUseCase := usecase.NewUrbanizacionUseCase(repos.urbanizaciones)
	loteUseCase := usecase.NewLoteUseCase(repos.lotes, repos.urbanizaciones)
	planUseCase := usecase.NewPlanFinanciamientoUseCase(repos.planes)
	financiamientoUseCase := usecase.NewFinanciamientoLoteUseCase(repos.financiamientos, repos.lotes, repos.planes)

	urbanizacionHandler := handlers.NewUrbanizacionHandler(urbanizacionUseCase)
	loteHandler := handlers.NewLoteHandler(loteUseCase)
	planHandler := handlers.NewPlanFinanciamientoHandler(planUseCase)
	financiamientoHandler := handlers.NewFinanciamientoLoteHandler(financiamientoUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInventarioRoutes(v1, urbanizacionHandler, loteHandler, planHandler, financiamientoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
