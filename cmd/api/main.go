package main

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"radioreg/internal/config"
	"radioreg/internal/database"
	"radioreg/internal/logger"
	"radioreg/internal/middleware"
	"radioreg/internal/modules/auth"
	"radioreg/internal/modules/employee"
	"radioreg/internal/modules/maintenance"
	"radioreg/internal/modules/report"
	"radioreg/internal/modules/station"
	"radioreg/internal/observability/metrics"
	"radioreg/internal/pkg/files"
	jwtsvc "radioreg/internal/pkg/jwt"
	"radioreg/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal(err)
	}
	logger.Setup(cfg.LogFile)
	metrics.Init()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.L().Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.L().Fatal(err)
	}

	employeeRepo := repository.NewEmployeeRepository(db)
	stationRepo := repository.NewStationRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	store := files.NewStore(cfg.DataDir)

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	authService, err := auth.NewService(cfg.AdminPassword, cfg.ViewerPassword, jwtService)
	if err != nil {
		logger.L().Fatal(err)
	}

	employeeService := employee.NewService(employeeRepo, store)
	stationService := station.NewService(stationRepo, store)
	stationImporter := station.NewImporter(stationRepo)
	maintenanceService := maintenance.NewService(maintenanceRepo, stationRepo)
	reportService := report.NewService(stationRepo, maintenanceService)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.CORS(), middleware.ErrorLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/version", versionHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	auth.NewHandler(authService).RegisterRoutes(api)

	protected := api.Group("/", middleware.Auth(jwtService))
	employee.NewHandler(employeeService).RegisterRoutes(protected)
	station.NewHandler(stationService, stationImporter).RegisterRoutes(protected)
	maintenance.NewHandler(maintenanceService).RegisterRoutes(protected)
	report.NewHandler(reportService).RegisterRoutes(protected)

	logger.L().Infof("listening on %s", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.L().Fatal(err)
	}
}

// versionHandler reports the VCS revision baked into the binary, when
// the build carries one.
func versionHandler(c *gin.Context) {
	revision := "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				revision = s.Value
				break
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"revision": revision})
}
