package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	forecastadvisor "terrafarm/internal/adapter/advisor/forecast"
	staticcatalog "terrafarm/internal/adapter/catalog/staticfile"
	"terrafarm/internal/adapter/climate/nasapower"
	httpadapter "terrafarm/internal/adapter/http"
	metricsinmem "terrafarm/internal/adapter/metrics/inmemory"
	gormrepo "terrafarm/internal/adapter/repo/gorm"
	"terrafarm/internal/app/action"
	"terrafarm/internal/app/crops"
	"terrafarm/internal/app/dayadvance"
	"terrafarm/internal/app/game"
	"terrafarm/internal/app/ports"
	"terrafarm/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db := mustOpenDB()
	farmRepo := gormrepo.NewFarmRepo(db)
	eventRepo := gormrepo.NewEventRepo(db)
	txManager := gormrepo.NewTxManager(db)

	catalog := buildCatalogFromEnv()
	climateClient := buildClimateClientFromEnv()
	advisor := forecastadvisor.Advisor{Source: climateClient}
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		CreateUC:  game.CreateUseCase{Farms: farmRepo},
		GetUC:     game.GetUseCase{Farms: farmRepo},
		DeleteUC:  game.DeleteUseCase{Farms: farmRepo},
		SummaryUC: game.SummaryUseCase{Farms: farmRepo},
		EventsUC:  game.EventsUseCase{Events: eventRepo},
		ActionUC: action.UseCase{
			TxManager: txManager,
			Farms:     farmRepo,
			Events:    eventRepo,
			Catalog:   catalog,
			Metrics:   kpiRecorder,
			Settle:    farm.ActionService{},
			Now:       time.Now,
		},
		DayAdvanceUC: dayadvance.UseCase{
			TxManager: txManager,
			Farms:     farmRepo,
			Events:    eventRepo,
			Catalog:   catalog,
			Climate:   climateClient,
			Advisor:   advisor,
			Metrics:   kpiRecorder,
			Settle:    farm.DayService{},
			Now:       time.Now,
		},
		CropsUC: crops.UseCase{Catalog: catalog},
		KPI:     kpiRecorder,
	}

	addr := strEnv("FARM_HTTP_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("terrafarm server listening on %s", addr)
	s.Spin()
}

func mustOpenDB() *gorm.DB {
	var db *gorm.DB
	var err error
	if dsn := strings.TrimSpace(os.Getenv("FARM_DB_DSN")); dsn != "" {
		db, err = gormrepo.OpenPostgres(dsn)
	} else {
		path := strEnv("FARM_DB_PATH", "terrafarm.db")
		db, err = gormrepo.OpenSQLite(path)
	}
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := gormrepo.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	return db
}

func buildCatalogFromEnv() ports.CropCatalog {
	path := strings.TrimSpace(os.Getenv("FARM_CROPS_FILE"))
	if path == "" {
		return staticcatalog.Default()
	}
	catalog, err := staticcatalog.Load(path)
	if err != nil {
		log.Fatalf("load crop catalog: %v", err)
	}
	return catalog
}

func buildClimateClientFromEnv() *nasapower.Client {
	client := nasapower.New()
	if base := strings.TrimSpace(os.Getenv("FARM_CLIMATE_BASE_URL")); base != "" {
		client.BaseURL = base
	}
	client.HTTP.Timeout = time.Duration(intEnv("FARM_CLIMATE_TIMEOUT_MS", 10000)) * time.Millisecond
	client.WindowDays = intEnv("FARM_CLIMATE_WINDOW_DAYS", client.WindowDays)
	return client
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
