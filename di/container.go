package di

import (
	"context"
	"fmt"
	"log"

	"pb-server/api"
	"pb-server/api/exchange"
	"pb-server/config"
	"pb-server/dao/redis"
	"pb-server/db"
	"pb-server/server"
	"pb-server/server/handlers"
	services "pb-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisRatesDao            *redis.RedisRatesDAO
	ExchangeRateAPI          exchange.ExchangeRateAPI
	CurrencyService          *services.CurrencyService
	ScoreService             *services.ScoreService
	SelectionService         *services.SelectionService
	PackageService           *services.PackageService
	RatesRefresherService    *services.RatesRefresherService
	PackageHandler           *handlers.PackageHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	PackageBuilderHttpServer *server.PackageBuilderHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	// Initialize Redis Client internals
	ctx := context.Background()

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     config.REDIS_DB_ADDRESS,
		Password: config.REDIS_DB_PASSWORD,
		DB:       config.REDIS_DB,
	})

	// Initialize Redis client
	redisClient := db.NewPlainRedisClient(ctx, redisInternalClient)
	if err := redisClient.Ping(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	// Initialize Redis Rates DAO
	redisRatesDao := redis.NewRedisRatesDAO(redisClient)

	// Initialize exchange rate API - mock outside prod
	var exchangeRateApiClient exchange.ExchangeRateAPI
	if env != "prod" {
		exchangeRateApiClient = exchange.NewExchangeRateApiClientMock()
		log.Printf("Using mock exchange rate api")
	} else {
		log.Printf("Using prod exchange rate api")
		httpClient := api.NewHTTPClient(config.EXCHANGE_RATE_ENDPOINT_BASE_V6)
		exchangeRateApiClient = exchange.NewExchangeRateApiClient(httpClient)
	}

	// Initialize service layer
	currencyService := services.NewCurrencyService(redisRatesDao, exchangeRateApiClient)
	scoreService := services.NewScoreService(currencyService)
	selectionService := services.NewSelectionService(scoreService)
	packageService := services.NewPackageService(
		selectionService,
		scoreService,
		config.ACTIVITY_SELECTION_MODE,
		config.MAX_STAY_ACTIVITIES,
	)

	ratesRefresherService := services.NewRatesRefresherService(currencyService)

	// Initialize package handler
	packageHandler := handlers.NewPackageHandler(packageService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(packageHandler, muxRouter)

	// initialize package builder server
	packageBuilderHttpServer := server.NewPackageBuilderHttpServer(router, muxRouter)

	return &Container{
		RedisClient:              redisClient,
		RedisRatesDao:            redisRatesDao,
		ExchangeRateAPI:          exchangeRateApiClient,
		CurrencyService:          currencyService,
		ScoreService:             scoreService,
		SelectionService:         selectionService,
		PackageService:           packageService,
		RatesRefresherService:    ratesRefresherService,
		PackageHandler:           packageHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		PackageBuilderHttpServer: packageBuilderHttpServer,
	}
}
