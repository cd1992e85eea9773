package main

import (
	"fmt"
	"log"
	"time"

	"pb-server/config"
	"pb-server/db"
	"pb-server/di"
	services "pb-server/service"
	"pb-server/util"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testCurrencyService(currencyService *services.CurrencyService) {
	log.Println("Running: testCurrencyService")
	for _, code := range []string{"USD", "EUR", "GBP", "XYZ"} {
		log.Printf("1 %s = %.4f USD", code, currencyService.GetRate(code))
	}
}

// testPackageService builds a package from the trip fixture and plots the
// winner scores.
func testPackageService(packageService *services.PackageService) {
	log.Println("Running: testPackageService")
	trip, err := util.ReadTripResponseFromJSON(config.GetResourcePath(config.TRIP_RESPONSE_RESOURCE))
	if err != nil {
		log.Println("Error while reading trip response fixture: ", err)
		return
	}

	layout := packageService.BuildPackage(trip)
	util.PrintFinalTripLayoutPartially(layout)
	util.PlotPreferenceScores(*layout)
}

func main() {
	container := di.NewContainer("prod")

	// testRedisClient(container.RedisClient)
	// testCurrencyService(container.CurrencyService)
	// testPackageService(container.PackageService)

	fmt.Println("starting rates refresher job!")
	container.RatesRefresherService.StartPeriodicJob(config.RATES_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.PackageBuilderHttpServer.Start()
	fmt.Println("server stopped!")
}
