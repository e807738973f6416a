package main

import (
	"os"

	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	if os.Getenv("S3_BUCKET") != "" {
		utils.InitS3() // only needed for S3-backed catalog imports
	}

	catalog := services.NewCatalogService(config.DB)
	meals := services.NewMealService(config.DB, catalog)
	importer := services.NewImportService(config.DB, catalog)
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(routes.Controllers{
		Food:     controllers.NewFoodController(catalog),
		Meal:     controllers.NewMealController(meals, hub),
		Swap:     controllers.NewSwapController(catalog, meals, hub),
		Import:   controllers.NewImportController(importer),
		Realtime: controllers.NewRealtimeController(hub),
	})
	r.Run(":8080")
}
