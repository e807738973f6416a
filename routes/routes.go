package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the handlers the router needs; wired in cmd/main.go.
type Controllers struct {
	Food     *controllers.FoodController
	Meal     *controllers.MealController
	Swap     *controllers.SwapController
	Import   *controllers.ImportController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Catalog lookup
	foods := r.Group("/")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("/foods", ctl.Food.SearchFoods)
		foods.GET("/foods/:id", ctl.Food.GetFood)
		foods.GET("/nutrients", ctl.Food.ListNutrients)
		foods.POST("/foods/recognize", ctl.Food.RecognizeFood)
	}

	// Meal log
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", ctl.Meal.LogMeal)
		meals.GET("", ctl.Meal.ListMeals)
		meals.DELETE("/:id", ctl.Meal.DeleteMeal)
	}

	// Swap engine
	swaps := r.Group("/swaps")
	swaps.Use(middlewares.AuthMiddleware())
	{
		swaps.POST("/generate", ctl.Swap.GenerateSwaps)
		swaps.POST("/simulate", ctl.Swap.SimulateSwap)
	}

	// Realtime events
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", ctl.Realtime.EventsWS)
	}

	// Catalog import
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.POST("/import", ctl.Import.ImportCatalog)
	}

	return r
}
