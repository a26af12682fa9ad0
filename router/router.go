package router

import (
	"dishrank-restaurant-api/controllers/check"
	"dishrank-restaurant-api/controllers/dish"
	"dishrank-restaurant-api/controllers/readProbe"
	"dishrank-restaurant-api/controllers/restaurant"
	"dishrank-restaurant-api/controllers/restaurantDish"
	"dishrank-restaurant-api/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Check          *check.CheckController
	Restaurant     *restaurant.RestaurantController
	Dish           *dish.DishController
	RestaurantDish *restaurantDish.RestaurantDishController
}

func Router(ctl Controllers) *gin.Engine {
	route := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	route.Use(gin.Recovery(), cors.New(corsConfig), middleware.Logger(), middleware.Metrics())

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", ctl.Check.CheckAlive)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	restaurants := route.Group("/restaurants")
	{
		restaurants.POST("", ctl.Restaurant.Create)
		restaurants.GET("", ctl.Restaurant.FindAll)
		restaurants.GET("/:id", ctl.Restaurant.FindOne)
		restaurants.PUT("/:id", ctl.Restaurant.Update)
		restaurants.DELETE("/:id", ctl.Restaurant.Remove)

		restaurants.POST("/:id/dishes/:dishId", ctl.RestaurantDish.AddDishToRestaurant)
		restaurants.GET("/:id/dishes", ctl.RestaurantDish.FindDishesFromRestaurant)
		restaurants.GET("/:id/dishes/:dishId", ctl.RestaurantDish.FindDishFromRestaurant)
		restaurants.PUT("/:id/dishes", ctl.RestaurantDish.UpdateDishesFromRestaurant)
		restaurants.DELETE("/:id/dishes/:dishId", ctl.RestaurantDish.DeleteDishFromRestaurant)
	}

	dishes := route.Group("/dishes")
	{
		dishes.POST("", ctl.Dish.Create)
		dishes.GET("", ctl.Dish.FindAll)
		dishes.GET("/:id", ctl.Dish.FindOne)
		dishes.PUT("/:id", ctl.Dish.Update)
		dishes.DELETE("/:id", ctl.Dish.Remove)
	}

	return route
}
