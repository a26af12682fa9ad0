package restaurantDish

import (
	"dishrank-restaurant-api/controllers"
	restaurantDishService "dishrank-restaurant-api/services/restaurantDish"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RestaurantDishController struct {
	Service *restaurantDishService.RestaurantDishService
}

func NewRestaurantDishController(service *restaurantDishService.RestaurantDishService) *RestaurantDishController {
	return &RestaurantDishController{Service: service}
}

// AddDishToRestaurant POST /restaurants/:id/dishes/:dishId
func (r *RestaurantDishController) AddDishToRestaurant(c *gin.Context) {
	restaurant, err := r.Service.AddDishToRestaurant(c.Param("id"), c.Param("dishId"))
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// FindDishesFromRestaurant GET /restaurants/:id/dishes
func (r *RestaurantDishController) FindDishesFromRestaurant(c *gin.Context) {
	dishes, err := r.Service.FindDishesFromRestaurant(c.Param("id"))
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

// FindDishFromRestaurant GET /restaurants/:id/dishes/:dishId
func (r *RestaurantDishController) FindDishFromRestaurant(c *gin.Context) {
	dish, err := r.Service.FindDishFromRestaurant(c.Param("id"), c.Param("dishId"))
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDishesFromRestaurant PUT /restaurants/:id/dishes，body 為餐點 id 陣列
func (r *RestaurantDishController) UpdateDishesFromRestaurant(c *gin.Context) {
	var dishIDs []string
	if err := c.ShouldBindJSON(&dishIDs); err != nil {
		controllers.BindError(c, err)
		return
	}
	restaurant, err := r.Service.UpdateDishesFromRestaurant(c.Param("id"), dishIDs)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// DeleteDishFromRestaurant DELETE /restaurants/:id/dishes/:dishId
func (r *RestaurantDishController) DeleteDishFromRestaurant(c *gin.Context) {
	if err := r.Service.DeleteDishFromRestaurant(c.Param("id"), c.Param("dishId")); err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
