package restaurant

import (
	"dishrank-restaurant-api/controllers"
	restaurantService "dishrank-restaurant-api/services/restaurant"
	"dishrank-restaurant-api/structs"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *restaurantService.RestaurantService
}

func NewRestaurantController(service *restaurantService.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

func (r *RestaurantController) Create(c *gin.Context) {
	var param structs.RestaurantParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BindError(c, err)
		return
	}
	restaurant, err := r.Service.Create(param)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

func (r *RestaurantController) FindAll(c *gin.Context) {
	restaurants, err := r.Service.FindAll()
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (r *RestaurantController) FindOne(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	restaurant, err := r.Service.FindOne(id)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (r *RestaurantController) Update(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	var param structs.RestaurantParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BindError(c, err)
		return
	}
	restaurant, err := r.Service.Update(id, param)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (r *RestaurantController) Remove(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	if err := r.Service.Remove(id); err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
