package dish

import (
	"dishrank-restaurant-api/controllers"
	dishService "dishrank-restaurant-api/services/dish"
	"dishrank-restaurant-api/structs"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Service *dishService.DishService
}

func NewDishController(service *dishService.DishService) *DishController {
	return &DishController{Service: service}
}

func (d *DishController) Create(c *gin.Context) {
	var param structs.DishParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BindError(c, err)
		return
	}
	dish, err := d.Service.Create(param)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dish)
}

func (d *DishController) FindAll(c *gin.Context) {
	dishes, err := d.Service.FindAll()
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (d *DishController) FindOne(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	dish, err := d.Service.FindOne(id)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (d *DishController) Update(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	var param structs.DishParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BindError(c, err)
		return
	}
	dish, err := d.Service.Update(id, param)
	if err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (d *DishController) Remove(c *gin.Context) {
	id, ok := controllers.UUIDParam(c, "id")
	if !ok {
		return
	}
	if err := d.Service.Remove(id); err != nil {
		controllers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
