package readProbe

import (
	"dishrank-restaurant-api/controllers/check"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Probe(c *gin.Context) {
	c.JSON(http.StatusOK, check.AliveResponse{Success: true, Messsage: "probe success"})
}
