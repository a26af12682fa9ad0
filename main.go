package main

import (
	"dishrank-restaurant-api/controllers/check"
	"dishrank-restaurant-api/controllers/dish"
	"dishrank-restaurant-api/controllers/restaurant"
	"dishrank-restaurant-api/controllers/restaurantDish"
	"dishrank-restaurant-api/database"
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/repositories"
	"dishrank-restaurant-api/router"
	"dishrank-restaurant-api/services/activityLog"
	dishService "dishrank-restaurant-api/services/dish"
	logLib "dishrank-restaurant-api/services/log"
	"dishrank-restaurant-api/services/rabbitmq"
	restaurantService "dishrank-restaurant-api/services/restaurant"
	restaurantDishService "dishrank-restaurant-api/services/restaurantDish"
	"dishrank-restaurant-api/services/trackLog"
	"dishrank-restaurant-api/utils"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("參數初始化成功...")

	trackLog.LogTrackInit()
	if utils.EnvConfig.Server.Mode != "" {
		gin.SetMode(utils.EnvConfig.Server.Mode)
	}

	database.InitDatabasePool()
	defer database.DB.Close()
	if err := database.Migrate(database.DB); err != nil {
		panic(err)
	}

	activityLogService := activityLog.NewActivityLogService(database.DB)
	if err := activityLogService.Insert(enums.ServerInitLog, "", "restaurant-api 初始化"); err != nil {
		trackLog.Error(err.Error(), true)
	}

	defer func() {
		// 發送 ELK
		var logService logLib.LogService
		logwr := logService.LoggerInit("main")
		logwr.WithFields(logrus.Fields{"task": "main", "name": "主程式"}).Error("api shutdown")
		fmt.Println("api shutdown")
	}()

	restaurantRepository := repositories.NewRestaurantRepository(database.DB)
	dishRepository := repositories.NewDishRepository(database.DB)

	var publisher restaurantDishService.EventPublisher
	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		conn := restaurantDishQueue(activityLogService)
		defer conn.Close()
		publisher = conn
	}

	route := router.Router(router.Controllers{
		Check:      check.NewCheckController(database.DB),
		Restaurant: restaurant.NewRestaurantController(restaurantService.NewRestaurantService(restaurantRepository)),
		Dish:       dish.NewDishController(dishService.NewDishService(dishRepository)),
		RestaurantDish: restaurantDish.NewRestaurantDishController(
			restaurantDishService.NewRestaurantDishService(restaurantRepository, dishRepository, publisher),
		),
	})

	if err := route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port)); err != nil {
		trackLog.Error(err.Error(), true)
	}
}

// restaurantDishQueue 建立關聯異動的 queue，發送端給 service，接收端寫 activity log
func restaurantDishQueue(activityLogService *activityLog.ActivityLogService) *rabbitmq.Connection {
	queue := utils.EnvConfig.RabbitMQ.Queue
	conn := rabbitmq.NewConnection(enums.RabbitConnectionName, []string{queue})

	if err := conn.Connect(); err != nil {
		panic(err)
	}
	if err := conn.BindQueue(); err != nil {
		panic(err)
	}
	deliveries, err := conn.Consume()
	if err != nil {
		panic(err)
	}

	for q, d := range deliveries {
		go conn.HandleConsumedDeliveries(q, d, activityLogService.Consume)
	}
	trackLog.Info(fmt.Sprintf(" [ %s ] [ %s ] Waiting for messages.", enums.RabbitConnectionName, queue), true)
	return conn
}
