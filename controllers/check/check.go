package check

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/services/rabbitmq"
	"dishrank-restaurant-api/services/trackLog"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string   `json:"database"`
	Queues     []string `json:"queue"`
	RoutineNum int      `json:"routine_num"`
}

type CheckController struct {
	DB *gorm.DB
}

func NewCheckController(db *gorm.DB) *CheckController {
	return &CheckController{DB: db}
}

func (ch *CheckController) CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	status := http.StatusOK
	checkInfo := CheckInfo{Database: "ok"}

	// 檢查資料庫連線
	if err := ch.DB.DB().Ping(); err != nil {
		resMsg = fmt.Sprintf("database ping fail: %s", err.Error())
		checkInfo.Database = "fail"
		status = http.StatusServiceUnavailable
		trackLog.Error(resMsg, false)
	}

	//檢查mq實體是否在連線池，沒有啟用 rabbitmq 時略過
	if rabbitConn := rabbitmq.GetConnection(enums.RabbitConnectionName); rabbitConn != nil {
		checkQueues(rabbitConn, &checkInfo)
	}

	// 檢查gorutine數目
	checkInfo.RoutineNum = runtime.NumGoroutine()
	trackLog.Info(fmt.Sprintf("goroutine number: %d", checkInfo.RoutineNum), false)

	c.JSON(status, AliveResponse{status == http.StatusOK, resMsg, checkInfo})
}

func checkQueues(rabbitConn *rabbitmq.Connection, checkInfo *CheckInfo) {
	// 檢查mq連線
	if rabbitConn.Conn == nil || rabbitConn.Conn.IsClosed() {
		trackLog.Error("Api detect Connection lost, Reconnecting..", false)
		if err := rabbitConn.Reconnect(); err != nil {
			trackLog.Error(fmt.Sprintf("reconnect rabbit fail: %s", err.Error()), false)
			return
		}
	}
	//檢查mq channel
	if rabbitConn.Channel == nil {
		trackLog.Error("Channel get fail", false)
		return
	}
	for _, q := range rabbitConn.Queues {
		//檢查每一個queue
		queue, queueErr := rabbitConn.Channel.QueueInspect(q)
		if queueErr != nil {
			trackLog.Error(fmt.Sprintf("Queue[%s] error: %s", q, queueErr.Error()), false)
			continue
		}
		// queue的狀態
		queueJson, _ := json.Marshal(queue)
		checkInfo.Queues = append(checkInfo.Queues, string(queueJson))
	}
	// 花1秒檢查是否重連線
	select {
	case err := <-rabbitConn.ApiErr:
		trackLog.Error(fmt.Sprintf("api error: %s", err.Error()), false)
		if err := rabbitConn.Reconnect(); err != nil {
			trackLog.Error(fmt.Sprintf("reconnect rabbit fail: %s", err.Error()), false)
		}
	case <-time.After(time.Second * 1):
	}
}
