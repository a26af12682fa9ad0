package activityLog

import (
	"dishrank-restaurant-api/enums"
	"dishrank-restaurant-api/models"
	"dishrank-restaurant-api/services/rabbitmq"
	"dishrank-restaurant-api/services/trackLog"
	"dishrank-restaurant-api/structs"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/streadway/amqp"
)

type ActivityLogService struct {
	DB *gorm.DB
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{DB: db}
}

// Insert 塞入執行紀錄的 log table
func (a *ActivityLogService) Insert(logName, subjectID string, data interface{}) error {
	activityLogJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}

	insertTime := time.Now()
	var activityLogEntity models.ActivityLog
	activityLogEntity.CreatedAt = &insertTime
	activityLogEntity.UpdatedAt = &insertTime
	activityLogEntity.LogName = logName
	activityLogEntity.Description = "restaurant-api log"
	activityLogEntity.Properties = string(activityLogJSON)
	if subjectID != "" {
		activityLogEntity.SubjectID = subjectID
		activityLogEntity.SubjectType = enums.SubjectRestaurant
	}

	if err := a.DB.Create(&activityLogEntity).Error; err != nil {
		return fmt.Errorf("insert activity log %s: %w", logName, err)
	}
	return nil
}

// HandleEvent 把 queue 收到的關聯異動事件寫成一筆 activity log
func (a *ActivityLogService) HandleEvent(body []byte) error {
	var event structs.AssociationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode association event: %w", err)
	}
	if event.Type == "" || event.RestaurantID == "" {
		return fmt.Errorf("association event missing type or restaurant_id: %s", string(body))
	}
	return a.Insert(event.Type, event.RestaurantID, event)
}

// Consume 給 rabbitmq.HandleConsumedDeliveries 使用，channel 關閉時結束
func (a *ActivityLogService) Consume(c *rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		trackLog.Info(fmt.Sprintf("Queue[%s] 接受資料: %s", q, string(d.Body)), true)
		if err := a.HandleEvent(d.Body); err != nil {
			trackLog.Error(fmt.Sprintf("Queue[%s] 處理失敗: %s", q, err.Error()), true)
		}
	}
}
