package trackLog

import (
	"dishrank-restaurant-api/services/log"
	"fmt"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "name": "log追蹤"})
}

// Tracker 尚未初始化時退回 logrus 預設 logger
func Tracker() *logrus.Entry {
	if logTracker == nil {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logTracker
}

func Info(message string, needWriteLog bool) {
	if needWriteLog {
		Tracker().Info(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		Tracker().Error(message)
	}
	fmt.Println(message)
}
