package log

import (
	"dishrank-restaurant-api/utils"
	"fmt"
	"net"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const appName = "dishrank-restaurant-api"

type LogService struct{}

// LoggerInit 依照 name 建立 logger，設定檔有開啟時寫檔並推送到 ELK / Logstash
func (l *LogService) LoggerInit(name string) *logrus.Logger {

	//实例化
	logger := logrus.New()

	//设置日志格式
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	config := utils.EnvConfig
	if config == nil {
		return logger
	}

	//设置日志级别
	if level, err := logrus.ParseLevel(config.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	if config.Log.FileEnable == 1 {
		if src, err := l.openLogFile(name); err != nil {
			fmt.Println(err.Error())
		} else {
			logger.Out = src
		}
	}

	if config.Log.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{config.Log.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, appName, logger.GetLevel(), config.Log.ElkIndex)
			if err != nil {
				logger.Debug(err.Error())
			} else {
				logger.Hooks.Add(hook)
			}
		}
	}

	if config.Log.LogstashEnable == 1 {
		conn, err := net.Dial("udp", config.Log.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName, "index": config.Log.LogstashIndex}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

// openLogFile 日志文件 logs/<日期>/<name>.log
func (l *LogService) openLogFile(name string) (*os.File, error) {
	logFilePath := "logs"
	if dir, err := os.Getwd(); err == nil {
		logFilePath = path.Join(dir, "logs")
	}
	logFilePath = path.Join(logFilePath, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0777); err != nil {
		return nil, err
	}
	fileName := path.Join(logFilePath, name+".log")
	return os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
