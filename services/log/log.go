package log

import (
	"fmt"
	"heartcare-web/utils"
	"io"
	"net"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const serviceName = "heartcare-web"

type LogService struct{}

// LoggerInit 建立寫入 logs/<日期>/<name>.log 的 logger，並依設定掛上 ELK / logstash hook
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()

	//设置日志格式
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	config := utils.EnvConfig
	if config == nil {
		logger.Out = os.Stdout
		logger.SetLevel(logrus.InfoLevel)
		return logger
	}

	if level, err := logrus.ParseLevel(config.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if src, err := l.openLogFile(config.Log.Dir, name); err != nil {
		fmt.Println(err.Error())
		logger.Out = os.Stdout
	} else {
		logger.Out = src
	}

	if config.Log.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{config.Log.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, serviceName, logrus.DebugLevel, config.Log.ElkIndex)
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
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": serviceName}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

func (l *LogService) openLogFile(dir, name string) (io.Writer, error) {
	logFilePath := path.Join(dir, time.Now().Format("2006-01-02"))
	if !path.IsAbs(logFilePath) {
		if wd, err := os.Getwd(); err == nil {
			logFilePath = path.Join(wd, logFilePath)
		}
	}
	if err := os.MkdirAll(logFilePath, 0755); err != nil {
		return nil, err
	}
	fileName := path.Join(logFilePath, name+".log")
	return os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
