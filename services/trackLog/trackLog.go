package trackLog

import (
	"fmt"
	"heartcare-web/services/log"

	"github.com/sirupsen/logrus"
)

var logTracker *logrus.Entry

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track", "service": "heartcare-web"})
}

// WithFields 回傳帶欄位的 entry，尚未初始化時退回 logrus 預設 logger
func WithFields(fields logrus.Fields) *logrus.Entry {
	if logTracker == nil {
		return logrus.WithFields(fields)
	}
	return logTracker.WithFields(fields)
}

func Info(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Info(message)
	}
	fmt.Println(message)
}

func Warn(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Warn(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog && logTracker != nil {
		logTracker.Error(message)
	}
	fmt.Println(message)
}
