package check

import (
	"heartcare-web/services/rabbitmq"
	"heartcare-web/services/trackLog"
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// rabbitmq 連線池裡 submission consumer 的名稱
const QueueConnectionName = "heartcare"

type AliveResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Info    CheckInfo `json:"info"`
}

type CheckInfo struct {
	Queues     []rabbitmq.QueueStatus `json:"queue,omitempty"`
	RoutineNum int                    `json:"routine_num"`
}

// CheckAlive 只回報狀態，重連交給 consumer loop
func CheckAlive(c *gin.Context) {
	info := CheckInfo{RoutineNum: runtime.NumGoroutine()}

	rabbitConn := rabbitmq.GetConnection(QueueConnectionName)
	if rabbitConn == nil {
		c.JSON(http.StatusOK, AliveResponse{Success: true, Message: "main thread alive, submission queue disabled", Info: info})
		return
	}

	if !rabbitConn.Connected() {
		trackLog.Error("[check] submission queue connection lost, waiting for consumer to reconnect", false)
		c.JSON(http.StatusOK, AliveResponse{Success: false, Message: "submission queue connection lost", Info: info})
		return
	}

	info.Queues = rabbitConn.Inspect()
	for _, q := range info.Queues {
		if q.Error != "" {
			c.JSON(http.StatusOK, AliveResponse{Success: false, Message: "queue " + q.Name + " error: " + q.Error, Info: info})
			return
		}
	}
	c.JSON(http.StatusOK, AliveResponse{Success: true, Message: "main thread alive", Info: info})
}
