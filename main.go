package main

import (
	"context"
	"fmt"
	"heartcare-web/controllers/check"
	"heartcare-web/router"
	"heartcare-web/services/facts"
	"heartcare-web/services/prediction"
	"heartcare-web/services/rabbitmq"
	"heartcare-web/services/submission"
	"heartcare-web/services/trackLog"
	"heartcare-web/utils"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

const submissionQueueConnection = check.QueueConnectionName

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("參數初始化成功...")

	trackLog.LogTrackInit()
	defer trackLog.Info("heartcare-web shutdown", true)

	config := utils.EnvConfig
	gin.SetMode(config.Router.Mode)

	predictor := prediction.NewHTTPPredictor(prediction.Options{
		URL:                config.Predictor.URL,
		Timeout:            config.Predictor.Timeout,
		BreakerEnable:      config.Predictor.Breaker.Enable == 1,
		BreakerMaxFailures: config.Predictor.Breaker.MaxFailures,
		BreakerOpenTimeout: config.Predictor.Breaker.OpenTimeout,
	})
	submissionService := submission.NewSubmissionService(predictor)

	route := router.Router(submissionService, facts.Default())

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := route.Run(fmt.Sprintf(":%d", config.Router.Port)); err != nil {
			trackLog.Error(fmt.Sprintf("router stopped: %s", err), true)
		}
	}()

	var queueConn *rabbitmq.Connection
	if config.RabbitMQ.Enable == 1 {
		queueConn = SubmissionQueue(submissionService)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-stopped:
	}

	// 關閉 queue 連線
	if queueConn != nil {
		if err := queueConn.Close(); err != nil {
			trackLog.Error(fmt.Sprintf("close rabbitmq connection: %s", err), true)
		}
	}
}

func SubmissionQueue(submissionService *submission.SubmissionService) *rabbitmq.Connection {
	config := utils.EnvConfig
	conn := rabbitmq.NewConnection(submissionQueueConnection, config.RabbitMQ.Domain, []string{config.RabbitMQ.Queue})

	failOnError(conn.Connect(), "Failed to connect to RabbitMQ")
	failOnError(conn.BindQueue(), "Failed to declare a queue")
	deliveries, err := conn.Consume()
	failOnError(err, "Failed to register a consumer")

	handler := submissionService.QueueHandler(context.Background())
	for q, d := range deliveries {
		go conn.HandleConsumedDeliveries(q, d, handler)
	}
	log.Printf(" [ heartcare ] [ %s ] Waiting for messages. To exit press CTRL+C", config.RabbitMQ.Queue)
	return conn
}

func failOnError(err error, msg string) {
	if err != nil {
		log.Fatalf("%s: %s", msg, err)
	}
}
