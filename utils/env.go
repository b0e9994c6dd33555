package utils

import (
	"fmt"
	"heartcare-web/structs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.setDefaults()
	e.loadConfig()
	config := e.configToModel()
	if err := e.validate(config); err != nil {
		panic(fmt.Errorf("Fatal error config: %s \n", err))
	}
	EnvConfig = config
}

func (e *EnvService) setDefaults() {
	viper.SetDefault("router.port", 8080)
	viper.SetDefault("router.mode", "release")
	viper.SetDefault("predictor.url", "http://127.0.0.1:5000/predict")
	viper.SetDefault("predictor.timeout", "0s")
	viper.SetDefault("predictor.breaker.enable", 0)
	viper.SetDefault("predictor.breaker.max_failures", 5)
	viper.SetDefault("predictor.breaker.open_timeout", "60s")
	viper.SetDefault("rabbitmq.enable", 0)
	viper.SetDefault("rabbitmq.queue", "prediction-submission")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "logs")
	viper.SetDefault("log.elk.enable", 0)
	viper.SetDefault("log.elk.index", "heartcare-web")
	viper.SetDefault("log.logstash.enable", 0)
}

func (e *EnvService) loadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// 找不到 config.yml 的話就抓取環境變數
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {

			// 有找到 config.yml 但是發生了其他未知的錯誤
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
}

func (e *EnvService) configToModel() *structs.EnviromentModel {
	var config structs.EnviromentModel
	config.Router.Port = viper.GetInt("router.port")
	config.Router.Mode = viper.GetString("router.mode")
	config.Predictor.URL = viper.GetString("predictor.url")
	config.Predictor.Timeout = viper.GetDuration("predictor.timeout")
	config.Predictor.Breaker.Enable = viper.GetInt("predictor.breaker.enable")
	config.Predictor.Breaker.MaxFailures = viper.GetUint32("predictor.breaker.max_failures")
	config.Predictor.Breaker.OpenTimeout = viper.GetDuration("predictor.breaker.open_timeout")
	config.RabbitMQ.Enable = viper.GetInt("rabbitmq.enable")
	config.RabbitMQ.Domain = viper.GetString("rabbitmq.domain")
	config.RabbitMQ.Queue = viper.GetString("rabbitmq.queue")
	config.Log.Level = viper.GetString("log.level")
	config.Log.Dir = viper.GetString("log.dir")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	return &config
}

func (e *EnvService) validate(config *structs.EnviromentModel) error {
	return validator.New().Struct(config)
}
