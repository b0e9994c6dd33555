package structs

import "time"

type EnviromentModel struct {
	Router    router
	Predictor predictor
	RabbitMQ  rabbitmq
	Log       log
}

type router struct {
	Port int    `validate:"min=1,max=65535"`
	Mode string `validate:"oneof=debug release test"`
}

type predictor struct {
	URL     string        `validate:"required,url"`
	Timeout time.Duration `validate:"min=0"`
	Breaker breaker
}

type breaker struct {
	Enable      int
	MaxFailures uint32        `validate:"required_if=Enable 1"`
	OpenTimeout time.Duration `validate:"min=0"`
}

type rabbitmq struct {
	Enable int
	Domain string `validate:"required_if=Enable 1"`
	Queue  string `validate:"required_if=Enable 1"`
}

type log struct {
	Level          string `validate:"oneof=debug info warn warning error"`
	Dir            string
	ElkEnable      int
	ElkIndex       string
	ElkURL         string `validate:"required_if=ElkEnable 1"`
	LogstashEnable int
	LogstashURL    string `validate:"required_if=LogstashEnable 1"`
}
