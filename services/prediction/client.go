package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"heartcare-web/services"
	"heartcare-web/services/metrics"
	"heartcare-web/services/trackLog"
	"heartcare-web/structs"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

var (
	ErrUnexpectedStatus  = errors.New("Network response was not OK")
	ErrMalformedResponse = errors.New("prediction response has neither result nor error")
)

// StatusError is returned for any non-2xx reply from the predictor.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return ErrUnexpectedStatus.Error()
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

type Predictor interface {
	Predict(ctx context.Context, vitals structs.VitalsInput) (structs.PredictionResponse, error)
}

type Options struct {
	URL                string
	Timeout            time.Duration
	BreakerEnable      bool
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
	Client             *http.Client
}

type HTTPPredictor struct {
	url     string
	timeout time.Duration
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewHTTPPredictor(opts Options) *HTTPPredictor {
	p := &HTTPPredictor{
		url:     opts.URL,
		timeout: opts.Timeout,
		client:  opts.Client,
	}
	if p.client == nil {
		p.client = &http.Client{}
	}
	if opts.BreakerEnable {
		p.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "predictor",
			Timeout: opts.BreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= opts.BreakerMaxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				trackLog.Warn(fmt.Sprintf("[predictor] circuit breaker %s: %s -> %s", name, from, to), true)
				if to == gobreaker.StateOpen {
					metrics.BreakerState.Set(1)
				} else {
					metrics.BreakerState.Set(0)
				}
			},
		})
	}
	return p
}

// Predict 只送一次，不重試
func (p *HTTPPredictor) Predict(ctx context.Context, vitals structs.VitalsInput) (structs.PredictionResponse, error) {
	if p.breaker == nil {
		return p.do(ctx, vitals)
	}
	res, err := p.breaker.Execute(func() (interface{}, error) {
		return p.do(ctx, vitals)
	})
	if err != nil {
		return structs.PredictionResponse{}, err
	}
	return res.(structs.PredictionResponse), nil
}

func (p *HTTPPredictor) do(ctx context.Context, vitals structs.VitalsInput) (structs.PredictionResponse, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	status, body, err := services.HttpRequest(ctx, p.client, http.MethodPost, p.url, nil, vitals)
	metrics.PredictorDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return structs.PredictionResponse{}, fmt.Errorf("request predictor: %w", err)
	}
	if status < 200 || status > 299 {
		return structs.PredictionResponse{}, &StatusError{StatusCode: status}
	}
	return decodeResponse(body)
}

func decodeResponse(body []byte) (structs.PredictionResponse, error) {
	var wire struct {
		Result *string         `json:"result"`
		Error  json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return structs.PredictionResponse{}, fmt.Errorf("decode prediction response: %w", err)
	}

	if msg := errorText(wire.Error); msg != "" {
		return structs.PredictionResponse{Error: msg}, nil
	}
	if wire.Result == nil {
		return structs.PredictionResponse{}, ErrMalformedResponse
	}
	return structs.PredictionResponse{Result: *wire.Result}, nil
}

// errorText 空值 ("", 0, false, null) 視同沒有 error，非字串的值取原始 JSON
func errorText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	switch string(raw) {
	case "null", "false":
		return ""
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil && n == 0 {
		return ""
	}
	return string(raw)
}
