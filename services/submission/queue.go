package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"heartcare-web/services/rabbitmq"
	"heartcare-web/services/trackLog"
	"heartcare-web/structs"

	"github.com/streadway/amqp"
)

// HandleMessage runs a queued submission and returns the JSON page state.
func (s *SubmissionService) HandleMessage(ctx context.Context, body []byte) ([]byte, error) {
	var vitals structs.VitalsInput
	if err := json.Unmarshal(body, &vitals); err != nil {
		return nil, fmt.Errorf("decode vitals: %w", err)
	}
	state := s.Submit(ctx, structs.PageState{}, vitals)
	return json.Marshal(state)
}

// ErrorReply is the reply body for a message that could not be handled.
func ErrorReply(err error) []byte {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return body
}

// QueueHandler 消化 submission queue，有 ReplyTo 的話把結果回傳
func (s *SubmissionService) QueueHandler(ctx context.Context) func(*rabbitmq.Connection, string, <-chan amqp.Delivery) {
	return func(c *rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
		for d := range deliveries {
			trackLog.Info(fmt.Sprintf("Queue[%s] 接受資料: %s", q, string(d.Body)), true)

			reply, err := s.HandleMessage(ctx, d.Body)
			if err != nil {
				trackLog.Error(fmt.Sprintf("Queue[%s] %s", q, err), true)
				// 有 ReplyTo 的呼叫端還在等，回傳錯誤
				reply = ErrorReply(err)
			}
			if d.ReplyTo == "" {
				continue
			}
			if err := c.Publish(rabbitmq.Message{
				Queue:         d.ReplyTo,
				ContentType:   "application/json",
				CorrelationID: d.CorrelationId,
				Body:          reply,
			}); err != nil {
				trackLog.Error(fmt.Sprintf("Queue[%s] reply failed: %s", q, err), true)
			}
		}
	}
}
