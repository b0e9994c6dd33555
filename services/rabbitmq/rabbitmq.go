package rabbitmq

import (
	"errors"
	"fmt"
	"heartcare-web/services/trackLog"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

var ErrChannelClosed = errors.New("channel not open")

//Message is the amqp reply to publish
type Message struct {
	Queue         string
	ContentType   string
	CorrelationID string
	Body          []byte
}

// QueueStatus 單一 queue 的狀態
type QueueStatus struct {
	Name      string `json:"name"`
	Messages  int    `json:"messages"`
	Consumers int    `json:"consumers"`
	Error     string `json:"error,omitempty"`
}

//Connection is the connection created
type Connection struct {
	mu      sync.Mutex
	name    string
	domain  string
	conn    *amqp.Connection
	channel *amqp.Channel
	Queues  []string
	// 連線關閉時通知，只有 consumer loop 會讀取並重連
	Err chan error
}

var (
	poolMutex      sync.Mutex
	connectionPool = make(map[string]*Connection)
	reconnectDelay = 60 * time.Second
)

//NewConnection returns the new connection object
func NewConnection(name, domain string, queues []string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		name:   name,
		domain: domain,
		Queues: queues,
		Err:    make(chan error, 1),
	}
	connectionPool[name] = c
	return c
}

//GetConnection returns the connection which was instantiated
func GetConnection(name string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	return connectionPool[name]
}

func (c *Connection) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectLocked()
}

// connectLocked 目前連線還活著就不重連，避免舊連線被丟掉沒關
func (c *Connection) connectLocked() error {
	if c.conn != nil && !c.conn.IsClosed() {
		return nil
	}
	conn, err := amqp.Dial(c.domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", c.domain, err.Error())
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("Channel: %s", err)
	}
	c.conn = conn
	c.channel = channel
	go func(conn *amqp.Connection) {
		<-conn.NotifyClose(make(chan *amqp.Error)) //Listen to NotifyClose
		select {
		case c.Err <- errors.New("Connection Closed"):
		default:
		}
	}(conn)
	return nil
}

func (c *Connection) BindQueue() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindQueueLocked()
}

func (c *Connection) bindQueueLocked() error {
	if c.channel == nil {
		return ErrChannelClosed
	}
	for _, q := range c.Queues {
		if _, err := c.channel.QueueDeclare(q, false, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

//Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connectLocked(); err != nil {
		return err
	}
	return c.bindQueueLocked()
}

func (c *Connection) Consume() (map[string]<-chan amqp.Delivery, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return nil, ErrChannelClosed
	}
	m := make(map[string]<-chan amqp.Delivery)
	for _, q := range c.Queues {
		deliveries, err := c.channel.Consume(q, "", true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		m[q] = deliveries
	}
	return m, nil
}

// Publish 回傳 RPC 結果到 reply queue
func (c *Connection) Publish(m Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.channel == nil {
		return ErrChannelClosed
	}
	return c.channel.Publish(
		"",      // exchange
		m.Queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:   m.ContentType,
			CorrelationId: m.CorrelationID,
			Body:          m.Body,
		})
}

// Connected 回報目前連線是否可用，不會重連
func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && !c.conn.IsClosed() && c.channel != nil
}

// Inspect 查詢每個 queue 的狀態，不會重連
func (c *Connection) Inspect() []QueueStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	statuses := make([]QueueStatus, 0, len(c.Queues))
	for _, q := range c.Queues {
		status := QueueStatus{Name: q}
		if c.channel == nil {
			status.Error = ErrChannelClosed.Error()
		} else if queue, err := c.channel.QueueInspect(q); err != nil {
			status.Error = err.Error()
		} else {
			status.Messages = queue.Messages
			status.Consumers = queue.Consumers
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

func (c *Connection) HandleConsumedDeliveries(q string, delivery <-chan amqp.Delivery, fn func(*Connection, string, <-chan amqp.Delivery)) {
	trackLog.Info(fmt.Sprintf("[rabbitmq] queue %s consuming", q), true)
	for {
		go fn(c, q, delivery)
		if err := <-c.Err; err != nil {
			trackLog.Error(fmt.Sprintf("[rabbitmq] %s, reconnecting", err), true)
			for {
				if err := c.Reconnect(); err != nil {
					trackLog.Error(err.Error(), true)
					time.Sleep(reconnectDelay)
					continue
				}

				deliveries, err := c.Consume()
				if err != nil {
					time.Sleep(reconnectDelay)
					trackLog.Info("[rabbitmq] consume failed, try again", true)
				} else {
					trackLog.Info("[rabbitmq] reconnected", true)
					delivery = deliveries[q]
					break
				}
			}
		}
	}
}
