package rabbitmq

import (
	"dishrank-restaurant-api/structs"
	"dishrank-restaurant-api/utils"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

//Connection is the connection created
type Connection struct {
	sync.Mutex
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queues  []string
	Err     chan error
	ApiErr  chan error
}

var (
	connectionPool = make(map[string]*Connection)
	poolMutex      = &sync.Mutex{}
)

//NewConnection returns the new connection object
func NewConnection(name string, queues []string) *Connection {
	poolMutex.Lock()
	defer poolMutex.Unlock()
	if c, ok := connectionPool[name]; ok {
		return c
	}
	c := &Connection{
		Queues: queues,
		Err:    make(chan error, 1),
		ApiErr: make(chan error, 1),
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
	c.Lock()
	defer c.Unlock()
	var err error
	c.Conn, err = amqp.Dial(utils.EnvConfig.RabbitMQ.Domain)
	if err != nil {
		return fmt.Errorf("Error in creating rabbitmq connection with %s : %s", utils.EnvConfig.RabbitMQ.Domain, err.Error())
	}
	go func(conn *amqp.Connection) {
		<-conn.NotifyClose(make(chan *amqp.Error)) //Listen to NotifyClose
		notify(c.Err, errors.New("Connection Closed"))
		notify(c.ApiErr, errors.New("Api detect Connection Closed"))
	}(c.Conn)
	c.Channel, err = c.Conn.Channel()
	if err != nil {
		return fmt.Errorf("Channel: %s", err)
	}
	return nil
}

func (c *Connection) BindQueue() error {
	c.Lock()
	defer c.Unlock()
	for _, q := range c.Queues {
		if _, err := c.Channel.QueueDeclare(q, true, false, false, false, nil); err != nil {
			return fmt.Errorf("error in declaring the queue %s", err)
		}
	}
	return nil
}

//Reconnect reconnects the connection
func (c *Connection) Reconnect() error {
	if err := c.Connect(); err != nil {
		return err
	}
	if err := c.BindQueue(); err != nil {
		return err
	}
	return nil
}

// Publish 把關聯異動事件送到每一個 queue，連線已關閉時重連一次
func (c *Connection) Publish(event structs.AssociationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	err = c.publish(event, body)
	if errors.Is(err, amqp.ErrClosed) {
		if err := c.Reconnect(); err != nil {
			return err
		}
		err = c.publish(event, body)
	}
	return err
}

func (c *Connection) publish(event structs.AssociationEvent, body []byte) error {
	c.Lock()
	defer c.Unlock()
	if c.Channel == nil {
		return amqp.ErrClosed
	}
	for _, q := range c.Queues {
		err := c.Channel.Publish("", q, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Connection) Consume() (map[string]<-chan amqp.Delivery, error) {
	c.Lock()
	defer c.Unlock()
	m := make(map[string]<-chan amqp.Delivery)
	for _, q := range c.Queues {
		deliveries, err := c.Channel.Consume(q, "", true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		m[q] = deliveries
	}
	return m, nil
}

func (c *Connection) HandleConsumedDeliveries(q string, delivery <-chan amqp.Delivery, fn func(*Connection, string, <-chan amqp.Delivery)) {
	fmt.Println("[HandleConsumedDeliveries]Delivery received")
	for {
		go fn(c, q, delivery)
		if err := <-c.Err; err != nil {
			for {
				if err := c.Reconnect(); err != nil {
					fmt.Println("reconnect fail:", err.Error())
					time.Sleep(60 * time.Second)
					continue
				}

				deliveries, err := c.Consume()
				if err != nil {
					time.Sleep(60 * time.Second)
					fmt.Println("try again")
				} else {
					fmt.Println("try ok")
					delivery = deliveries[q]
					break
				}
			}
		}
	}
}

// Close 關閉 channel 與連線
func (c *Connection) Close() error {
	c.Lock()
	defer c.Unlock()
	if c.Channel != nil {
		c.Channel.Close()
		c.Channel = nil
	}
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

func notify(ch chan error, err error) {
	select {
	case ch <- err:
	default:
	}
}
