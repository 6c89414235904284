// Package mq 提供基于 Watermill 库的进程内事件总线.
// 单进程客户端不需要外部 broker，使用 gochannel 的发布/订阅实现；
// 接口形状保留 Publisher/Subscriber 封装，便于未来替换为 NATS 等实现.
//
// 使用示例：
//
//	ctx := context.Background()
//	client, err := mq.New(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	// 发布消息
//	msg := message.NewMessage(watermill.NewUUID(), []byte("hello world"))
//	err = client.Publish(ctx, "topic", msg)
//
//	// 订阅主题
//	ch, err := client.Subscribe(ctx, "topic")
//	for m := range ch {
//		fmt.Println(string(m.Payload))
//		m.Ack()
//	}
package mq

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	nlog "github.com/profieldmanager/mediavault/pkg/log"
)

// Client 封装 watermill Publisher 与 Subscriber.
type Client struct {
	bus *gochannel.GoChannel
}

// Publisher 返回底层 Publisher，供 queue 包的业务封装使用.
func (c *Client) Publisher() message.Publisher {
	if c == nil {
		return nil
	}

	return c.bus
}

// Publish 便捷发布.
func (c *Client) Publish(ctx context.Context, topic string, msgs ...*message.Message) error {
	if c == nil || c.bus == nil {
		return fmt.Errorf("mq publisher not initialized")
	}

	for _, m := range msgs {
		if err := c.bus.Publish(topic, m); err != nil {
			return err
		}
	}

	return nil
}

// Subscribe 便捷订阅.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if c == nil || c.bus == nil {
		return nil, fmt.Errorf("mq subscriber not initialized")
	}

	ch, err := c.bus.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}

	return ch, nil
}

// Close 关闭资源.
func (c *Client) Close() error {
	if c == nil || c.bus == nil {
		return nil
	}

	return c.bus.Close()
}

var (
	mqOnce sync.Once
	mqInst *Client
)

// New 初始化事件总线（单例）.
func New(ctx context.Context) (*Client, error) {
	mqOnce.Do(func() {
		logger := &zerologAdapter{l: nlog.Logger()}

		bus := gochannel.NewGoChannel(gochannel.Config{
			// 订阅者滞后时不阻塞发布方
			OutputChannelBuffer: 64,
		}, logger)

		mqInst = &Client{bus: bus}

		nlog.Logger().Info().Msg("event bus initialized")
	})

	return mqInst, nil
}
