package queue_test

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/profieldmanager/mediavault/pkg/queue"
)

// capturePublisher 记录发布的主题与消息.
type capturePublisher struct {
	topics   []string
	messages []*message.Message
}

func (p *capturePublisher) Publish(topic string, msgs ...*message.Message) error {
	for _, m := range msgs {
		p.topics = append(p.topics, topic)
		p.messages = append(p.messages, m)
	}

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func TestWatermillMessageRoundTrip(t *testing.T) {
	payload := queue.FileListInvalidatedPayload{
		ProjectID: 7,
		Key:       "/api/projects/7/files",
		Reason:    "delete",
	}

	msg, err := queue.NewWatermillMessage(queue.TopicFileListInvalidated, payload,
		queue.WithProducer("mediavault"), queue.WithTraceID("t-1"))
	if err != nil {
		t.Fatalf("NewWatermillMessage: %v", err)
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicFileListInvalidated {
		t.Errorf("metadata topic = %q", got)
	}

	env, err := queue.ParseFileListInvalidated(msg)
	if err != nil {
		t.Fatalf("ParseFileListInvalidated: %v", err)
	}

	if env.Header.Topic != queue.TopicFileListInvalidated || env.Header.Producer != "mediavault" {
		t.Errorf("header = %+v", env.Header)
	}

	if env.Payload.Key != payload.Key || env.Payload.Reason != "delete" {
		t.Errorf("payload = %+v", env.Payload)
	}
}

func TestPublishMutationResultPicksTopic(t *testing.T) {
	pub := &capturePublisher{}

	// 成功结果
	err := queue.PublishMutationResult(pub, queue.MutationPayload{
		Operation: "delete",
		ProjectID: 7,
		FileID:    1,
	})
	if err != nil {
		t.Fatalf("publish success: %v", err)
	}

	// 失败结果
	err = queue.PublishMutationResult(pub, queue.MutationPayload{
		Operation: "upload",
		ProjectID: 7,
		Error:     "too large",
	})
	if err != nil {
		t.Fatalf("publish failure: %v", err)
	}

	if len(pub.topics) != 2 {
		t.Fatalf("published %d messages, want 2", len(pub.topics))
	}

	if pub.topics[0] != queue.TopicMutationSucceeded {
		t.Errorf("first topic = %q, want succeeded", pub.topics[0])
	}

	if pub.topics[1] != queue.TopicMutationFailed {
		t.Errorf("second topic = %q, want failed", pub.topics[1])
	}

	env, err := queue.ParseWatermillMessage[queue.MutationPayload](pub.messages[1])
	if err != nil {
		t.Fatalf("parse failure payload: %v", err)
	}

	if env.Payload.Error != "too large" {
		t.Errorf("error = %q, want server message", env.Payload.Error)
	}
}

func TestPublishFileListInvalidated(t *testing.T) {
	pub := &capturePublisher{}

	err := queue.PublishFileListInvalidated(pub, queue.FileListInvalidatedPayload{
		ProjectID: 42,
		Key:       "/api/projects/42/files",
		Reason:    "upload",
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if pub.topics[0] != queue.TopicFileListInvalidated {
		t.Errorf("topic = %q", pub.topics[0])
	}
}
