package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	ID    string
	Topic string
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[testPayload](config)

	ctx := context.Background()
	payload := testPayload{ID: "m1", Topic: "request.created"}

	err := queue.Publish(ctx, &payload)
	assert.NoError(t, err)
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, payload, *message.T())

	assert.NoError(t, message.Ack())
	// Double ack errors.
	assert.Error(t, message.Ack())
}

func TestQueueRetriesToDeadLetter(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[testPayload](config)

	ctx := context.Background()
	assert.NoError(t, queue.Publish(ctx, &testPayload{ID: "m1"}))

	// First delivery, nack requeues.
	message, err := queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(fmt.Errorf("boom")))
	time.Sleep(20 * time.Millisecond)

	// Retry delivery, nack exceeds MaxRetries and dead-letters.
	message, err = queue.Consume(ctx)
	assert.NoError(t, err)
	assert.NoError(t, message.Nack(fmt.Errorf("boom")))
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueueConcurrency(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx := context.Background()

	producers := 5
	messagesPerProducer := 20

	var wg sync.WaitGroup
	wg.Add(producers)
	for i := 0; i < producers; i++ {
		go func(producer int) {
			defer wg.Done()
			for j := 0; j < messagesPerProducer; j++ {
				payload := testPayload{ID: fmt.Sprintf("p%d-m%d", producer, j)}
				assert.NoError(t, queue.Publish(ctx, &payload))
			}
		}(i)
	}
	wg.Wait()

	consumed := map[string]bool{}
	for i := 0; i < producers*messagesPerProducer; i++ {
		message, err := queue.Consume(ctx)
		assert.NoError(t, err)
		consumed[message.T().ID] = true
		assert.NoError(t, message.Ack())
	}
	assert.Len(t, consumed, producers*messagesPerProducer)
	assert.Equal(t, 0, queue.Size())
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, queue.Publish(ctx, &testPayload{ID: "m1"}))

	waitCtx, cancelWait := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelWait()
	_, err := queue.Consume(waitCtx)
	assert.Error(t, err)

	// The queue stays usable after cancelled operations.
	background := context.Background()
	assert.NoError(t, queue.Publish(background, &testPayload{ID: "m2"}))
	message, err := queue.Consume(background)
	assert.NoError(t, err)
	assert.Equal(t, "m2", message.T().ID)
}
