package rabbitmq_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"inventory/internal/models"
	"inventory/pkg/rabbitmq"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockChannel is a mock implementation of rabbitmq.Channel
type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error) {
	a := m.Called(name, durable, autoDelete, exclusive, noWait, args)
	return a.Get(0).(amqp.Queue), a.Error(1)
}

func (m *MockChannel) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	a := m.Called(exchange, key, mandatory, immediate, msg)
	return a.Error(0)
}

func (m *MockChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	a := m.Called(queue, consumer, autoAck, exclusive, noLocal, noWait, args)
	return a.Get(0).(<-chan amqp.Delivery), a.Error(1)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

// MockAcknowledger records acks and nacks.
type MockAcknowledger struct {
	mock.Mock
}

func (m *MockAcknowledger) Ack(tag uint64, multiple bool) error {
	return m.Called(tag, multiple).Error(0)
}

func (m *MockAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	return m.Called(tag, multiple, requeue).Error(0)
}

func (m *MockAcknowledger) Reject(tag uint64, requeue bool) error {
	return m.Called(tag, requeue).Error(0)
}

func newChannel() *MockChannel {
	ch := new(MockChannel)
	ch.On("QueueDeclare", rabbitmq.ProductEventsQueue, true, false, false, false, amqp.Table(nil)).
		Return(amqp.Queue{Name: rabbitmq.ProductEventsQueue}, nil)
	return ch
}

func TestClient_PublishProductEvent(t *testing.T) {
	ch := newChannel()
	client, err := rabbitmq.NewClientWithChannel(ch)
	require.NoError(t, err)

	event := models.ProductEvent{
		Type:       models.EventProductCreated,
		ProductID:  4,
		Product:    &models.Product{ID: 4, Name: "Pen", Price: 10, Category: "Office", Stock: 5},
		OccurredAt: time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
	}

	var published amqp.Publishing
	ch.On("Publish", "", rabbitmq.ProductEventsQueue, false, false, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(4).(amqp.Publishing) }).
		Return(nil).Once()

	require.NoError(t, client.PublishProductEvent(event))
	ch.AssertExpectations(t)

	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, models.EventProductCreated, published.Type)
	assert.NotEmpty(t, published.MessageId)

	var decoded models.ProductEvent
	require.NoError(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, event.ProductID, decoded.ProductID)
	assert.Equal(t, "Pen", decoded.Product.Name)
}

func TestClient_PublishFailure(t *testing.T) {
	ch := newChannel()
	client, err := rabbitmq.NewClientWithChannel(ch)
	require.NoError(t, err)

	ch.On("Publish", "", rabbitmq.ProductEventsQueue, false, false, mock.Anything).Return(errors.New("channel closed")).Once()
	err = client.PublishProductEvent(models.ProductEvent{Type: models.EventProductDeleted, ProductID: 1})
	assert.ErrorContains(t, err, "channel closed")
}

func TestNewClientWithChannel_DeclareFailure(t *testing.T) {
	ch := new(MockChannel)
	ch.On("QueueDeclare", rabbitmq.ProductEventsQueue, true, false, false, false, amqp.Table(nil)).
		Return(amqp.Queue{}, errors.New("access refused"))

	_, err := rabbitmq.NewClientWithChannel(ch)
	assert.ErrorContains(t, err, "access refused")
}

func TestClient_ConsumeProductEvents(t *testing.T) {
	ch := newChannel()
	client, err := rabbitmq.NewClientWithChannel(ch)
	require.NoError(t, err)

	deliveries := make(chan amqp.Delivery, 2)
	ch.On("Consume", rabbitmq.ProductEventsQueue, "", false, false, false, false, amqp.Table(nil)).
		Return((<-chan amqp.Delivery)(deliveries), nil).Once()

	ack := new(MockAcknowledger)
	ack.On("Ack", uint64(1), false).Return(nil).Once()
	nacked := make(chan struct{})
	ack.On("Nack", uint64(2), false, false).Run(func(mock.Arguments) { close(nacked) }).Return(nil).Once()

	received := make(chan models.ProductEvent, 1)
	require.NoError(t, client.ConsumeProductEvents(func(e models.ProductEvent) error {
		received <- e
		return nil
	}))

	body, err := json.Marshal(models.ProductEvent{Type: models.EventProductUpdated, ProductID: 9})
	require.NoError(t, err)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: body}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte("not json")}
	close(deliveries)

	select {
	case e := <-received:
		assert.Equal(t, 9, e.ProductID)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered to the handler")
	}
	select {
	case <-nacked:
	case <-time.After(time.Second):
		t.Fatal("malformed message was not nacked")
	}
	ack.AssertExpectations(t)
}

func TestClient_Close(t *testing.T) {
	ch := newChannel()
	client, err := rabbitmq.NewClientWithChannel(ch)
	require.NoError(t, err)

	ch.On("Close").Return(nil).Once()
	assert.NoError(t, client.Close())
	ch.AssertExpectations(t)
}
