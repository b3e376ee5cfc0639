package broker

import "context"

//go:generate mockgen -source=./broker.go -destination=../mocks/broker/mock.go -package=brokermocks

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Close() error
}

// NopProducer drops every message. It is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, []byte, []byte) error {
	return nil
}

func (NopProducer) Close() error {
	return nil
}
