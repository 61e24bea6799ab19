// Package adapter builds the redis-stream publisher/subscriber pair used by
// the watermill buses.
package adapter

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance at addr.
func NewRedisClient(addr string) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// NewPublisher creates a redis-stream publisher on the given client.
func NewPublisher(client redis.UniversalClient, logger watermill.LoggerAdapter) (*redisstream.Publisher, error) {
	return redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: client,
	}, logger)
}

// NewSubscriber creates a redis-stream subscriber in the given consumer group.
func NewSubscriber(client redis.UniversalClient, consumerGroup string, logger watermill.LoggerAdapter) (*redisstream.Subscriber, error) {
	return redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        client,
		ConsumerGroup: consumerGroup,
	}, logger)
}
