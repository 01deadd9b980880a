package pubsub

// PublisherOption configures the Publisher
type PublisherOption func(*publisherOptions)

type publisherOptions struct {
	clock Clock
}

// WithPublisherClock injects the time source used to stamp enqueue and
// "publish now" times.
func WithPublisherClock(clock Clock) PublisherOption {
	return func(o *publisherOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}
