package app

import (
	"context"

	"mdelivery-zones/internal/service/editevents"
	"mdelivery-zones/internal/transport/kafka"
)

// makeEditEventsHandler marks events that can never succeed as permanent so
// the consumer commits them instead of retrying.
func makeEditEventsHandler(p *editevents.Processor) kafka.HandleFunc {
	return func(ctx context.Context, event editevents.Event) error {
		err := p.Handle(ctx, event)
		if err != nil && editevents.Permanent(err) {
			return kafka.Permanent(err)
		}
		return err
	}
}
