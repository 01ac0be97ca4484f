package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/utils/events"
)

// publish announces a committed mutation. The write already succeeded, so a
// failed publish is only logged, and a cancelled request does not stop it.
func publish(ctx context.Context, bus events.Publisher, ev events.Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(context.WithoutCancel(ctx), ev); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"type":    ev.Type,
			"user_id": ev.UserID,
		}).Warn("event publish failed")
	}
}
