// Package notify delivers admin notifications for new orders. Delivery
// runs on an actor so the checkout response never waits on the email
// provider; a failed or unconfigured provider degrades to a durable
// log record, and a notification failure never fails the order.
package notify

import (
	"context"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"go.uber.org/zap"
)

const defaultDeliveryTimeout = 10 * time.Second

// EmailSender delivers one admin email. A nil sender means the
// provider is unconfigured.
type EmailSender interface {
	Send(ctx context.Context, subject, html string) error
}

// FallbackLog is the durable sink for summaries that could not be
// emailed. *repository.MongoRepository satisfies it.
type FallbackLog interface {
	SaveNotification(ctx context.Context, rec *repository.NotificationRecord) error
}

// OrderCreated is the message sent to the dispatcher actor after an
// order row has been persisted.
type OrderCreated struct {
	Order *models.Order
}

// Deliverer holds the delivery chain: email first, durable log on
// failure, plain log as the last resort.
type Deliverer struct {
	sender   EmailSender
	fallback FallbackLog
	timeout  time.Duration
	logger   *zap.Logger
}

func NewDeliverer(sender EmailSender, fallback FallbackLog, timeout time.Duration, logger *zap.Logger) *Deliverer {
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}
	return &Deliverer{
		sender:   sender,
		fallback: fallback,
		timeout:  timeout,
		logger:   logger,
	}
}

// Deliver makes a single bounded delivery attempt. There is no retry
// queue; the durable fallback record is the recovery path.
func (d *Deliverer) Deliver(order *models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if d.sender != nil {
		err := d.sender.Send(ctx, EmailSubject(order), EmailHTML(order))
		if err == nil {
			d.logger.Info("Order notification email sent", zap.String("order_id", order.ID))
			return
		}
		d.logger.Warn("Order notification email failed, falling back to log",
			zap.String("order_id", order.ID), zap.Error(err))
	} else {
		d.logger.Info("Email provider not configured, logging order notification",
			zap.String("order_id", order.ID))
	}

	summary := Summarize(order)
	if d.fallback != nil {
		err := d.fallback.SaveNotification(ctx, &repository.NotificationRecord{
			OrderID: order.ID,
			Type:    "new_order",
			Title:   summary.Title,
			Message: summary.Message,
		})
		if err == nil {
			return
		}
		d.logger.Warn("Failed to save notification record",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	d.logger.Info("Order notification",
		zap.String("order_id", order.ID),
		zap.String("title", summary.Title),
		zap.String("message", summary.Message),
		zap.String("whatsapp", WhatsAppLink(order.CustomerPhone)))
}

// DispatcherActor processes OrderCreated messages sequentially off the
// request path.
type DispatcherActor struct {
	deliverer *Deliverer
	logger    *zap.Logger
}

func (a *DispatcherActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *OrderCreated:
		a.deliverer.Deliver(msg.Order)

	case *actor.Started:
		a.logger.Info("Notification dispatcher started")

	case *actor.Stopped:
		a.logger.Info("Notification dispatcher stopped")
	}
}

// Dispatcher owns the actor system hosting the dispatcher actor.
type Dispatcher struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func NewDispatcher(deliverer *Deliverer, logger *zap.Logger) (*Dispatcher, error) {
	system := actor.NewActorSystem()
	props := actor.PropsFromProducer(func() actor.Actor {
		return &DispatcherActor{
			deliverer: deliverer,
			logger:    logger.Named("notify"),
		}
	})
	pid, err := system.Root.SpawnNamed(props, "notification-dispatcher")
	if err != nil {
		return nil, err
	}
	return &Dispatcher{system: system, pid: pid}, nil
}

// OrderCreated hands the order to the actor and returns immediately.
func (d *Dispatcher) OrderCreated(order *models.Order) {
	d.system.Root.Send(d.pid, &OrderCreated{Order: order})
}

// Stop shuts the actor down, letting in-flight deliveries finish.
func (d *Dispatcher) Stop() {
	d.system.Root.StopFuture(d.pid).Wait()
}
