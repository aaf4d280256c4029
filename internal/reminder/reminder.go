// Package reminder nudges the owner once a day to log the day's sales and
// expenses.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-tracker/internal/ledger"
	"github.com/fekuna/omnipos-tracker/internal/model"
	"github.com/fekuna/omnipos-tracker/internal/money"
	"github.com/fekuna/omnipos-tracker/pkg/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultSpec = "0 21 * * *"
	Title       = "Log your sales & expenses"
	emptyBody   = "1 minute to keep profit accurate. Add any missing sales/expenses now."
)

type Notification struct {
	Title string
	Body  string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// TrendReader is the slice of the dashboard the reminder needs.
type TrendReader interface {
	Trend(ctx context.Context, days int, now time.Time) ([]model.TrendPoint, error)
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	Logger logger.ZapLogger
}

func (n LogNotifier) Notify(_ context.Context, msg Notification) error {
	n.Logger.Info(msg.Title, zap.String("body", msg.Body))
	return nil
}

type Reminder struct {
	cron     *cron.Cron
	clock    ledger.Clock
	trend    TrendReader
	notifier Notifier
	logger   logger.ZapLogger
	timeout  time.Duration
}

// New schedules the reminder on schedule, a standard five-field cron expression
// evaluated in the clock's timezone. Call Start to run it.
func New(schedule string, clock ledger.Clock, trend TrendReader, notifier Notifier, log logger.ZapLogger) (*Reminder, error) {
	if schedule == "" {
		schedule = DefaultSpec
	}
	r := &Reminder{
		cron:     cron.New(cron.WithLocation(clock.Location())),
		clock:    clock,
		trend:    trend,
		notifier: notifier,
		logger:   log,
		timeout:  30 * time.Second,
	}
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", schedule, err)
	}
	return r, nil
}

func (r *Reminder) Start() {
	r.cron.Start()
	r.logger.Info("reminder scheduled", zap.Time("next", r.Next()))
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *Reminder) Stop() {
	<-r.cron.Stop().Done()
}

// Next reports when the reminder fires next, zero before Start.
func (r *Reminder) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.Fire(ctx); err != nil {
		r.logger.Error("reminder failed", zap.Error(err))
	}
}

// Fire builds today's notification and sends it.
func (r *Reminder) Fire(ctx context.Context) error {
	n, err := r.Build(ctx)
	if err != nil {
		return err
	}
	return r.notifier.Notify(ctx, n)
}

// Build summarises today. With no rows logged yet it returns the plain
// prompt; otherwise it adds the running totals.
func (r *Reminder) Build(ctx context.Context) (Notification, error) {
	points, err := r.trend.Trend(ctx, 1, r.clock.Now())
	if err != nil {
		return Notification{}, fmt.Errorf("today totals: %w", err)
	}
	n := Notification{Title: Title, Body: emptyBody}
	if len(points) == 0 {
		return n, nil
	}

	today := points[len(points)-1]
	if today.Empty() {
		return n, nil
	}
	n.Body = fmt.Sprintf("Today so far: sales %s, expenses %s, profit %s. Add anything missing.",
		money.Format(today.Sales), money.Format(today.Expenses), money.Format(today.Profit))
	return n, nil
}
