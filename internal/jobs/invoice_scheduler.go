package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"seatbill/internal/billing"
	"seatbill/internal/services"

	"github.com/go-co-op/gocron/v2"
)

const invoiceRunTimeout = 30 * time.Minute

// Invoicer issues a month's invoices for every customer.
type Invoicer interface {
	InvoiceAll(ctx context.Context, month billing.Month) (*services.InvoiceRunResult, error)
}

// InvoiceScheduler runs monthly invoicing for the month that just ended
type InvoiceScheduler struct {
	scheduler gocron.Scheduler
	invoicer  Invoicer
	job       gocron.Job
	now       func() time.Time
}

// NewInvoiceScheduler registers the monthly invoicing job on dayOfMonth at hour (UTC)
func NewInvoiceScheduler(invoicer Invoicer, dayOfMonth int, hour uint) (*InvoiceScheduler, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &InvoiceScheduler{
		scheduler: scheduler,
		invoicer:  invoicer,
		now:       time.Now,
	}

	js.job, err = scheduler.NewJob(
		gocron.MonthlyJob(1, gocron.NewDaysOfTheMonth(dayOfMonth), gocron.NewAtTimes(gocron.NewAtTime(hour, 0, 0))),
		gocron.NewTask(js.invoicePreviousMonth),
		gocron.WithName("monthly-invoicing"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("create invoicing job: %w", err)
	}

	return js, nil
}

// Start starts the job scheduler
func (js *InvoiceScheduler) Start() {
	log.Printf("Starting invoice scheduler")
	js.scheduler.Start()
	if next, err := js.job.NextRun(); err == nil {
		log.Printf("Next invoicing run at %s", next.Format(time.RFC3339))
	}
}

// Stop stops the job scheduler
func (js *InvoiceScheduler) Stop() error {
	log.Printf("Stopping invoice scheduler")
	return js.scheduler.Shutdown()
}

// RunFor invoices every customer for month
func (js *InvoiceScheduler) RunFor(ctx context.Context, month billing.Month) (*services.InvoiceRunResult, error) {
	log.Printf("Starting invoicing run for %s", month)
	start := time.Now()

	result, err := js.invoicer.InvoiceAll(ctx, month)
	if err != nil {
		log.Printf("Invoicing run for %s failed: %v", month, err)
		return nil, err
	}

	log.Printf("Invoicing run for %s completed in %v: %d issued, %d failed",
		month, time.Since(start), result.Issued, len(result.Failed))
	return result, nil
}

// previousMonth is the month before the one containing the scheduler's current time
func (js *InvoiceScheduler) previousMonth() billing.Month {
	return billing.MonthOf(billing.Today(js.now())).Previous()
}

func (js *InvoiceScheduler) invoicePreviousMonth() error {
	ctx, cancel := context.WithTimeout(context.Background(), invoiceRunTimeout)
	defer cancel()

	_, err := js.RunFor(ctx, js.previousMonth())
	return err
}
