package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"seatbill/internal/billing"
	"seatbill/internal/caching"
	"seatbill/internal/common"
	"seatbill/internal/models"
	"seatbill/internal/repositories"
	"seatbill/internal/storage"

	"github.com/google/uuid"
)

// BillingService computes monthly charges from stored seats and issues invoices
type BillingService interface {
	MonthlyCharge(ctx context.Context, customerID uuid.UUID, month string) (int64, error)
	Statement(ctx context.Context, customerID uuid.UUID, month string) (*billing.Statement, error)
	IssueInvoice(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error)
	InvoiceAll(ctx context.Context, month billing.Month) (*InvoiceRunResult, error)
	ListInvoices(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error)
	MarkInvoice(ctx context.Context, customerID uuid.UUID, month, status string) error
	StatementURL(ctx context.Context, customerID uuid.UUID, month string) (string, error)
}

// InvoiceRunResult summarizes one monthly invoicing run. Every customer is billed on its own.
type InvoiceRunResult struct {
	Month  string               `json:"month"`
	Issued int                  `json:"issued"`
	Failed map[uuid.UUID]string `json:"failed"`
}

const (
	invoiceRunConcurrency = 5
	statementLinkExpiry   = 15 * time.Minute
)

type billingService struct {
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
	invoiceRepo      repositories.InvoiceRepository
	cache            caching.ChargeCache
	store            storage.StatementStore
	chargeTTL        time.Duration
	now              func() time.Time
}

// NewBillingService creates a new billing service
func NewBillingService(
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	invoiceRepo repositories.InvoiceRepository,
	cache caching.ChargeCache,
	store storage.StatementStore,
	chargeTTL time.Duration,
) BillingService {
	return &billingService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		invoiceRepo:      invoiceRepo,
		cache:            cache,
		store:            store,
		chargeTTL:        chargeTTL,
		now:              time.Now,
	}
}

// subscriptionFor returns nil without error when the customer has no plan.
func (s *billingService) subscriptionFor(ctx context.Context, customerID uuid.UUID) (*models.Subscription, error) {
	sub, err := s.subscriptionRepo.GetByCustomerID(ctx, customerID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}
	return sub, nil
}

func (s *billingService) buildStatement(ctx context.Context, customerID uuid.UUID, m billing.Month) (*billing.Statement, *models.Subscription, error) {
	sub, err := s.subscriptionFor(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	var users []models.User
	if sub != nil {
		users, err = s.userRepo.ListActiveInRange(ctx, customerID, m.Start(), m.End())
		if err != nil {
			return nil, nil, fmt.Errorf("load users: %w", err)
		}
	}

	st, err := billing.BuildStatement(m, sub, users)
	if err != nil {
		return nil, nil, err
	}
	st.CustomerID = customerID
	return st, sub, nil
}

// cacheGeneration reads the customer's cache generation. It must run before seats are loaded.
// ok is false when the cache is unreachable; the charge is then neither read nor stored.
func (s *billingService) cacheGeneration(ctx context.Context, customerID uuid.UUID) (generation int64, ok bool) {
	generation, err := s.cache.Generation(ctx, customerID)
	if err != nil {
		log.Printf("WARN: charge cache unavailable for customer %s: %v", customerID, err)
		return 0, false
	}
	return generation, true
}

func (s *billingService) cacheCharge(ctx context.Context, customerID uuid.UUID, generation int64, m billing.Month, cents int64) {
	if err := s.cache.SetCharge(ctx, customerID, generation, m.String(), cents, s.chargeTTL); err != nil {
		log.Printf("WARN: failed to cache charge for customer %s: %v", customerID, err)
	}
}

// MonthlyCharge returns the customer's charge for month, served from cache when possible
func (s *billingService) MonthlyCharge(ctx context.Context, customerID uuid.UUID, month string) (int64, error) {
	m, err := billing.ParseMonth(month)
	if err != nil {
		return 0, err
	}

	generation, cacheable := s.cacheGeneration(ctx, customerID)
	if cacheable {
		cents, hit, err := s.cache.GetCharge(ctx, customerID, generation, m.String())
		if err != nil {
			log.Printf("WARN: charge cache lookup failed for customer %s: %v", customerID, err)
		} else if hit {
			return cents, nil
		}
	}

	st, _, err := s.buildStatement(ctx, customerID, m)
	if err != nil {
		return 0, err
	}

	if cacheable {
		s.cacheCharge(ctx, customerID, generation, m, st.TotalCents)
	}
	return st.TotalCents, nil
}

// Statement returns the per-user breakdown of the customer's charge for month
func (s *billingService) Statement(ctx context.Context, customerID uuid.UUID, month string) (*billing.Statement, error) {
	m, err := billing.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	st, _, err := s.buildStatement(ctx, customerID, m)
	return st, err
}

// IssueInvoice computes the month's statement, archives it and records the invoice.
// Issuing the same month again replaces the earlier invoice.
func (s *billingService) IssueInvoice(ctx context.Context, customerID uuid.UUID, month string) (*models.Invoice, error) {
	m, err := billing.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	generation, cacheable := s.cacheGeneration(ctx, customerID)
	st, sub, err := s.buildStatement(ctx, customerID, m)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, ErrNoSubscription
	}

	key, err := s.store.PutStatement(ctx, customerID, st)
	if err != nil {
		return nil, err
	}

	invoice := &models.Invoice{
		ID:             uuid.New(),
		CustomerID:     customerID,
		SubscriptionID: sub.ID,
		Month:          m.String(),
		AmountCents:    st.TotalCents,
		BilledUsers:    st.BilledUsers(),
		Status:         models.InvoiceStatusIssued,
		StatementKey:   &key,
		IssuedAt:       s.now().UTC(),
	}
	if err := s.invoiceRepo.Upsert(ctx, invoice); err != nil {
		return nil, fmt.Errorf("store invoice: %w", err)
	}

	if cacheable {
		s.cacheCharge(ctx, customerID, generation, m, st.TotalCents)
	}

	log.Printf("Issued invoice for customer %s month %s: %d cents, %d users", customerID, m, invoice.AmountCents, invoice.BilledUsers)
	return invoice, nil
}

// InvoiceAll issues the month's invoice for every customer with a subscription
func (s *billingService) InvoiceAll(ctx context.Context, month billing.Month) (*InvoiceRunResult, error) {
	customerIDs, err := s.subscriptionRepo.ListCustomerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	result := &InvoiceRunResult{
		Month:  month.String(),
		Failed: make(map[uuid.UUID]string),
	}

	semaphore := make(chan struct{}, invoiceRunConcurrency)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, customerID := range customerIDs {
		wg.Add(1)
		go func(customerID uuid.UUID) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			_, err := s.IssueInvoice(ctx, customerID, month.String())

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("Failed to invoice customer %s for %s: %v", customerID, month, err)
				result.Failed[customerID] = err.Error()
				return
			}
			result.Issued++
		}(customerID)
	}
	wg.Wait()

	return result, nil
}

// ListInvoices lists the customer's invoices, newest month first
func (s *billingService) ListInvoices(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*models.Invoice, error) {
	limit, offset, err := common.ValidatePaginationParams(limit, offset)
	if err != nil {
		return nil, validationErrorf("%v", err)
	}
	return s.invoiceRepo.ListByCustomer(ctx, customerID, limit, offset)
}

// MarkInvoice updates the status of the customer's invoice for month
func (s *billingService) MarkInvoice(ctx context.Context, customerID uuid.UUID, month, status string) error {
	m, err := billing.ParseMonth(month)
	if err != nil {
		return err
	}
	if err := common.ValidateInvoiceStatus(status); err != nil {
		return validationErrorf("%v", err)
	}
	return s.invoiceRepo.UpdateStatus(ctx, customerID, m.String(), status)
}

// StatementURL returns a short-lived download link for the archived statement of an issued invoice
func (s *billingService) StatementURL(ctx context.Context, customerID uuid.UUID, month string) (string, error) {
	m, err := billing.ParseMonth(month)
	if err != nil {
		return "", err
	}
	invoice, err := s.invoiceRepo.GetByCustomerMonth(ctx, customerID, m.String())
	if err != nil {
		return "", err
	}
	if invoice.StatementKey == nil {
		return "", repositories.ErrNotFound
	}
	return s.store.PresignedURL(ctx, *invoice.StatementKey, statementLinkExpiry)
}
