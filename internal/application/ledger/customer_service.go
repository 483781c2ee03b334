package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CustomerService manages customer profiles and their reputation
type CustomerService struct {
	customers  ledger.CustomerRepository
	debts      ledger.DebtRepository
	activities ledger.ActivityRepository
	auditLogs  ledger.AuditLogRepository
	logger     *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customers ledger.CustomerRepository,
	debts ledger.DebtRepository,
	activities ledger.ActivityRepository,
	auditLogs ledger.AuditLogRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		customers:  customers,
		debts:      debts,
		activities: activities,
		auditLogs:  auditLogs,
		logger:     logger,
	}
}

// Create creates a new customer profile
func (s *CustomerService) Create(ctx context.Context, input CreatePartyInput) (*ledger.Customer, error) {
	if existing, err := s.customers.FindByName(ctx, input.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_NAME", "A customer with this name already exists")
	}

	customer, err := ledger.NewCustomer(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create customer")
	}

	s.recordActivity(ctx, ledger.PartyTypeCustomer, customer.ID, ledger.ActivityProfileCreated,
		"Customer profile created: "+customer.Name, nil)
	s.recordAudit(ctx, ledger.AuditActionCreate, "customer", customer.ID, customer.Name)

	s.logger.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name))
	return customer, nil
}

// Get returns a customer with their debts, balance, and credit standing
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerDetail, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCustomer, id)
	if err != nil {
		s.logger.Error("Failed to load customer debts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load customer debts")
	}

	return &CustomerDetail{
		Customer:       customer,
		Debts:          debts,
		Outstanding:    ledger.OutstandingTotal(debts),
		CreditDecision: customer.CanReceiveNewDebt(debts, time.Now()),
	}, nil
}

// List returns customers matching the filter, paginated
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ledger.Customer], error) {
	customers, err := s.customers.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customers.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(customers, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update changes a customer's profile details
func (s *CustomerService) Update(ctx context.Context, input UpdatePartyInput) (*ledger.Customer, error) {
	customer, err := s.customers.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != customer.Name {
		if existing, err := s.customers.FindByName(ctx, input.Name); err == nil && existing != nil {
			return nil, shared.NewDomainError("DUPLICATE_NAME", "A customer with this name already exists")
		}
		if err := customer.Rename(input.Name); err != nil {
			return nil, err
		}
	}
	customer.UpdateContact(input.Phone, input.Address)

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update customer")
	}

	s.recordActivity(ctx, ledger.PartyTypeCustomer, customer.ID, ledger.ActivityProfileUpdated,
		"Customer profile updated: "+customer.Name, nil)
	return customer, nil
}

// Delete removes a customer and their debt history
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCustomer, id)
	if err != nil {
		s.logger.Error("Failed to load customer debts before delete", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete customer")
	}
	for _, debt := range debts {
		if err := s.debts.Delete(ctx, debt.ID); err != nil {
			s.logger.Error("Failed to delete customer debt", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete customer")
		}
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	total := customer.TotalDebt
	s.recordAuditAmount(ctx, ledger.AuditActionDelete, "customer", id,
		"Deleted customer "+customer.Name, &total)

	s.logger.Info("Customer deleted",
		zap.String("customer_id", id.String()),
		zap.String("name", customer.Name))
	return nil
}

// RefreshReputation recalculates a customer's reputation from their ledger
func (s *CustomerService) RefreshReputation(ctx context.Context, id uuid.UUID) (*ledger.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCustomer, id)
	if err != nil {
		s.logger.Error("Failed to load debts for reputation refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh reputation")
	}

	customer.RecalculateTotalDebt(debts)
	customer.UpdateReputation(debts, time.Now())

	if err := s.customers.Save(ctx, customer); err != nil {
		s.logger.Error("Failed to save customer reputation", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh reputation")
	}

	return customer, nil
}

// RefreshAllReputations recalculates reputation for every customer.
// Returns the number of customers updated.
func (s *CustomerService) RefreshAllReputations(ctx context.Context) (int, error) {
	filter := shared.DefaultFilter()
	filter.PageSize = 500

	updated := 0
	for {
		customers, err := s.customers.FindAll(ctx, filter)
		if err != nil {
			return updated, err
		}
		if len(customers) == 0 {
			break
		}

		for i := range customers {
			customer := &customers[i]
			debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCustomer, customer.ID)
			if err != nil {
				s.logger.Error("Failed to load debts during bulk reputation refresh",
					zap.String("customer_id", customer.ID.String()), zap.Error(err))
				continue
			}
			customer.RecalculateTotalDebt(debts)
			customer.UpdateReputation(debts, time.Now())
			if err := s.customers.Save(ctx, customer); err != nil {
				s.logger.Error("Failed to save customer during bulk reputation refresh",
					zap.String("customer_id", customer.ID.String()), zap.Error(err))
				continue
			}
			updated++
		}

		if len(customers) < filter.PageSize {
			break
		}
		filter.Page++
	}

	s.logger.Info("Reputation refresh completed", zap.Int("updated", updated))
	return updated, nil
}

// Activity failures are logged, never surfaced; the trail is best effort
func (s *CustomerService) recordActivity(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID, activityType ledger.ActivityType, description string, amount *decimal.Decimal) {
	activity, err := ledger.NewEntityActivity(partyType, partyID, activityType, description, amount)
	if err != nil {
		s.logger.Error("Failed to build activity entry", zap.Error(err))
		return
	}
	if err := s.activities.Save(ctx, activity); err != nil {
		s.logger.Error("Failed to save activity entry", zap.Error(err))
	}
}

func (s *CustomerService) recordAudit(ctx context.Context, action ledger.AuditAction, entityType string, entityID uuid.UUID, description string) {
	s.recordAuditAmount(ctx, action, entityType, entityID, description, nil)
}

func (s *CustomerService) recordAuditAmount(ctx context.Context, action ledger.AuditAction, entityType string, entityID uuid.UUID, description string, amount *decimal.Decimal) {
	entry, err := ledger.NewAuditLog(action, entityType, entityID, description, amount)
	if err != nil {
		s.logger.Error("Failed to build audit entry", zap.Error(err))
		return
	}
	if err := s.auditLogs.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to save audit entry", zap.Error(err))
	}
}
