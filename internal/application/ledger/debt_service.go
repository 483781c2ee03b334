package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DebtService records debts and payments against parties. Every mutation
// keeps the party's running total and reputation in sync with the ledger.
type DebtService struct {
	debts      ledger.DebtRepository
	customers  ledger.CustomerRepository
	companies  ledger.CompanyRepository
	activities ledger.ActivityRepository
	auditLogs  ledger.AuditLogRepository
	logger     *zap.Logger
}

// NewDebtService creates a new debt service
func NewDebtService(
	debts ledger.DebtRepository,
	customers ledger.CustomerRepository,
	companies ledger.CompanyRepository,
	activities ledger.ActivityRepository,
	auditLogs ledger.AuditLogRepository,
	logger *zap.Logger,
) *DebtService {
	return &DebtService{
		debts:      debts,
		customers:  customers,
		companies:  companies,
		activities: activities,
		auditLogs:  auditLogs,
		logger:     logger,
	}
}

// Create records a new debt. Customers taking on debt must pass the
// credit check; companies (money we owe) are never refused.
func (s *DebtService) Create(ctx context.Context, input CreateDebtInput) (*ledger.Debt, error) {
	if input.PartyType == ledger.PartyTypeCustomer && input.Amount.IsPositive() {
		customer, err := s.customers.FindByID(ctx, input.PartyID)
		if err != nil {
			return nil, err
		}
		existing, err := s.debts.FindByParty(ctx, ledger.PartyTypeCustomer, input.PartyID)
		if err != nil {
			s.logger.Error("Failed to load debts for credit check", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check credit")
		}
		decision := customer.CanReceiveNewDebt(existing, time.Now())
		if !decision.Allowed {
			s.logger.Warn("Credit refused",
				zap.String("customer_id", input.PartyID.String()),
				zap.String("reason", decision.Reason))
			return nil, shared.NewDomainError("CREDIT_REFUSED", decision.Reason)
		}
	} else if input.PartyType == ledger.PartyTypeCompany {
		if _, err := s.companies.FindByID(ctx, input.PartyID); err != nil {
			return nil, err
		}
	}

	debt, err := ledger.NewDebt(input.PartyType, input.PartyID, valueobject.NewMoneyUSD(input.Amount), input.Note, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.debts.Save(ctx, debt); err != nil {
		s.logger.Error("Failed to save debt", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record debt")
	}

	if err := s.syncParty(ctx, debt.PartyType, debt.PartyID); err != nil {
		s.logger.Error("Failed to sync party after debt creation", zap.Error(err))
	}

	amount := debt.Amount
	s.saveActivity(ctx, debt.PartyType, debt.PartyID, ledger.ActivityDebtCreated,
		"Debt recorded: "+debt.Note, &amount, debt.ID)
	s.saveAudit(ctx, ledger.AuditActionCreate, "debt", debt.ID, debt.Note, &amount)

	s.logger.Info("Debt recorded",
		zap.String("debt_id", debt.ID.String()),
		zap.String("party_id", debt.PartyID.String()),
		zap.String("amount", debt.Amount.StringFixed(2)))
	return debt, nil
}

// RecordPayment records a payment against a party's balance
func (s *DebtService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*ledger.Debt, error) {
	payment, err := ledger.NewPaymentEntry(input.PartyType, input.PartyID, valueobject.NewMoneyUSD(input.Amount), input.Note)
	if err != nil {
		return nil, err
	}

	if err := s.debts.Save(ctx, payment); err != nil {
		s.logger.Error("Failed to save payment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record payment")
	}

	if err := s.syncParty(ctx, payment.PartyType, payment.PartyID); err != nil {
		s.logger.Error("Failed to sync party after payment", zap.Error(err))
	}

	amount := payment.Amount
	s.saveActivity(ctx, payment.PartyType, payment.PartyID, ledger.ActivityPaymentMade,
		"Payment received: "+payment.Note, &amount, payment.ID)

	s.logger.Info("Payment recorded",
		zap.String("debt_id", payment.ID.String()),
		zap.String("party_id", payment.PartyID.String()),
		zap.String("amount", payment.Amount.Abs().StringFixed(2)))
	return payment, nil
}

// Update changes a debt's note or due date
func (s *DebtService) Update(ctx context.Context, input UpdateDebtInput) (*ledger.Debt, error) {
	debt, err := s.debts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Note != nil {
		if err := debt.SetNote(*input.Note); err != nil {
			return nil, err
		}
	}
	if input.DueDate != nil {
		debt.SetDueDate(input.DueDate)
	}

	if err := s.debts.Save(ctx, debt); err != nil {
		s.logger.Error("Failed to save debt", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update debt")
	}

	s.saveActivity(ctx, debt.PartyType, debt.PartyID, ledger.ActivityDebtUpdated,
		"Debt updated: "+debt.Note, nil, debt.ID)
	return debt, nil
}

// Settle marks a debt as settled so it no longer counts as outstanding
func (s *DebtService) Settle(ctx context.Context, id uuid.UUID) (*ledger.Debt, error) {
	debt, err := s.debts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := debt.Settle(); err != nil {
		return nil, err
	}

	if err := s.debts.Save(ctx, debt); err != nil {
		s.logger.Error("Failed to save settled debt", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to settle debt")
	}

	if err := s.syncParty(ctx, debt.PartyType, debt.PartyID); err != nil {
		s.logger.Error("Failed to sync party after settlement", zap.Error(err))
	}

	s.saveActivity(ctx, debt.PartyType, debt.PartyID, ledger.ActivityDebtUpdated,
		"Debt settled: "+debt.Note, nil, debt.ID)
	return debt, nil
}

// Delete removes a debt entry
func (s *DebtService) Delete(ctx context.Context, id uuid.UUID) error {
	debt, err := s.debts.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.debts.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.syncParty(ctx, debt.PartyType, debt.PartyID); err != nil {
		s.logger.Error("Failed to sync party after debt deletion", zap.Error(err))
	}

	amount := debt.Amount
	s.saveActivity(ctx, debt.PartyType, debt.PartyID, ledger.ActivityDebtDeleted,
		"Debt deleted: "+debt.Note, &amount, debt.ID)
	s.saveAudit(ctx, ledger.AuditActionDelete, "debt", debt.ID, debt.Note, &amount)

	s.logger.Info("Debt deleted", zap.String("debt_id", id.String()))
	return nil
}

// Get returns a single debt entry
func (s *DebtService) Get(ctx context.Context, id uuid.UUID) (*ledger.Debt, error) {
	return s.debts.FindByID(ctx, id)
}

// List returns debt entries matching the filter, paginated
func (s *DebtService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ledger.Debt], error) {
	debts, err := s.debts.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.debts.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(debts, total, filter.Page, filter.PageSize)
	return &result, nil
}

// ListByParty returns all debt entries for one party
func (s *DebtService) ListByParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) ([]ledger.Debt, error) {
	if !partyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PARTY_TYPE", "Party type must be customer or company")
	}
	return s.debts.FindByParty(ctx, partyType, partyID)
}

// syncParty recomputes the party's running total, and for customers the
// reputation tier as well
func (s *DebtService) syncParty(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID) error {
	debts, err := s.debts.FindByParty(ctx, partyType, partyID)
	if err != nil {
		return err
	}

	switch partyType {
	case ledger.PartyTypeCustomer:
		customer, err := s.customers.FindByID(ctx, partyID)
		if err != nil {
			return err
		}
		customer.RecalculateTotalDebt(debts)
		customer.UpdateReputation(debts, time.Now())
		return s.customers.Save(ctx, customer)
	case ledger.PartyTypeCompany:
		company, err := s.companies.FindByID(ctx, partyID)
		if err != nil {
			return err
		}
		company.RecalculateTotalDebt(debts)
		return s.companies.Save(ctx, company)
	}
	return nil
}

func (s *DebtService) saveActivity(ctx context.Context, partyType ledger.PartyType, partyID uuid.UUID, activityType ledger.ActivityType, description string, amount *decimal.Decimal, debtID uuid.UUID) {
	activity, err := ledger.NewEntityActivity(partyType, partyID, activityType, description, amount)
	if err != nil {
		s.logger.Error("Failed to build activity entry", zap.Error(err))
		return
	}
	activity.WithRelated("debt", debtID)
	if err := s.activities.Save(ctx, activity); err != nil {
		s.logger.Error("Failed to save activity entry", zap.Error(err))
	}
}

func (s *DebtService) saveAudit(ctx context.Context, action ledger.AuditAction, entityType string, entityID uuid.UUID, description string, amount *decimal.Decimal) {
	entry, err := ledger.NewAuditLog(action, entityType, entityID, description, amount)
	if err != nil {
		s.logger.Error("Failed to build audit entry", zap.Error(err))
		return
	}
	if err := s.auditLogs.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to save audit entry", zap.Error(err))
	}
}
