package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/marwan-sadiq/deptapp/internal/domain/ledger"
	"github.com/marwan-sadiq/deptapp/internal/domain/shared"
	"go.uber.org/zap"
)

// CompanyService manages supplier profiles
type CompanyService struct {
	companies  ledger.CompanyRepository
	debts      ledger.DebtRepository
	activities ledger.ActivityRepository
	auditLogs  ledger.AuditLogRepository
	logger     *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companies ledger.CompanyRepository,
	debts ledger.DebtRepository,
	activities ledger.ActivityRepository,
	auditLogs ledger.AuditLogRepository,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companies:  companies,
		debts:      debts,
		activities: activities,
		auditLogs:  auditLogs,
		logger:     logger,
	}
}

// Create creates a new company profile
func (s *CompanyService) Create(ctx context.Context, input CreatePartyInput) (*ledger.Company, error) {
	if existing, err := s.companies.FindByName(ctx, input.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_NAME", "A company with this name already exists")
	}

	company, err := ledger.NewCompany(input.Name, input.Phone, input.Address)
	if err != nil {
		return nil, err
	}

	if err := s.companies.Save(ctx, company); err != nil {
		s.logger.Error("Failed to save company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create company")
	}

	s.saveActivity(ctx, company.ID, ledger.ActivityProfileCreated, "Company profile created: "+company.Name)
	s.saveAudit(ctx, ledger.AuditActionCreate, company.ID, company.Name)

	s.logger.Info("Company created",
		zap.String("company_id", company.ID.String()),
		zap.String("name", company.Name))
	return company, nil
}

// Get returns a company with its debts and outstanding balance
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*CompanyDetail, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCompany, id)
	if err != nil {
		s.logger.Error("Failed to load company debts", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load company debts")
	}

	return &CompanyDetail{
		Company:     company,
		Debts:       debts,
		Outstanding: ledger.OutstandingTotal(debts),
	}, nil
}

// List returns companies matching the filter, paginated
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ledger.Company], error) {
	companies, err := s.companies.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.companies.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(companies, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update changes a company's profile details
func (s *CompanyService) Update(ctx context.Context, input UpdatePartyInput) (*ledger.Company, error) {
	company, err := s.companies.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" && input.Name != company.Name {
		if existing, err := s.companies.FindByName(ctx, input.Name); err == nil && existing != nil {
			return nil, shared.NewDomainError("DUPLICATE_NAME", "A company with this name already exists")
		}
		if err := company.Rename(input.Name); err != nil {
			return nil, err
		}
	}
	company.UpdateContact(input.Phone, input.Address)

	if err := s.companies.Save(ctx, company); err != nil {
		s.logger.Error("Failed to save company", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update company")
	}

	s.saveActivity(ctx, company.ID, ledger.ActivityProfileUpdated, "Company profile updated: "+company.Name)
	return company, nil
}

// Delete removes a company and its debt history
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}

	debts, err := s.debts.FindByParty(ctx, ledger.PartyTypeCompany, id)
	if err != nil {
		s.logger.Error("Failed to load company debts before delete", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
	}
	for _, debt := range debts {
		if err := s.debts.Delete(ctx, debt.ID); err != nil {
			s.logger.Error("Failed to delete company debt", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete company")
		}
	}

	if err := s.companies.Delete(ctx, id); err != nil {
		return err
	}

	s.saveAudit(ctx, ledger.AuditActionDelete, id, "Deleted company "+company.Name)

	s.logger.Info("Company deleted",
		zap.String("company_id", id.String()),
		zap.String("name", company.Name))
	return nil
}

func (s *CompanyService) saveActivity(ctx context.Context, companyID uuid.UUID, activityType ledger.ActivityType, description string) {
	activity, err := ledger.NewEntityActivity(ledger.PartyTypeCompany, companyID, activityType, description, nil)
	if err != nil {
		s.logger.Error("Failed to build activity entry", zap.Error(err))
		return
	}
	if err := s.activities.Save(ctx, activity); err != nil {
		s.logger.Error("Failed to save activity entry", zap.Error(err))
	}
}

func (s *CompanyService) saveAudit(ctx context.Context, action ledger.AuditAction, companyID uuid.UUID, description string) {
	entry, err := ledger.NewAuditLog(action, "company", companyID, description, nil)
	if err != nil {
		s.logger.Error("Failed to build audit entry", zap.Error(err))
		return
	}
	if err := s.auditLogs.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to save audit entry", zap.Error(err))
	}
}
