package service

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/salaries/repository"
	"hoteldesk/pkg/config"
	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/model"
	"hoteldesk/pkg/sanitizer"
	"hoteldesk/pkg/validator"
)

const resourceName = "salary"

type SalaryService interface {
	GetAll(ctx context.Context) ([]*model.Salary, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*model.Salary, error)
	Create(ctx context.Context, input *model.SalaryInput) (*model.Salary, error)
	Update(ctx context.Context, id string, updates *model.SalaryUpdate) (*model.Salary, error)
	Delete(ctx context.Context, id string) error
}

type salaryService struct {
	repo      repository.SalaryRepository
	validator *validator.Validator
	publisher events.Publisher
	cfg       *config.Config
}

func NewSalaryService(
	repo repository.SalaryRepository,
	validator *validator.Validator,
	publisher events.Publisher,
	cfg *config.Config,
) SalaryService {
	return &salaryService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *salaryService) GetAll(ctx context.Context) ([]*model.Salary, error) {
	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list salaries", "error", err)
		return nil, apperrors.Internal("Failed to retrieve salaries", err)
	}
	return salaries, nil
}

func (s *salaryService) GetByDateRange(ctx context.Context, start, end time.Time) ([]*model.Salary, error) {
	if end.Before(start) {
		return nil, apperrors.InvalidInput("end of range must not be before its start")
	}

	salaries, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Failed to list salaries by date",
			"start", start,
			"end", end,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to retrieve salaries", err)
	}
	return salaries, nil
}

// Create records a payment. Date defaults to the time of the request.
func (s *salaryService) Create(ctx context.Context, input *model.SalaryInput) (*model.Salary, error) {
	input.EmployeeName = sanitizer.NormalizeName(input.EmployeeName)
	input.SalaryType = sanitizer.NormalizeLabel(input.SalaryType)
	if err := s.validator.Check(input, "Invalid salary"); err != nil {
		return nil, err
	}

	salary := &model.Salary{
		EmployeeName: input.EmployeeName,
		SalaryType:   input.SalaryType,
		Amount:       *input.Amount,
		Date:         model.NewTimestamp(time.Now().Truncate(time.Millisecond)),
	}
	if input.Date != nil {
		salary.Date = model.NewTimestamp(input.Date.Time)
	}

	if err := s.repo.Create(ctx, salary); err != nil {
		s.cfg.Log.Error("Failed to create salary", "employee_name", salary.EmployeeName, "error", err)
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Salary rejected by store", map[string]any{"error": err.Error()})
		}
		return nil, apperrors.Internal("Failed to create salary", err)
	}

	s.cfg.Log.Info("Salary created successfully",
		"id", salary.ID,
		"employee_name", salary.EmployeeName,
		"salary_type", salary.SalaryType,
	)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Created, resourceName, salary.ID, salary))
	return salary, nil
}

func (s *salaryService) Update(ctx context.Context, id string, updates *model.SalaryUpdate) (*model.Salary, error) {
	if updates.IsEmpty() {
		return nil, apperrors.InvalidInput("Update must set at least one field")
	}

	if updates.EmployeeName != nil {
		*updates.EmployeeName = sanitizer.NormalizeName(*updates.EmployeeName)
	}
	if updates.SalaryType != nil {
		*updates.SalaryType = sanitizer.NormalizeLabel(*updates.SalaryType)
	}
	if err := s.validator.Check(updates, "Invalid update input"); err != nil {
		s.cfg.Log.Warn("Salary update validation failed", "id", id, "error", err)
		return nil, err
	}

	salary, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Salary", id)
		}
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Salary rejected by store", map[string]any{"error": err.Error()})
		}
		s.cfg.Log.Error("Failed to update salary", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update salary", err)
	}

	s.cfg.Log.Info("Salary updated successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Updated, resourceName, salary.ID, salary))
	return salary, nil
}

func (s *salaryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NotFoundWithID("Salary", id)
		}
		s.cfg.Log.Error("Failed to delete salary", "id", id, "error", err)
		return apperrors.Internal("Failed to delete salary", err)
	}

	s.cfg.Log.Info("Salary deleted successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Deleted, resourceName, id, nil))
	return nil
}
