package service

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/expenses/repository"
	"hoteldesk/pkg/config"
	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/model"
	"hoteldesk/pkg/sanitizer"
	"hoteldesk/pkg/validator"
)

const resourceName = "expense"

type ExpenseService interface {
	GetAll(ctx context.Context) ([]*model.Expense, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*model.Expense, error)
	Create(ctx context.Context, input *model.ExpenseInput) (*model.Expense, error)
	Update(ctx context.Context, id string, updates *model.ExpenseUpdate) (*model.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseService struct {
	repo      repository.ExpenseRepository
	validator *validator.Validator
	publisher events.Publisher
	cfg       *config.Config
}

func NewExpenseService(
	repo repository.ExpenseRepository,
	validator *validator.Validator,
	publisher events.Publisher,
	cfg *config.Config,
) ExpenseService {
	return &expenseService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *expenseService) GetAll(ctx context.Context) ([]*model.Expense, error) {
	expenses, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list expenses", "error", err)
		return nil, apperrors.Internal("Failed to retrieve expenses", err)
	}
	return expenses, nil
}

func (s *expenseService) GetByDateRange(ctx context.Context, start, end time.Time) ([]*model.Expense, error) {
	if end.Before(start) {
		return nil, apperrors.InvalidInput("end of range must not be before its start")
	}

	expenses, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		s.cfg.Log.Error("Failed to list expenses by date", "start", start, "end", end, "error", err)
		return nil, apperrors.Internal("Failed to retrieve expenses", err)
	}
	return expenses, nil
}

func (s *expenseService) Create(ctx context.Context, input *model.ExpenseInput) (*model.Expense, error) {
	input.ExpenseName = sanitizer.NormalizeName(input.ExpenseName)
	input.Category = sanitizer.TrimAndNormalize(input.Category)
	sanitizer.NormalizeOptional(input.Reason)
	if err := s.validator.Check(input, "Invalid expense"); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		ExpenseName: input.ExpenseName,
		Category:    input.Category,
		Amount:      *input.Amount,
		Date:        model.NewTimestamp(input.Date.Time),
	}
	if input.Reason != nil {
		expense.Reason = *input.Reason
	}

	if err := s.repo.Create(ctx, expense); err != nil {
		s.cfg.Log.Error("Failed to create expense", "expense_name", expense.ExpenseName, "error", err)
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Expense rejected by store", map[string]any{"error": err.Error()})
		}
		return nil, apperrors.Internal("Failed to create expense", err)
	}

	s.cfg.Log.Info("Expense created successfully", "id", expense.ID, "category", expense.Category)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Created, resourceName, expense.ID, expense))
	return expense, nil
}

func (s *expenseService) Update(ctx context.Context, id string, updates *model.ExpenseUpdate) (*model.Expense, error) {
	if updates.IsEmpty() {
		return nil, apperrors.InvalidInput("Update must set at least one field")
	}

	sanitizer.NormalizeOptional(updates.ExpenseName)
	sanitizer.NormalizeOptional(updates.Category)
	sanitizer.NormalizeOptional(updates.Reason)
	if err := s.validator.Check(updates, "Invalid update input"); err != nil {
		s.cfg.Log.Warn("Expense update validation failed", "id", id, "error", err)
		return nil, err
	}

	expense, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Expense", id)
		}
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Expense rejected by store", map[string]any{"error": err.Error()})
		}
		s.cfg.Log.Error("Failed to update expense", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update expense", err)
	}

	s.cfg.Log.Info("Expense updated successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Updated, resourceName, expense.ID, expense))
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NotFoundWithID("Expense", id)
		}
		s.cfg.Log.Error("Failed to delete expense", "id", id, "error", err)
		return apperrors.Internal("Failed to delete expense", err)
	}

	s.cfg.Log.Info("Expense deleted successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Deleted, resourceName, id, nil))
	return nil
}
