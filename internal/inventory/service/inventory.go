package service

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/inventory/repository"
	"hoteldesk/pkg/config"
	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/model"
	"hoteldesk/pkg/sanitizer"
	"hoteldesk/pkg/validator"
)

const resourceName = "inventory"

type InventoryService interface {
	GetAll(ctx context.Context) ([]*model.InventoryItem, error)
	// Upsert adds the submitted quantity to the item with the same name, or
	// creates it. created reports which of the two happened.
	Upsert(ctx context.Context, input *model.InventoryInput) (item *model.InventoryItem, created bool, err error)
	Update(ctx context.Context, id string, updates *model.InventoryUpdate) (*model.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type inventoryService struct {
	repo      repository.InventoryRepository
	validator *validator.Validator
	publisher events.Publisher
	cfg       *config.Config
	now       func() time.Time
}

func NewInventoryService(
	repo repository.InventoryRepository,
	validator *validator.Validator,
	publisher events.Publisher,
	cfg *config.Config,
) InventoryService {
	return &inventoryService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

func (s *inventoryService) GetAll(ctx context.Context) ([]*model.InventoryItem, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list inventory", "error", err)
		return nil, apperrors.Internal("Failed to retrieve inventory", err)
	}
	return items, nil
}

func (s *inventoryService) Upsert(ctx context.Context, input *model.InventoryInput) (*model.InventoryItem, bool, error) {
	input.ItemName = sanitizer.NormalizeName(input.ItemName)
	if err := s.validator.Check(input, "Invalid inventory item"); err != nil {
		return nil, false, err
	}

	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	uploadedAt := s.now()

	existing, err := s.repo.FindByName(ctx, input.ItemName)
	switch {
	case err == nil:
		item, err := s.repo.AddQuantity(ctx, existing.ID, quantity, uploadedAt)
		if err == nil {
			return s.restocked(ctx, item, input), false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			s.cfg.Log.Error("Failed to restock inventory item", "id", existing.ID, "item_name", input.ItemName, "error", err)
			return nil, false, apperrors.Internal("Failed to update inventory item", err)
		}
		// deleted between lookup and increment; create it afresh
	case !errors.Is(err, repository.ErrNotFound):
		s.cfg.Log.Error("Failed to look up inventory item", "item_name", input.ItemName, "error", err)
		return nil, false, apperrors.Internal("Failed to update inventory item", err)
	}

	item := &model.InventoryItem{
		ItemName:      input.ItemName,
		Quantity:      quantity,
		PurchasedDate: input.PurchasedDate,
		UploadedTime:  uploadedAt,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.cfg.Log.Error("Failed to create inventory item", "item_name", input.ItemName, "error", err)
		if errors.Is(err, repository.ErrRejected) {
			return nil, false, apperrors.Validation("Inventory item rejected by store", map[string]any{"error": err.Error()})
		}
		return nil, false, apperrors.Internal("Failed to create inventory item", err)
	}

	s.cfg.Log.Info("Inventory item created successfully", "id", item.ID, "item_name", item.ItemName, "quantity", item.Quantity)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Created, resourceName, item.ID, item))
	return item, true, nil
}

// restocked publishes the stored state, then overlays the request's
// purchasedDate on the returned item. The overlay is not written to the
// database: restocking only moves quantity and uploaded_time.
func (s *inventoryService) restocked(ctx context.Context, item *model.InventoryItem, input *model.InventoryInput) *model.InventoryItem {
	s.cfg.Log.Info("Inventory item restocked", "id", item.ID, "item_name", item.ItemName, "quantity", item.Quantity)
	stored := *item
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Updated, resourceName, item.ID, &stored))

	if input.PurchasedDate != nil {
		item.PurchasedDate = input.PurchasedDate
	}
	return item
}

func (s *inventoryService) Update(ctx context.Context, id string, updates *model.InventoryUpdate) (*model.InventoryItem, error) {
	if updates.IsEmpty() {
		return nil, apperrors.InvalidInput("Update must set at least one field")
	}

	if updates.ItemName != nil {
		*updates.ItemName = sanitizer.NormalizeName(*updates.ItemName)
	}
	if err := s.validator.Check(updates, "Invalid update input"); err != nil {
		s.cfg.Log.Warn("Inventory update validation failed", "id", id, "error", err)
		return nil, err
	}

	item, err := s.repo.Update(ctx, id, updates, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Inventory item", id)
		}
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Inventory item rejected by store", map[string]any{"error": err.Error()})
		}
		s.cfg.Log.Error("Failed to update inventory item", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update inventory item", err)
	}

	s.cfg.Log.Info("Inventory item updated successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Updated, resourceName, item.ID, item))
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NotFoundWithID("Inventory item", id)
		}
		s.cfg.Log.Error("Failed to delete inventory item", "id", id, "error", err)
		return apperrors.Internal("Failed to delete inventory item", err)
	}

	s.cfg.Log.Info("Inventory item deleted successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Deleted, resourceName, id, nil))
	return nil
}
