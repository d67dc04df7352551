package service

import (
	"context"
	"errors"

	"hoteldesk/internal/bookings/repository"
	"hoteldesk/pkg/config"
	apperrors "hoteldesk/pkg/errors"
	"hoteldesk/pkg/events"
	"hoteldesk/pkg/model"
	"hoteldesk/pkg/sanitizer"
	"hoteldesk/pkg/stay"
	"hoteldesk/pkg/validator"
)

const resourceName = "booking"

type BookingService interface {
	GetAll(ctx context.Context) ([]*model.Booking, error)
	Create(ctx context.Context, booking *model.Booking) error
	Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.Validator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.Validator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// Create stores the booking as submitted; num_of_nights is taken from the
// client here and only derived on update.
func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.sanitize(booking)
	if err := s.validator.Check(booking, "Invalid booking"); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		if errors.Is(err, repository.ErrRejected) {
			return apperrors.Validation("Booking rejected by store", map[string]any{"error": err.Error()})
		}
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"room_number", booking.RoomNumber,
	)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Created, resourceName, booking.ID, booking))
	return nil
}

// Update writes only the supplied fields. When both checkIn and checkOut
// are supplied, num_of_nights is recomputed from them and overrides any
// value in the body.
func (s *bookingService) Update(ctx context.Context, id string, updates *model.BookingUpdate) (*model.Booking, error) {
	if updates.IsEmpty() {
		return nil, apperrors.InvalidInput("Update must set at least one field")
	}

	s.sanitizeUpdate(updates)
	if err := s.validator.Check(updates, "Invalid update input"); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return nil, err
	}

	if nights := stay.Nights(updates.CheckIn.StdTime(), updates.CheckOut.StdTime()); nights != nil {
		updates.NumOfNights = nights
	}

	booking, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, repository.ErrRejected) {
			return nil, apperrors.Validation("Booking rejected by store", map[string]any{"error": err.Error()})
		}
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Updated, resourceName, booking.ID, booking))
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	events.Emit(ctx, s.publisher, s.cfg.Log, events.New(events.Deleted, resourceName, id, nil))
	return nil
}

func (s *bookingService) sanitize(booking *model.Booking) {
	booking.RoomNumber = sanitizer.TrimAndNormalize(booking.RoomNumber)
	booking.RoomType = sanitizer.TrimAndNormalize(booking.RoomType)
	booking.Package = sanitizer.TrimAndNormalize(booking.Package)
	booking.ExtraDetails = sanitizer.TrimAndNormalize(booking.ExtraDetails)
	booking.Total = sanitizer.TrimAndNormalize(booking.Total)
	booking.Advance = sanitizer.TrimAndNormalize(booking.Advance)
	booking.BalanceMethod = sanitizer.TrimAndNormalize(booking.BalanceMethod)
}

func (s *bookingService) sanitizeUpdate(updates *model.BookingUpdate) {
	sanitizer.NormalizeOptional(updates.RoomNumber)
	sanitizer.NormalizeOptional(updates.RoomType)
	sanitizer.NormalizeOptional(updates.Package)
	sanitizer.NormalizeOptional(updates.ExtraDetails)
	sanitizer.NormalizeOptional(updates.Total)
	sanitizer.NormalizeOptional(updates.Advance)
	sanitizer.NormalizeOptional(updates.BalanceMethod)
}
