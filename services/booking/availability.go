package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"boardroom/config"
	"boardroom/models"
	"boardroom/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CheckAvailability answers whether a single interval on a room is free of
// confirmed bookings. Read-only; cancelled bookings never block.
func (s *DefaultBookingService) CheckAvailability(req models.AvailabilityCheckRequest) (*models.AvailabilityResult, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, &ValidationError{Reason: "startTime must be before endTime"}
	}
	date, startMin := utils.SplitInstant(req.StartTime)
	endDate, endMin := utils.SplitInstant(req.EndTime)
	if date != endDate {
		return nil, &ValidationError{Reason: "startTime and endTime must fall on the same day"}
	}

	room, err := s.RoomRepo.GetByID(req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}

	existing, err := s.Repo.FindConflicting(req.RoomID, date, startMin, endMin, "")
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if existing == nil {
		return &models.AvailabilityResult{Available: true}, nil
	}
	return &models.AvailabilityResult{
		Available:          false,
		ConflictingBooking: s.conflictInfo(*existing),
	}, nil
}

// GetDayAvailability builds the full 18-slot grid for a room and date from a
// single range fetch of that day's confirmed bookings. Grids are cached in
// Redis for a short TTL and invalidated on any booking mutation.
func (s *DefaultBookingService) GetDayAvailability(roomID, date string) (*models.DayAvailability, error) {
	logger := utils.GetLogger()

	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}

	room, err := s.RoomRepo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}

	cacheKey := utils.AvailabilityCachePrefix + roomID + ":" + date
	if s.Cache != nil {
		if cached, err := s.Cache.GetGrid(context.Background(), cacheKey); err == nil && cached != nil {
			var day models.DayAvailability
			if err := json.Unmarshal(cached, &day); err == nil {
				return &day, nil
			}
			logger.Warn("discarding unreadable availability cache entry", zap.String("key", cacheKey))
		}
	}

	bookings, err := s.Repo.GetConfirmedByRoomAndDate(roomID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for availability: %w", err)
	}

	organizers := make(map[string]string)
	for _, b := range bookings {
		if _, ok := organizers[b.UserID]; ok {
			continue
		}
		organizers[b.UserID] = s.organizerName(b.UserID)
	}

	day := &models.DayAvailability{
		Boardroom:     *room,
		Date:          date,
		TimeSlots:     BuildDaySlots(bookings, organizers),
		TotalBookings: len(bookings),
	}

	if s.Cache != nil {
		if data, err := json.Marshal(day); err == nil {
			ttl := time.Duration(config.AppConfig.AvailabilityTTL) * time.Second
			if err := s.Cache.SetGrid(context.Background(), cacheKey, data, ttl); err != nil {
				logger.Warn("failed to cache availability grid", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return day, nil
}

// BuildDaySlots enumerates the fixed 30-minute grid over working hours and
// tags each slot against the day's confirmed bookings with the half-open
// overlap test. Past slots are still emitted; rejecting them is the
// validator's job at submission time.
func BuildDaySlots(bookings []models.Booking, organizers map[string]string) []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, models.SlotsPerDay)

	for start := models.WorkDayStart; start+models.SlotMinutes <= models.WorkDayEnd; start += models.SlotMinutes {
		end := start + models.SlotMinutes
		slot := models.TimeSlot{
			Start:     start,
			End:       end,
			StartTime: utils.MinuteToClock(start),
			EndTime:   utils.MinuteToClock(end),
			Available: true,
		}
		for _, b := range bookings {
			if b.Status != models.StatusConfirmed {
				continue
			}
			if b.Overlaps(start, end) {
				slot.Available = false
				slot.ConflictingBooking = &models.ConflictInfo{
					Purpose:   b.Purpose,
					Organizer: organizers[b.UserID],
				}
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

// invalidateDayCache drops the cached grid after a booking mutation.
func (s *DefaultBookingService) invalidateDayCache(roomID, date string) {
	if s.Cache == nil {
		return
	}
	cacheKey := utils.AvailabilityCachePrefix + roomID + ":" + date
	if err := s.Cache.DeleteGrid(context.Background(), cacheKey); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.String("key", cacheKey), zap.Error(err))
	}
}

// organizerName resolves a creator ID to a display name, falling back to the
// raw ID when the lookup fails.
func (s *DefaultBookingService) organizerName(userID string) string {
	if s.UserRepo == nil {
		return userID
	}
	usr, err := s.UserRepo.GetByIDWithProjection(userID, bson.M{"id": 1, "name": 1})
	if err != nil || usr == nil {
		return userID
	}
	return usr.Name
}

func (s *DefaultBookingService) conflictInfo(b models.Booking) *models.ConflictInfo {
	return &models.ConflictInfo{
		Purpose:   b.Purpose,
		Organizer: s.organizerName(b.UserID),
	}
}
