package slots

import (
	"context"
	"errors"
	"strings"
	"time"

	"turfadmin/backend"
	"turfadmin/models"
	"turfadmin/services/schedule"
	"turfadmin/services/tasks"
	"turfadmin/utils"

	"go.uber.org/zap"
)

// DaySchedule fetches one sport's slot records for a date, reconciles them
// against the 24-hour skeleton and returns the classified, bucketed day view.
// An empty date means today.
func (s *DefaultSlotService) DaySchedule(ctx context.Context, sess *utils.AdminSession, sport, date string) (*models.DaySchedule, error) {
	day, err := resolveDay(date)
	if err != nil {
		return nil, err
	}
	if !models.ValidSport(sport) {
		return nil, NewValidationError("unknown sport: " + sport)
	}

	records, err := s.Backend.Slots(ctx, sess.BackendToken, sport, day.Key())
	if err != nil {
		return nil, err
	}

	merged := schedule.MergeSlots(schedule.BuildSkeleton(day), records)
	views := schedule.Annotate(merged)

	return &models.DaySchedule{
		Sport:   sport,
		Date:    day.Key(),
		PrevDay: day.Prev().Key(),
		NextDay: day.Next().Key(),
		Slots:   views,
		Periods: schedule.GroupByPeriod(views),
		Stats:   schedule.Summarize(views),
	}, nil
}

// Bookings passes the backend's booking records through unchanged.
func (s *DefaultSlotService) Bookings(ctx context.Context, sess *utils.AdminSession, sport, date string) ([]models.Booking, error) {
	day, err := resolveDay(date)
	if err != nil {
		return nil, err
	}
	if !models.ValidSport(sport) {
		return nil, NewValidationError("unknown sport: " + sport)
	}
	return s.Backend.Bookings(ctx, sess.BackendToken, sport, day.Key())
}

// BlockSlot blocks a single slot and returns the refreshed day. A blank
// reason falls back to the default. Booked slots are rejected before any
// backend call.
func (s *DefaultSlotService) BlockSlot(ctx context.Context, sess *utils.AdminSession, sport string, req models.BlockRequest) (*models.DaySchedule, error) {
	if !models.ValidSport(sport) {
		return nil, NewValidationError("unknown sport: " + sport)
	}
	day, err := schedule.ParseDay(req.Date)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	blockReq := schedule.NewBlockRequest(day.Key(), req.StartTime, req.EndTime, req.Reason)

	// The booked gate: re-check against the backend's current records so a
	// stale client cannot block a slot that was booked in the meantime.
	records, err := s.Backend.Slots(ctx, sess.BackendToken, sport, day.Key())
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.StartTime == blockReq.StartTime && !schedule.Toggleable(r) {
			return nil, NewValidationError("slot is booked and cannot be blocked")
		}
	}

	if err := s.Backend.CreateBlock(ctx, sess.BackendToken, sport, blockReq); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, models.AuditEntry{
		Actor:     sess.Username,
		Sport:     sport,
		Action:    models.AuditActionBlock,
		Date:      blockReq.Date,
		StartTime: blockReq.StartTime,
		Reason:    blockReq.Reason,
	})

	return s.DaySchedule(ctx, sess, sport, day.Key())
}

// UnblockSlot removes one block and returns the refreshed day.
func (s *DefaultSlotService) UnblockSlot(ctx context.Context, sess *utils.AdminSession, sport, blockID, date string) (*models.DaySchedule, error) {
	if !models.ValidSport(sport) {
		return nil, NewValidationError("unknown sport: " + sport)
	}
	if blockID == "" {
		return nil, NewValidationError("missing block id")
	}
	day, err := resolveDay(date)
	if err != nil {
		return nil, err
	}

	if err := s.Backend.RemoveBlock(ctx, sess.BackendToken, sport, blockID); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, models.AuditEntry{
		Actor:  sess.Username,
		Sport:  sport,
		Action: models.AuditActionUnblock,
		Date:   day.Key(),
	})

	return s.DaySchedule(ctx, sess, sport, day.Key())
}

// BlockDates blocks every hour of each given date. The whole-day backend
// endpoint is preferred; when it is unavailable the service fans out to 24
// individual block calls per date. Sub-requests are independent: failures do
// not roll back blocks that already succeeded, and the aggregate result
// succeeds only when every sub-request did.
func (s *DefaultSlotService) BlockDates(ctx context.Context, sess *utils.AdminSession, sport string, req models.BulkBlockRequest) (*models.BulkBlockResult, error) {
	if !models.ValidSport(sport) {
		return nil, NewValidationError("unknown sport: " + sport)
	}
	if len(req.Dates) == 0 {
		return nil, NewValidationError("no dates selected")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, NewValidationError("reason must not be blank")
	}
	dates := schedule.UniqueDayKeys(req.Dates)
	for _, d := range dates {
		if _, err := schedule.ParseDay(d); err != nil {
			return nil, NewValidationError(err.Error())
		}
	}

	logger := utils.GetLogger()
	result := &models.BulkBlockResult{Succeeded: true}
	for _, date := range dates {
		outcome := s.blockWholeDate(ctx, sess, sport, date, req.Reason)
		if !outcome.Succeeded {
			result.Succeeded = false
		} else {
			s.recordAudit(ctx, models.AuditEntry{
				Actor:  sess.Username,
				Sport:  sport,
				Action: models.AuditActionBlockDate,
				Date:   date,
				Reason: req.Reason,
			})
		}
		result.Dates = append(result.Dates, outcome)
	}

	if !result.Succeeded {
		logger.Warn("bulk date blocking partially failed",
			zap.String("sport", sport),
			zap.Int("dates", len(dates)))
	}
	return result, nil
}

func (s *DefaultSlotService) blockWholeDate(ctx context.Context, sess *utils.AdminSession, sport, date, reason string) models.DateBlockOutcome {
	err := s.Backend.BlockDate(ctx, sess.BackendToken, sport, date, reason)
	if err == nil {
		return models.DateBlockOutcome{Date: date, Succeeded: true}
	}
	if !errors.Is(err, backend.ErrBulkUnsupported) {
		return models.DateBlockOutcome{Date: date, Error: err.Error()}
	}

	// Compatibility fallback: one request per hour. Each is submitted
	// regardless of earlier failures.
	day, _ := schedule.ParseDay(date)
	failed := 0
	var lastErr error
	for _, req := range schedule.WholeDay(day, reason) {
		if err := s.Backend.CreateBlock(ctx, sess.BackendToken, sport, req); err != nil {
			failed++
			lastErr = err
		}
	}
	if failed > 0 {
		return models.DateBlockOutcome{
			Date:        date,
			FailedHours: failed,
			Error:       lastErr.Error(),
		}
	}
	return models.DateBlockOutcome{Date: date, Succeeded: true}
}

func (s *DefaultSlotService) recordAudit(ctx context.Context, entry models.AuditEntry) {
	if s.Audit == nil {
		return
	}
	entry.CreatedAt = time.Now()
	task, err := tasks.NewAuditTask(entry)
	if err != nil {
		utils.GetLogger().Warn("failed to build audit task", zap.Error(err))
		return
	}
	if _, err := s.Audit.EnqueueContext(ctx, task); err != nil {
		// Audit is best-effort; the mutation itself already succeeded.
		utils.GetLogger().Warn("failed to enqueue audit task", zap.Error(err))
	}
}

func resolveDay(date string) (schedule.Day, error) {
	if date == "" {
		return schedule.Today(), nil
	}
	day, err := schedule.ParseDay(date)
	if err != nil {
		return schedule.Day{}, NewValidationError(err.Error())
	}
	return day, nil
}
