package report

import (
	"context"
	"time"

	"github.com/outlay-app/backend/internal/models"
	"github.com/rs/zerolog"
)

// Scheduler emits the daily, weekly and monthly summary reports to the log.
// All three jobs only read the store.
type Scheduler struct {
	log zerolog.Logger

	// now is replaceable for tests
	now func() time.Time
}

// NewScheduler returns a Scheduler logging to the given logger.
func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		log: log,
		now: time.Now,
	}
}

// Start launches the three report jobs. They run until ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx, "daily", NextMidnight, s.Daily)
	go s.run(ctx, "weekly", NextWeekStart, s.Weekly)
	go s.run(ctx, "monthly", NextMonthStart, s.Monthly)
}

// run fires the job at every boundary returned by next. The timer is
// re-armed after each firing so that clock adjustments never accumulate.
func (s *Scheduler) run(ctx context.Context, name string, next func(time.Time) time.Time, job func(now time.Time)) {
	firstFire := next(s.now())
	s.log.Debug().Str("report", name).Time("next", firstFire).Msg("report scheduled")

	timer := time.NewTimer(time.Until(firstFire))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			now := s.now()
			job(now)
			timer.Reset(time.Until(next(now)))
		}
	}
}

// Daily logs the day's total. This intentionally sums the whole store, not
// only the current day, matching the report this replaces.
func (s *Scheduler) Daily(_ time.Time) {
	expenses, err := models.Expenses(models.DB)
	if err != nil {
		s.log.Error().Err(err).Str("report", "daily").Msg("summary report failed")
		return
	}

	s.log.Info().
		Str("report", "daily").
		Str("total", Total(expenses).String()).
		Msg("expense summary")
}

// Weekly logs the total of all expenses dated in the current week.
func (s *Scheduler) Weekly(now time.Time) {
	expenses, err := models.Expenses(models.DB)
	if err != nil {
		s.log.Error().Err(err).Str("report", "weekly").Msg("summary report failed")
		return
	}

	s.log.Info().
		Str("report", "weekly").
		Str("total", TotalSince(expenses, StartOfWeek(now)).String()).
		Msg("expense summary")
}

// Monthly logs the total of all expenses dated in the current month.
func (s *Scheduler) Monthly(now time.Time) {
	expenses, err := models.Expenses(models.DB)
	if err != nil {
		s.log.Error().Err(err).Str("report", "monthly").Msg("summary report failed")
		return
	}

	s.log.Info().
		Str("report", "monthly").
		Str("total", TotalSince(expenses, StartOfMonth(now)).String()).
		Msg("expense summary")
}

// NextMidnight returns the next midnight after t in t's location.
func NextMidnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())
}

// NextWeekStart returns the next Sunday midnight after t in t's location.
func NextWeekStart(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7)
}

// NextMonthStart returns midnight of the first day of the month after t in
// t's location.
func NextMonthStart(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0)
}
