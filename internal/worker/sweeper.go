package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/service"
)

// Sweeper schedules the nightly attendance day-close: shortly after
// midnight it closes the previous day, force-checking-out sessions left
// open and marking active employees with no record absent.
type Sweeper struct {
	Service    *service.AttendanceService
	Schedule   string
	MaxSession time.Duration
	Location   *time.Location
	Logger     *slog.Logger

	sched *cron.Cron
}

// Start registers the cron entry and begins the scheduler. It returns an
// error only for an unparseable schedule.
func (s *Sweeper) Start() error {
	s.sched = cron.New(
		cron.WithLocation(s.Location),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	_, err := s.sched.AddFunc(s.Schedule, s.run)
	if err != nil {
		return err
	}
	s.sched.Start()
	s.Logger.Info("attendance sweeper started", "schedule", s.Schedule)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	if s.sched == nil {
		return
	}
	<-s.sched.Stop().Done()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// The sweep fires just past midnight, so the day to close is yesterday.
	date := time.Now().In(s.Location).AddDate(0, 0, -1).Format(domain.DateLayout)
	res, err := s.Service.CloseDay(ctx, date, s.MaxSession)
	if err != nil {
		s.Logger.Error("attendance sweep failed", "date", date, "err", err)
		return
	}
	s.Logger.Info("attendance sweep finished",
		"date", res.Date, "autoCheckouts", res.AutoCheckouts, "markedAbsent", res.MarkedAbsent)
}
