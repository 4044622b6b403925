package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/dates"
)

// AttendanceJobs holds the attendance ledger watchdog.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, loc *time.Location) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("report_stale_open_sessions", 1*time.Hour, j.ReportStaleOpenSessions)
}

// ReportStaleOpenSessions logs attendance records from past days that were
// checked in but never checked out. The ledger is never mutated here; a
// forgotten check-out is corrected by an admin override, not by the clock.
func (j *AttendanceJobs) ReportStaleOpenSessions(ctx context.Context) error {
	today := dates.Day(time.Now(), j.loc)

	stale, err := j.attendanceRepo.ListOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	if len(stale) == 0 {
		slog.Debug("Cron: No stale open sessions found")
		return nil
	}

	for _, record := range stale {
		slog.Warn("Cron: Attendance session left open",
			"attendance_id", record.ID,
			"employee_id", record.EmployeeID,
			"date", dates.Format(record.Date),
		)
	}

	slog.Info("Cron: Stale open sessions reported", "count", len(stale))
	return nil
}
