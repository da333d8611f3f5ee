package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmpIDPeriod(ctx context.Context, empID, period string) (Attendance, error)
	// GetLatestByEmpID returns the employee's most recent record by creation
	// time regardless of period. ErrAttendanceNotFound when none exists.
	GetLatestByEmpID(ctx context.Context, empID string) (Attendance, error)
	List(ctx context.Context, empID string) ([]Attendance, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id string) error

	// Bulk reads for the period aggregator: one query for the current period,
	// one latest-per-employee query for the rest.
	ListByPeriod(ctx context.Context, period string) ([]Attendance, error)
	LatestPerEmployee(ctx context.Context, empIDs []string) ([]Attendance, error)
}
