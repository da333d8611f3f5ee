package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, empID string) ([]AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	// Lookup serves (empId, period) with the most-recent-record fallback.
	Lookup(ctx context.Context, empID, periodKey string) (LookupResponse, error)
}
