package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/advance"
	"github.com/packpal/packpal-backend-go/internal/domain/attendance"
)

type stubAttendanceService struct {
	err error
}

func (s *stubAttendanceService) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{EmpID: req.EmpID, Period: req.Period}, s.err
}

func (s *stubAttendanceService) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, s.err
}

func (s *stubAttendanceService) List(ctx context.Context, empID string) ([]attendance.AttendanceResponse, error) {
	return nil, s.err
}

func (s *stubAttendanceService) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	return attendance.AttendanceResponse{}, s.err
}

func (s *stubAttendanceService) Delete(ctx context.Context, id string) error {
	return s.err
}

func (s *stubAttendanceService) Lookup(ctx context.Context, empID, periodKey string) (attendance.LookupResponse, error) {
	return attendance.LookupResponse{}, s.err
}

type stubAdvanceService struct {
	err error
}

func (s *stubAdvanceService) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{EmpID: req.EmpID, Period: req.Period}, s.err
}

func (s *stubAdvanceService) Get(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{}, s.err
}

func (s *stubAdvanceService) List(ctx context.Context, empID string) ([]advance.AdvanceResponse, error) {
	return nil, s.err
}

func (s *stubAdvanceService) Update(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{}, s.err
}

func (s *stubAdvanceService) Delete(ctx context.Context, id string) error {
	return s.err
}

func (s *stubAdvanceService) Compute(ctx context.Context, req advance.ComputeAdvanceRequest) (advance.AdvanceResponse, error) {
	return advance.AdvanceResponse{}, s.err
}

func (s *stubAdvanceService) Lookup(ctx context.Context, empID, periodKey string) (advance.LookupResponse, error) {
	return advance.LookupResponse{}, s.err
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.False(t, envelope.Success)
	return envelope.Error.Code
}

func TestAttendanceHandler_Create_DuplicatePeriodConflict(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{err: attendance.ErrPeriodExists})

	body := `{"empId":"EMP1","period":"2025-07","workingDays":22}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeErrorCode(t, rec.Body.Bytes()))
}

func TestAttendanceHandler_Create_UnknownEmployee(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{err: attendance.ErrEmployeeNotResolved})

	body := `{"empId":"GHOST999","period":"2025-07"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeErrorCode(t, rec.Body.Bytes()))
}

func TestAttendanceHandler_Create_Success(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	body := `{"empId":"EMP1","period":"2025-07","workingDays":22}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdvanceHandler_Create_DuplicatePeriodConflict(t *testing.T) {
	handler := NewAdvanceHandler(&stubAdvanceService{err: advance.ErrPeriodExists})

	body := `{"empId":"EMP1","period":"2025-07","costOfLiving":15000}`
	req := httptest.NewRequest(http.MethodPost, "/advances", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeErrorCode(t, rec.Body.Bytes()))
}

func TestAdvanceHandler_Create_UnknownEmployee(t *testing.T) {
	handler := NewAdvanceHandler(&stubAdvanceService{err: advance.ErrEmployeeNotResolved})

	body := `{"empId":"GHOST999","period":"2025-07"}`
	req := httptest.NewRequest(http.MethodPost, "/advances", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeErrorCode(t, rec.Body.Bytes()))
}
