package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packpal/packpal-backend-go/internal/domain/sewing"
)

type stubSewingService struct {
	resp sewing.InstructionResponse
	err  error

	lastStatusReq sewing.UpdateStatusRequest
}

func (s *stubSewingService) Create(ctx context.Context, req sewing.CreateInstructionRequest) (sewing.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return sewing.InstructionResponse{}, err
	}
	return s.resp, s.err
}

func (s *stubSewingService) Get(ctx context.Context, id string) (sewing.InstructionResponse, error) {
	return s.resp, s.err
}

func (s *stubSewingService) List(ctx context.Context, status string) ([]sewing.InstructionResponse, error) {
	return []sewing.InstructionResponse{s.resp}, s.err
}

func (s *stubSewingService) Update(ctx context.Context, req sewing.UpdateInstructionRequest) (sewing.InstructionResponse, error) {
	return s.resp, s.err
}

func (s *stubSewingService) UpdateStatus(ctx context.Context, req sewing.UpdateStatusRequest) (sewing.InstructionResponse, error) {
	s.lastStatusReq = req
	return s.resp, s.err
}

func (s *stubSewingService) Delete(ctx context.Context, id string) error {
	return s.err
}

func newStatusRequest(t *testing.T, id, status string) *http.Request {
	body, err := json.Marshal(map[string]string{"status": status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/sewing/"+id+"/status", bytes.NewReader(body))
	return withURLParam(req, "id", id)
}

func TestSewingHandler_UpdateStatus_Success(t *testing.T) {
	stub := &stubSewingService{
		resp: sewing.InstructionResponse{ID: "ins-1", Status: sewing.StatusInProgress},
	}
	handler := NewSewingHandler(stub)

	rec := httptest.NewRecorder()
	handler.UpdateStatus(rec, newStatusRequest(t, "ins-1", "In Progress"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ins-1", stub.lastStatusReq.ID)
	assert.Equal(t, "In Progress", stub.lastStatusReq.Status)
}

func TestSewingHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	stub := &stubSewingService{err: sewing.ErrInvalidTransition}
	handler := NewSewingHandler(stub)

	rec := httptest.NewRecorder()
	handler.UpdateStatus(rec, newStatusRequest(t, "ins-1", "Done"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
}

func TestSewingHandler_UpdateStatus_NotFound(t *testing.T) {
	stub := &stubSewingService{err: sewing.ErrInstructionNotFound}
	handler := NewSewingHandler(stub)

	rec := httptest.NewRecorder()
	handler.UpdateStatus(rec, newStatusRequest(t, "missing", "In Progress"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSewingHandler_Create_ValidationFailure(t *testing.T) {
	handler := NewSewingHandler(&stubSewingService{})

	body := bytes.NewReader([]byte(`{"bag":"","person":""}`))
	req := httptest.NewRequest(http.MethodPost, "/sewing", body)
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error.Details, "bag")
	assert.Contains(t, resp.Error.Details, "person")
}
