package sewing

import (
	"context"
	"fmt"
	"time"

	"github.com/packpal/packpal-backend-go/internal/domain/sewing"
)

type SewingServiceImpl struct {
	instructionRepo sewing.InstructionRepository
}

func NewSewingService(instructionRepo sewing.InstructionRepository) sewing.SewingService {
	return &SewingServiceImpl{instructionRepo: instructionRepo}
}

func (s *SewingServiceImpl) Create(ctx context.Context, req sewing.CreateInstructionRequest) (sewing.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return sewing.InstructionResponse{}, err
	}

	ins := sewing.Instruction{
		Bag:      req.Bag,
		Person:   req.Person,
		Priority: sewing.Priority(req.Priority),
		Status:   sewing.StatusPending,
	}
	if req.Deadline != "" {
		if d, err := time.Parse("2006-01-02", req.Deadline); err == nil {
			ins.Deadline = &d
		}
	}

	created, err := s.instructionRepo.Create(ctx, ins)
	if err != nil {
		return sewing.InstructionResponse{}, fmt.Errorf("failed to create sewing instruction: %w", err)
	}
	return sewing.ToResponse(created), nil
}

func (s *SewingServiceImpl) Get(ctx context.Context, id string) (sewing.InstructionResponse, error) {
	ins, err := s.instructionRepo.GetByID(ctx, id)
	if err != nil {
		return sewing.InstructionResponse{}, err
	}
	return sewing.ToResponse(ins), nil
}

func (s *SewingServiceImpl) List(ctx context.Context, status string) ([]sewing.InstructionResponse, error) {
	instructions, err := s.instructionRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	responses := make([]sewing.InstructionResponse, 0, len(instructions))
	for _, ins := range instructions {
		responses = append(responses, sewing.ToResponse(ins))
	}
	return responses, nil
}

func (s *SewingServiceImpl) Update(ctx context.Context, req sewing.UpdateInstructionRequest) (sewing.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return sewing.InstructionResponse{}, err
	}

	ins, err := s.instructionRepo.Update(ctx, req)
	if err != nil {
		return sewing.InstructionResponse{}, err
	}
	return sewing.ToResponse(ins), nil
}

// UpdateStatus moves an instruction through the workflow graph. Landing on
// Done or Failed stamps the QC date and note.
func (s *SewingServiceImpl) UpdateStatus(ctx context.Context, req sewing.UpdateStatusRequest) (sewing.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return sewing.InstructionResponse{}, err
	}

	ins, err := s.instructionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return sewing.InstructionResponse{}, err
	}

	next := sewing.Status(req.Status)
	if !sewing.CanTransition(ins.Status, next) {
		return sewing.InstructionResponse{}, sewing.ErrInvalidTransition
	}

	ins.Status = next
	if next == sewing.StatusDone || next == sewing.StatusFailed {
		now := time.Now()
		ins.QCDate = &now
		ins.QCNote = req.QCNote
	}

	updated, err := s.instructionRepo.UpdateStatus(ctx, ins)
	if err != nil {
		return sewing.InstructionResponse{}, err
	}
	return sewing.ToResponse(updated), nil
}

func (s *SewingServiceImpl) Delete(ctx context.Context, id string) error {
	return s.instructionRepo.Delete(ctx, id)
}
