package sewing

import "context"

type SewingService interface {
	Create(ctx context.Context, req CreateInstructionRequest) (InstructionResponse, error)
	Get(ctx context.Context, id string) (InstructionResponse, error)
	List(ctx context.Context, status string) ([]InstructionResponse, error)
	Update(ctx context.Context, req UpdateInstructionRequest) (InstructionResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (InstructionResponse, error)
	Delete(ctx context.Context, id string) error
}
