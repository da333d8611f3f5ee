package sewing

import "context"

type InstructionRepository interface {
	Create(ctx context.Context, ins Instruction) (Instruction, error)
	GetByID(ctx context.Context, id string) (Instruction, error)
	List(ctx context.Context, status string) ([]Instruction, error)
	Update(ctx context.Context, req UpdateInstructionRequest) (Instruction, error)
	UpdateStatus(ctx context.Context, ins Instruction) (Instruction, error)
	Delete(ctx context.Context, id string) error
}
