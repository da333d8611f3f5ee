package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/packpal/packpal-backend-go/internal/domain/sewing"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
)

type sewingRepository struct {
	db *database.DB
}

func NewSewingRepository(db *database.DB) sewing.InstructionRepository {
	return &sewingRepository{db: db}
}

const instructionColumns = `id, bag, person, deadline, priority, status, qc_date, qc_note, created_at, updated_at`

func scanInstruction(row pgx.Row) (sewing.Instruction, error) {
	var ins sewing.Instruction
	err := row.Scan(
		&ins.ID, &ins.Bag, &ins.Person, &ins.Deadline, &ins.Priority,
		&ins.Status, &ins.QCDate, &ins.QCNote, &ins.CreatedAt, &ins.UpdatedAt,
	)
	return ins, err
}

func (r *sewingRepository) Create(ctx context.Context, ins sewing.Instruction) (sewing.Instruction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sewing_instructions (id, bag, person, deadline, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + instructionColumns

	created, err := scanInstruction(q.QueryRow(ctx, query,
		uuid.NewString(), ins.Bag, ins.Person, ins.Deadline, ins.Priority, ins.Status,
	))
	if err != nil {
		return sewing.Instruction{}, fmt.Errorf("failed to create sewing instruction: %w", err)
	}
	return created, nil
}

func (r *sewingRepository) GetByID(ctx context.Context, id string) (sewing.Instruction, error) {
	q := GetQuerier(ctx, r.db)

	ins, err := scanInstruction(q.QueryRow(ctx,
		`SELECT `+instructionColumns+` FROM sewing_instructions WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sewing.Instruction{}, sewing.ErrInstructionNotFound
		}
		return sewing.Instruction{}, fmt.Errorf("failed to get sewing instruction: %w", err)
	}
	return ins, nil
}

func (r *sewingRepository) List(ctx context.Context, status string) ([]sewing.Instruction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + instructionColumns + ` FROM sewing_instructions`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sewing instructions: %w", err)
	}
	defer rows.Close()

	var instructions []sewing.Instruction
	for rows.Next() {
		ins, err := scanInstruction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sewing instruction: %w", err)
		}
		instructions = append(instructions, ins)
	}
	return instructions, rows.Err()
}

func (r *sewingRepository) Update(ctx context.Context, req sewing.UpdateInstructionRequest) (sewing.Instruction, error) {
	q := GetQuerier(ctx, r.db)

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		if d, err := time.Parse("2006-01-02", *req.Deadline); err == nil {
			deadline = &d
		}
	}

	query := `
		UPDATE sewing_instructions SET
			bag = COALESCE($2, bag),
			person = COALESCE($3, person),
			deadline = COALESCE($4, deadline),
			priority = COALESCE($5, priority),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + instructionColumns

	ins, err := scanInstruction(q.QueryRow(ctx, query,
		req.ID, req.Bag, req.Person, deadline, req.Priority,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sewing.Instruction{}, sewing.ErrInstructionNotFound
		}
		return sewing.Instruction{}, fmt.Errorf("failed to update sewing instruction: %w", err)
	}
	return ins, nil
}

// UpdateStatus persists a transition already validated by the service,
// including the QC fields set when the move lands on Done or Failed.
func (r *sewingRepository) UpdateStatus(ctx context.Context, ins sewing.Instruction) (sewing.Instruction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sewing_instructions SET
			status = $2,
			qc_date = $3,
			qc_note = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + instructionColumns

	updated, err := scanInstruction(q.QueryRow(ctx, query, ins.ID, ins.Status, ins.QCDate, ins.QCNote))
	if err != nil {
		if err == pgx.ErrNoRows {
			return sewing.Instruction{}, sewing.ErrInstructionNotFound
		}
		return sewing.Instruction{}, fmt.Errorf("failed to update sewing status: %w", err)
	}
	return updated, nil
}

func (r *sewingRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sewing_instructions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sewing instruction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sewing.ErrInstructionNotFound
	}
	return nil
}
