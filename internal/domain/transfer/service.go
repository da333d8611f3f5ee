package transfer

import "context"

type TransferService interface {
	Create(ctx context.Context, req CreateTransferRequest) (TransferResponse, error)
	Get(ctx context.Context, id string) (TransferResponse, error)
	List(ctx context.Context, month string) ([]TransferResponse, error)
	MarkPaid(ctx context.Context, id string) (TransferResponse, error)
	Delete(ctx context.Context, id string) error

	// Generate creates pending transfers from the period's computed nets,
	// skipping employees that already have one for the month.
	Generate(ctx context.Context, req GenerateTransfersRequest) (GenerateTransfersResponse, error)
}
