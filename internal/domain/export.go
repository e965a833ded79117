package domain

import "context"

type ExportUsecase interface {
	// GenerateVCF renders every contact as a vCard block, most recent
	// first, and returns the payload with the total contact count. An
	// empty payload means there is nothing to export.
	GenerateVCF(ctx context.Context) (string, int64, error)
}
