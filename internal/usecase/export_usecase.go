package usecase

import (
	"context"
	"strings"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/logger"
	"ralph-xpert-backend/pkg/vcard"
)

type exportUsecase struct {
	contactRepo domain.ContactRepository
	product     string
}

func NewExportUsecase(contactRepo domain.ContactRepository, product string) domain.ExportUsecase {
	return &exportUsecase{
		contactRepo: contactRepo,
		product:     product,
	}
}

// GenerateVCF renders the full contact list, most recent first. An empty
// contact set yields an empty payload, which callers translate to "nothing
// to export"; a store failure is a real error, not the empty sentinel.
func (u *exportUsecase) GenerateVCF(ctx context.Context) (string, int64, error) {
	contacts, err := u.contactRepo.FetchAll(ctx)
	if err != nil {
		logger.Log.Error("VCF export fetch failed", "error", err)
		return "", 0, apperror.Internal("Erreur lors du téléchargement", err)
	}

	var b strings.Builder
	for _, c := range contacts {
		card := vcard.Card{
			FullName: c.Nom,
			Tel:      c.NumeroComplet,
			Note:     vcard.RegistrationNote(u.product, c.Timestamp),
		}
		if c.Email != nil {
			card.Email = *c.Email
		}
		card.Render(&b)
	}

	logger.Log.Info("VCF export generated", "contacts", len(contacts))
	return b.String(), int64(len(contacts)), nil
}
