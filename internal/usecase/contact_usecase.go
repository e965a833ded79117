package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/logger"
)

const (
	recentContactsLimit = 5
	searchResultsLimit  = 10
	minSearchLength     = 2
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
}

func NewContactUsecase(contactRepo domain.ContactRepository) domain.ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

// fullNumber derives the uniqueness key from its two caller-supplied parts.
func fullNumber(codePays, numero string) string {
	return codePays + " " + numero
}

func (u *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.Contact, error) {
	nom := strings.TrimSpace(req.Nom)
	codePays := strings.TrimSpace(req.CodePays)
	numero := strings.TrimSpace(req.Numero)
	if nom == "" || codePays == "" || numero == "" {
		return nil, apperror.BadRequest("Tous les champs sont requis")
	}

	contact := &domain.Contact{
		Nom:           nom + domain.ContactNameSuffix,
		CodePays:      codePays,
		Numero:        numero,
		NumeroComplet: fullNumber(codePays, numero),
	}

	// The unique constraint on numero_complet is the authority here: a
	// duplicate insert fails atomically instead of racing a pre-check.
	if err := u.contactRepo.Insert(ctx, contact); err != nil {
		if errors.Is(err, domain.ErrDuplicateNumber) {
			return nil, apperror.Conflict("Ce numéro est déjà inscrit")
		}
		logger.Log.Error("contact insert failed", "error", err)
		return nil, apperror.Internal("Erreur lors de l'inscription", err)
	}
	return contact, nil
}

func (u *contactUsecase) ListRecent(ctx context.Context) ([]domain.ContactSummary, int64, error) {
	contacts, err := u.contactRepo.FetchRecent(ctx, recentContactsLimit)
	if err != nil {
		logger.Log.Error("recent contacts fetch failed", "error", err)
		return nil, 0, apperror.Internal("Erreur serveur", err)
	}

	total, err := u.contactRepo.Count(ctx)
	if err != nil {
		logger.Log.Error("contact count failed", "error", err)
		return nil, 0, apperror.Internal("Erreur serveur", err)
	}
	return contacts, total, nil
}

func (u *contactUsecase) Search(ctx context.Context, query string) ([]domain.ContactSummary, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchLength {
		return nil, apperror.BadRequest("Le terme de recherche doit contenir au moins 2 caractères")
	}

	contacts, err := u.contactRepo.Search(ctx, query, searchResultsLimit)
	if err != nil {
		logger.Log.Error("contact search failed", "error", err, "query", query)
		return nil, apperror.Internal("Erreur serveur", err)
	}
	return contacts, nil
}

func (u *contactUsecase) GetAll(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := u.contactRepo.FetchAll(ctx)
	if err != nil {
		logger.Log.Error("contacts fetch failed", "error", err)
		return nil, apperror.Internal("Erreur serveur", err)
	}
	return contacts, nil
}

func (u *contactUsecase) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound("Contact non trouvé")
	}

	contact, err := u.contactRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Contact non trouvé")
	}
	if err != nil {
		logger.Log.Error("contact fetch failed", "error", err, "id", id)
		return nil, apperror.Internal("Erreur serveur", err)
	}
	return contact, nil
}

func (u *contactUsecase) Update(ctx context.Context, id string, req *domain.ContactUpdateRequest) (*domain.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.NotFound("Contact non trouvé ou erreur de modification")
	}

	now := time.Now()
	contact := &domain.Contact{
		ID:            id,
		Nom:           strings.TrimSpace(req.Nom) + domain.ContactNameSuffix,
		CodePays:      strings.TrimSpace(req.CodePays),
		Numero:        strings.TrimSpace(req.Numero),
		NumeroComplet: fullNumber(strings.TrimSpace(req.CodePays), strings.TrimSpace(req.Numero)),
		UpdatedAt:     &now,
	}

	err := u.contactRepo.Update(ctx, contact)
	switch {
	case errors.Is(err, domain.ErrDuplicateNumber):
		return nil, apperror.Conflict("Ce numéro est déjà utilisé par un autre contact")
	case errors.Is(err, domain.ErrNotFound):
		return nil, apperror.NotFound("Contact non trouvé ou erreur de modification")
	case err != nil:
		logger.Log.Error("contact update failed", "error", err, "id", id)
		return nil, apperror.Internal("Erreur serveur", err)
	}
	return contact, nil
}

// Delete is idempotent: removing an id that no longer exists succeeds.
func (u *contactUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	if err := u.contactRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("contact delete failed", "error", err, "id", id)
		return apperror.Internal("Erreur lors de la suppression", err)
	}
	return nil
}

func (u *contactUsecase) DeleteAll(ctx context.Context) error {
	if err := u.contactRepo.DeleteAll(ctx); err != nil {
		logger.Log.Error("contacts purge failed", "error", err)
		return apperror.Internal("Erreur lors de la suppression", err)
	}
	return nil
}
