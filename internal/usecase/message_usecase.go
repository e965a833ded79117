package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/logger"
)

type messageUsecase struct {
	messageRepo domain.MessageRepository
	validate    *validator.Validate
}

func NewMessageUsecase(messageRepo domain.MessageRepository, validate *validator.Validate) domain.MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		validate:    validate,
	}
}

func (u *messageUsecase) Submit(ctx context.Context, req *domain.MessageRequest) (*domain.Message, error) {
	req.Nom = strings.TrimSpace(req.Nom)
	req.Email = strings.TrimSpace(req.Email)
	req.Sujet = strings.TrimSpace(req.Sujet)
	req.Message = strings.TrimSpace(req.Message)
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("Champs requis manquants")
	}

	var telephone *string
	if req.Telephone != nil && strings.TrimSpace(*req.Telephone) != "" {
		tel := strings.TrimSpace(*req.Telephone)
		telephone = &tel
	}

	msg := &domain.Message{
		Nom:       req.Nom,
		Email:     req.Email,
		Telephone: telephone,
		Sujet:     req.Sujet,
		Message:   req.Message,
		Read:      false,
		Status:    domain.MessageStatusNew,
	}

	if err := u.messageRepo.Insert(ctx, msg); err != nil {
		logger.Log.Error("message insert failed", "error", err)
		return nil, apperror.Internal("Erreur lors de l'envoi", err)
	}
	return msg, nil
}

func (u *messageUsecase) ListAll(ctx context.Context) ([]domain.Message, error) {
	messages, err := u.messageRepo.FetchAll(ctx)
	if err != nil {
		logger.Log.Error("messages fetch failed", "error", err)
		return nil, apperror.Internal("Erreur serveur", err)
	}
	return messages, nil
}

func (u *messageUsecase) SetReadState(ctx context.Context, id string, read bool) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NotFound("Message non trouvé")
	}

	err := u.messageRepo.SetRead(ctx, id, read)
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Message non trouvé")
	}
	if err != nil {
		logger.Log.Error("message read-state update failed", "error", err, "id", id)
		return apperror.Internal("Erreur serveur", err)
	}
	return nil
}

func (u *messageUsecase) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	if err := u.messageRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("message delete failed", "error", err, "id", id)
		return apperror.Internal("Erreur lors de la suppression", err)
	}
	return nil
}
