package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ralph-xpert-backend/internal/domain"
	"ralph-xpert-backend/internal/usecase"
)

func TestGenerateVCF(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the empty sentinel for an empty contact set", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("FetchAll", ctx).Return([]domain.Contact{}, nil)

		uc := usecase.NewExportUsecase(mockRepo, "Ralph Xpert")
		content, total, err := uc.GenerateVCF(ctx)
		assert.NoError(t, err)
		assert.Empty(t, content)
		assert.Equal(t, int64(0), total)
	})

	t.Run("Should surface a fetch failure as an error, not the sentinel", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		mockRepo.On("FetchAll", ctx).Return(nil, errors.New("connection refused"))

		uc := usecase.NewExportUsecase(mockRepo, "Ralph Xpert")
		_, _, err := uc.GenerateVCF(ctx)
		assert.Error(t, err)
	})

	t.Run("Should emit one well-formed block per contact in fetch order", func(t *testing.T) {
		registered := time.Date(2025, 3, 9, 14, 30, 0, 0, time.UTC)
		email := "jean@example.com"
		mockRepo := new(MockContactRepo)
		mockRepo.On("FetchAll", ctx).Return([]domain.Contact{
			{Nom: "Jean (RXP)", NumeroComplet: "+33 600000000", Email: &email, Timestamp: registered},
			{Nom: "Marie (RXP)", NumeroComplet: "+509 34000000", Timestamp: registered},
		}, nil)

		uc := usecase.NewExportUsecase(mockRepo, "Ralph Xpert")
		content, total, err := uc.GenerateVCF(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, 2, strings.Count(content, "BEGIN:VCARD"))
		assert.Equal(t, 2, strings.Count(content, "END:VCARD"))

		// First block carries the optional EMAIL line, the second does not.
		blocks := strings.Split(strings.TrimRight(content, "\n"), "\n\n")
		assert.Len(t, blocks, 2)
		assert.Contains(t, blocks[0], "FN:Jean (RXP)")
		assert.Contains(t, blocks[0], "TEL:+33 600000000")
		assert.Contains(t, blocks[0], "EMAIL:jean@example.com")
		assert.Contains(t, blocks[0], fmt.Sprintf("NOTE:Inscrit via Ralph Xpert le %s", registered.Format("02/01/2006")))
		assert.Contains(t, blocks[1], "FN:Marie (RXP)")
		assert.NotContains(t, blocks[1], "EMAIL:")

		// Fetch order is recency order; the payload preserves it.
		assert.Less(t, strings.Index(content, "Jean"), strings.Index(content, "Marie"))
	})
}
