// Package customizing persiste a disposição de widgets do painel por usuário
// em um armazenamento chave-valor injetado, em vez de estado ambiente do
// navegador.
package customizing

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Customizer lê e grava a disposição do painel de um usuário.
type Customizer interface {
	GetLayout(ctx context.Context, userID int) (*domain.DashboardLayout, error)
	SaveLayout(ctx context.Context, userID int, layout *domain.DashboardLayout) error
	ResetLayout(ctx context.Context, userID int) error
}

type Service struct {
	store kvstore.KeyValueStore
}

func NewService(store kvstore.KeyValueStore) Customizer {
	return &Service{store: store}
}

func layoutKey(userID int) string {
	return fmt.Sprintf("dashboard:layout:%d", userID)
}

// GetLayout devolve a disposição salva do usuário; usuário sem disposição
// salva (ou com um registro corrompido) recebe a disposição padrão.
func (s *Service) GetLayout(ctx context.Context, userID int) (*domain.DashboardLayout, error) {
	raw, err := s.store.Get(ctx, layoutKey(userID))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return domain.DefaultDashboardLayout(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler disposição do painel: %w", err)
	}

	layout := &domain.DashboardLayout{}
	if err := json.Unmarshal([]byte(raw), layout); err != nil {
		return domain.DefaultDashboardLayout(), nil
	}

	if len(layout.Widgets) == 0 {
		return domain.DefaultDashboardLayout(), nil
	}

	return layout, nil
}

func (s *Service) SaveLayout(ctx context.Context, userID int, layout *domain.DashboardLayout) error {
	raw, err := json.Marshal(layout)
	if err != nil {
		return fmt.Errorf("erro ao serializar disposição do painel: %w", err)
	}

	if err := s.store.Set(ctx, layoutKey(userID), string(raw)); err != nil {
		return fmt.Errorf("erro ao salvar disposição do painel: %w", err)
	}

	return nil
}

// ResetLayout descarta a disposição salva; a próxima leitura volta ao padrão.
func (s *Service) ResetLayout(ctx context.Context, userID int) error {
	err := s.store.Delete(ctx, layoutKey(userID))
	if err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return fmt.Errorf("erro ao descartar disposição do painel: %w", err)
	}
	return nil
}
