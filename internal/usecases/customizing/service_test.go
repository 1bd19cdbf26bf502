package customizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/portfolio-manager-api/infrastructure/kvstore"
	"github.com/vfg2006/portfolio-manager-api/internal/domain"
)

func TestService_GetLayout(t *testing.T) {
	ctx := context.Background()

	t.Run("Usuário sem disposição salva recebe o padrão", func(t *testing.T) {
		service := NewService(kvstore.NewMemoryStore())

		layout, err := service.GetLayout(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultDashboardLayout(), layout)
	})

	t.Run("Registro corrompido cai no padrão em vez de falhar", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		assert.NoError(t, store.Set(ctx, "dashboard:layout:1", "{nao é json"))

		service := NewService(store)
		layout, err := service.GetLayout(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultDashboardLayout(), layout)
	})

	t.Run("Disposição sem widgets cai no padrão", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		assert.NoError(t, store.Set(ctx, "dashboard:layout:1", `{"widgets":[]}`))

		service := NewService(store)
		layout, err := service.GetLayout(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultDashboardLayout(), layout)
	})
}

func TestService_SaveLayout(t *testing.T) {
	ctx := context.Background()
	service := NewService(kvstore.NewMemoryStore())

	saved := &domain.DashboardLayout{
		Widgets: []domain.DashboardWidget{
			{ID: "gantt", Kind: "gantt", Position: 0, Visible: true},
			{ID: "kpi-summary", Kind: "kpi", Position: 1, Visible: false},
		},
	}

	assert.NoError(t, service.SaveLayout(ctx, 7, saved))

	layout, err := service.GetLayout(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, saved, layout)

	// A disposição é por usuário: outro id segue no padrão.
	other, err := service.GetLayout(ctx, 8)
	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultDashboardLayout(), other)
}

func TestService_ResetLayout(t *testing.T) {
	ctx := context.Background()
	service := NewService(kvstore.NewMemoryStore())

	saved := &domain.DashboardLayout{
		Widgets: []domain.DashboardWidget{
			{ID: "gantt", Kind: "gantt", Position: 0, Visible: true},
		},
	}
	assert.NoError(t, service.SaveLayout(ctx, 7, saved))

	assert.NoError(t, service.ResetLayout(ctx, 7))

	layout, err := service.GetLayout(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultDashboardLayout(), layout)

	// Restaurar quem nunca salvou não é erro.
	assert.NoError(t, service.ResetLayout(ctx, 99))
}
