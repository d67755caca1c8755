package systems

import (
	"errors"
	"testing"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/ecs"
)

func newTestHealth(t *testing.T) (*ecs.EntityManager, ecs.EntityID, *HealthSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.HealthComponent{
		MaxHP:        100,
		CurrentHP:    100,
		MaxSP:        100,
		CurrentSP:    100,
		SPRegenRate:  20,
		SPRegenDelay: 1.0,
		SinceSPUse:   1.0,
	})
	hs, err := NewHealthSystem(em, id)
	if err != nil {
		t.Fatalf("NewHealthSystem() error: %v", err)
	}
	return em, id, hs
}

func TestHealthSystemUpdateStamina(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		delta    float64
		absolute bool
		want     float64
	}{
		{"drain", 100, -25, false, 75},
		{"drain clamps at zero", 10, -25, false, 0},
		{"gain clamps at max", 90, 25, false, 100},
		{"absolute", 100, 1.0, true, 1.0},
		{"absolute above max", 50, 500, true, 100},
		{"absolute below zero", 50, -3, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, hs := newTestHealth(t)
			hs.UpdateStamina(tt.start, true)
			hs.UpdateStamina(tt.delta, tt.absolute)
			if got := hs.CurrentStamina(); got != tt.want {
				t.Errorf("stamina = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHealthSystemUpdateCurrentHP(t *testing.T) {
	_, _, hs := newTestHealth(t)

	hs.UpdateCurrentHP(40, true)
	if hs.CurrentHP() != 40 {
		t.Errorf("hp = %v, want 40", hs.CurrentHP())
	}
	hs.UpdateCurrentHP(-50, false)
	if hs.CurrentHP() != 0 {
		t.Errorf("hp = %v, want 0", hs.CurrentHP())
	}
	hs.UpdateCurrentHP(1000, true)
	if hs.CurrentHP() != 100 {
		t.Errorf("hp = %v, want 100", hs.CurrentHP())
	}
}

func TestHealthSystemRegenAfterDelay(t *testing.T) {
	_, _, hs := newTestHealth(t)
	hs.UpdateStamina(50, true)
	hs.UpdateStamina(-10, false) // 消耗后重新计时

	// 恢复延迟 1 秒内不恢复
	for i := 0; i < 4; i++ {
		hs.Update(0.25)
	}
	if got := hs.CurrentStamina(); got != 40 {
		t.Fatalf("stamina regenerated during the delay: %v", got)
	}

	hs.Update(0.5)
	if got := hs.CurrentStamina(); got != 50 {
		t.Errorf("stamina = %v, want 50 after 0.5s of regen at 20/s", got)
	}

	hs.Update(10)
	if got := hs.CurrentStamina(); got != 100 {
		t.Errorf("regen should cap at max, got %v", got)
	}
}

func TestNewHealthSystemRequiresComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()

	if _, err := NewHealthSystem(em, id); !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("error = %v, want ErrMissingCollaborator", err)
	}
	if _, err := NewHealthSystem(nil, id); !errors.Is(err, ErrMissingCollaborator) {
		t.Errorf("nil manager: error = %v, want ErrMissingCollaborator", err)
	}
}
