package entities

import (
	"errors"
	"testing"

	"github.com/decker502/joseonsoul/pkg/components"
	"github.com/decker502/joseonsoul/pkg/config"
	"github.com/decker502/joseonsoul/pkg/ecs"
	"github.com/decker502/joseonsoul/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	registry := game.NewPlayerRegistry()
	tuning := config.DefaultTuningConfig()

	id, err := NewPlayer(em, registry, tuning, mgl64.Vec3{1, 0, 2})
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	if registered, ok := registry.Player(); !ok || registered != id {
		t.Errorf("registry should point to %d, got (%d, %v)", id, registered, ok)
	}

	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatal("player should have a TransformComponent")
	}
	if transform.Position != (mgl64.Vec3{1, 0, 2}) {
		t.Errorf("position: got %v, want [1 0 2]", transform.Position)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("player should have a PlayerComponent")
	}
	if player.Active {
		t.Error("new player should start inactive")
	}
	if player.State != components.PlayerStateIdle {
		t.Errorf("state: got %v, want Idle", player.State)
	}

	loco, ok := ecs.GetComponent[*components.LocomotionComponent](em, id)
	if !ok {
		t.Fatal("player should have a LocomotionComponent")
	}
	if loco.WalkingSpeed != 5 || loco.RunningSpeed != 10 || !loco.Runnable {
		t.Errorf("unexpected locomotion component: %+v", loco)
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatal("player should have a HealthComponent")
	}
	if health.CurrentSP != tuning.Stamina.MaxSP {
		t.Errorf("stamina should start full, got %v", health.CurrentSP)
	}

	for _, has := range []bool{
		ecs.HasComponent[*components.PotionComponent](em, id),
		ecs.HasComponent[*components.AnimatorComponent](em, id),
	} {
		if !has {
			t.Error("player is missing a potion or animator component")
		}
	}
}

func TestNewPlayerDiscardsDuplicate(t *testing.T) {
	em := ecs.NewEntityManager()
	registry := game.NewPlayerRegistry()
	tuning := config.DefaultTuningConfig()

	first, err := NewPlayer(em, registry, tuning, mgl64.Vec3{})
	if err != nil {
		t.Fatalf("first NewPlayer() error: %v", err)
	}

	second, err := NewPlayer(em, registry, tuning, mgl64.Vec3{5, 0, 5})
	if !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("second NewPlayer() error = %v, want ErrDuplicatePlayer", err)
	}
	if second != 0 {
		t.Errorf("duplicate should return 0, got %d", second)
	}

	em.RemoveMarkedEntities()

	if registered, _ := registry.Player(); registered != first {
		t.Errorf("registry should still point to %d, got %d", first, registered)
	}
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](em)
	if len(players) != 1 || players[0] != first {
		t.Errorf("expected only the first player to exist, got %v", players)
	}
	if em.EntityCount() != 1 {
		t.Errorf("discarded entity should be removed, %d entities remain", em.EntityCount())
	}
}

func TestNewPlayerNilArguments(t *testing.T) {
	tuning := config.DefaultTuningConfig()
	if _, err := NewPlayer(nil, game.NewPlayerRegistry(), tuning, mgl64.Vec3{}); err == nil {
		t.Error("expected error for nil entity manager")
	}
	if _, err := NewPlayer(ecs.NewEntityManager(), nil, tuning, mgl64.Vec3{}); err == nil {
		t.Error("expected error for nil registry")
	}
	if _, err := NewPlayer(ecs.NewEntityManager(), game.NewPlayerRegistry(), nil, mgl64.Vec3{}); err == nil {
		t.Error("expected error for nil tuning")
	}
}
