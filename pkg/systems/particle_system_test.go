package systems

import (
	"math"
	"testing"

	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
	"github.com/decker502/explosion/pkg/entities"
	"github.com/decker502/explosion/pkg/types"
)

const eps = 1e-9

func spawnInstance(t *testing.T, w *testWorld, tmpl *particle.EffectTemplate, pos types.Vec3) ecs.EntityID {
	t.Helper()
	fx := entities.EffectAssets{Handle: w.store.AddEffect(tmpl), Template: tmpl}
	entities.SpawnEffectInstance(w.cmds, fx, pos, 10)
	return w.apply()[0]
}

func particlesOf(w *testWorld, instance ecs.EntityID) []ecs.EntityID {
	out := make([]ecs.EntityID, 0)
	for _, id := range w.em.Children(instance) {
		if ecs.HasComponent[*components.ParticleComponent](w.em, id) {
			out = append(out, id)
		}
	}
	return out
}

func TestParticleSystem_BurstOnce(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.em, 1)
	origin := types.Vec3{Y: 20}
	instance := spawnInstance(t, w, w.effect.Template, origin)

	ps.Update(0.016)
	w.apply()
	parts := particlesOf(w, instance)
	if len(parts) != 5 {
		t.Fatalf("burst produced %d particles, want 5", len(parts))
	}

	for _, id := range parts {
		tr, _ := ecs.GetComponent[*components.TransformComponent](w.em, id)
		p, _ := ecs.GetComponent[*components.ParticleComponent](w.em, id)
		if d := tr.Position.Sub(origin).Length(); math.Abs(d-2) > 1e-6 {
			t.Errorf("particle %d at distance %v from origin, want 2", id, d)
		}
		if s := p.Velocity.Length(); math.Abs(s-6) > 1e-6 {
			t.Errorf("particle %d speed %v, want 6", id, s)
		}
		if p.Color != (types.Vec4{X: 1, W: 1}) {
			t.Errorf("particle %d initial color %+v, want red", id, p.Color)
		}
	}

	ps.Update(0.016)
	w.apply()
	if got := len(particlesOf(w, instance)); got != 5 {
		t.Errorf("second frame has %d particles, burst must fire once", got)
	}
	emitter, _ := ecs.GetComponent[*components.EmitterComponent](w.em, instance)
	if emitter.TotalLaunched != 5 || !emitter.Spawned {
		t.Errorf("emitter = %+v", emitter)
	}
}

func TestParticleSystem_Integration(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.em, 2)
	instance := spawnInstance(t, w, w.effect.Template, types.Vec3Zero)
	ps.Update(0)
	w.apply()

	id := particlesOf(w, instance)[0]
	tr, _ := ecs.GetComponent[*components.TransformComponent](w.em, id)
	p, _ := ecs.GetComponent[*components.ParticleComponent](w.em, id)
	pos0, vel0 := tr.Position, p.Velocity

	ps.Update(0.5)

	wantVel := vel0.Add(types.Vec3{Y: -3 * 0.5})
	if d := p.Velocity.Sub(wantVel).Length(); d > eps {
		t.Errorf("velocity = %v, want %v", p.Velocity, wantVel)
	}
	wantPos := pos0.Add(wantVel.Scale(0.5))
	if d := tr.Position.Sub(wantPos).Length(); d > eps {
		t.Errorf("position = %v, want %v", tr.Position, wantPos)
	}
	// 白色基色 * 红到透明渐变的中点
	want := types.Vec4{X: 0.5, W: 0.5}
	if d := math.Abs(p.Color.X-want.X) + math.Abs(p.Color.W-want.W) + p.Color.Y + p.Color.Z; d > eps {
		t.Errorf("color at half life = %+v, want %+v", p.Color, want)
	}
}

func TestParticleSystem_ParticleLifecycle(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.em, 3)
	instance := spawnInstance(t, w, w.effect.Template, types.Vec3Zero)
	ps.Update(0)
	w.apply()

	ps.Update(0.5)
	w.apply()
	if got := len(particlesOf(w, instance)); got != 5 {
		t.Fatalf("particles at age 0.5 = %d, want 5", got)
	}

	ps.Update(0.6)
	w.apply()
	if got := len(particlesOf(w, instance)); got != 0 {
		t.Errorf("particles after lifetime = %d, want 0", got)
	}
	if ps.ActiveParticles() != 0 {
		t.Errorf("ActiveParticles() = %d, want 0", ps.ActiveParticles())
	}

	ps.Update(0.016)
	emitter, _ := ecs.GetComponent[*components.EmitterComponent](w.em, instance)
	if len(emitter.ActiveParticles) != 0 {
		t.Errorf("emitter still tracks %d dead particles", len(emitter.ActiveParticles))
	}
}

func TestParticleSystem_CapacityEvictsOldest(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.em, 4)
	tmpl, err := particle.NewBuilder("tiny", 3, particle.Rate(10)).Lifetime(5).Build()
	if err != nil {
		t.Fatal(err)
	}
	instance := spawnInstance(t, w, tmpl, types.Vec3Zero)

	ps.Update(0.25) // 2.5 -> 2 个，余 0.5
	w.apply()
	if got := len(particlesOf(w, instance)); got != 2 {
		t.Fatalf("particles = %d, want 2", got)
	}
	first := particlesOf(w, instance)[0]

	ps.Update(0.25) // 0.5 + 2.5 -> 3 个，超过容量淘汰最早的
	w.apply()
	parts := particlesOf(w, instance)
	if len(parts) != 3 {
		t.Fatalf("particles = %d, want capacity 3", len(parts))
	}
	if w.em.EntityExists(first) {
		t.Error("oldest particle should have been evicted")
	}
	emitter, _ := ecs.GetComponent[*components.EmitterComponent](w.em, instance)
	if emitter.TotalLaunched != 5 {
		t.Errorf("TotalLaunched = %d, want 5", emitter.TotalLaunched)
	}
}

func TestParticleSystem_InstanceRemovalTakesParticles(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w.em, 5)
	instance := spawnInstance(t, w, w.effect.Template, types.Vec3Zero)
	ps.Update(0)
	w.apply()

	w.em.DestroyEntityRecursive(instance)
	ps.Update(0.1) // 已标记的实例不再发射
	w.apply()

	if w.em.EntityExists(instance) {
		t.Error("instance still exists")
	}
	if got := w.count(t, "particles"); got != 0 {
		t.Errorf("particles left behind: %d", got)
	}
}
