package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/components"
	"github.com/decker502/explosion/pkg/ecs"
)

// ParticleSystem simulates the particles of every effect instance.
//
// Each frame it runs two phases:
//  1. Update existing particles (age, acceleration, velocity, color) and
//     destroy the ones that reached the end of their lifetime.
//  2. Emit new particles from effect instances according to their template's
//     spawner. Newly emitted particles start at age 0 and are first moved on
//     the following frame.
//
// Particles are child entities of their effect instance, so removing the
// instance recursively removes its particles too.
type ParticleSystem struct {
	EntityManager *ecs.EntityManager
	rng           *rand.Rand
}

// NewParticleSystem creates a ParticleSystem with a deterministic random source.
func NewParticleSystem(em *ecs.EntityManager, seed int64) *ParticleSystem {
	return &ParticleSystem{
		EntityManager: em,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Update processes all particles and emitters for the current frame.
func (ps *ParticleSystem) Update(dt float64) {
	ps.updateParticles(dt)
	ps.updateEmitters(dt)
}

func (ps *ParticleSystem) updateParticles(dt float64) {
	ids := ecs.GetEntitiesWith2[
		*components.ParticleComponent,
		*components.TransformComponent,
	](ps.EntityManager)

	for _, id := range ids {
		if ps.EntityManager.IsMarkedForDestroy(id) {
			continue
		}
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.EntityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.EntityManager, id)

		p.Age += dt
		if p.Age >= p.Lifetime {
			ps.EntityManager.DestroyEntity(id)
			continue
		}

		p.Velocity = p.Velocity.Add(p.Accel.Scale(dt))
		tr.Position = tr.Position.Add(p.Velocity.Scale(dt))

		if effect, ok := ecs.GetComponent[*components.EffectComponent](ps.EntityManager, p.Emitter); ok {
			p.Color = effect.Template.ColorOverLifetime.Apply(p.BaseColor, p.Age/p.Lifetime)
		}
	}
}

func (ps *ParticleSystem) updateEmitters(dt float64) {
	ids := ecs.GetEntitiesWith3[
		*components.EmitterComponent,
		*components.EffectComponent,
		*components.TransformComponent,
	](ps.EntityManager)

	for _, id := range ids {
		emitter, _ := ecs.GetComponent[*components.EmitterComponent](ps.EntityManager, id)
		ps.pruneDead(emitter)

		if ps.EntityManager.IsMarkedForDestroy(id) {
			continue
		}
		effect, _ := ecs.GetComponent[*components.EffectComponent](ps.EntityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](ps.EntityManager, id)
		tmpl := effect.Template
		if tmpl == nil {
			continue
		}

		count := 0
		if tmpl.Spawner.Once {
			if !emitter.Spawned {
				count = tmpl.BurstCount()
				emitter.Spawned = true
			}
		} else if tmpl.Spawner.Rate > 0 {
			emitter.SpawnAccum += tmpl.Spawner.Rate * dt
			whole := math.Floor(emitter.SpawnAccum)
			emitter.SpawnAccum -= whole
			count = int(whole)
		}

		for i := 0; i < count; i++ {
			if len(emitter.ActiveParticles) >= tmpl.Capacity {
				ps.evictOldest(emitter)
			}
			ps.spawnParticle(id, emitter, tmpl, tr)
		}
	}
}

// pruneDead drops particles that were removed since the last frame.
func (ps *ParticleSystem) pruneDead(emitter *components.EmitterComponent) {
	alive := emitter.ActiveParticles[:0]
	for _, pid := range emitter.ActiveParticles {
		if ps.EntityManager.EntityExists(pid) && !ps.EntityManager.IsMarkedForDestroy(pid) {
			alive = append(alive, pid)
		}
	}
	emitter.ActiveParticles = alive
}

func (ps *ParticleSystem) evictOldest(emitter *components.EmitterComponent) {
	if len(emitter.ActiveParticles) == 0 {
		return
	}
	ps.EntityManager.DestroyEntity(emitter.ActiveParticles[0])
	emitter.ActiveParticles = emitter.ActiveParticles[1:]
}

func (ps *ParticleSystem) spawnParticle(emitterID ecs.EntityID, emitter *components.EmitterComponent, tmpl *particle.EffectTemplate, origin *components.TransformComponent) {
	offset := tmpl.InitPosition.Sample(ps.rng)
	velocity := tmpl.InitVelocity.VelocityAt(offset, ps.rng)

	id := ps.EntityManager.CreateEntity()
	ps.EntityManager.AddComponent(id, &components.TransformComponent{Position: origin.Position.Add(offset)})
	ps.EntityManager.AddComponent(id, &components.ParticleComponent{
		Velocity:  velocity,
		Accel:     tmpl.Accel,
		Lifetime:  tmpl.Lifetime,
		BaseColor: tmpl.BaseColor,
		Color:     tmpl.ColorOverLifetime.Apply(tmpl.BaseColor, 0),
		Emitter:   emitterID,
	})
	ps.EntityManager.SetParent(id, emitterID)

	emitter.ActiveParticles = append(emitter.ActiveParticles, id)
	emitter.TotalLaunched++
}

// ActiveParticles returns the number of live particles across all instances.
func (ps *ParticleSystem) ActiveParticles() int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.EntityManager) {
		if !ps.EntityManager.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}
