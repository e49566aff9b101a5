package ecs

// SpawnFunc 在实体创建后为其挂载组件
type SpawnFunc func(em *EntityManager, id EntityID)

// Commands 延迟命令缓冲区
//
// 系统在帧内只记录"创建/删除请求"，由调度器在所有系统执行完后统一 Apply。
// 因此同一帧中新创建的实体不会被后续系统看到（例如刚生成的特效实例
// 不会在生成当帧就被清理系统推进生命周期计时器）。
type Commands struct {
	spawns   []SpawnFunc
	despawns []despawnRequest
}

type despawnRequest struct {
	id        EntityID
	recursive bool
}

// NewCommands 创建空的命令缓冲区
func NewCommands() *Commands {
	return &Commands{}
}

// Spawn 记录一次实体创建请求
func (c *Commands) Spawn(fn SpawnFunc) {
	c.spawns = append(c.spawns, fn)
}

// Despawn 记录一次删除请求
func (c *Commands) Despawn(id EntityID) {
	c.despawns = append(c.despawns, despawnRequest{id: id})
}

// DespawnRecursive 记录一次级联删除请求
func (c *Commands) DespawnRecursive(id EntityID) {
	c.despawns = append(c.despawns, despawnRequest{id: id, recursive: true})
}

// PendingSpawns 返回尚未执行的创建请求数
func (c *Commands) PendingSpawns() int {
	return len(c.spawns)
}

// PendingDespawns 返回尚未执行的删除请求数
func (c *Commands) PendingDespawns() int {
	return len(c.despawns)
}

// Apply 按顺序执行所有创建请求，再转交删除请求给 EntityManager
//
// 返回本次创建的实体 ID（按请求顺序）。删除请求只做标记，
// 真正的移除由 EntityManager.RemoveMarkedEntities 完成。
func (c *Commands) Apply(em *EntityManager) []EntityID {
	spawned := make([]EntityID, 0, len(c.spawns))
	for _, fn := range c.spawns {
		id := em.CreateEntity()
		if fn != nil {
			fn(em, id)
		}
		spawned = append(spawned, id)
	}
	c.spawns = c.spawns[:0]

	for _, req := range c.despawns {
		if req.recursive {
			em.DestroyEntityRecursive(req.id)
		} else {
			em.DestroyEntity(req.id)
		}
	}
	c.despawns = c.despawns[:0]

	return spawned
}
