package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 保留的无效 ID
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 存储结构是稀疏组件表：实体只是一个整数句柄，
// 每个实体挂一张 ComponentType -> Component 的表，系统只查询自己关心的组件。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 父子关系（用于级联删除）
	parents  map[EntityID]EntityID
	children map[EntityID][]EntityID
	// 待删除的实体ID列表（保持请求顺序）
	entitiesToDestroy []EntityID
	// 已标记删除的集合，保证同一实体只被请求删除一次
	markedForDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		parents:           make(map[EntityID]EntityID),
		children:          make(map[EntityID][]EntityID),
		entitiesToDestroy: make([]EntityID, 0),
		markedForDestroy:  make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// EntityExists 检查实体是否仍然存在（已标记但未清理的实体仍视为存在）
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// EntityCount 返回当前存活的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 返回 true 表示本次调用新增了一个删除请求。
// 实体不存在或已被标记时静默忽略并返回 false。
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if !em.EntityExists(id) {
		return false
	}
	if _, marked := em.markedForDestroy[id]; marked {
		return false
	}
	em.markedForDestroy[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// DestroyEntityRecursive 标记实体及其所有子孙实体待删除
func (em *EntityManager) DestroyEntityRecursive(id EntityID) bool {
	requested := em.DestroyEntity(id)
	if !requested {
		return false
	}
	for _, child := range em.children[id] {
		em.DestroyEntityRecursive(child)
	}
	return true
}

// IsMarkedForDestroy 检查实体是否已有删除请求
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, marked := em.markedForDestroy[id]
	return marked
}

// PendingDestroyCount 返回尚未执行的删除请求数
func (em *EntityManager) PendingDestroyCount() int {
	return len(em.entitiesToDestroy)
}

// SetParent 建立父子关系，父实体被级联删除时子实体一并删除
func (em *EntityManager) SetParent(child, parent EntityID) {
	if !em.EntityExists(child) || !em.EntityExists(parent) || child == parent {
		return
	}
	if old, ok := em.parents[child]; ok {
		em.detach(child, old)
	}
	em.parents[child] = parent
	em.children[parent] = append(em.children[parent], child)
}

// Parent 返回实体的父实体
func (em *EntityManager) Parent(child EntityID) (EntityID, bool) {
	p, ok := em.parents[child]
	return p, ok
}

// Children 返回子实体列表的副本
func (em *EntityManager) Children(parent EntityID) []EntityID {
	kids := em.children[parent]
	out := make([]EntityID, len(kids))
	copy(out, kids)
	return out
}

func (em *EntityManager) detach(child, parent EntityID) {
	kids := em.children[parent]
	for i, k := range kids {
		if k == child {
			em.children[parent] = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	if len(em.children[parent]) == 0 {
		delete(em.children, parent)
	}
	delete(em.parents, child)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回实际删除的数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; !exists {
			continue
		}
		if parent, ok := em.parents[id]; ok {
			em.detach(id, parent)
		}
		// 未被级联标记的子实体变为根实体
		for _, child := range em.children[id] {
			delete(em.parents, child)
		}
		delete(em.children, id)
		delete(em.components, id)
		delete(em.markedForDestroy, id)
		removed++
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按 ID 升序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

// sortIDs 按创建顺序排序，保证系统迭代顺序稳定
func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
