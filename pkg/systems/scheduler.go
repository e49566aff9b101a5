package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/explosion/pkg/ecs"
)

// ErrNotStarted 在 Startup 之前调用 Tick 时返回
var ErrNotStarted = errors.New("scheduler: Tick called before Startup")

// System 每帧更新一次的系统
type System interface {
	Update(deltaTime float64)
}

// StartupFunc 启动阶段执行一次的任务
type StartupFunc func() error

type namedStartup struct {
	name string
	fn   StartupFunc
}

type namedSystem struct {
	name string
	sys  System
}

// Scheduler 按声明顺序运行启动任务和每帧系统
//
// 每帧流程：
//  1. 依次调用每个系统的 Update(dt)
//  2. 执行共享 Commands 缓冲区中的创建/删除请求
//  3. 移除本帧标记删除的实体
//
// 系统在帧内看到的是帧开始时的实体集合，本帧请求创建的实体从下一帧开始参与更新。
type Scheduler struct {
	entityManager *ecs.EntityManager
	commands      *ecs.Commands

	startups []namedStartup
	updates  []namedSystem
	started  bool
	frame    uint64
}

// NewScheduler 创建调度器
func NewScheduler(em *ecs.EntityManager, cmds *ecs.Commands) *Scheduler {
	return &Scheduler{
		entityManager: em,
		commands:      cmds,
	}
}

// AddStartup 注册启动任务
func (s *Scheduler) AddStartup(name string, fn StartupFunc) {
	s.startups = append(s.startups, namedStartup{name: name, fn: fn})
}

// AddUpdate 注册每帧系统，执行顺序即注册顺序
func (s *Scheduler) AddUpdate(name string, sys System) {
	s.updates = append(s.updates, namedSystem{name: name, sys: sys})
}

// Startup 依次执行所有启动任务，之后提交启动期间排队的命令
// 重复调用不做任何事
func (s *Scheduler) Startup() error {
	if s.started {
		return nil
	}
	for _, st := range s.startups {
		if err := st.fn(); err != nil {
			return fmt.Errorf("startup %s: %w", st.name, err)
		}
		log.Printf("[Scheduler] Startup %s done", st.name)
	}
	s.flush()
	s.started = true
	return nil
}

// Started 是否已完成启动
func (s *Scheduler) Started() bool {
	return s.started
}

// Tick 推进一帧
func (s *Scheduler) Tick(deltaTime float64) error {
	if !s.started {
		return ErrNotStarted
	}
	for _, u := range s.updates {
		u.sys.Update(deltaTime)
	}
	s.flush()
	s.frame++
	return nil
}

// Frame 已执行的帧数
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Systems 返回每帧系统的名称（按执行顺序）
func (s *Scheduler) Systems() []string {
	names := make([]string, len(s.updates))
	for i, u := range s.updates {
		names[i] = u.name
	}
	return names
}

func (s *Scheduler) flush() {
	s.commands.Apply(s.entityManager)
	s.entityManager.RemoveMarkedEntities()
}
