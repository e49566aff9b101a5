package components

import (
	"github.com/decker502/explosion/internal/particle"
	"github.com/decker502/explosion/pkg/types"
)

// EffectComponent 把实体标记为特效实例
// Template 指向共享的只读模板，所有实例共用同一份
type EffectComponent struct {
	Handle   types.EffectHandle
	Template *particle.EffectTemplate
}
