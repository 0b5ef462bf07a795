package systems

import (
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// Hitbox returns the player's collision rectangle, inset from its sprite.
func Hitbox(obj *resolv.Object) (x, y, w, h float64) {
	inset := cfg.Player.HitboxInset
	return obj.X + inset, obj.Y + inset, obj.W - 2*inset, obj.H - 2*inset
}

func overlaps(ax, ay, aw, ah float64, b *resolv.Object) bool {
	return ax < b.X+b.W && ax+aw > b.X && ay < b.Y+b.H && ay+ah > b.Y
}

// UpdateCollisions checks the player against obstacles and the ground.
// The space gives candidates; an exact overlap with the hitbox decides.
// Results are left as flags for the state machine's next tick.
func UpdateCollisions(e *ecs.ECS) {
	entry, ok := gameEntry(e)
	if !ok {
		return
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)
	obj := components.Object.Get(player)
	obj.Update()

	check := obj.Check(0, 0, tags.ResolvObstacle, tags.ResolvGround)
	if check == nil {
		return
	}

	x, y, w, h := Hitbox(obj.Object)
	for _, other := range check.Objects {
		if !overlaps(x, y, w, h, other) {
			continue
		}
		if other.HasTags(tags.ResolvObstacle) {
			contacts.HitObstacle = true
		}
		if other.HasTags(tags.ResolvGround) {
			contacts.HitGround = true
		}
	}
}
