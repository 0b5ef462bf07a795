package components

import "github.com/yohamta/donburi"

// ContactsData holds collision flags raised during a tick. The state
// machine reads and clears them on the next tick.
type ContactsData struct {
	HitObstacle bool
	HitGround   bool
}

func (c *ContactsData) Any() bool {
	return c.HitObstacle || c.HitGround
}

func (c *ContactsData) Clear() {
	c.HitObstacle = false
	c.HitGround = false
}

var Contacts = donburi.NewComponentType[ContactsData]()
