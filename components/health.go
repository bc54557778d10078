package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage removes amount hit points and reports whether the entity is out.
func (h *HealthData) Damage(amount int) bool {
	h.Current -= amount
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
