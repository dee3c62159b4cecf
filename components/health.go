package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers health. Health may go below zero.
func (h *HealthData) Damage(n int) {
	h.Current -= n
}

// Heal raises health, capped at Max.
func (h *HealthData) Heal(n int) {
	h.Current += n
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *HealthData) Depleted() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
