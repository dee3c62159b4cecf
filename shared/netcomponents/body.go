package netcomponents

import "github.com/yohamta/donburi"

// NetBodyData is one level entity as spectators see it. Kind is a
// leveldata.Kind value.
type NetBodyData struct {
	Kind       int
	X, Y, W, H float64
	Label      string
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates the box between two snapshots. Kind and label
// come from the newer one.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	return &NetBodyData{
		Kind:  to.Kind,
		X:     from.X + (to.X-from.X)*t,
		Y:     from.Y + (to.Y-from.Y)*t,
		W:     from.W + (to.W-from.W)*t,
		H:     from.H + (to.H-from.H)*t,
		Label: to.Label,
	}
}
