package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Crate    = donburi.NewTag().SetName("Crate")
	Solid    = donburi.NewTag().SetName("Solid")
	Platform = donburi.NewTag().SetName("Platform")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Gem      = donburi.NewTag().SetName("Gem")
	Finish   = donburi.NewTag().SetName("Finish")
	Decor    = donburi.NewTag().SetName("Decor")

	// Retired marks entities the rules removed this tick. Cleanup drops them
	// once every system has run.
	Retired = donburi.NewTag().SetName("Retired")
)

// Resolv tags for trigger zones
const (
	ResolvPlayer = "player"
	ResolvHazard = "hazard"
	ResolvGem    = "gem"
	ResolvFinish = "finish"
)
