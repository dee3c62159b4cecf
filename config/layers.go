package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render and update layer; levels draw in spawn order.
const (
	Default ecs.LayerID = iota
)
