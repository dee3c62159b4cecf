package protocol

import (
	"github.com/automoto/stretch/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBody  uint = 10
	SyncIDNetLevel uint = 11
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBody uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetBody,
		netcomponents.NetBodyData{},
		netcomponents.NetBody,
		esync.WithInterpFn(InterpIDNetBody, netcomponents.LerpNetBody),
	); err != nil {
		return err
	}

	// Level state: no interpolation (discrete values)
	if err := esync.RegisterComponent(
		SyncIDNetLevel,
		netcomponents.NetLevelData{},
		netcomponents.NetLevel,
	); err != nil {
		return err
	}

	return nil
}
