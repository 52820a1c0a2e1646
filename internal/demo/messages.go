package demo

import "go.trai.ch/seam/adapters/config"

// MsgSettings carries reloaded settings into the running program.
type MsgSettings struct {
	Settings config.Settings
}
