// Package net bridges a session to remote presentation layers over websockets.
package net

import (
	"errors"
	"fmt"

	"interstellar-defense/internal/app"
	"interstellar-defense/internal/defs"
	"interstellar-defense/internal/types"
	"interstellar-defense/pkg/vec3"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingTarget  = errors.New("missing target")
)

// clientMessage is one command from a client. Only the fields the command
// needs are read.
type clientMessage struct {
	Type   string         `json:"type"`
	Seq    uint64         `json:"seq,omitempty"`
	ID     types.EntityID `json:"id,omitempty"`
	Target *vec3.Vec3     `json:"target,omitempty"`
	Name   string         `json:"name,omitempty"`  // tech, beam property or difficulty
	Value  float64        `json:"value,omitempty"` // game speed or scan progress
}

type stateMessage struct {
	Type     string       `json:"type"`
	Snapshot app.Snapshot `json:"snapshot"`
}

type ackMessage struct {
	Type string           `json:"type"`
	Seq  uint64           `json:"seq"`
	ID   types.EntityID   `json:"id,omitempty"`
	Hits []types.EntityID `json:"hits,omitempty"`
}

type rejectMessage struct {
	Type   string `json:"type"`
	Seq    uint64 `json:"seq"`
	Reason string `json:"reason"`
}

// result carries what a successful command produced, if anything.
type result struct {
	ID   types.EntityID
	Hits []types.EntityID
}

// apply runs msg against g. It must be called with exclusive access to g.
func apply(g *app.Game, msg clientMessage) (result, error) {
	var res result
	var err error

	switch msg.Type {
	case "start":
		err = g.StartGame()
	case "reset":
		err = g.ResetGame()
	case "pause":
		err = g.TogglePause()
	case "difficulty":
		err = g.SetDifficulty(defs.Difficulty(msg.Name))
	case "speed":
		err = g.SetGameSpeed(msg.Value)
	case "fire":
		err = g.FireAtEnemy(msg.ID)
	case "fireOptimal":
		res.ID, err = g.FireAtOptimalTarget()
	case "repair":
		err = g.Repair()
	case "upgradeTech":
		var kind defs.TechKind
		if kind, err = defs.ParseTechKind(msg.Name); err == nil {
			err = g.UpgradeTech(kind)
		}
	case "mine":
		err = g.MineAsteroid(msg.ID)
	case "turret":
		if msg.Target == nil {
			return res, ErrMissingTarget
		}
		res.ID, err = g.PlaceTurret(*msg.Target)
	case "shield":
		err = g.ActivateShield()
	case "aim":
		err = g.ToggleBeamAim()
	case "beam":
		if msg.Target == nil {
			return res, ErrMissingTarget
		}
		res.Hits, err = g.FireBeam(*msg.Target)
	case "quickBeam":
		err = g.QuickUpgradeBeam()
	case "beamProperty":
		var prop defs.BeamProperty
		if prop, err = defs.ParseBeamProperty(msg.Name); err == nil {
			err = g.UpgradeBeamProperty(prop)
		}
	case "scanner":
		err = g.ToggleScanner()
	case "upgradeScanner":
		err = g.UpgradeScanner()
	case "scanProgress":
		err = g.ReportScanProgress(msg.ID, msg.Value)
	case "completeScan":
		err = g.CompleteScan(msg.ID)
	default:
		err = fmt.Errorf("%q: %w", msg.Type, ErrUnknownCommand)
	}
	return res, err
}
