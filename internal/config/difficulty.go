package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetScaling is how a preset rescales the configured values.
type presetScaling struct {
	frames     float64 // Multiplier for gameplay.max_frames
	interval   float64 // Multiplier for combat.banana_interval
	kongHealth int     // Added to combat.kong_health, result at least 1
}

var presetTable = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {frames: 1.5, interval: 1.5, kongHealth: -2},
	DifficultyNormal: {frames: 1, interval: 1, kongHealth: 0},
	DifficultyHard:   {frames: 0.75, interval: 0.6, kongHealth: 2},
}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(s))
	if _, ok := presetTable[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyKongPreset returns a copy of cfg rescaled by the preset.
// Unknown presets leave the copy unchanged.
func ApplyKongPreset(cfg KongConfig, preset DifficultyPreset) KongConfig {
	out := cfg.Clone()
	s, ok := presetTable[preset]
	if !ok {
		return out
	}
	out.Gameplay.MaxFrames = max(1, int(float64(cfg.Gameplay.MaxFrames)*s.frames))
	out.Combat.BananaInterval = max(1, int(float64(cfg.Combat.BananaInterval)*s.interval))
	out.Combat.KongHealth = max(1, cfg.Combat.KongHealth+s.kongHealth)
	return out
}
