package config

import "sync"

// Source holds the configuration snapshot the game builds levels from.
// A watcher may replace the snapshot at any time; a level keeps the
// snapshot it was built with.
type Source struct {
	mu      sync.RWMutex
	cfg     KongConfig
	preset  DifficultyPreset
	version int
}

// NewSource creates a source holding cfg with the preset applied.
func NewSource(cfg KongConfig, preset DifficultyPreset) *Source {
	return &Source{cfg: ApplyKongPreset(cfg, preset), preset: preset, version: 1}
}

// Current returns the current snapshot and its version.
func (s *Source) Current() (KongConfig, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.version
}

// Config returns the current snapshot.
func (s *Source) Config() KongConfig {
	cfg, _ := s.Current()
	return cfg
}

// Store replaces the snapshot, applying the source's preset.
func (s *Source) Store(cfg KongConfig) {
	scaled := ApplyKongPreset(cfg, s.preset)
	s.mu.Lock()
	s.cfg = scaled
	s.version++
	s.mu.Unlock()
}

// Preset returns the difficulty preset applied to every snapshot.
func (s *Source) Preset() DifficultyPreset {
	return s.preset
}
