// Package tuning reads optional YAML overrides for gameplay constants.
// Every field is optional: absent keys leave the compiled default alone.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/duodash/ability"
	"gopkg.in/yaml.v3"
)

// MaxPlayers is the number of player sections a document may carry.
const MaxPlayers = 2

type Document struct {
	Players []PlayerTuning `yaml:"players"`
	Physics *PhysicsTuning `yaml:"physics"`
	Camera  *CameraTuning  `yaml:"camera"`
}

type PlayerTuning struct {
	MoveSpeed     *float64       `yaml:"moveSpeed"`
	JumpHeight    *float64       `yaml:"jumpHeight"`
	ProbeHeight   *float64       `yaml:"probeHeight"`
	ProbeDistance *float64       `yaml:"probeDistance"`
	GroundLayers  []string       `yaml:"groundLayers"`
	Dash          *AbilityTuning `yaml:"dash"`
	Invisible     *AbilityTuning `yaml:"invisible"`
}

// AbilityTuning covers both timed abilities. Power only applies to dash;
// Opacity and ThroughTag only to invisibility.
type AbilityTuning struct {
	Enabled    *bool    `yaml:"enabled"`
	Power      *float64 `yaml:"power"`
	Time       *float64 `yaml:"time"`
	Cooldown   *float64 `yaml:"cooldown"`
	Opacity    *float64 `yaml:"opacity"`
	ThroughTag *string  `yaml:"throughTag"`
}

type PhysicsTuning struct {
	Gravity      *float64 `yaml:"gravity"`
	GravityScale *float64 `yaml:"gravityScale"`
	MaxFallSpeed *float64 `yaml:"maxFallSpeed"`
}

type CameraTuning struct {
	MergeDistance   *float64 `yaml:"mergeDistance"`
	TransitionSpeed *float64 `yaml:"transitionSpeed"`
	FollowSmoothing *float64 `yaml:"followSmoothing"`
}

// Load reads and validates a tuning file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a tuning document. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) Validate() error {
	if len(d.Players) > MaxPlayers {
		return fmt.Errorf("players: %d sections, at most %d", len(d.Players), MaxPlayers)
	}
	for i, p := range d.Players {
		if err := p.validate(); err != nil {
			return fmt.Errorf("players[%d]: %w", i, err)
		}
	}
	if c := d.Camera; c != nil {
		if err := nonNegative("camera.mergeDistance", c.MergeDistance); err != nil {
			return err
		}
		if err := nonNegative("camera.transitionSpeed", c.TransitionSpeed); err != nil {
			return err
		}
		if err := unit("camera.followSmoothing", c.FollowSmoothing); err != nil {
			return err
		}
	}
	if p := d.Physics; p != nil {
		if err := nonNegative("physics.maxFallSpeed", p.MaxFallSpeed); err != nil {
			return err
		}
		if err := nonNegative("physics.gravityScale", p.GravityScale); err != nil {
			return err
		}
	}
	return nil
}

func (p PlayerTuning) validate() error {
	for name, v := range map[string]*float64{
		"moveSpeed":     p.MoveSpeed,
		"jumpHeight":    p.JumpHeight,
		"probeHeight":   p.ProbeHeight,
		"probeDistance": p.ProbeDistance,
	} {
		if err := nonNegative(name, v); err != nil {
			return err
		}
	}
	for name, a := range map[string]*AbilityTuning{"dash": p.Dash, "invisible": p.Invisible} {
		if a == nil {
			continue
		}
		if err := nonNegative(name+".time", a.Time); err != nil {
			return err
		}
		if err := nonNegative(name+".cooldown", a.Cooldown); err != nil {
			return err
		}
		if err := nonNegative(name+".power", a.Power); err != nil {
			return err
		}
		if err := unit(name+".opacity", a.Opacity); err != nil {
			return err
		}
	}
	return nil
}

func nonNegative(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must not be negative, got %v", name, *v)
	}
	return nil
}

func unit(name string, v *float64) error {
	if v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("%s must be within [0, 1], got %v", name, *v)
	}
	return nil
}

// Player returns the section for player index i, or nil.
func (d *Document) Player(i int) *PlayerTuning {
	if d == nil || i < 0 || i >= len(d.Players) {
		return nil
	}
	return &d.Players[i]
}

// ApplyTo copies the set fields onto cfg. Enabling an ability that cfg does
// not carry starts from defaults.
func (p *PlayerTuning) ApplyTo(cfg *ability.Config, defaults ability.Config) {
	if p == nil {
		return
	}
	set(&cfg.MoveSpeed, p.MoveSpeed)
	set(&cfg.JumpHeight, p.JumpHeight)
	set(&cfg.ProbeHeight, p.ProbeHeight)
	set(&cfg.ProbeDistance, p.ProbeDistance)
	if p.GroundLayers != nil {
		cfg.GroundLayers = append([]string(nil), p.GroundLayers...)
	}

	if a := p.Dash; a != nil {
		cfg.Dash = applyDash(cfg.Dash, defaults.Dash, a)
	}
	if a := p.Invisible; a != nil {
		cfg.Invisible = applyInvisible(cfg.Invisible, defaults.Invisible, a)
	}
}

func applyDash(cur, def *ability.DashConfig, a *AbilityTuning) *ability.DashConfig {
	if a.Enabled != nil && !*a.Enabled {
		return nil
	}
	var d ability.DashConfig
	switch {
	case cur != nil:
		d = *cur
	case def != nil:
		d = *def
	case a.Enabled == nil:
		return nil
	}
	set(&d.Power, a.Power)
	set(&d.Time, a.Time)
	set(&d.Cooldown, a.Cooldown)
	return &d
}

func applyInvisible(cur, def *ability.InvisibleConfig, a *AbilityTuning) *ability.InvisibleConfig {
	if a.Enabled != nil && !*a.Enabled {
		return nil
	}
	var inv ability.InvisibleConfig
	switch {
	case cur != nil:
		inv = *cur
	case def != nil:
		inv = *def
	case a.Enabled == nil:
		return nil
	}
	set(&inv.Time, a.Time)
	set(&inv.Cooldown, a.Cooldown)
	set(&inv.Opacity, a.Opacity)
	if a.ThroughTag != nil {
		inv.ThroughTag = *a.ThroughTag
	}
	return &inv
}

func set(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
