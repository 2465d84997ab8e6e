package config

import (
	"github.com/automoto/duodash/ability"
	"github.com/automoto/duodash/tuning"
)

// ApplyTuning copies the fields set in doc over the compiled defaults.
// Fields the document leaves out keep their default value, so applying a
// reloaded document twice is the same as applying it once.
func ApplyTuning(doc *tuning.Document) {
	Physics = defaultPhysics
	Camera = defaultCamera
	for i := range Players {
		cfg := Defaults(i)
		doc.Player(i).ApplyTo(&cfg, abilityTemplate())
		Players[i].Ability = cfg
		Players[i].GravityScale = defaultGravityScale[i]
	}
	if doc == nil {
		return
	}
	if p := doc.Physics; p != nil {
		setFloat(&Physics.Gravity, p.Gravity)
		setFloat(&Physics.MaxFallSpeed, p.MaxFallSpeed)
		if p.GravityScale != nil {
			for i := range Players {
				Players[i].GravityScale = *p.GravityScale
			}
		}
	}
	if c := doc.Camera; c != nil {
		setFloat(&Camera.MergeDistance, c.MergeDistance)
		setFloat(&Camera.TransitionSpeed, c.TransitionSpeed)
		setFloat(&Camera.FollowSmoothing, c.FollowSmoothing)
	}
}

// abilityTemplate carries both abilities so tuning can enable either one on
// any player.
func abilityTemplate() ability.Config {
	t := ability.DefaultConfig()
	for i := range defaults {
		if d := defaults[i].Dash; d != nil && t.Dash == nil {
			t.Dash = d
		}
		if inv := defaults[i].Invisible; inv != nil && t.Invisible == nil {
			t.Invisible = inv
		}
	}
	return t
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
