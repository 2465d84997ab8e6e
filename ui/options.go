package ui

import (
	"fmt"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/ebitenui/ebitenui/widget"
)

// Options is the settings panel shown from both the main menu and the pause
// panel. It reads the current settings through Get and changes them through
// Update so saving stays with the caller.
type Options struct {
	Container *widget.Container

	Get    func() components.SettingsData
	Update func(func(*components.SettingsData))
	OnBack func()

	fullscreen *widget.Button
	resolution *widget.Button
	probe      *widget.Button
	split      *widget.Button
	trail      *widget.Button
}

func newOptions(f faces, get func() components.SettingsData, update func(func(*components.SettingsData)), onBack func()) *Options {
	o := &Options{Get: get, Update: update, OnBack: onBack}
	o.Container = newPanel(cfg.Pause.PanelColor)

	o.Container.AddChild(newLabel("OPTIONS", &f.title, cfg.Menu.TitleColor))

	o.fullscreen = newButton("", &f.normal, func() {
		o.change(func(s *components.SettingsData) { s.Fullscreen = !s.Fullscreen })
	})
	o.resolution = newButton("", &f.normal, func() {
		o.change(func(s *components.SettingsData) {
			s.ResolutionIndex = (s.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		})
	})
	o.probe = newButton("", &f.normal, func() {
		o.change(func(s *components.SettingsData) { s.ShowProbe = !s.ShowProbe })
	})
	o.split = newButton("", &f.normal, func() {
		o.change(func(s *components.SettingsData) { s.SplitScreen = !s.SplitScreen })
	})
	o.trail = newButton("", &f.normal, func() {
		o.change(func(s *components.SettingsData) { s.Trail = !s.Trail })
	})
	back := newButton("Back", &f.normal, func() {
		if o.OnBack != nil {
			o.OnBack()
		}
	})

	for _, b := range []*widget.Button{o.fullscreen, o.resolution, o.probe, o.split, o.trail} {
		o.Container.AddChild(b)
	}
	for i, p := range cfg.Players {
		keys := fmt.Sprintf("P%d keys: %s", i+1, cfg.SchemeLabel(p.ControlScheme))
		o.Container.AddChild(newLabel(keys, &f.normal, cfg.White))
	}
	o.Container.AddChild(back)
	return o
}

func (o *Options) change(fn func(*components.SettingsData)) {
	if o.Update != nil {
		o.Update(fn)
	}
	o.Refresh()
}

// Refresh rewrites the button labels from the current settings.
func (o *Options) Refresh() {
	if o.Get == nil {
		return
	}
	s := o.Get()
	setText(o.fullscreen, "Fullscreen: "+onOff(s.Fullscreen))
	setText(o.resolution, "Window: "+resolutionLabel(s.ResolutionIndex))
	setText(o.probe, "Ground probe: "+onOff(s.ShowProbe))
	setText(o.split, "Split screen: "+onOff(s.SplitScreen))
	setText(o.trail, "Dash trail: "+onOff(s.Trail))
	o.resolution.GetWidget().Disabled = s.Fullscreen
}

func setText(b *widget.Button, s string) {
	if b == nil {
		return
	}
	if t := b.Text(); t != nil {
		t.Label = s
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func resolutionLabel(i int) string {
	res := cfg.SettingsMenu.Resolutions
	if i < 0 || i >= len(res) {
		return "?"
	}
	if res[i].Label != "" {
		return res[i].Label
	}
	return fmt.Sprintf("%dx%d", res[i].Width, res[i].Height)
}
