package ui

import (
	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseMenu is the in-level pause panel: Resume, Restart, Home and
// Options.
type PauseMenu struct {
	UI      *ebitenui.UI
	Options *Options

	OnResume      func()
	OnRestart     func()
	OnHome        func()
	OnOpenOptions func()

	panel *widget.Container
	hint  *widget.Label
}

func NewPauseMenu(get func() components.SettingsData, update func(func(*components.SettingsData)), onCloseOptions func()) *PauseMenu {
	p := &PauseMenu{}
	f := loadFaces()
	root := newRoot()

	p.panel = newPanel(cfg.Pause.PanelColor)
	p.panel.AddChild(newLabel(cfg.Pause.Title, &f.title, cfg.Menu.TitleColor))
	p.panel.AddChild(newButton("Resume", &f.normal, func() { call(p.OnResume) }))
	p.panel.AddChild(newButton("Restart", &f.normal, func() { call(p.OnRestart) }))
	p.panel.AddChild(newButton("Home", &f.normal, func() { call(p.OnHome) }))
	p.panel.AddChild(newButton("Options", &f.normal, func() { call(p.OnOpenOptions) }))
	p.hint = newLabel("", &f.small, cfg.White)
	p.panel.AddChild(p.hint)
	root.AddChild(p.panel)

	p.Options = newOptions(f, get, update, onCloseOptions)
	root.AddChild(p.Options.Container)

	p.UI = &ebitenui.UI{Container: root}
	p.Sync(false, false, "")
	return p
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// Sync shows the pause panel or the options panel to match the pause state.
func (p *PauseMenu) Sync(paused, optionsOpen bool, hint string) {
	setVisible(p.panel, paused && !optionsOpen)
	setVisible(p.Options.Container, paused && optionsOpen)
	p.hint.Label = hint
	if optionsOpen {
		p.Options.Refresh()
	}
}

func (p *PauseMenu) Update() {
	p.UI.Update()
}

func (p *PauseMenu) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
