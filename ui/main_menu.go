package ui

import (
	"github.com/automoto/duodash/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// MainMenu holds the title screen buttons and the options panel.
type MainMenu struct {
	UI      *ebitenui.UI
	Options *Options

	OnPlay func()
	OnQuit func()

	menu        *widget.Container
	initialized bool
}

// NewMainMenu builds the main menu. get and update give the options panel
// access to the session settings.
func NewMainMenu(onPlay, onQuit func(), get func() components.SettingsData, update func(func(*components.SettingsData))) *MainMenu {
	m := &MainMenu{OnPlay: onPlay, OnQuit: onQuit}
	f := loadFaces()
	root := newRoot()

	// Transparent: the animated title is drawn underneath.
	m.menu = newPanel(nil)
	m.menu.AddChild(newButton("Play", &f.normal, m.play))
	m.menu.AddChild(newButton("Options", &f.normal, m.ShowOptions))
	m.menu.AddChild(newButton("Quit", &f.normal, m.quit))
	root.AddChild(m.menu)

	m.Options = newOptions(f, get, update, m.HideOptions)
	root.AddChild(m.Options.Container)

	m.UI = &ebitenui.UI{Container: root}
	return m
}

func (m *MainMenu) play() {
	if m.OnPlay != nil {
		m.OnPlay()
	}
}

func (m *MainMenu) quit() {
	if m.OnQuit != nil {
		m.OnQuit()
	}
}

// Play and Quit are the keyboard shortcuts for the two buttons.
func (m *MainMenu) Play() { m.play() }
func (m *MainMenu) Quit() { m.quit() }

func (m *MainMenu) ShowOptions() {
	m.Options.Refresh()
	setVisible(m.menu, false)
	setVisible(m.Options.Container, true)
}

func (m *MainMenu) HideOptions() {
	setVisible(m.Options.Container, false)
	setVisible(m.menu, true)
}

func (m *MainMenu) OptionsOpen() bool {
	return m.Options.Container.GetWidget().Visibility == widget.Visibility_Show
}

func (m *MainMenu) Update() {
	m.UI.Update()
	// Widgets are only laid out after the first update.
	if !m.initialized {
		m.initialized = true
		m.HideOptions()
		m.Options.Refresh()
	}
}

