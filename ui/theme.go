// Package ui builds the ebitenui menus: the main menu, the pause panel and
// the options panel they share.
package ui

import (
	"image/color"

	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	return faces{
		title:  fonts.UIFace(22),
		normal: fonts.UIFace(12),
		small:  fonts.UIFace(10),
	}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Button.Idle),
		Hover:    image.NewNineSliceColor(cfg.Button.Hover),
		Pressed:  image.NewNineSliceColor(cfg.Button.Pressed),
		Disabled: image.NewNineSliceColor(cfg.Button.Disabled),
	}
}

func newButton(label string, face *text.Face, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Button.Width, cfg.Button.Height),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     cfg.Button.TextColor,
			Hover:    cfg.Button.TextColor,
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{140, 140, 140, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

// newPanel is a centred vertical column of widgets, filled with bg when bg
// is not nil.
func newPanel(bg color.Color) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	}
	if bg != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)))
	}
	return widget.NewContainer(opts...)
}

func newRoot() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

func setVisible(w widget.HasWidget, visible bool) {
	if visible {
		w.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	w.GetWidget().Visibility = widget.Visibility_Hide
}
