package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	uiSource *text.GoTextFaceSource
)

// LoadDefaults registers the Go font faces used by the HUD and debug text.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 10); err != nil {
		return err
	}
	if err := LoadFontWithSize(Small, goregular.TTF, 8); err != nil {
		return err
	}
	if err := LoadFontWithSize(Bold, gobold.TTF, 14); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 32); err != nil {
		return err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("ui font source: %w", err)
	}
	uiSource = src
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// UIFace returns a text/v2 face for ebitenui widgets.
func UIFace(size float64) text.Face {
	if uiSource == nil {
		panic("fonts: LoadDefaults has not run")
	}
	return &text.GoTextFace{Source: uiSource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
