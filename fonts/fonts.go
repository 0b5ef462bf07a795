package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Score FontName = "score"
	Title FontName = "title"
	Label FontName = "label"
	Small FontName = "small"
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for text/v2 and ebitenui.
func (f FontName) Face() text.Face {
	face, ok := uiFaces[f]
	if !ok {
		face = text.NewGoXFace(getFont(f))
		uiFaces[f] = face
	}
	return face
}

var (
	fonts   = map[FontName]font.Face{}
	uiFaces = map[FontName]text.Face{}
)

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size, Hinting: font.HintingFull})
	delete(uiFaces, name)
}

// LoadDefaultFonts registers every face the game draws with, built from
// the Go fonts.
func LoadDefaultFonts(titleSize, labelSize, smallSize float64) {
	LoadFontWithSize(Score, gobold.TTF, 36)
	LoadFontWithSize(Title, gobold.TTF, titleSize)
	LoadFontWithSize(Label, gobold.TTF, labelSize)
	LoadFontWithSize(Small, goregular.TTF, smallSize)
	LoadFont(Debug, goregular.TTF)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
