package stats

import (
	"bytes"
	"fmt"
	"time"

	"ticketbot/bot/common"
	"ticketbot/domain/entities"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

// CardStyle defines the layout of the stats card
type CardStyle struct {
	Width   int
	Height  int
	Padding int
}

// CardGenerator renders ticket statistics as a PNG card
type CardGenerator struct {
	style CardStyle
}

// NewCardGenerator creates a card generator with the default style
func NewCardGenerator() *CardGenerator {
	return &CardGenerator{
		style: CardStyle{
			Width:   400,
			Height:  170,
			Padding: 18,
		},
	}
}

type statTile struct {
	label    string
	value    int64
	colorRGB [3]float64
}

// Generate renders the card for a guild
func (g *CardGenerator) Generate(guildName string, stats *entities.GuildStats) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			Debug("Stats card generation completed")
	}()

	width, height := float64(g.style.Width), float64(g.style.Height)
	padding := float64(g.style.Padding)

	dc := gg.NewContext(g.style.Width, g.style.Height)
	dc.SetFillRule(gg.FillRuleWinding)

	// Vertical gradient background
	for y := 0; y < g.style.Height; y++ {
		t := float64(y) / height
		dc.SetRGB(0.02+t*0.03, 0.02+t*0.05, 0.05+t*0.1)
		dc.DrawRectangle(0, float64(y), width, 1)
		dc.Fill()
	}

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	labelFace, err := loadFont(gomono.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	valueFace, err := loadFont(gobold.TTF, 30)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	dc.SetFontFace(titleFace)
	dc.SetRGB(1, 1, 1)
	drawSharpText(dc, "Ticket Statistics", padding, padding+14)

	dc.SetFontFace(labelFace)
	dc.SetRGB(0.7, 0.7, 0.75)
	drawSharpText(dc, truncate(guildName, 40), padding, padding+32)

	dc.SetRGBA(0.6, 0.6, 0.7, 0.7)
	dc.SetLineWidth(1)
	dc.DrawLine(padding, padding+42, width-padding, padding+42)
	dc.Stroke()

	tiles := []statTile{
		{label: "TOTAL CREATED", value: stats.TotalTickets, colorRGB: [3]float64{0.85, 0.85, 1.0}},
		{label: "OPEN NOW", value: stats.OpenTickets, colorRGB: [3]float64{0.55, 0.95, 0.6}},
	}

	tileTop := padding + 56
	tileHeight := height - tileTop - padding
	tileWidth := (width - padding*float64(len(tiles)+1)) / float64(len(tiles))

	for i, tile := range tiles {
		x := padding + float64(i)*(tileWidth+padding)

		dc.SetRGBA(0.3, 0.3, 0.4, 0.35)
		dc.DrawRoundedRectangle(x, tileTop, tileWidth, tileHeight, 8)
		dc.Fill()

		dc.SetFontFace(labelFace)
		dc.SetRGB(0.85, 0.85, 0.9)
		drawSharpText(dc, tile.label, x+12, tileTop+20)

		dc.SetFontFace(valueFace)
		dc.SetRGB(tile.colorRGB[0], tile.colorRGB[1], tile.colorRGB[2])
		drawSharpText(dc, common.FormatCount(tile.value), x+12, tileTop+tileHeight-16)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}

	return buf.Bytes(), nil
}

// drawSharpText draws text with a faint shadow, which reads sharper on dark backgrounds
func drawSharpText(dc *gg.Context, text string, x, y float64) {
	dc.Push()
	dc.SetRGBA(0, 0, 0, 0.5)
	dc.DrawString(text, x+0.5, y+0.5)
	dc.Pop()

	dc.DrawString(text, x, y)
}

func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:       size,
		DPI:        72,
		Hinting:    font.HintingFull,
		SubPixelsX: 4,
		SubPixelsY: 4,
	}), nil
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-1]) + "…"
}
