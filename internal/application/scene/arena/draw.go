package arena

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/arena/internal/application/state"
)

// Colors for rendering
var (
	colorBG           = color.RGBA{20, 20, 30, 255}
	colorBorder       = color.RGBA{80, 80, 100, 255}
	colorPlayer       = color.RGBA{100, 150, 255, 255}
	colorFriendly     = colornames.Yellow
	colorHostile      = colornames.Orangered
	colorHealthBG     = color.RGBA{60, 60, 60, 255}
	colorHealthFG     = color.RGBA{220, 60, 60, 255}
	colorManaFG       = color.RGBA{70, 110, 255, 255}
	colorText         = colornames.White
	colorCoins        = colornames.Gold
	colorAffordable   = colornames.Lightgreen
	colorUnaffordable = colornames.Gray
)

var face font.Face = basicfont.Face7x13

const lineHeight = 16

// Draw renders the arena. It never changes simulation state (implements scene.Scene).
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	vector.StrokeRect(screen, 0, 0, float32(s.arena.Width), float32(s.arena.Height), 2, colorBorder, false)

	s.drawProjectiles(screen)
	s.drawEnemies(screen)
	s.drawPlayer(screen)
	s.drawHUD(screen)

	if s.waves.IsComplete() && s.state == state.StatePlaying {
		remaining := s.tuning.Arena.WaveDelay - s.waveTimer
		s.drawCentered(screen, fmt.Sprintf("Wave %d cleared! Next wave in %.0f", s.waves.CurrentWave(), remaining+0.5), s.screenH()/3, colorText)
	}

	// Draw state overlays
	switch s.state {
	case state.StatePaused:
		s.drawPauseOverlay(screen)
	case state.StateShop:
		s.drawShopOverlay(screen)
	case state.StateGameOver:
		s.drawGameOverOverlay(screen)
	}
}

func (s *Scene) screenW() int {
	return s.tuning.Display.ScreenWidth
}

func (s *Scene) screenH() int {
	return s.tuning.Display.ScreenHeight
}

func (s *Scene) drawPlayer(screen *ebiten.Image) {
	p := s.player
	if !p.Alive() {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), colorPlayer, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, colornames.White, false)
}

func (s *Scene) drawEnemies(screen *ebiten.Image) {
	for _, e := range s.enemies {
		if !e.Alive() {
			continue
		}

		vector.FillRect(screen, float32(e.X), float32(e.Y), float32(e.W), float32(e.H), e.Color, false)

		// Health bar only once damaged
		if e.Health < e.MaxHealth {
			drawBar(screen, e.X, e.Y-6, e.W, 3, e.HealthRatio(), colorHealthFG)
		}
	}
}

func (s *Scene) drawProjectiles(screen *ebiten.Image) {
	for _, p := range s.projectiles {
		if !p.Alive() {
			continue
		}

		c := colorFriendly
		if !p.Friendly {
			c = colorHostile
		}
		vector.DrawFilledCircle(screen, float32(p.CenterX()), float32(p.CenterY()), float32(p.W/2), c, true)
	}
}

func (s *Scene) drawHUD(screen *ebiten.Image) {
	p := s.player

	drawBar(screen, 10, 10, 200, 14, p.HealthRatio(), colorHealthFG)
	text.Draw(screen, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth), face, 16, 22, colorText)

	drawBar(screen, 10, 30, 200, 10, p.ManaRatio(), colorManaFG)
	text.Draw(screen, fmt.Sprintf("MP %.0f/%.0f", p.Mana, p.MaxMana), face, 220, 40, colorText)

	x := s.screenW() - 170
	text.Draw(screen, fmt.Sprintf("Wave: %d", s.waves.CurrentWave()), face, x, 22, colorText)
	text.Draw(screen, fmt.Sprintf("Enemies: %d", s.waves.EnemiesRemaining()), face, x, 22+lineHeight, colorText)
	text.Draw(screen, fmt.Sprintf("Coins: %d", s.coins), face, x, 22+2*lineHeight, colorCoins)

	ebitenutil.DebugPrintAt(screen, "WASD: Move | Mouse: Aim/Fire | Space: Shop | P: Pause | M: Mute", 10, s.screenH()-20)
}

func (s *Scene) drawPauseOverlay(screen *ebiten.Image) {
	s.dim(screen, color.RGBA{0, 0, 0, 128})

	s.drawCentered(screen, "PAUSED", s.screenH()/2-lineHeight, colorText)
	s.drawCentered(screen, "Press P to resume", s.screenH()/2+lineHeight, colorText)
}

func (s *Scene) drawShopOverlay(screen *ebiten.Image) {
	s.dim(screen, color.RGBA{0, 0, 0, 160})

	w, h := float32(420), float32(80+len(s.ShopItems())*2*lineHeight)
	x := (float32(s.screenW()) - w) / 2
	y := (float32(s.screenH()) - h) / 2
	vector.FillRect(screen, x, y, w, h, color.RGBA{40, 40, 60, 240}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colorBorder, false)

	top := int(y) + 24
	s.drawCentered(screen, "SHOP", top, colorText)
	s.drawCentered(screen, fmt.Sprintf("Coins: %d", s.coins), top+lineHeight, colorCoins)

	for i, item := range s.ShopItems() {
		c := colorUnaffordable
		if s.CanAfford(item) {
			c = colorAffordable
		}
		row := top + (i+2)*2*lineHeight - lineHeight
		text.Draw(screen, fmt.Sprintf("%s - %d coins", item.Name, item.Price), face, int(x)+20, row, c)
		text.Draw(screen, item.Description, face, int(x)+36, row+lineHeight, colorText)
	}

	s.drawCentered(screen, "Press Space to close", int(y+h)-12, colorText)
}

func (s *Scene) drawGameOverOverlay(screen *ebiten.Image) {
	s.dim(screen, color.RGBA{100, 0, 0, 180})

	mid := s.screenH() / 2
	s.drawCentered(screen, "GAME OVER", mid-2*lineHeight, colorText)
	s.drawCentered(screen, fmt.Sprintf("Reached wave %d", s.waves.CurrentWave()), mid, colorText)
	s.drawCentered(screen, fmt.Sprintf("Coins collected: %d", s.coins), mid+lineHeight, colorCoins)
	s.drawCentered(screen, "Press R to restart", mid+3*lineHeight, colorText)
}

func (s *Scene) dim(screen *ebiten.Image, c color.Color) {
	vector.FillRect(screen, 0, 0, float32(s.screenW()), float32(s.screenH()), c, false)
}

func (s *Scene) drawCentered(screen *ebiten.Image, str string, y int, c color.Color) {
	bounds := text.BoundString(face, str)
	text.Draw(screen, str, face, (s.screenW()-bounds.Dx())/2, y, c)
}

func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64, fg color.Color) {
	ratio = min(max(ratio, 0), 1)
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), colorHealthBG, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*ratio), float32(h), fg, false)
}
