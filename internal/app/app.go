//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. ebiten calls Draw after
// every Update, which gives the continuous redraw.
type Game struct {
	*Session
	painter *render.GridPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	mx, my  int
	keys    []ebiten.Key
	showHUD bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) *Game {
	s := NewSession(cfg, time.Now())
	size := s.Life.Size()
	g := &Game{
		Session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		onColor:  color.White,
		offColor: color.Black,
		mx:       -1,
		my:       -1,
		showHUD:  cfg.HUD,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(s)
	}
	return g
}

// Update feeds this frame's input to the controller, then ticks it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if mx, my := ebiten.CursorPosition(); mx != g.mx || my != g.my {
		g.mx, g.my = mx, my
		g.Ctrl.OnPointerMove(float32(mx), float32(my))
	}
	for _, b := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle} {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.Ctrl.OnButtonPress(buttonFor(b))
		}
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.Ctrl.OnKeyPress(keyFor(k))
	}

	g.Ctrl.OnFrameTick(time.Now())

	if g.showHUD {
		g.hud.Update()
	}
	return nil
}

// Draw renders the current board.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.Life.Cells(), g.onColor, g.offColor, core.CellSize)
	if g.showHUD {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

func keyFor(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeySpace:
		return core.KeyTogglePause
	case ebiten.KeyC:
		return core.KeyClear
	case ebiten.KeyR:
		return core.KeyRandomize
	default:
		return core.KeyOther
	}
}

func buttonFor(b ebiten.MouseButton) core.Button {
	if b == ebiten.MouseButtonLeft {
		return core.ButtonPrimary
	}
	return core.ButtonOther
}
