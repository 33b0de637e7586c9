//go:build ebiten

package app

import (
	"image/color"

	"go.uber.org/zap"

	"lifeboard/internal/board"
	"lifeboard/internal/config"
	"lifeboard/internal/input"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a board and its controller to the ebiten.Game interface.
type Game struct {
	ctrl     *Controller
	pointer  *input.Pointer
	renderer *render.Renderer
	painter  *render.GridPainter
	hud      *ui.HUD
	log      *zap.Logger

	background color.Color
	boardW     int
	boardH     int
}

// New constructs a Game for the provided board.
func New(b *board.Board, cfg *config.Config, log *zap.Logger) *Game {
	layout := input.Mapper{CellSize: cfg.View.Scale, LineWidth: cfg.View.LineWidth, Margin: cfg.View.Margin}
	frame := render.Frame{Layout: layout, Palette: render.DefaultPalette()}
	// The window fits the largest board a reset can produce.
	maxSide := cfg.Board.MaxSize
	if b.Width() > maxSide {
		maxSide = b.Width()
	}
	if b.Height() > maxSide {
		maxSide = b.Height()
	}
	return &Game{
		ctrl:       NewController(b, cfg, log),
		pointer:    input.NewPointer(layout),
		renderer:   render.NewRenderer(b),
		painter:    render.NewGridPainter(frame),
		hud:        ui.NewHUD(),
		log:        log,
		background: frame.Palette.Background,
		boardW:     layout.Extent(maxSide),
		boardH:     layout.Extent(maxSide),
	}
}

// Update handles per-frame input and auto-play.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.ctrl.Undo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.ToggleAuto()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.ctrl.AdjustCols(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.ctrl.AdjustCols(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.ctrl.AdjustRows(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.ctrl.AdjustRows(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.ctrl.Reset(); err != nil {
			g.log.Warn("reset failed", zap.Error(err))
		}
	}

	x, y := ebiten.CursorPosition()
	g.pointer.Update(g.ctrl.Board(), x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.ctrl.Tick()
	return nil
}

// Draw renders the board and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.renderer)
	g.hud.Draw(screen, g.boardH, g.ctrl.StatusLines())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.boardW
	if hw := g.hud.Width(); hw > w {
		w = hw
	}
	return w, g.boardH + g.hud.Height()
}
