package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/stretch/config"
	"github.com/automoto/stretch/fonts"
	"github.com/automoto/stretch/physics"
	"github.com/automoto/stretch/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// drawable is anything with a box, local or synced from a server.
type drawable struct {
	Kind  leveldata.Kind
	Box   physics.AABB
	Label string
}

var kindColors = map[leveldata.Kind]color.RGBA{
	leveldata.KindSolid:    colornames.Slategray,
	leveldata.KindPlatform: colornames.Lightsteelblue,
	leveldata.KindHazard:   colornames.Orangered,
	leveldata.KindGem:      colornames.Gold,
	leveldata.KindFinish:   colornames.Limegreen,
	leveldata.KindCrate:    colornames.Peru,
	leveldata.KindEnemy:    colornames.Mediumpurple,
	leveldata.KindPlayer:   colornames.Deepskyblue,
}

// camera keeps the player in view. Positions are world units.
type camera struct {
	X, Y  float64
	ready bool
}

// follow eases toward the target, snapping on the first frame.
func (c *camera) follow(target physics.AABB) {
	viewW := float64(cfg.C.Width) / cfg.Render.Scale
	viewH := float64(cfg.C.Height) / cfg.Render.Scale
	x := target.CenterX() - viewW/2
	y := target.CenterY() - viewH/2 - cfg.Render.CameraLeadY
	if !c.ready {
		c.X, c.Y, c.ready = x, y, true
		return
	}
	c.X += (x - c.X) * 0.15
	c.Y += (y - c.Y) * 0.15
}

func (c camera) project(b physics.AABB) (x, y, w, h float32) {
	s := cfg.Render.Scale
	return float32((b.X - c.X) * s), float32((b.Y - c.Y) * s), float32(b.W * s), float32(b.H * s)
}

func drawWorld(screen *ebiten.Image, items []drawable, cam camera) {
	screen.Fill(cfg.Render.Background)
	for _, it := range items {
		x, y, w, h := cam.project(it.Box)
		if it.Kind == leveldata.KindDecor {
			if it.Label != "" {
				text.Draw(screen, it.Label, fonts.Body.Get(), int(x), int(y)+int(h), colornames.Lightgray)
			}
			continue
		}
		vector.FillRect(screen, x, y, w, h, kindColors[it.Kind], false)
		if cfg.Render.ShowHitboxes {
			vector.StrokeRect(screen, x, y, w, h, 1, colornames.White, false)
		}
	}
}

// hudView is the status line shown above the world.
type hudView struct {
	Level       string
	Health      int
	MaxHealth   int
	Score       int
	SecondsLeft int
	Form        cfg.Form
	Note        string
}

func drawHUD(screen *ebiten.Image, h hudView) {
	face := fonts.HUD.Get()

	barW := float32(200)
	fill := float32(0)
	if h.MaxHealth > 0 && h.Health > 0 {
		fill = barW * float32(h.Health) / float32(h.MaxHealth)
	}
	vector.FillRect(screen, 16, 16, barW, 14, colornames.Darkred, false)
	vector.FillRect(screen, 16, 16, fill, 14, colornames.Limegreen, false)

	line := fmt.Sprintf("%s   score %d   time %d:%02d   %s",
		h.Level, h.Score, h.SecondsLeft/60, h.SecondsLeft%60, h.Form)
	text.Draw(screen, line, face, 232, 29, colornames.White)
	if h.Note != "" {
		text.Draw(screen, h.Note, face, 16, 52, colornames.Gold)
	}
}

func drawCentered(screen *ebiten.Image, lines []string, top int) {
	for i, l := range lines {
		face := fonts.Body.Get()
		if i == 0 {
			face = fonts.Title.Get()
		}
		w := text.BoundString(face, l).Dx()
		text.Draw(screen, l, face, (cfg.C.Width-w)/2, top+i*56, colornames.White)
	}
}
