package systems

import (
	"image"
	"image/color"

	"github.com/automoto/duodash/components"
	cfg "github.com/automoto/duodash/config"
	"github.com/automoto/duodash/gamemath"
	"github.com/automoto/duodash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// view is one camera's slice of the screen and the offset that maps world
// pixels onto it.
type view struct {
	dst              *ebiten.Image
	offsetX, offsetY float64
	minX, minY       float64 // world-space culling box
	maxX, maxY       float64
}

func (v view) culled(x, y, w, h float64) bool {
	return x+w < v.minX || x > v.maxX || y+h < v.minY || y > v.maxY
}

func (v view) fillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(v.dst, float32(x+v.offsetX), float32(y+v.offsetY), float32(w), float32(h), c, false)
}

func (v view) strokeRect(x, y, w, h float64, c color.Color) {
	vector.StrokeRect(v.dst, float32(x+v.offsetX), float32(y+v.offsetY), float32(w), float32(h), 1, c, false)
}

// DrawWorld renders the level once per visible camera, each clipped to its
// viewport.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		if !camera.Viewport.Visible(sw, sh) {
			return
		}
		drawView(ecs, newView(screen, camera))
	})
}

func newView(screen *ebiten.Image, camera *components.CameraData) view {
	b := screen.Bounds()
	x, y, w, h := camera.Viewport.Pixels(b.Dx(), b.Dy())
	rect := image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+w, b.Min.Y+y+h)
	dst := screen.SubImage(rect).(*ebiten.Image)

	const padding = 64.0
	halfW, halfH := float64(w)/2, float64(h)/2
	return view{
		dst:     dst,
		offsetX: float64(rect.Min.X) + halfW - camera.Position.X,
		offsetY: float64(rect.Min.Y) + halfH - camera.Position.Y,
		minX:    camera.Position.X - halfW - padding,
		maxX:    camera.Position.X + halfW + padding,
		minY:    camera.Position.Y - halfH - padding,
		maxY:    camera.Position.Y + halfH + padding,
	}
}

func drawView(ecs *ecs.ECS, v view) {
	v.dst.Fill(cfg.Level.BackgroundColor)

	drawColliders(ecs, v, tags.Ground, cfg.Level.GroundColor)
	drawColliders(ecs, v, tags.Wall, cfg.Level.GroundColor)
	drawColliders(ecs, v, tags.Through, cfg.Level.ThroughColor)
	drawColliders(ecs, v, tags.Enemy, cfg.Level.EnemyColor)
	drawTrailGhosts(ecs, v)
	drawPlayers(ecs, v)

	settings := GetOrCreateSettings(ecs)
	if settings.ShowProbe || cfg.Debug.ShowProbe {
		drawProbes(ecs, v)
	}
	if cfg.Debug.Enabled {
		drawColliderOutlines(ecs, v)
	}
}

func drawColliders(ecs *ecs.ECS, v view, tag donburi.IComponentType, c color.RGBA) {
	query := donburi.NewQuery(filter.Contains(tag, components.Object))
	query.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if v.culled(o.X, o.Y, o.W, o.H) {
			return
		}
		v.fillRect(o.X, o.Y, o.W, o.H, fade(c, 1))
	})
}

func drawTrailGhosts(ecs *ecs.ECS, v view) {
	components.TrailGhost.Each(ecs.World, func(e *donburi.Entry) {
		g := components.TrailGhost.Get(e)
		if v.culled(g.X, g.Y, g.W, g.H) {
			return
		}
		v.fillRect(g.X, g.Y, g.W, g.H, fade(g.Color, g.Current))
	})
}

// drawPlayers draws each player as its box, scaled around the feet by the
// squash/stretch effect, with an eye on the facing side.
func drawPlayers(ecs *ecs.ECS, v view) {
	for _, e := range Players(ecs) {
		o := components.Object.Get(e)
		if v.culled(o.X, o.Y, o.W, o.H) {
			continue
		}
		sprite := components.Sprite.Get(e)

		sx, sy := 1.0, 1.0
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			sx, sy = ss.ScaleX, ss.ScaleY
		}
		w, h := o.W*sx, o.H*sy
		x := o.X + o.W/2 - w/2
		y := o.Y + o.H - h

		v.fillRect(x, y, w, h, fade(sprite.Color, sprite.Opacity))

		eye := w / 5
		eyeX := x + w - eye*2
		if sprite.FlipX {
			eyeX = x + eye
		}
		v.fillRect(eyeX, y+h/5, eye, eye, fade(cfg.White, sprite.Opacity))
	}
}

// drawProbes outlines each controller's ground probe, green when grounded.
func drawProbes(ecs *ecs.ECS, v view) {
	space := GetSpace(ecs)
	if space == nil {
		return
	}
	u := gamemath.Units{PixelsPerUnit: space.PixelsPerUnit()}

	for _, e := range Players(ecs) {
		ctrl := components.Player.Get(e).Controller
		if ctrl == nil {
			continue
		}
		r, ok := ctrl.ProbeRect()
		if !ok {
			continue
		}
		x, y := u.PointToPixels(r.Min.X, r.Max.Y)
		c := cfg.Level.ProbeColor
		if !ctrl.Grounded() {
			c = cfg.Red
		}
		v.strokeRect(x, y, u.ToPixels(r.Width()), u.ToPixels(r.Height()), c)
	}
}

func drawColliderOutlines(ecs *ecs.ECS, v view) {
	space := GetSpace(ecs)
	if space == nil {
		return
	}
	for _, obj := range space.Space().Objects() {
		if v.culled(obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvThrough):
			c = color.RGBA{200, 120, 255, 255}
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		}
		v.strokeRect(obj.X, obj.Y, obj.W, obj.H, c)
	}
}

// DrawDivider draws the line between the two halves while the second
// viewport is on screen.
func DrawDivider(ecs *ecs.ECS, screen *ebiten.Image) {
	b := screen.Bounds()
	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		if camera.Index != 1 || !camera.Viewport.Visible(b.Dx(), b.Dy()) {
			return
		}
		x, _, _, _ := camera.Viewport.Pixels(b.Dx(), b.Dy())
		width := cfg.Camera.DividerWidth
		vector.FillRect(screen, float32(b.Min.X+x)-width/2, float32(b.Min.Y), width, float32(b.Dy()), cfg.Camera.DividerColor, false)
	})
}

// fade returns c with its alpha multiplied by alpha, as non-premultiplied
// color so translucent config colors draw correctly.
func fade(c color.RGBA, alpha float64) color.NRGBA {
	alpha = gamemath.Clamp01(alpha)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
