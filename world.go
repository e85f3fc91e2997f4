package gameshell

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Components of the shell's entity world.
var (
	// Bounds is the world-space rectangle of a shape.
	Bounds = donburi.NewComponentType[Rect]()
	// Style is how a shape is drawn.
	Style = donburi.NewComponentType[ShapeStyle]()
	// Player tags the rectangle moved by input.
	Player = donburi.NewTag()
)

// ModeChangeEvent is published whenever a toggle changes the window mode.
var ModeChangeEvent = events.NewEventType[ModeChange]()

var (
	shapeQuery  = donburi.NewQuery(filter.Contains(Bounds, Style))
	playerQuery = donburi.NewQuery(filter.Contains(Player, Bounds))
)

// playerSize is the width and height of the player rectangle.
const playerSize = 50

// NewWorld creates the entity world: the player rectangle at the origin and
// two static boxes.
func NewWorld() donburi.World {
	w := donburi.NewWorld()

	spawnShape(w, Rect{0, 0, playerSize, playerSize},
		ShapeStyle{Fill: ColorGray500, Border: ColorBlack, Thickness: 2}, Player)
	spawnShape(w, Rect{100, 100, 50, 50},
		ShapeStyle{Fill: ColorRed600, Border: ColorBlack, Thickness: 2, Layer: 1})
	spawnShape(w, Rect{200, 100, 50, 50},
		ShapeStyle{Fill: ColorBlue600, Border: ColorBlack, Thickness: 2, Layer: 1})
	return w
}

func spawnShape(w donburi.World, r Rect, style ShapeStyle, tags ...donburi.IComponentType) donburi.Entity {
	comps := append([]donburi.IComponentType{Bounds, Style}, tags...)
	e := w.Create(comps...)
	entry := w.Entry(e)
	Bounds.SetValue(entry, r)
	Style.SetValue(entry, style)
	return e
}

// MovePlayer offsets the player rectangle by delta.
func MovePlayer(w donburi.World, delta Vec2) {
	playerQuery.Each(w, func(entry *donburi.Entry) {
		b := Bounds.Get(entry)
		b.X += delta.X
		b.Y += delta.Y
	})
}

// PlayerBounds returns the player rectangle. The zero Rect is returned when
// the world has no player.
func PlayerBounds(w donburi.World) Rect {
	var r Rect
	playerQuery.Each(w, func(entry *donburi.Entry) {
		r = *Bounds.Get(entry)
	})
	return r
}

type drawItem struct {
	bounds Rect
	style  ShapeStyle
}

// DrawShapes draws every shape in layer order through cam.
func DrawShapes(w donburi.World, dst *ebiten.Image, cam *Camera) {
	for _, it := range collectShapes(w) {
		DrawRectangle(dst, cam, it.bounds, it.style)
	}
}

func collectShapes(w donburi.World) []drawItem {
	var items []drawItem
	shapeQuery.Each(w, func(entry *donburi.Entry) {
		items = append(items, drawItem{bounds: *Bounds.Get(entry), style: *Style.Get(entry)})
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].style.Layer < items[j].style.Layer
	})
	return items
}
