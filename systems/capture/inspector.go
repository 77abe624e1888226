package capture

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/Beewitchy/leafwing-input-manager/components"
	cfg "github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/fonts"
	"github.com/Beewitchy/leafwing-input-manager/streams"
	"github.com/Beewitchy/leafwing-input-manager/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawInspector renders the device summary and one column per player
// listing every binding and its state.
func DrawInspector(e *ecs.ECS, screen *ebiten.Image) {
	layout := cfg.Inspector

	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		layout.BackgroundColor,
		false,
	)

	text.Draw(screen, deviceSummary(systems.GetOrCreateDevices(e.World)), fonts.MonoTitle.Get(),
		layout.MarginX, layout.TitleY, layout.TitleColor)

	font := fonts.Mono.Get()
	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Bindings) {
			return
		}
		player := components.PlayerInput.Get(entry)
		title := fmt.Sprintf("player %d", player.PlayerIndex+1)
		if player.BoundGamepad != nil {
			title += fmt.Sprintf(" (gamepad %d)", *player.BoundGamepad)
		}
		x := layout.MarginX + player.PlayerIndex*layout.ColumnWidth
		y := layout.RowStartY
		text.Draw(screen, title, font, x, y, layout.TitleColor)

		data := components.Bindings.Get(entry)
		for i, b := range data.Bindings {
			y += layout.RowHeight
			var state components.BindingState
			if i < len(data.States) {
				state = data.States[i]
			}
			clr := layout.IdleColor
			if state.Pressed {
				clr = layout.ActiveColor
			}
			text.Draw(screen, bindingLine(b, state), font, x, y, clr)
			if state.HasAxis {
				drawAxisMarker(screen, float32(x+layout.ColumnWidth-layout.RowHeight), float32(y), state, clr)
			}
		}
	})
}

func deviceSummary(d *streams.MutableInputStreams) string {
	var sb strings.Builder
	p := d.Prepared()
	fmt.Fprintf(&sb, "gamepads: %d  wheel: %v  motion: %v",
		d.Gamepads.Len(), p.MouseWheelMovement(), p.MouseMotionMovement())
	if held := d.KeyCodes.GetPressed(); len(held) > 0 {
		slices.Sort(held)
		sb.WriteString("  keys:")
		for _, k := range held {
			sb.WriteString(" " + k.String())
		}
	}
	return sb.String()
}

func bindingLine(b components.Binding, state components.BindingState) string {
	line := fmt.Sprintf("%-8s %6.2f", b.Name, state.Value)
	if state.HasAxis {
		line += " " + state.Axis.String()
	}
	return line
}

// drawAxisMarker draws a small box with a dot at the binding's axis pair.
func drawAxisMarker(screen *ebiten.Image, x, baseline float32, state components.BindingState, clr color.Color) {
	size := float32(cfg.Inspector.RowHeight - 4)
	top := baseline - size
	vector.StrokeRect(screen, x, top, size, size, 1, cfg.Inspector.IdleColor, false)

	half := size / 2
	cx := x + half + clamp(state.Axis.X())*half
	cy := top + half - clamp(state.Axis.Y())*half
	vector.FillRect(screen, cx-1.5, cy-1.5, 3, 3, clr, false)
}

func clamp(v float32) float32 {
	return min(max(v, -1), 1)
}
