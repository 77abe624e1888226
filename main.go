package main

import (
	"flag"
	"image"

	"github.com/Beewitchy/leafwing-input-manager/config"
	"github.com/Beewitchy/leafwing-input-manager/fonts"
	"github.com/Beewitchy/leafwing-input-manager/scenes"
	"github.com/Beewitchy/leafwing-input-manager/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		golog.Fatalf("load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewInspectorScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.BoolVar(&config.Debug.LogDevices, "log-devices", config.Debug.LogDevices, "log gamepad connection changes")
	flag.Parse()
	golog.SetLevel(*logLevel)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("leafwing-input-inspector"); err != nil {
		golog.Warnf("running without saved settings: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		golog.Fatal(err)
	}
}
