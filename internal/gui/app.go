package gui

import (
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stellar/internal/audio"
	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/metrics"
	"github.com/san-kum/stellar/internal/sim"
	"github.com/san-kum/stellar/internal/viz"
)

const (
	maxTelemetry = 200
	fontPath     = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
)

type App struct {
	Engine  *sim.Engine
	Cfg     config.Config
	Palette Palette
	Title   string
	Audio   *audio.Processor

	Running   bool
	ShowLinks bool
	ShowGlow  bool
	ShowHelp  bool
	ParamSel  int
	Telemetry []float64
	Status    string
	Font      rl.Font
	quit      bool
}

// initWindow opens a resizable window at the engine's viewport size.
func initWindow(width, height int32) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, "stellar")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when installed and the raylib default
// font otherwise.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wires an engine to the window state. proc may be nil.
func NewApp(engine *sim.Engine, title string, proc *audio.Processor) *App {
	return &App{
		Engine:    engine,
		Cfg:       engine.Config(),
		Palette:   NewPalette(viz.ThemePeriwinkle),
		Title:     title,
		Audio:     proc,
		Running:   true,
		ShowLinks: true,
		ShowGlow:  true,
		Telemetry: make([]float64, 0, maxTelemetry),
	}
}

// Run opens the window and blocks until it is closed.
func Run(engine *sim.Engine, title string, proc *audio.Processor) {
	w, h := engine.Viewport()
	initWindow(int32(w), int32(h))
	defer rl.CloseWindow()

	app := NewApp(engine, title, proc)
	app.Font = loadFont()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.Engine.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}
	for key, act := range keyBindings {
		if rl.IsKeyPressed(key) {
			a.apply(act)
		}
	}
	if a.Running {
		a.step()
	}
}

// step advances one tick and feeds the audio and telemetry.
func (a *App) step() {
	stats := a.Engine.Tick()
	if a.Audio != nil {
		if stats.Bolts > 0 {
			a.Audio.Strike(stats.Bolts)
		}
		a.Audio.SetEnergy(metrics.MeanKineticEnergy(a.Engine.Snapshot()))
	}
	a.Telemetry = append(a.Telemetry, float64(stats.Live))
	if len(a.Telemetry) > maxTelemetry {
		a.Telemetry = a.Telemetry[1:]
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(a.Palette.Background)

	a.drawSim(a.Engine.Snapshot())
	a.DrawHUD()
	if a.ShowHelp {
		a.drawHelp()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	stats, totals := a.Engine.Stats(), a.Engine.Totals()

	a.drawText("stellar", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.Title), 140, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.Running {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, w-130, 30, 16, col)

	lines := []string{
		fmt.Sprintf("live        %d", stats.Live),
		fmt.Sprintf("peak        %.1f", stats.PeakCharge),
		fmt.Sprintf("bolts       %d", totals.Bolts),
		fmt.Sprintf("annihilated %d", totals.Annihilations),
		"",
	}
	params := a.Cfg.Params()
	for i, key := range config.Tunables {
		prefix := "  "
		if i == a.ParamSel {
			prefix = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%-13s %.2f", prefix, key, params[key]))
	}
	y := 70
	for i, line := range lines {
		c := ColText
		if i >= 5 && i-5 == a.ParamSel {
			c = ColSelect
		}
		a.drawText(line, 30, y, 14, c)
		y += 18
	}

	a.DrawTelemetry(30, h-110, 300, 50)

	if a.Audio != nil && a.Audio.Active() {
		lv := a.Audio.Levels()
		bars := min(int((lv.Bass+lv.Mid+lv.High)/3*20), 20)
		a.drawText(fmt.Sprintf("AUDIO [%-20s]", strings.Repeat("|", bars)), 30, h-50, 14, ColText)
	} else {
		a.drawText("AUDIO [OFF]", 30, h-50, 14, ColTextDim)
	}
	if a.Status != "" {
		a.drawText(a.Status, w/2-100, h-50, 14, ColText)
	}
	a.drawText(fmt.Sprintf("%d FPS  [H] HELP", int32(rl.GetFPS())), w-170, h-30, 14, ColTextDim)
}

func (a *App) drawHelp() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	rl.DrawRectangle(int32(w/2-220), int32(h/2-170), 440, 340, ColPanel)
	y := h/2 - 150
	for _, line := range helpLines {
		a.drawText(line, w/2-200, y, 16, ColText)
		y += 22
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawTelemetry(x, y, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}

	minVal, maxVal := a.Telemetry[0], a.Telemetry[0]
	for _, v := range a.Telemetry {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.Telemetry))
	for i, val := range a.Telemetry {
		px := float32(x) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(y+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, a.Palette.Attract)
	a.drawText(fmt.Sprintf("live %d", int(a.Telemetry[len(a.Telemetry)-1])), x+width+10, y+height-10, 14, ColText)
}
