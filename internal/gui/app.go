package gui

import (
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/logging"
	"github.com/san-kum/gfxlab/internal/storage"
)

// Theme Colors
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)

	// Labs clear to white, so their HUD is dark.
	ColLabBg  = rl.White
	ColHUD    = rl.NewColor(40, 40, 40, 255)
	ColHUDDim = rl.NewColor(120, 120, 120, 255)
	ColError  = rl.NewColor(200, 60, 60, 255)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Tail   *logging.Tail
	Store  *storage.Store
}

type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Tail     *logging.Tail
	Store    *storage.Store
	Registry *lab.Registry
	Font     rl.Font

	Labs     []lab.Info
	Selected int
	InMenu   bool
	InConfig bool

	Settings  []setting
	ParamSel  int
	Presets   []string
	PresetSel int

	Scene   Scene
	LabName string
	LabCfg  *config.Config
	LastErr string
	// Err is a load failure that ends the program.
	Err     error
	Quit    bool
	width   int32
	height  int32
}

// traceLevel maps the application log level onto raylib's own logger.
func traceLevel(l slog.Level) rl.TraceLogLevel {
	switch {
	case l <= slog.LevelDebug:
		return rl.LogDebug
	case l <= slog.LevelInfo:
		return rl.LogInfo
	case l <= slog.LevelWarn:
		return rl.LogWarning
	}
	return rl.LogError
}

func initWindow(cfg *config.Config, level slog.Level) {
	rl.SetTraceLogLevel(traceLevel(level))
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono and falls back to raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	if !rl.IsFontValid(font) {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp opens on the menu, or straight on the configure screen of
// startLab when it is set.
func NewApp(opts Options, startLab string) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard().Logger
	}

	reg := lab.NewRegistry()
	app := &App{
		Config:   cfg,
		Log:      log,
		Tail:     opts.Tail,
		Store:    opts.Store,
		Registry: reg,
		Font:     loadFont(),
		Labs:     reg.List(),
		InMenu:   true,
		width:    int32(cfg.Window.Width),
		height:   int32(cfg.Window.Height),
	}

	if startLab != "" {
		if _, err := reg.Get(startLab); err != nil {
			return nil, err
		}
		for i, info := range app.Labs {
			if info.Name == startLab {
				app.Selected = i
			}
		}
		app.openConfig()
	}
	return app, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options, startLab string) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
		opts.Config = cfg
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	initWindow(cfg, level)
	defer rl.CloseWindow()

	app, err := NewApp(opts, startLab)
	if err != nil {
		return err
	}
	app.RunLoop()
	return app.Err
}

func (a *App) RunLoop() {
	for !a.Quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
	a.stopLab()
	rl.UnloadFont(a.Font)
}

func (a *App) current() lab.Info {
	return a.Labs[a.Selected]
}

func (a *App) openConfig() {
	info := a.current()
	a.LabCfg = a.Config.Clone()
	a.LabCfg.Lab = info.Name
	a.Settings = settingsFor(info, a.LabCfg)
	a.ParamSel = 0
	a.Presets = append([]string{"default"}, config.ListPresets(info.Name)...)
	a.PresetSel = 0
	a.LastErr = ""
	a.InMenu = false
	a.InConfig = true
}

func (a *App) startLab() {
	info := a.current()
	env := &Env{
		Config: a.LabCfg,
		Log:    a.Log,
		Store:  a.Store,
		Text:   a.drawText,
		Width:  a.width,
		Height: a.height,
	}
	scene, err := NewScene(info.Name, env)
	if err == nil {
		err = scene.Load()
	}
	if err != nil {
		a.LastErr = err.Error()
		a.Log.Error("start lab", "lab", info.Name, "err", err)
		if fatalLoadError(err) {
			a.Err = fmt.Errorf("start lab %s: %w", info.Name, err)
			a.Quit = true
		}
		return
	}
	a.Scene = scene
	a.LabName = info.Name
	a.InConfig = false
	a.Log.Info("lab started", "lab", info.Name, "preset", a.Presets[a.PresetSel])
}

// fatalLoadError reports whether a lab failed because its GPU program is
// unusable. Those errors end the program; anything else leaves the user on
// the configure screen.
func fatalLoadError(err error) bool {
	return errors.Is(err, lab.ErrShaderInvalid) || errors.Is(err, lab.ErrUniformNotFound)
}

func (a *App) stopLab() {
	if a.Scene == nil {
		return
	}
	a.Scene.Unload()
	a.Log.Info("lab stopped", "lab", a.LabName)
	a.Scene = nil
}

func (a *App) Update() {
	switch {
	case a.InMenu:
		a.updateMenu()
	case a.InConfig:
		a.updateConfig()
	default:
		a.updateLab()
	}
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected--
	}
	if a.Selected >= len(a.Labs) {
		a.Selected = 0
	}
	if a.Selected < 0 {
		a.Selected = len(a.Labs) - 1
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		a.openConfig()
	}
}

func (a *App) updateConfig() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InConfig = false
		a.InMenu = true
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		a.startLab()
		return
	}
	if rl.IsKeyPressed(rl.KeyTab) && len(a.Presets) > 0 {
		a.PresetSel = (a.PresetSel + 1) % len(a.Presets)
		a.LabCfg = a.Config.Clone()
		a.LabCfg.Lab = a.current().Name
		if a.PresetSel > 0 {
			applyPreset(a.LabCfg, a.current().Name, a.Presets[a.PresetSel])
		}
		a.Settings = settingsFor(a.current(), a.LabCfg)
	}

	if len(a.Settings) == 0 {
		return
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.ParamSel = (a.ParamSel + 1) % len(a.Settings)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.ParamSel--
		if a.ParamSel < 0 {
			a.ParamSel = len(a.Settings) - 1
		}
	}

	times := 1.0
	if rl.IsKeyDown(rl.KeyLeftShift) {
		times = 10
	}
	s := a.Settings[a.ParamSel]
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		s.Nudge(times)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		s.Nudge(-times)
	}
}

func (a *App) updateLab() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.stopLab()
		a.InMenu = true
		return
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Quit = true
		return
	}
	a.Scene.Update(rl.GetFrameTime())
}

func (a *App) Draw() {
	rl.BeginDrawing()

	switch {
	case a.InMenu:
		rl.ClearBackground(ColBg)
		a.drawMenu()
	case a.InConfig:
		rl.ClearBackground(ColBg)
		a.drawConfig()
	default:
		rl.ClearBackground(ColLabBg)
		a.Scene.Draw()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	info := a.current()
	center := int(a.width)/2 - 150
	right := int(a.width) - 300
	a.drawText(info.Title, center, 10, 16, ColHUD)

	y := 32
	if s, ok := a.Scene.(statusLines); ok {
		for _, line := range s.Status() {
			a.drawText(line, center, y, 14, ColHUD)
			y += 18
		}
	}

	bottom := int(a.height)
	if a.Tail != nil {
		lines := a.Tail.Lines()
		if len(lines) > 4 {
			lines = lines[len(lines)-4:]
		}
		for i, line := range lines {
			a.drawText(line, 10, bottom-96+i*16, 12, ColHUDDim)
		}
	}
	a.drawText("[ESC] MENU  [Q] QUIT", right, bottom-24, 14, ColHUDDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 10, 10, 14, ColHUDDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawMenu() {
	a.drawText("gfxlab", 50, 50, 40, ColSelect)
	a.drawText("Select Lab", 50, 100, 16, ColTextDim)
	rl.DrawLine(50, 140, a.width-50, 140, ColGrid)

	y := 160
	for i, info := range a.Labs {
		if i == a.Selected {
			a.drawText(fmt.Sprintf("> %-14s %s", info.Name, info.Title), 50, y, 20, ColSelect)
			a.drawText(info.Description, 80, y+22, 14, ColAccent)
			y += 20
		} else {
			a.drawText(fmt.Sprintf("  %-14s %s", info.Name, info.Title), 50, y, 20, ColText)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 50, int(a.height)-40, 14, ColTextDim)
}

func (a *App) drawConfig() {
	info := a.current()
	a.drawText("gfxlab", 50, 50, 40, ColTextDim)
	a.drawText("configure", 220, 65, 20, ColSelect)
	a.drawText(fmt.Sprintf("Target: %s", info.Title), 50, 110, 16, ColAccent)
	if len(a.Presets) > 0 {
		a.drawText(fmt.Sprintf("Preset: %s", a.Presets[a.PresetSel]), 50, 132, 16, ColAccent)
	}

	y := 180
	if len(a.Settings) == 0 {
		a.drawText("No configurable parameters.", 50, y, 16, ColTextDim)
	}
	for i, s := range a.Settings {
		if i == a.ParamSel {
			a.drawText("> "+s.String(), 50, y, 20, ColSelect)
		} else {
			a.drawText("  "+s.String(), 50, y, 20, ColText)
		}
		y += 28
	}

	if a.LastErr != "" {
		a.drawText(a.LastErr, 50, y+20, 16, ColError)
	}
	a.drawText("ARROWS: ADJUST  SHIFT: x10  TAB: PRESET  ENTER: RUN  ESC: BACK", 50, int(a.height)-40, 14, ColTextDim)
}
