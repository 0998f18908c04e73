package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/stellar/internal/config"
	"github.com/san-kum/stellar/internal/viz"
)

type action int

const (
	actQuit action = iota
	actPause
	actReset
	actPolarity
	actNextParam
	actIncrease
	actDecrease
	actLinks
	actGlow
	actTheme
	actPreset
	actHelp
)

var keyBindings = map[int32]action{
	rl.KeyQ:     actQuit,
	rl.KeySpace: actPause,
	rl.KeyR:     actReset,
	rl.KeyP:     actPolarity,
	rl.KeyTab:   actNextParam,
	rl.KeyUp:    actIncrease,
	rl.KeyK:     actIncrease,
	rl.KeyDown:  actDecrease,
	rl.KeyJ:     actDecrease,
	rl.KeyL:     actLinks,
	rl.KeyC:     actGlow,
	rl.KeyT:     actTheme,
	rl.KeyN:     actPreset,
	rl.KeyH:     actHelp,
}

var helpLines = []string{
	"KEYBOARD SHORTCUTS",
	"",
	"SPACE     pause / resume",
	"R         reset particles",
	"P         toggle polarity",
	"TAB       next parameter",
	"UP / K    increase parameter",
	"DOWN / J  decrease parameter",
	"L         toggle links",
	"C         toggle charge glow",
	"T         next theme",
	"N         next preset",
	"H         toggle help",
	"Q         quit",
}

func (a *App) apply(act action) {
	switch act {
	case actQuit:
		a.quit = true
	case actPause:
		a.Running = !a.Running
	case actReset:
		a.Engine.Reset()
	case actPolarity:
		a.Cfg.PolarityEnabled = !a.Cfg.PolarityEnabled
		a.Engine.SetConfig(a.Cfg)
	case actNextParam:
		a.ParamSel = (a.ParamSel + 1) % len(config.Tunables)
	case actIncrease:
		a.adjust(1.05)
	case actDecrease:
		a.adjust(0.95)
	case actLinks:
		a.ShowLinks = !a.ShowLinks
	case actGlow:
		a.ShowGlow = !a.ShowGlow
	case actTheme:
		a.Palette = NewPalette(viz.NextTheme(a.Palette.Name))
	case actPreset:
		a.nextPreset()
	case actHelp:
		a.ShowHelp = !a.ShowHelp
	}
}

func (a *App) adjust(factor float64) {
	if err := a.Cfg.Adjust(config.Tunables[a.ParamSel], factor, 0.05); err != nil {
		a.Status = err.Error()
		return
	}
	a.Engine.SetConfig(a.Cfg)
}

func (a *App) nextPreset() {
	names := config.ListPresets()
	if len(names) == 0 {
		return
	}
	idx := 0
	for i, name := range names {
		if name == a.Title {
			idx = (i + 1) % len(names)
			break
		}
	}
	p := config.GetPreset(names[idx])
	p.Seed = a.Cfg.Seed
	a.Cfg = *p
	a.Title = names[idx]
	a.Engine.SetConfig(a.Cfg)
	a.Status = "preset " + a.Title
}
