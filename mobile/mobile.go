//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.vovakirdan.flappy -o build/flappy.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Flappy.xcframework ./mobile
package mobile

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/platform/desktop"
)

func init() {
	settings, err := desktop.OpenSettings("flappy_arcade")
	if err != nil {
		log.Warn("settings unavailable, using defaults", "err", err)
		settings, _ = desktop.NewSettingsStore(nil)
	}

	sound := audio.NewSoundManager(settings.Settings().Volume)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable", "err", err)
	}

	app, err := desktop.NewApp(desktop.Options{Settings: settings, Sound: sound})
	if err != nil {
		log.Fatal("cannot start game", "err", err)
	}
	mobile.SetGame(app)
}

// Dummy is exported so ebitenmobile binds the package.
func Dummy() {}
