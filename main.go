package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/collatz-visualization/internal/collatz"
	"github.com/iburimskiy/collatz-visualization/internal/config"
	"github.com/iburimskiy/collatz-visualization/internal/game"
	"github.com/iburimskiy/collatz-visualization/internal/sonify"
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, "collatz: ", log.LstdFlags)

	settings, err := config.New(snapshotFromFlags())
	if err != nil {
		logger.Fatalf("bad flags: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	renderer := collatz.NewRenderer(seed, logger)
	renderer.Workers = *workersFlag

	var voice *sonify.Voice
	if *soundFlag {
		voice, err = startVoice()
		if err != nil {
			logger.Printf("warning: sound disabled: %v", err)
			voice = nil
		} else {
			logger.Printf("sound enabled at %d Hz", config.SampleRate)
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(settings, game.Options{
		Renderer: renderer,
		Voice:    voice,
		Logger:   logger,
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
	logger.Printf("exiting after %d steps", g.Steps())
}

func startVoice() (*sonify.Voice, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	v := sonify.NewVoice(sr, config.NoteDuration, config.NoteQueue)
	v.EvenHz, v.OddHz, v.Volume = config.EvenToneHz, config.OddToneHz, config.ToneVolume
	speaker.Play(v)
	return v, nil
}
