package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/AhmedSherif9/HideAndSeek/internal/audio"
	"github.com/AhmedSherif9/HideAndSeek/internal/config"
	"github.com/AhmedSherif9/HideAndSeek/internal/game"
	"github.com/AhmedSherif9/HideAndSeek/internal/session"
)

func main() {
	scenePath := flag.String("scene", "", "scene YAML (empty for the built-in scene)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	mute := flag.Bool("mute", false, "disable audio cues")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	if err := run(*scenePath, *mute); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(scenePath string, mute bool) error {
	sc, err := config.Load(scenePath)
	if err != nil {
		return err
	}
	w, cam, err := config.Build(sc)
	if err != nil {
		return err
	}
	slog.Info("scene loaded", "name", sc.Name, "collectibles", len(sc.Collectibles), "adversaries", len(sc.Adversaries))

	var notifier session.Notifier = session.Nop{}
	if sc.Audio.Enabled && !mute {
		ctx := ebaudio.NewContext(sc.Audio.SampleRate)
		notifier = audio.NewPlayer(ctx, audio.Options{
			SampleRate: sc.Audio.SampleRate,
			Volume:     sc.Audio.Volume,
			Logger:     slog.Default(),
		})
	}

	sess, err := session.New(w, cam,
		session.WithNotifier(notifier),
		session.WithHaltOnLose(sc.Session.HaltOnLose),
		session.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	g := game.New(sc, sess, slog.Default())
	ebiten.SetWindowTitle("Hide and Seek - " + sc.Name)
	ebiten.SetWindowSize(g.Size())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	slog.Info("session ended", "outcome", sess.Outcome(), "stats", sess.Stats())
	return nil
}
