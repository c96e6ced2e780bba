// Package config loads scene files: the obstacle map, collectibles, patrol
// scripts and frontend settings a session is built from.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_scene.yaml
var defaultSceneYAML []byte

// ErrConfiguration is matched by every ConfigError via errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError reports everything wrong with a scene. It is only ever
// returned at load time, before a session starts.
type ConfigError struct {
	Source string
	Issues []error
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scene %s: %d problem(s)", e.Source, len(e.Issues))
	for _, is := range e.Issues {
		sb.WriteString("\n  - ")
		sb.WriteString(is.Error())
	}
	return sb.String()
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Unwrap exposes the individual issues.
func (e *ConfigError) Unwrap() []error {
	return e.Issues
}

// Base returns a Scene with every setting at its default and no content.
func Base() Scene {
	return Scene{
		Name:         "untitled",
		GridStep:     100,
		TickPeriodMS: 1000,
		Camera: CameraConfig{
			Eye:        Vec3{65, 2500, 105},
			Center:     Vec3{0, 0, 0},
			Up:         Vec3{0, 1, 0},
			MoveStep:   20,
			RotateStep: 1,
			FOVY:       45,
			Near:       0.1,
			Far:        4800,
		},
		Avatar: AvatarConfig{
			ID:     "avatar",
			Facing: "north",
		},
		Clock: ClockConfig{Start: 1800},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultScene returns the built-in scene.
func DefaultScene() Scene {
	sc, err := Parse(defaultSceneYAML, "default")
	if err != nil {
		panic(fmt.Sprintf("embedded scene: %v", err))
	}
	return sc
}

// Parse decodes YAML onto Base and validates the result.
func Parse(data []byte, source string) (Scene, error) {
	sc := Base()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, &ConfigError{Source: source, Issues: []error{fmt.Errorf("parsing: %w", err)}}
	}
	if err := sc.Validate(source); err != nil {
		return sc, err
	}
	return sc, nil
}

// Load reads a scene file. An empty path selects the built-in scene; a path
// that does not exist also falls back to it.
func Load(path string) (Scene, error) {
	if path == "" {
		return DefaultScene(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScene(), nil
		}
		return Scene{}, fmt.Errorf("reading scene %s: %w", path, err)
	}
	return Parse(data, path)
}

// Marshal encodes a scene back to YAML.
func Marshal(sc Scene) ([]byte, error) {
	return yaml.Marshal(sc)
}
