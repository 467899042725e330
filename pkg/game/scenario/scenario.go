// Package scenario loads sandbox worlds from Lua scripts.
//
// A script builds a Scenario through the Scenario.new constructor and returns it:
//
//	local s = Scenario.new("Farmhouse")
//	s:size{width = 9, height = 7}
//	s:door{x = 4, y = 1, sprite = "fixtures_doors_wood_01", locked = true}
//	s:player{x = 4, y = 3, traits = {"Strong"}, strength = 2}
//	return s
package scenario

import (
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

//go:embed default.lua
var defaultScript string

// Rect is an inclusive rectangle of cells on one level.
type Rect struct {
	X1, Y1, X2, Y2, Z int
}

// DoorSpec describes a door to place.
type DoorSpec struct {
	X, Y, Z    int
	Sprite     string
	Locked     bool
	Open       bool
	Barricaded bool
	Destroyed  bool
	Health     *float64
	MaxHealth  *float64
}

// FixtureSpec describes a non-door object to place.
type FixtureSpec struct {
	X, Y, Z int
	Kind    string
	Name    string
	Sprite  string
}

// PlayerSpec describes the player character.
type PlayerSpec struct {
	X, Y, Z  int
	Name     string
	Traits   []string
	Skills   map[string]int
	NoSkills bool // only the listed skills are known
}

// Scenario is the declarative result of running a script.
type Scenario struct {
	Name     string
	Width    int
	Height   int
	Levels   int
	Floors   []Rect
	Doors    []DoorSpec
	Fixtures []FixtureSpec
	Player   *PlayerSpec
}

// Default returns the embedded sandbox scenario.
func Default(logger *slog.Logger) (*Scenario, error) {
	return LoadString("default", defaultScript, logger)
}

// LoadFile runs the script at path.
func LoadFile(path string, logger *slog.Logger) (*Scenario, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return run(name, logger, func(state *lua.State) error {
		return lua.LoadFile(state, path, "")
	})
}

// LoadString runs script source. name is used when the script leaves its scenario unnamed.
func LoadString(name, src string, logger *slog.Logger) (*Scenario, error) {
	return run(name, logger, func(state *lua.State) error {
		return lua.LoadString(state, src)
	})
}

func run(name string, logger *slog.Logger, load func(*lua.State) error) (*Scenario, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	state := lua.NewState()
	lua.OpenLibraries(state)
	registerLuaTypes(state)

	if err := load(state); err != nil {
		return nil, fmt.Errorf("load lua: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeUserData {
		state.Pop(1)
		return nil, fmt.Errorf("scenario script must return Scenario")
	}
	ud := state.ToUserData(-1)
	state.Pop(1)
	s, ok := ud.(*Scenario)
	if !ok || s == nil {
		return nil, fmt.Errorf("scenario script returned invalid Scenario")
	}
	if strings.TrimSpace(s.Name) == "" {
		s.Name = name
	}
	logger.Debug("scenario loaded",
		"name", s.Name,
		"doors", len(s.Doors),
		"fixtures", len(s.Fixtures))
	return s, nil
}
