// Package rules compiles extra kick disqualifiers from boolean expressions
// such as `Archetype == "garage" && Locked`.
package rules

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"kickdoor/pkg/game/kick"
)

// ErrNotBoolean is reported when an expression evaluates to something other than a bool.
var ErrNotBoolean = errors.New("expression did not return a boolean")

// DoorEnv is what an expression can see of a door.
type DoorEnv struct {
	Sprite     string
	Archetype  string
	Locked     bool
	Barricaded bool
	Destroyed  bool
	HasHealth  bool
	Health     float64
	MaxHealth  float64
}

// EnvFor snapshots a door through its capabilities.
func EnvFor(door kick.Door) DoorEnv {
	env := DoorEnv{
		Sprite:    door.SpriteName(),
		Archetype: kick.ClassifyDoor(door).String(),
	}
	if l, ok := door.(kick.Lockable); ok {
		env.Locked = l.IsLocked()
	}
	env.Barricaded = kick.Barricaded(door)
	env.Destroyed = kick.Destroyed(door)
	if hr, ok := door.(kick.HealthReporter); ok {
		cur, curOK := hr.Health().Get()
		maxHealth, maxOK := hr.MaxHealth().Get()
		env.HasHealth = curOK && maxOK
		env.Health = cur
		env.MaxHealth = maxHealth
	}
	return env
}

// Condition is a compiled disqualifier expression.
type Condition struct {
	expression string
	program    *vm.Program
	logger     *slog.Logger
}

// Compile checks and compiles expression against DoorEnv.
func Compile(expression string, logger *slog.Logger) (*Condition, error) {
	program, err := expr.Compile(expression,
		expr.Env(DoorEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Condition{expression: expression, program: program, logger: logger}, nil
}

// String returns the source expression.
func (c *Condition) String() string {
	return c.expression
}

// Disqualifies runs the expression for door. Evaluation errors are logged
// and count as not disqualified.
func (c *Condition) Disqualifies(door kick.Door) bool {
	result, err := expr.Run(c.program, EnvFor(door))
	if err != nil {
		c.logger.Error("disqualifier evaluation failed",
			"expression", c.expression,
			"error", err)
		return false
	}
	b, ok := result.(bool)
	if !ok {
		c.logger.Error("disqualifier evaluation failed",
			"expression", c.expression,
			"error", ErrNotBoolean,
			"resultType", fmt.Sprintf("%T", result))
		return false
	}
	return b
}

// CompileAll compiles every expression into kick.Rules. Empty expressions are skipped.
func CompileAll(expressions []string, logger *slog.Logger) (kick.Rules, error) {
	var r kick.Rules
	for _, e := range expressions {
		if e == "" {
			continue
		}
		c, err := Compile(e, logger)
		if err != nil {
			return kick.Rules{}, err
		}
		r.Disqualifiers = append(r.Disqualifiers, c.Disqualifies)
	}
	return r, nil
}
