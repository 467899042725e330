package scenario

import (
	"math"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

func registerLuaTypes(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, scenarioMethods, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, scenarioConstructor, 0)
	state.SetGlobal("Scenario")
}

var scenarioConstructor = []lua.RegistryFunction{
	{Name: "new", Function: scenarioNew},
}

var scenarioMethods = []lua.RegistryFunction{
	{Name: "size", Function: scenarioSize},
	{Name: "floor", Function: scenarioFloor},
	{Name: "door", Function: scenarioDoor},
	{Name: "fixture", Function: scenarioFixture},
	{Name: "player", Function: scenarioPlayer},
}

func scenarioNew(state *lua.State) int {
	name := lua.OptString(state, 1, "")
	state.PushUserData(&Scenario{Name: name})
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

func scenarioSize(state *lua.State) int {
	s := checkScenario(state)
	opts := checkTable(state, 2)
	s.Width = intField(opts, "width", 0)
	s.Height = intField(opts, "height", 0)
	s.Levels = intField(opts, "levels", 1)
	return 0
}

func scenarioFloor(state *lua.State) int {
	s := checkScenario(state)
	opts := checkTable(state, 2)
	s.Floors = append(s.Floors, Rect{
		X1: intField(opts, "x1", 0),
		Y1: intField(opts, "y1", 0),
		X2: intField(opts, "x2", 0),
		Y2: intField(opts, "y2", 0),
		Z:  intField(opts, "z", 0),
	})
	return 0
}

func scenarioDoor(state *lua.State) int {
	s := checkScenario(state)
	opts := checkTable(state, 2)
	s.Doors = append(s.Doors, DoorSpec{
		X:          intField(opts, "x", 0),
		Y:          intField(opts, "y", 0),
		Z:          intField(opts, "z", 0),
		Sprite:     stringField(opts, "sprite", ""),
		Locked:     boolField(opts, "locked"),
		Open:       boolField(opts, "open"),
		Barricaded: boolField(opts, "barricaded"),
		Destroyed:  boolField(opts, "destroyed"),
		Health:     floatPtrField(opts, "health"),
		MaxHealth:  floatPtrField(opts, "max_health"),
	})
	return 0
}

func scenarioFixture(state *lua.State) int {
	s := checkScenario(state)
	opts := checkTable(state, 2)
	s.Fixtures = append(s.Fixtures, FixtureSpec{
		X:      intField(opts, "x", 0),
		Y:      intField(opts, "y", 0),
		Z:      intField(opts, "z", 0),
		Kind:   stringField(opts, "kind", "furniture"),
		Name:   stringField(opts, "name", ""),
		Sprite: stringField(opts, "sprite", ""),
	})
	return 0
}

func scenarioPlayer(state *lua.State) int {
	s := checkScenario(state)
	opts := checkTable(state, 2)
	p := &PlayerSpec{
		X:        intField(opts, "x", 0),
		Y:        intField(opts, "y", 0),
		Z:        intField(opts, "z", 0),
		Name:     stringField(opts, "name", "Survivor"),
		Skills:   map[string]int{},
		NoSkills: boolField(opts, "only_listed_skills"),
	}
	if traits, ok := opts["traits"].([]any); ok {
		for _, t := range traits {
			if name, ok := t.(string); ok {
				p.Traits = append(p.Traits, name)
			}
		}
	}
	for _, key := range []string{"strength", "fitness"} {
		if _, ok := opts[key]; ok {
			p.Skills[key] = intField(opts, key, 0)
		}
	}
	if skills, ok := opts["skills"].(map[string]any); ok {
		for name := range skills {
			p.Skills[name] = intField(skills, name, 0)
		}
	}
	s.Player = p
	return 0
}

func checkScenario(state *lua.State) *Scenario {
	ud := lua.CheckUserData(state, 1, scenarioTypeName)
	if s, ok := ud.(*Scenario); ok && s != nil {
		return s
	}
	lua.ArgumentError(state, 1, "scenario expected")
	return nil
}

func checkTable(state *lua.State, index int) map[string]any {
	lua.CheckType(state, index, lua.TypeTable)
	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return value
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo converts sequences to []any and everything else to maps.
func tableToGo(state *lua.State, index int) any {
	index = state.AbsIndex(index)
	n := state.RawLength(index)
	if n == 0 {
		return tableToMap(state, index)
	}
	result := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		state.RawGetInt(index, i)
		result = append(result, luaToGo(state, -1))
		state.Pop(1)
	}
	return result
}

func intField(m map[string]any, key string, def int) int {
	if v, ok := m[key].(float64); ok {
		return int(math.Round(v))
	}
	return def
}

func floatPtrField(m map[string]any, key string) *float64 {
	if v, ok := m[key].(float64); ok {
		return &v
	}
	return nil
}

func stringField(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

func boolField(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}
