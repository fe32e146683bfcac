// Package tracelog provides process-wide, indented, leveled logging for
// tracelog and the programs that embed it.
//
// Levels are ordered ranks. Finer (more verbose) levels have lower ranks:
//   - All (0): everything
//   - Finest (10): constructor and operator traces
//   - Finer (20): method traces and debug values
//   - Fine / Info (30): normal output, the default threshold
//   - Output / Error (999): output that should always be seen
//
// A message is written when its level is at or above the logger's threshold.
// Lines go to every registered sink, or to the console when no sink is
// registered.
package tracelog

import "strconv"

// Level is the severity rank of a log message. Names that share a rank are
// aliases and compare equal.
type Level int

const (
	// LevelAll logs everything.
	LevelAll Level = 0
	// LevelFinest is for the most verbose tracing.
	LevelFinest Level = 10
	// LevelFiner is usually used for debugging.
	LevelFiner Level = 20
	// LevelFine is usually used for output.
	LevelFine Level = 30
	// LevelInfo is an alias of LevelFine.
	LevelInfo Level = 30
	// LevelOutput is for output that should always be displayed.
	LevelOutput Level = 999
	// LevelError is an alias of LevelOutput.
	LevelError Level = 999
)

// DefaultLevel is the threshold of a new Logger and the level of messages
// logged without an explicit level.
const DefaultLevel = LevelFine

// levelNames lists the recognised level names in ascending rank order.
var levelNames = []struct {
	name  string
	level Level
}{
	{"all", LevelAll},
	{"finest", LevelFinest},
	{"finer", LevelFiner},
	{"fine", LevelFine},
	{"info", LevelInfo},
	{"output", LevelOutput},
	{"error", LevelError},
}

// String returns the canonical uppercase name of the level's rank.
func (l Level) String() string {
	switch l {
	case LevelAll:
		return "ALL"
	case LevelFinest:
		return "FINEST"
	case LevelFiner:
		return "FINER"
	case LevelFine:
		return "FINE"
	case LevelOutput:
		return "OUTPUT"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// LookupLevel returns the level for an exact, case-sensitive level name.
// The second result is false if the name is not recognised.
func LookupLevel(s string) (Level, bool) {
	for _, n := range levelNames {
		if n.name == s {
			return n.level, true
		}
	}
	return DefaultLevel, false
}

// ParseLevel parses a level name (case-sensitive).
// Returns DefaultLevel if the string is not recognised.
func ParseLevel(s string) Level {
	l, _ := LookupLevel(s)
	return l
}

// LevelNames returns the recognised level names in ascending rank order.
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, n := range levelNames {
		names[i] = n.name
	}
	return names
}
