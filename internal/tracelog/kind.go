package tracelog

// Kind tags a message with a fixed level and an optional prefix.
//
// Messages are expected in the following formats:
//   - KindConstructor: SCOPE::CONSTRUCTOR(PARAMS) [type of constructor]
//   - KindOperator: SCOPE::OPERATOR(PARAMS)
//   - KindMethod: SCOPE::FUNCTION_NAME(PARAMS)
//   - KindDebug: no format
type Kind int

const (
	// KindConstructor traces a constructor call at LevelFinest.
	KindConstructor Kind = iota
	// KindOperator traces an operator call at LevelFinest.
	KindOperator
	// KindMethod traces a method call at LevelFiner.
	KindMethod
	// KindDebug logs a debug value at LevelFiner, unmodified.
	KindDebug
)

// tracePrefix is prepended to constructor, operator and method messages.
const tracePrefix = "Called "

var kindLevels = map[Kind]Level{
	KindConstructor: LevelFinest,
	KindOperator:    LevelFinest,
	KindMethod:      LevelFiner,
	KindDebug:       LevelFiner,
}

// LevelFor returns the level messages of kind k are logged at.
// Unknown kinds map to DefaultLevel.
func LevelFor(k Kind) Level {
	if l, ok := kindLevels[k]; ok {
		return l
	}
	return DefaultLevel
}

// Prefix returns the string prepended to messages of kind k.
func (k Kind) Prefix() string {
	switch k {
	case KindConstructor, KindOperator, KindMethod:
		return tracePrefix
	default:
		return ""
	}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindOperator:
		return "operator"
	case KindMethod:
		return "method"
	case KindDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name (case-sensitive). The second result is false
// if the name is not recognised.
func ParseKind(s string) (Kind, bool) {
	for k := KindConstructor; k <= KindDebug; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
