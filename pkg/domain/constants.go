package domain

// Reserved markers and keywords of the configuration language.
const (
	// ForcePrefix marks a value that bypasses transition authorization.
	ForcePrefix = "force_"

	// NotPrefix is reserved for negated lookups on the host side.
	NotPrefix = "not_"

	// AnyState expands to every other declared state.
	AnyState = "any"

	// Sequential flags accepted by make_sequential.
	FlagOneWay = "one_way"
	FlagLoop   = "loop"
)
