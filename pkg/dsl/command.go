package dsl

// Command names understood by the graph builder.
const (
	CmdState          = "state"
	CmdDefault        = "default"
	CmdPrefix         = "prefix"
	CmdSuffix         = "suffix"
	CmdMakeSequential = "make_sequential"
	CmdNoScopes       = "no_scopes"
)

// Command is one entry of a configuration Script.
// The set of implementations is closed: State, Default, Prefix, Suffix,
// MakeSequential, NoScopes and Unknown.
type Command interface {
	// Name returns the command token as written in a definition file.
	Name() string
	command()
}

// Script is an ordered list of configuration commands, evaluated exactly once.
type Script []Command

// State declares a new state.
type State struct {
	ID            string
	Human         string
	TransitionsTo []string
}

// Default selects the state assigned to new entities.
type Default struct {
	ID string
}

// Prefix sets the affix placed before every scope name.
type Prefix struct {
	Affix string
}

// Suffix sets the affix placed after every scope name.
type Suffix struct {
	Affix string
}

// MakeSequential links states in declaration order.
type MakeSequential struct {
	Flags []string
}

// NoScopes disables per-state lookup helpers on the host.
type NoScopes struct{}

// Unknown carries a command token the builder does not recognize.
// It only comes out of definition files and always fails the build.
type Unknown struct {
	Token string
}

func (State) Name() string          { return CmdState }
func (Default) Name() string        { return CmdDefault }
func (Prefix) Name() string         { return CmdPrefix }
func (Suffix) Name() string         { return CmdSuffix }
func (MakeSequential) Name() string { return CmdMakeSequential }
func (NoScopes) Name() string       { return CmdNoScopes }
func (u Unknown) Name() string      { return u.Token }

func (State) command()          {}
func (Default) command()        {}
func (Prefix) command()         {}
func (Suffix) command()         {}
func (MakeSequential) command() {}
func (NoScopes) command()       {}
func (Unknown) command()        {}
