package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrInvalidDocument is returned for documents that do not follow the gates layout.
	ErrInvalidDocument = errors.New("invalid definition document")
	// ErrUnknownOption is returned for option keys a command does not accept.
	ErrUnknownOption = fmt.Errorf("definition document: %w", domain.ErrUnknownOption)
)

// Definition is one gate read from a document.
type Definition = registry.Definition

// document is the top-level layout. Config items stay as raw nodes so the
// first key of each item can be read in source order.
type document struct {
	Gates []gate `yaml:"gates"`
}

type gate struct {
	Entity    string      `yaml:"entity"`
	Attribute string      `yaml:"attribute"`
	Config    []yaml.Node `yaml:"config"`
}

type stateOptions struct {
	Human         string   `mapstructure:"human"`
	TransitionsTo []string `mapstructure:"transitions_to"`
}

// FormatFor picks the format from a file extension. Anything but .json is YAML.
func FormatFor(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads a definition document from disk.
func Load(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	defs, err := Parse(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Parse decodes a definition document into scripts, one per gate.
// JSON documents are decoded with the YAML parser so key order survives.
func Parse(data []byte, format Format) ([]Definition, error) {
	if format == FormatJSON && !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	defs := make([]Definition, 0, len(doc.Gates))
	for i, g := range doc.Gates {
		if g.Entity == "" || g.Attribute == "" {
			return nil, fmt.Errorf("%w: gate %d needs both entity and attribute", ErrInvalidDocument, i)
		}

		script := make(dsl.Script, 0, len(g.Config))
		for _, item := range g.Config {
			cmd, err := decodeCommand(&item)
			if err != nil {
				return nil, fmt.Errorf("%s (line %d): %w", domain.Subject(g.Entity, g.Attribute), item.Line, err)
			}
			if cmd != nil {
				script = append(script, cmd)
			}
		}

		defs = append(defs, Definition{
			Key:    registry.Key{Entity: g.Entity, Attribute: g.Attribute},
			Script: script,
		})
	}
	return defs, nil
}

// decodeCommand turns one config item into a command. The first key is the
// command name; the remaining keys are its options.
func decodeCommand(item *yaml.Node) (dsl.Command, error) {
	if item.Kind != yaml.MappingNode || len(item.Content) < 2 {
		return nil, fmt.Errorf("%w: config items must be single-key mappings", ErrInvalidDocument)
	}

	name := item.Content[0].Value
	arg := item.Content[1]

	options := make(map[string]any)
	for i := 2; i+1 < len(item.Content); i += 2 {
		var v any
		if err := item.Content[i+1].Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		options[item.Content[i].Value] = v
	}

	switch name {
	case dsl.CmdState:
		var opts stateOptions
		if err := decodeOptions(options, &opts); err != nil {
			return nil, err
		}
		return dsl.State{ID: arg.Value, Human: opts.Human, TransitionsTo: opts.TransitionsTo}, nil
	case dsl.CmdDefault, dsl.CmdPrefix, dsl.CmdSuffix:
		if len(options) > 0 {
			return nil, unknownOptions(name, options)
		}
		switch name {
		case dsl.CmdDefault:
			return dsl.Default{ID: arg.Value}, nil
		case dsl.CmdPrefix:
			return dsl.Prefix{Affix: arg.Value}, nil
		}
		return dsl.Suffix{Affix: arg.Value}, nil
	case dsl.CmdMakeSequential:
		if len(options) > 0 {
			return nil, unknownOptions(name, options)
		}
		flags, enabled, err := sequentialFlags(arg)
		if err != nil || !enabled {
			return nil, err
		}
		return dsl.MakeSequential{Flags: flags}, nil
	case dsl.CmdNoScopes:
		if len(options) > 0 {
			return nil, unknownOptions(name, options)
		}
		var on bool
		if arg.Kind == yaml.ScalarNode && arg.Tag == "!!null" {
			on = true
		} else if err := arg.Decode(&on); err != nil {
			return nil, fmt.Errorf("%w: no_scopes takes a boolean", ErrInvalidDocument)
		}
		if !on {
			return nil, nil
		}
		return dsl.NoScopes{}, nil
	}
	return dsl.Unknown{Token: name}, nil
}

// sequentialFlags accepts true/false, a single flag, or a list of flags.
func sequentialFlags(arg *yaml.Node) ([]string, bool, error) {
	switch arg.Kind {
	case yaml.ScalarNode:
		if arg.Tag == "!!bool" {
			var on bool
			if err := arg.Decode(&on); err != nil {
				return nil, false, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
			}
			return nil, on, nil
		}
		if arg.Tag == "!!null" {
			return nil, true, nil
		}
		return []string{arg.Value}, true, nil
	case yaml.SequenceNode:
		var flags []string
		if err := arg.Decode(&flags); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return flags, true, nil
	}
	return nil, false, fmt.Errorf("%w: make_sequential takes a boolean or a list of flags", ErrInvalidDocument)
}

func decodeOptions(options map[string]any, out any) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(options); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return fmt.Errorf("%w: %s", ErrUnknownOption, strings.Join(md.Unused, ", "))
	}
	return nil
}

func unknownOptions(command string, options map[string]any) error {
	keys := slices.Sorted(maps.Keys(options))
	return fmt.Errorf("%w: %s does not take %s", ErrUnknownOption, command, strings.Join(keys, ", "))
}
