package engine

import (
	"strings"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/dsl"
)

// configurator owns the graph while the script runs. The graph only escapes
// through Build once every assertion has passed.
type configurator struct {
	graph      *Graph
	defaultSet bool
	prefixSet  bool
	suffixSet  bool
}

func newConfigurator(entity, attribute string) *configurator {
	return &configurator{
		graph: &Graph{
			entity:    entity,
			attribute: attribute,
			states:    make(map[string]*domain.State),
			scopes:    true,
		},
	}
}

func (c *configurator) fail(kind error, e domain.ConfigurationError) error {
	e.Entity = c.graph.entity
	e.Attribute = c.graph.attribute
	e.Kind = kind
	return &e
}

func (c *configurator) exec(script dsl.Script) error {
	for _, cmd := range script {
		var err error
		switch cmd := cmd.(type) {
		case dsl.State:
			err = c.state(cmd)
		case dsl.Default:
			err = c.setDefault(cmd.ID)
		case dsl.Prefix:
			err = c.setPrefix(cmd.Affix)
		case dsl.Suffix:
			err = c.setSuffix(cmd.Affix)
		case dsl.MakeSequential:
			err = c.makeSequential(cmd.Flags)
		case dsl.NoScopes:
			c.graph.scopes = false
		case nil:
			err = c.fail(domain.ErrUnknownCommand, domain.ConfigurationError{Value: "nil"})
		default:
			err = c.fail(domain.ErrUnknownCommand, domain.ConfigurationError{Value: cmd.Name()})
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *configurator) state(cmd dsl.State) error {
	id, ok := domain.Normalize(cmd.ID)
	if !ok {
		return c.fail(domain.ErrInvalidType, domain.ConfigurationError{Setting: dsl.CmdState, Value: cmd.ID})
	}
	if _, exists := c.graph.states[id]; exists {
		return c.fail(domain.ErrDuplicateState, domain.ConfigurationError{Setting: dsl.CmdState, State: id})
	}
	for _, reserved := range []string{domain.NotPrefix, domain.ForcePrefix} {
		if strings.HasPrefix(id, reserved) {
			return c.fail(domain.ErrReservedName, domain.ConfigurationError{Setting: dsl.CmdState, State: id, Value: reserved})
		}
	}

	targets := make([]string, 0, len(cmd.TransitionsTo))
	for _, raw := range cmd.TransitionsTo {
		target, ok := domain.Normalize(raw)
		if !ok {
			return c.fail(domain.ErrInvalidType, domain.ConfigurationError{Setting: "transitions", State: id, Value: raw})
		}
		targets = append(targets, target)
	}

	human := strings.TrimSpace(cmd.Human)
	if human == "" {
		human = domain.Humanize(id)
	}

	c.graph.order = append(c.graph.order, id)
	c.graph.states[id] = &domain.State{
		ID:            id,
		Human:         human,
		TransitionsTo: targets,
	}
	return nil
}

func (c *configurator) setDefault(raw string) error {
	id, ok := domain.Normalize(raw)
	if !ok {
		return c.fail(domain.ErrInvalidType, domain.ConfigurationError{Setting: dsl.CmdDefault, Value: raw})
	}
	if c.defaultSet {
		return c.fail(domain.ErrRepeatedSetting, domain.ConfigurationError{Setting: dsl.CmdDefault})
	}
	c.defaultSet = true
	c.graph.defaultState = id
	return nil
}

func (c *configurator) setPrefix(raw string) error {
	affix, ok := domain.Normalize(raw)
	if !ok {
		return c.fail(domain.ErrInvalidType, domain.ConfigurationError{Setting: dsl.CmdPrefix, Value: raw})
	}
	if c.prefixSet {
		return c.fail(domain.ErrRepeatedSetting, domain.ConfigurationError{Setting: dsl.CmdPrefix})
	}
	c.prefixSet = true
	c.graph.prefix = affix + "_"
	return nil
}

func (c *configurator) setSuffix(raw string) error {
	affix, ok := domain.Normalize(raw)
	if !ok {
		return c.fail(domain.ErrInvalidType, domain.ConfigurationError{Setting: dsl.CmdSuffix, Value: raw})
	}
	if c.suffixSet {
		return c.fail(domain.ErrRepeatedSetting, domain.ConfigurationError{Setting: dsl.CmdSuffix})
	}
	c.suffixSet = true
	c.graph.suffix = "_" + affix
	return nil
}

func (c *configurator) makeSequential(flags []string) error {
	c.graph.sequential = true
	for _, raw := range flags {
		flag, _ := domain.Normalize(raw)
		switch flag {
		case domain.FlagLoop:
			c.graph.loop = true
		case domain.FlagOneWay:
			c.graph.oneWay = true
		default:
			return c.fail(domain.ErrUnknownOption, domain.ConfigurationError{Setting: dsl.CmdMakeSequential, Value: raw})
		}
	}
	return nil
}

func (c *configurator) generateScopeNames() {
	for _, id := range c.graph.order {
		c.graph.states[id].ScopeName = c.graph.prefix + id + c.graph.suffix
	}
}

func (c *configurator) uniqTransitions() {
	for _, id := range c.graph.order {
		s := c.graph.states[id]
		s.TransitionsTo = uniq(s.TransitionsTo)
	}
}

// others returns every declared state except id, in declaration order.
func (c *configurator) others(id string) []string {
	out := make([]string, 0, len(c.graph.order)-1)
	for _, other := range c.graph.order {
		if other != id {
			out = append(out, other)
		}
	}
	return out
}

func uniq(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
