package main

import (
	"fmt"
	"slices"

	"github.com/bawdo/gobool/config"
	"github.com/bawdo/gobool/plugins"
)

// pluginKind is a plugin the REPL can enable. build turns the arguments
// given after "plugin <name>" into a configured transformer plus a short
// description of its settings.
type pluginKind struct {
	name  string
	build func(cfg *config.Config, args string) (plugins.Transformer, string, error)
}

// activePlugin is an enabled plugin and the transformer it was built with.
type activePlugin struct {
	name        string
	transformer plugins.Transformer
	settings    string
}

// pluginSet tracks the plugin kinds a session knows and the ones enabled.
// Enabled plugins run in the order they were first enabled. Enabling a
// plugin again replaces its settings and keeps its place in the chain.
type pluginSet struct {
	kinds  []pluginKind
	active []activePlugin
}

func newPluginSet(kinds ...pluginKind) *pluginSet {
	return &pluginSet{kinds: kinds}
}

// enable builds the named plugin from args and adds it to the chain. The
// chain is untouched when the build fails.
func (p *pluginSet) enable(cfg *config.Config, name, args string) (activePlugin, error) {
	i := slices.IndexFunc(p.kinds, func(k pluginKind) bool { return k.name == name })
	if i < 0 {
		return activePlugin{}, fmt.Errorf("unknown plugin: %s", name)
	}
	t, settings, err := p.kinds[i].build(cfg, args)
	if err != nil {
		return activePlugin{}, err
	}
	ap := activePlugin{name: name, transformer: t, settings: settings}
	if j := p.index(name); j >= 0 {
		p.active[j] = ap
	} else {
		p.active = append(p.active, ap)
	}
	return ap, nil
}

func (p *pluginSet) disable(name string) error {
	i := p.index(name)
	if i < 0 {
		return fmt.Errorf("plugin %q is not enabled", name)
	}
	p.active = slices.Delete(p.active, i, i+1)
	return nil
}

func (p *pluginSet) disableAll() {
	p.active = nil
}

func (p *pluginSet) index(name string) int {
	return slices.IndexFunc(p.active, func(a activePlugin) bool { return a.name == name })
}

// settings reports how an enabled plugin is configured.
func (p *pluginSet) settings(name string) (string, bool) {
	if i := p.index(name); i >= 0 {
		return p.active[i].settings, true
	}
	return "", false
}

// kindNames lists every plugin that can be enabled.
func (p *pluginSet) kindNames() []string {
	out := make([]string, len(p.kinds))
	for i, k := range p.kinds {
		out[i] = k.name
	}
	return out
}

// activeNames lists the enabled plugins in chain order.
func (p *pluginSet) activeNames() []string {
	out := make([]string, len(p.active))
	for i, a := range p.active {
		out[i] = a.name
	}
	return out
}

// transformers returns the chain to install on a stack manager.
func (p *pluginSet) transformers() []plugins.Transformer {
	out := make([]plugins.Transformer, len(p.active))
	for i, a := range p.active {
		out[i] = a.transformer
	}
	return out
}
