// Package configure collects and persists the choices that drive project
// generation: a validated project name plus a set of feature toggles.
package configure

import (
	"errors"
	"fmt"
	"slices"
)

// Option keys as they appear in prompts and in the persisted file.
const (
	KeyProjectName = "project_name"
	KeyVirtualenv  = "use_virtualenv"
	KeyDocker      = "use_docker"
	KeyGit         = "init_git"
	KeyPrecommit   = "use_precommit"
	KeyTypescript  = "use_typescript"
	KeyTerraform   = "use_terraform"
	KeyCICD        = "use_cicd"
)

// BaselineKeys are always resolved before generation starts. AdvancedKeys are
// set only when the user opts into advanced options; consumers treat absence
// as false.
var (
	BaselineKeys = []string{KeyVirtualenv, KeyDocker, KeyGit, KeyPrecommit}
	AdvancedKeys = []string{KeyTypescript, KeyTerraform, KeyCICD}
)

// Defaults holds the per-key prompt defaults.
var Defaults = map[string]bool{
	KeyVirtualenv: true,
	KeyDocker:     false,
	KeyGit:        true,
	KeyPrecommit:  true,
	KeyTypescript: false,
	KeyTerraform:  false,
	KeyCICD:       false,
}

func knownFlag(key string) bool {
	return slices.Contains(BaselineKeys, key) || slices.Contains(AdvancedKeys, key)
}

// ErrNameSet is returned when a project name is assigned twice; the name is
// write-once for the lifetime of a Configuration.
var ErrNameSet = errors.New("project name already set")

// Configuration is the resolved set of user choices for one run. Flags the
// user never answered (advanced options) stay absent rather than false.
type Configuration struct {
	name  string
	flags map[string]bool
}

func New() *Configuration {
	return &Configuration{flags: make(map[string]bool)}
}

func (c *Configuration) ProjectName() string { return c.name }

func (c *Configuration) SetProjectName(name string) error {
	if c.name != "" {
		return ErrNameSet
	}
	c.name = name
	return nil
}

func (c *Configuration) SetFlag(key string, value bool) error {
	if !knownFlag(key) {
		return fmt.Errorf("unknown option %q", key)
	}
	c.flags[key] = value
	return nil
}

// Flag returns the value of key and whether it was ever set.
func (c *Configuration) Flag(key string) (bool, bool) {
	v, ok := c.flags[key]
	return v, ok
}

// Bool returns the value of key, treating absent as false.
func (c *Configuration) Bool(key string) bool {
	return c.flags[key]
}

func (c *Configuration) IsSet(key string) bool {
	_, ok := c.flags[key]
	return ok
}
