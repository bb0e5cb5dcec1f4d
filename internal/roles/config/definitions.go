// Package config loads role definitions from YAML configuration files.
//
// The file order of the roles mapping is significant: it becomes the
// registry's iteration order, so decoding goes through yaml.Node instead of
// a plain map, which would shuffle the keys.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/clubhouse/internal/roles/domain"
)

// ErrMissingRoles reports a definitions file without a roles mapping.
var ErrMissingRoles = errors.New("roles config: missing roles mapping")

// roleAttrs mirrors the per-role attributes in the definitions file. The
// role's name is the mapping key, not an attribute.
type roleAttrs struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	CanManage   []string `yaml:"can_manage"`
	IsOwner     bool     `yaml:"is_owner"`
}

// LoadDefinitions reads role definitions from the YAML file at path.
//
// Expected shape:
//
//	roles:
//	  reader:
//	    title: Reader
//	  owner:
//	    title: Owner
//	    can_manage: [reader, owner]
//	    is_owner: true
//
// Registry invariants (owner uniqueness and so on) are not checked here;
// the loader only produces the ordered definitions that domain.NewRegistry
// validates.
func LoadDefinitions(path string) ([]domain.RoleDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roles config: %w", err)
	}
	return ParseDefinitions(raw)
}

// ParseDefinitions decodes role definitions from raw YAML, preserving the
// document order of the roles mapping.
func ParseDefinitions(raw []byte) ([]domain.RoleDefinition, error) {
	var doc struct {
		Roles yaml.Node `yaml:"roles"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("roles config: %w", err)
	}

	if doc.Roles.IsZero() || doc.Roles.Kind == yaml.ScalarNode && doc.Roles.Tag == "!!null" {
		return nil, ErrMissingRoles
	}
	if doc.Roles.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("roles config: roles must be a mapping, got %s", doc.Roles.Tag)
	}

	// Mapping node content alternates key, value, key, value...
	defs := make([]domain.RoleDefinition, 0, len(doc.Roles.Content)/2)
	for i := 0; i+1 < len(doc.Roles.Content); i += 2 {
		key := doc.Roles.Content[i]
		val := doc.Roles.Content[i+1]

		var attrs roleAttrs
		if val.Kind != yaml.ScalarNode || val.Tag != "!!null" { // bare "name:" means all defaults
			if err := val.Decode(&attrs); err != nil {
				return nil, fmt.Errorf("roles config: role %q: %w", key.Value, err)
			}
		}

		defs = append(defs, domain.RoleDefinition{
			Name:        key.Value,
			Title:       attrs.Title,
			Description: attrs.Description,
			CanManage:   attrs.CanManage,
			IsOwner:     attrs.IsOwner,
		})
	}
	return defs, nil
}
