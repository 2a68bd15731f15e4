// YAML profile catalog loading
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package profiles

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/errors"
	"github.com/mrowdy/plasm-challenge-extrusion-planer/pkg/plan"
)

// catalogFile is the on-disk YAML schema of a profile catalog.
type catalogFile struct {
	Hotends   map[string]hotendEntry   `yaml:"hotends"`
	Materials map[string]materialEntry `yaml:"materials"`
}

type hotendEntry struct {
	MaxVolumetricFlow float64 `yaml:"max_volumetric_flow"`
	ResponseTime      float64 `yaml:"response_time"`
}

type materialEntry struct {
	Name          string  `yaml:"name"`
	ShoreHardness float64 `yaml:"shore_hardness"`
}

// Catalog resolves hotend and material configurations by name. A catalog
// always contains the built-in profiles; entries loaded from a file may add
// to or shadow them.
type Catalog struct {
	hotends   map[string]plan.HotendConfig
	materials map[string]plan.MaterialConfig
}

// Builtin returns a catalog holding only the built-in profiles.
func Builtin() *Catalog {
	c := &Catalog{
		hotends:   make(map[string]plan.HotendConfig),
		materials: make(map[string]plan.MaterialConfig),
	}
	for _, p := range HotendProfiles() {
		c.hotends[string(p)] = mustHotend(p)
	}
	for _, m := range MaterialTypes() {
		c.materials[string(m)] = mustMaterial(m)
	}
	return c
}

// Load reads a YAML catalog file and merges it over the built-ins. Unknown
// keys and out-of-range values are rejected.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileCatalog, "reading catalog file")
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document and merges it over the built-ins.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.Wrap(err, errors.ErrProfileCatalog, "decoding catalog")
	}

	c := Builtin()
	for name, entry := range file.Hotends {
		h := plan.HotendConfig{
			MaxVolumetricFlow: entry.MaxVolumetricFlow,
			ResponseTime:      entry.ResponseTime,
		}
		if err := h.Validate(); err != nil {
			return nil, errors.Wrap(err, errors.ErrProfileCatalog,
				fmt.Sprintf("hotend '%s'", name))
		}
		c.hotends[name] = h
	}
	for name, entry := range file.Materials {
		label := entry.Name
		if label == "" {
			label = name
		}
		m := plan.MaterialConfig{Name: label, ShoreHardness: entry.ShoreHardness}
		if err := m.Validate(); err != nil {
			return nil, errors.Wrap(err, errors.ErrProfileCatalog,
				fmt.Sprintf("material '%s'", name))
		}
		c.materials[name] = m
	}
	return c, nil
}

// Hotend resolves a hotend configuration by catalog name.
func (c *Catalog) Hotend(name string) (plan.HotendConfig, error) {
	h, ok := c.hotends[name]
	if !ok {
		return plan.HotendConfig{}, errors.ProfileCatalogError(name, "hotend not in catalog")
	}
	return h, nil
}

// Material resolves a material configuration by catalog name.
func (c *Catalog) Material(name string) (plan.MaterialConfig, error) {
	m, ok := c.materials[name]
	if !ok {
		return plan.MaterialConfig{}, errors.ProfileCatalogError(name, "material not in catalog")
	}
	return m, nil
}

// HotendNames lists the catalog's hotend names in sorted order.
func (c *Catalog) HotendNames() []string {
	names := make([]string, 0, len(c.hotends))
	for name := range c.hotends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaterialNames lists the catalog's material names in sorted order.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, 0, len(c.materials))
	for name := range c.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
