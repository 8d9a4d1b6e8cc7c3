package transformer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"fjacquet/camt-convert/internal/fileutils"
)

// FamilyRule maps a proprietary code prefix to an ISO bank transaction code
// family. Rules are matched in order, first prefix match wins.
type FamilyRule struct {
	Prefix    string `yaml:"prefix"`
	Family    string `yaml:"family"`
	SubFamily string `yaml:"subFamily"`
}

// CodeMapper resolves proprietary bank transaction codes to the domain code
// structure required by the target schema.
type CodeMapper struct {
	Domain   string       `yaml:"domain"`
	Rules    []FamilyRule `yaml:"rules"`
	Fallback FamilyRule   `yaml:"fallback"`
}

// DefaultCodeMapper returns the built-in mapping: card transactions go to
// CCRD/POSD, everything else to the credit transfer family.
func DefaultCodeMapper() *CodeMapper {
	return &CodeMapper{
		Domain: "PMNT",
		Rules: []FamilyRule{
			{Prefix: "CARD", Family: "CCRD", SubFamily: "POSD"},
		},
		Fallback: FamilyRule{Family: "ICDT", SubFamily: "ESCT"},
	}
}

// LoadCodeMapper reads a mapping rule file. Fields left out of the file keep
// their defaults.
func LoadCodeMapper(path string) (*CodeMapper, error) {
	data, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mapper := DefaultCodeMapper()
	if err := yaml.Unmarshal(data, mapper); err != nil {
		return nil, fmt.Errorf("error parsing code mapping file %s: %w", path, err)
	}
	return mapper, nil
}

// Resolve returns the domain, family and sub-family for a proprietary code.
func (c *CodeMapper) Resolve(proprietaryCode string) (domain, family, subFamily string) {
	code := strings.ToUpper(strings.TrimSpace(proprietaryCode))
	for _, rule := range c.Rules {
		if strings.HasPrefix(code, rule.Prefix) {
			return c.Domain, rule.Family, rule.SubFamily
		}
	}
	return c.Domain, c.Fallback.Family, c.Fallback.SubFamily
}
