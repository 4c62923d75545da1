package scripted

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixture answers every command matching Match. Device restricts the fixture
// to one device; Hang makes the device stay silent.
type Fixture struct {
	Match  string `yaml:"match"`
	Device string `yaml:"device,omitempty"`
	Output string `yaml:"output"`
	Hang   bool   `yaml:"hang,omitempty"`

	pattern *regexp.Regexp
}

type Script struct {
	Banner      string    `yaml:"banner,omitempty"`
	Unreachable []string  `yaml:"unreachable,omitempty"`
	Fixtures    []Fixture `yaml:"fixtures"`
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read fixtures file: %w", err)
	}

	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := script.compile(); err != nil {
		return Script{}, err
	}

	return script, nil
}

func (s *Script) compile() error {
	for i := range s.Fixtures {
		fixture := &s.Fixtures[i]
		if strings.TrimSpace(fixture.Match) == "" {
			return fmt.Errorf("fixture %d: match is required", i)
		}

		pattern, err := regexp.Compile(fixture.Match)
		if err != nil {
			return fmt.Errorf("fixture %d: compile match: %w", i, err)
		}
		fixture.pattern = pattern
	}

	return nil
}

func (s Script) unreachable(device string) bool {
	for _, name := range s.Unreachable {
		if name == device {
			return true
		}
	}

	return false
}

// lookup returns the first fixture matching command on device.
func (s Script) lookup(device, command string) (Fixture, bool) {
	for _, fixture := range s.Fixtures {
		if fixture.Device != "" && fixture.Device != device {
			continue
		}
		if fixture.pattern != nil && fixture.pattern.MatchString(command) {
			return fixture, true
		}
	}

	return Fixture{}, false
}

// With returns a copy of s whose fixtures are checked before the existing
// ones.
func (s Script) With(fixtures ...Fixture) (Script, error) {
	layered := Script{
		Banner:      s.Banner,
		Unreachable: append([]string(nil), s.Unreachable...),
		Fixtures:    append(append([]Fixture(nil), fixtures...), s.Fixtures...),
	}
	if err := layered.compile(); err != nil {
		return Script{}, err
	}

	return layered, nil
}
