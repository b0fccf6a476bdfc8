package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=Platform -linecomment -output=platform_string.go

// Platform identifies a mini-app compilation target
type Platform int

const (
	_ Platform = iota

	PlatformAli       // ali
	PlatformWeChat    // wechat
	PlatformByteDance // bytedance
	PlatformQuickApp  // quickapp
)

// Platforms lists every supported target in declaration order
var Platforms = []Platform{
	PlatformAli,
	PlatformWeChat,
	PlatformByteDance,
	PlatformQuickApp,
}

// ParsePlatform resolves a platform from its name
func ParsePlatform(name string) (Platform, error) {
	for _, p := range Platforms {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown platform %q", name)
}

// TemplateExt returns the extension of template files emitted for the platform
func (p Platform) TemplateExt() string {
	switch p {
	case PlatformWeChat:
		return "wxml"
	case PlatformByteDance:
		return "ttml"
	case PlatformQuickApp:
		return "ux"
	default:
		return "axml"
	}
}

// MarshalYAML implements yaml.Marshaler
func (p Platform) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (p *Platform) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParsePlatform(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
