package config

// Adapter holds the per-target settings that govern attribute naming and
// binding conventions. The attribute pass only reads it.
type Adapter struct {
	Platform Platform `yaml:"platform"`
	// KeyAttrName is the name the list key attribute is renamed to.
	KeyAttrName string `yaml:"key"`
	// StyleKeyword is set when custom components cannot receive a plain
	// style/class attribute and need the styleSheet form instead.
	StyleKeyword bool `yaml:"styleKeyword"`
	// NeedTransformKey is set when the key must be a static string.
	NeedTransformKey bool `yaml:"needTransformKey"`
	// TriggerRef is set when bindComRef carries the ref name rather than a callback.
	TriggerRef bool `yaml:"triggerRef"`
}

// AdapterOption is a function that modifies Adapter
type AdapterOption func(*Adapter)

// NewAdapter creates the preset adapter for platform with optional overrides
func NewAdapter(platform Platform, opts ...AdapterOption) *Adapter {
	adapter := presetFor(platform)
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// AdapterFor returns the built-in preset for platform
func AdapterFor(platform Platform) *Adapter {
	return NewAdapter(platform)
}

// WithKeyAttrName sets the list key attribute name
func WithKeyAttrName(name string) AdapterOption {
	return func(a *Adapter) {
		a.KeyAttrName = name
	}
}

// WithStyleKeyword sets whether the target uses the styleSheet keyword
func WithStyleKeyword(styleKeyword bool) AdapterOption {
	return func(a *Adapter) {
		a.StyleKeyword = styleKeyword
	}
}

// WithNeedTransformKey sets whether keys must be static strings
func WithNeedTransformKey(need bool) AdapterOption {
	return func(a *Adapter) {
		a.NeedTransformKey = need
	}
}

// WithTriggerRef sets whether refs propagate by name
func WithTriggerRef(triggerRef bool) AdapterOption {
	return func(a *Adapter) {
		a.TriggerRef = triggerRef
	}
}

// IsQuickApp reports whether the adapter targets QuickApp
func (a *Adapter) IsQuickApp() bool {
	return a.Platform == PlatformQuickApp
}

func presetFor(platform Platform) *Adapter {
	switch platform {
	case PlatformWeChat:
		return &Adapter{
			Platform:         PlatformWeChat,
			KeyAttrName:      "wx:key",
			StyleKeyword:     true,
			NeedTransformKey: true,
			TriggerRef:       true,
		}
	case PlatformByteDance:
		return &Adapter{
			Platform:         PlatformByteDance,
			KeyAttrName:      "tt:key",
			StyleKeyword:     true,
			NeedTransformKey: true,
			TriggerRef:       true,
		}
	case PlatformQuickApp:
		return &Adapter{
			Platform:     PlatformQuickApp,
			KeyAttrName:  "tid",
			StyleKeyword: true,
		}
	default:
		return &Adapter{
			Platform:    PlatformAli,
			KeyAttrName: "a:key",
		}
	}
}
