package schema

import "jsx2mp-go/packages/compiler/src/config"

// primitives shared by the ali, wechat and bytedance runtimes
var miniProgramComponents = []string{
	"view", "text", "image", "icon", "progress", "rich-text",
	"button", "checkbox", "checkbox-group", "radio", "radio-group",
	"form", "input", "textarea", "label", "picker", "picker-view",
	"picker-view-column", "slider", "switch", "navigator",
	"scroll-view", "swiper", "swiper-item", "movable-area", "movable-view",
	"cover-view", "cover-image", "audio", "video", "camera", "canvas",
	"map", "web-view", "block", "slot",
}

var platformComponents = map[config.Platform][]string{
	config.PlatformAli: {
		"lifestyle", "contact-button", "lottie",
	},
	config.PlatformWeChat: {
		"official-account", "open-data", "live-player", "live-pusher",
		"editor", "page-meta", "navigation-bar", "functional-page-navigator",
	},
	config.PlatformByteDance: {
		"ad", "live-player",
	},
}

var quickAppComponents = []string{
	"div", "text", "span", "a", "image", "list", "list-item", "stack",
	"swiper", "tabs", "tab-bar", "tab-content", "refresh", "popup",
	"progress", "rating", "richtext", "input", "textarea", "label",
	"picker", "select", "option", "slider", "switch", "web", "video",
	"canvas", "map", "marquee", "camera", "block", "slot",
}

// NativeComponents returns the set of builtin tags of platform. The returned
// map is a fresh copy.
func NativeComponents(platform config.Platform) map[string]bool {
	var names []string
	if platform == config.PlatformQuickApp {
		names = quickAppComponents
	} else {
		names = append(append(names, miniProgramComponents...), platformComponents[platform]...)
	}

	components := make(map[string]bool, len(names))
	for _, name := range names {
		components[name] = true
	}
	return components
}

// NativeComponentRegistry is the ElementSchemaRegistry of one platform
type NativeComponentRegistry struct {
	components map[string]bool
}

// NewNativeComponentRegistry creates the registry for platform
func NewNativeComponentRegistry(platform config.Platform) *NativeComponentRegistry {
	return &NativeComponentRegistry{components: NativeComponents(platform)}
}

// HasElement implements ElementSchemaRegistry
func (r *NativeComponentRegistry) HasElement(tagName string) bool {
	return r.components[tagName]
}
