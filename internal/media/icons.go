package media

import "strings"

// LogoKind tells a client how to render a logo value.
type LogoKind string

const (
	LogoImage LogoKind = "image"
	LogoIcon  LogoKind = "icon"
)

// DefaultIcon is shown for any logo value that is neither an inline image nor
// a registered icon.
const DefaultIcon = "AppsIcon"

// Icons is the registry of symbolic icon names a client can draw.
var Icons = map[string]struct{}{
	"CodePilotIcon": {},
	"FirewallIcon":  {},
	"AppsIcon":      {},
	"CategoryIcon":  {},
	"DashboardIcon": {},
	"SearchIcon":    {},
	"PlusIcon":      {},
	"TrashIcon":     {},
}

// Logo is a resolved logo.
type Logo struct {
	Kind  LogoKind `json:"kind"`
	Value string   `json:"value"`
}

// ResolveLogo maps a stored logo value to something renderable. It never
// fails: unknown names fall back to DefaultIcon.
func ResolveLogo(src string) Logo {
	if strings.HasPrefix(src, "data:image") {
		return Logo{Kind: LogoImage, Value: src}
	}
	if _, ok := Icons[src]; ok {
		return Logo{Kind: LogoIcon, Value: src}
	}
	return Logo{Kind: LogoIcon, Value: DefaultIcon}
}
