package catalog

import "github.com/tbourn/go-soft-portal/internal/domain"

// Media field names accepted by ApplyUpload.
const (
	FieldLogo        = "logo"
	FieldScreenshots = "screenshots"
)

// ApplyUpload folds one encoded file into draft. A logo replaces the current
// logo; screenshots are appended in completion order. Unknown fields are
// ignored and reported as false.
func ApplyUpload(draft *domain.Software, field, payload string) bool {
	switch field {
	case FieldLogo:
		draft.Logo = payload
	case FieldScreenshots:
		draft.Screenshots = append(draft.Screenshots, payload)
	default:
		return false
	}
	return true
}
