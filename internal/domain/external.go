package domain

import "strings"

// ExternalURL maps an external catalog source name to a detail URL for the
// given id. Unknown sources return an empty string.
func ExternalURL(source, extID string) string {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "bricklink":
		return "https://www.bricklink.com/v2/catalog/catalogitem.page?P=" + extID
	case "brickowl":
		return "https://www.brickowl.com/catalog/lego-part-" + extID
	case "lego":
		return "https://www.lego.com/en-us/pick-and-build/pick-a-brick?query=" + extID
	case "ldraw":
		return "https://library.ldraw.org/library/unofficial/" + extID + ".dat"
	case "brickset":
		return "https://brickset.com/parts/design-" + extID
	}
	return ""
}
