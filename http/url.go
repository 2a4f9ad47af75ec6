package http

import (
	"fmt"
	"strings"

	"github.com/fwojciec/enrzones"
)

// BaseURL is the root of the NATS eAIP publication.
const BaseURL = "https://www.aurora.nats.co.uk/htmlAIP/Publications"

// DefaultFile is the eAIP page holding the ENR 5.1 tables.
const DefaultFile = "ENR-5.1"

// URLFor returns the address of an eAIP page for an AIRAC cycle, e.g.
//
//	https://www.aurora.nats.co.uk/htmlAIP/Publications/2024-01-25-AIRAC/html/eAIP/EG-ENR-5.1-en-GB.html
func URLFor(airac enrzones.AIRAC, file string) string {
	return PageURL(BaseURL, airac, file)
}

// PageURL is URLFor against another publication root, such as a mirror.
func PageURL(base string, airac enrzones.AIRAC, file string) string {
	if file == "" {
		file = DefaultFile
	}
	return fmt.Sprintf("%s/%s-AIRAC/html/eAIP/EG-%s-en-GB.html", strings.TrimRight(base, "/"), airac, file)
}
