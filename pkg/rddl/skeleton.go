package rddl

import (
	"embed"
	"io/fs"
	"regexp"
	"sync"
)

//go:embed templates/skeleton.tmpl
var embeddedTemplates embed.FS

// SkeletonTemplateName is the path of the skeleton inside TemplatesFS.
const SkeletonTemplateName = "templates/skeleton.tmpl"

// TemplatesFS exposes the embedded skeleton bundle so template engines can
// load it the same way they load any other template file.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Skeleton returns the fixed template text. The only dynamic constructs in it
// are flat placeholder substitution points; there are no loops, conditionals,
// or nested templates.
func Skeleton() string {
	data, err := fs.ReadFile(embeddedTemplates, SkeletonTemplateName)
	if err != nil {
		// The skeleton is compiled into the binary; a read failure means the
		// embed directive itself is broken.
		panic("rddl: embedded skeleton unavailable: " + err.Error())
	}
	return string(data)
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-z][a-z0-9_]*)`)

var (
	placeholderOnce   sync.Once
	placeholderNames  []string
	placeholderCounts map[string]int
)

func scanPlaceholders() {
	matches := placeholderPattern.FindAllStringSubmatch(Skeleton(), -1)
	placeholderCounts = make(map[string]int, len(matches))
	for _, match := range matches {
		name := match[1]
		if placeholderCounts[name] == 0 {
			placeholderNames = append(placeholderNames, name)
		}
		placeholderCounts[name]++
	}
}

// Placeholders returns the distinct placeholder names in skeleton order.
func Placeholders() []string {
	placeholderOnce.Do(scanPlaceholders)
	out := make([]string, len(placeholderNames))
	copy(out, placeholderNames)
	return out
}

// PlaceholderOccurrences reports how many times a placeholder appears in the
// skeleton. Cross-referenced identifiers such as the domain name occur more
// than once; everything else occurs exactly once.
func PlaceholderOccurrences(name string) int {
	placeholderOnce.Do(scanPlaceholders)
	return placeholderCounts[name]
}
