package params

import (
	"flag"

	"github.com/m4gshm/flag/flagenum"
)

const (
	Name                = "factorygen"
	DefaultFileSuffix   = "_" + "factory" + ".go"
	CommentConfigPrefix = "go:" + Name
)

// Content selects which fragments are emitted for a factory.
type Content string

const (
	ContentSetters Content = "setters"
	ContentBuild   Content = "build"
	ContentResolve Content = "build-with-fks"
	ContentAsserts Content = "asserts"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

// Config of one generation pass. A pass is configured either by command-line
// flags or by a //go:factorygen comment directive next to the factory type;
// both are parsed by the same flag set.
type Config struct {
	Type           *string
	Entity         *string
	Resource       *string
	Output         *string
	PackagePattern *string
	BuildTags      *[]string
	Gen            *[]Content
	Debug          *bool
}

func NewConfig(flagSet *flag.FlagSet) *Config {
	allContent := []Content{ContentSetters, ContentBuild, ContentResolve, ContentAsserts}
	gen, err := flagenum.Multiple(flagSet, "gen", allContent, allContent,
		fromString[Content], toString[Content], "generated content")
	if err != nil {
		panic(err)
	}
	return &Config{
		Type:           flagSet.String("type", "", "factory struct type name; must be set"),
		Entity:         flagSet.String("entity", "", "entity type the factory builds; must be set"),
		Resource:       flagSet.String("resource", "any", "resource-handle type of the generated BuildWithFKs method"),
		Output:         flagSet.String("out", "", "output file name; default srcdir/<type>"+DefaultFileSuffix),
		PackagePattern: flagSet.String("package", ".", "used package"),
		BuildTags:      MultiVal(flagSet, "buildTag", []string{Name}, "include build tag"),
		Gen:            gen,
		Debug:          flagSet.Bool("debug", false, "enable debug logging"),
	}
}

// Selected reports whether a content kind was requested for generation.
func (c *Config) Selected(content Content) bool {
	if c.Gen == nil {
		return true
	}
	for _, g := range *c.Gen {
		if g == content {
			return true
		}
	}
	return false
}
