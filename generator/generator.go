package generator

import (
	"bytes"
	"go/format"
	"go/types"

	"github.com/pkg/errors"

	"github.com/YegorMy/factorygen/logger"
)

// RuntimePkgPath is the runtime package every generated unit links against.
const RuntimePkgPath = "github.com/YegorMy/factorygen/factory"

// Generator accumulates the synthesized fragments of one factory declaration
// and renders them as a single formatted Go file. Fragments are produced
// independently from the shared schema and concatenated in added order.
type Generator struct {
	name       string
	outPkgName string
	outPkgPath string

	imports     map[string]string // import path to the name used in code
	importOrder []string
	usedNames   map[string]string // name in code to import path

	decls   []string
	methods map[string]struct{}
	body    bytes.Buffer
}

func New(name, outPkgName, outPkgPath string) *Generator {
	return &Generator{
		name:       name,
		outPkgName: outPkgName,
		outPkgPath: outPkgPath,
		imports:    map[string]string{},
		usedNames:  map[string]string{},
		methods:    map[string]struct{}{},
	}
}

// AddImport registers an import and returns the package name to qualify
// identifiers with. One import per path regardless of how many fragments
// need it; a name conflict gets a numbered alias.
func (g *Generator) AddImport(path, alias string) string {
	if used, ok := g.imports[path]; ok {
		return used
	}
	name := alias
	if len(name) == 0 {
		name = packagePathToName(path)
	}
	base := name
	for i := 1; ; i++ {
		if _, taken := g.usedNames[name]; !taken {
			break
		}
		name = base + itoa(i)
	}
	g.imports[path] = name
	g.usedNames[name] = path
	g.importOrder = append(g.importOrder, path)
	return name
}

// AddMethod appends a generated method body, rejecting duplicates.
func (g *Generator) AddMethod(typeName, methodName, body string) error {
	key := typeName + "." + methodName
	if _, ok := g.methods[key]; ok {
		return errors.Errorf("duplicated method %s", key)
	}
	g.methods[key] = struct{}{}
	logger.Debugf("add method %s", key)
	g.body.WriteString(body)
	g.body.WriteString("\n")
	return nil
}

// AddDecl appends a top-level declaration emitted before the methods.
func (g *Generator) AddDecl(body string) {
	g.decls = append(g.decls, body)
}

// TypeString renders a type relative to the output package, registering
// imports for every foreign package it mentions.
func (g *Generator) TypeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p.Path() == g.outPkgPath {
			return ""
		}
		return g.AddImport(p.Path(), "")
	})
}

// Src renders the whole generated unit, unformatted.
func (g *Generator) Src() []byte {
	out := bytes.Buffer{}
	out.WriteString("// Code generated by " + g.name + "; DO NOT EDIT.\n\n")
	out.WriteString("package " + g.outPkgName + "\n\n")
	if len(g.importOrder) > 0 {
		out.WriteString("import (\n")
		for _, path := range g.importOrder {
			name := g.imports[path]
			if name == packagePathToName(path) {
				out.WriteString("\"" + path + "\"\n")
			} else {
				out.WriteString(name + " \"" + path + "\"\n")
			}
		}
		out.WriteString(")\n\n")
	}
	for _, d := range g.decls {
		out.WriteString(d)
		out.WriteString("\n")
	}
	out.Write(g.body.Bytes())
	return out.Bytes()
}

// FormatSrc renders the generated unit through go/format. A formatting error
// reports the raw source to ease debugging of the emitters.
func (g *Generator) FormatSrc() ([]byte, error) {
	src := g.Src()
	fmtSrc, err := format.Source(src)
	if err != nil {
		return src, errors.Wrap(err, "format generated source")
	}
	return fmtSrc, nil
}
