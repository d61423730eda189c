package generator

import (
	"strings"

	"github.com/YegorMy/factorygen/struc"
	"github.com/YegorMy/factorygen/unique"
)

// GenerateBuild emits the synchronous in-memory assembly. No creation
// capability is consulted: FK fields are taken as currently held.
func (g *Generator) GenerateBuild(schema *struc.FactorySchema) (string, string) {
	var (
		typeName  = schema.FactoryName
		rec       = TypeReceiverVar(typeName)
		names     = unique.NewNames(rec)
		entityVar = names.Get("e")
	)

	assignments := make([]string, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		if a := g.buildAssignment(rec, entityVar, field, false); len(a) > 0 {
			assignments = append(assignments, a)
		}
	}

	body := "// Build assembles a " + schema.EntityName + " in memory without creating any\n" +
		"// dependency. It panics if a required field was not set.\n" +
		"func (" + rec + " *" + typeName + ") Build() " + schema.EntityName + " {\n" +
		"var " + entityVar + " " + schema.EntityName + "\n" +
		strings.Join(assignments, "") +
		"return " + entityVar + "\n" +
		"}\n"
	return "Build", body
}

// buildAssignment renders the assignment of one field per its category:
// primary keys keep the zero value, optional values are duplicated, required
// markers unwrap or stop, everything else is copied or cloned per shape.
// With resolved set, FK fields take their resolution variable instead.
func (g *Generator) buildAssignment(rec, entityVar string, field struc.FieldSpec, resolved bool) string {
	target := entityVar + "." + field.Name + " = "
	source := rec + "." + field.Name

	switch field.Kind {
	case struc.KindPrimaryKey:
		// zero value stands for the entity default
		return ""
	case struc.KindForeignKey:
		if resolved {
			return target + ResolvedVarName(field.Name) + "\n"
		}
		if struc.IsOptional(field.Type) {
			factoryPkg := g.AddImport(RuntimePkgPath, "")
			return target + factoryPkg + ".Clone(" + source + ")\n"
		}
		return target + g.cloneExpr(source, field) + "\n"
	}

	if field.Required {
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		return target + factoryPkg + ".MustSet(" + source + ", \"" + field.Name + "\", \"" + SetterName(field.Name) + "\")\n"
	}
	if struc.IsOptional(field.Type) {
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		return target + factoryPkg + ".Clone(" + source + ")\n"
	}
	return target + g.cloneExpr(source, field) + "\n"
}

func (g *Generator) cloneExpr(source string, field struc.FieldSpec) string {
	switch struc.CloneModeOf(field.Type) {
	case struc.CloneSlice:
		slicesPkg := g.AddImport("slices", "")
		return slicesPkg + ".Clone(" + source + ")"
	case struc.CloneMap:
		mapsPkg := g.AddImport("maps", "")
		return mapsPkg + ".Clone(" + source + ")"
	}
	return source
}
