package generator

import (
	"strings"

	"github.com/YegorMy/factorygen/struc"
	"github.com/YegorMy/factorygen/unique"
)

// GenerateCreatorAsserts emits compile-time checks of the capability bounds
// the resolution protocol relies on: every auto-creating FK target factory
// must implement the creation capability against the shared resource-handle
// type, and every FK identifier type must carry the sentinel capability.
func (g *Generator) GenerateCreatorAsserts(schema *struc.FactorySchema) string {
	var (
		lines     []string
		seenFact  = map[string]struct{}{}
		seenIdent = map[string]struct{}{}
	)
	for _, field := range schema.Fields {
		if field.Kind != struc.KindForeignKey {
			continue
		}
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		fk := field.Fk
		if !fk.NoDefault {
			if _, ok := seenFact[fk.TargetFactory]; !ok {
				seenFact[fk.TargetFactory] = struct{}{}
				lines = append(lines, "_ "+factoryPkg+".Creator["+schema.Resource+", "+fk.TargetEntity+"] = (*"+fk.TargetFactory+")(nil)")
			}
		}
		idType := g.TypeString(struc.Deoptionalized(field.Type))
		if _, ok := seenIdent[idType]; !ok {
			seenIdent[idType] = struct{}{}
			lines = append(lines, "_ "+factoryPkg+".Sentinel = "+factoryPkg+".SentinelOf["+idType+"]()")
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "// capability checks of the collaborating factories and identifier types\nvar (\n" +
		strings.Join(lines, "\n") + "\n)\n"
}

// GenerateBuildWithFKs emits the asynchronous dependency-resolving assembly:
// one sequential resolution step per FK field in declaration order, then the
// same field-assignment list as Build with FK fields taking their resolved
// binding. The first failed creation aborts the remaining steps and is
// returned to the caller verbatim.
func (g *Generator) GenerateBuildWithFKs(schema *struc.FactorySchema) (string, string) {
	var (
		typeName   = schema.FactoryName
		rec        = TypeReceiverVar(typeName)
		contextPkg = g.AddImport("context", "")
		names      = unique.NewNames(rec, "ctx", "res", "v", "created", "err")
		entityVar  = names.Get("e")
		zero       = schema.EntityName + "{}"
	)

	steps := make([]string, 0)
	assignments := make([]string, 0, len(schema.Fields))
	for _, field := range schema.Fields {
		if field.Kind == struc.KindForeignKey {
			steps = append(steps, g.resolutionStep(rec, zero, field))
		}
		if a := g.buildAssignment(rec, entityVar, field, true); len(a) > 0 {
			assignments = append(assignments, a)
		}
	}

	body := "// BuildWithFKs assembles a " + schema.EntityName + ", auto-creating missing foreign-key\n" +
		"// dependencies through their factories. Dependencies are resolved strictly in\n" +
		"// field declaration order; the first failed creation aborts the rest.\n" +
		"func (" + rec + " *" + typeName + ") BuildWithFKs(ctx " + contextPkg + ".Context, res " + schema.Resource + ") (" + schema.EntityName + ", error) {\n" +
		strings.Join(steps, "") +
		"var " + entityVar + " " + schema.EntityName + "\n" +
		strings.Join(assignments, "") +
		"return " + entityVar + ", nil\n" +
		"}\n"
	return "BuildWithFKs", body
}

// resolutionStep renders the independent resolution of one FK field. Optional
// fields keep a present non-sentinel value and otherwise create (unless
// suppressed, which resolves to absent); non-optional fields create only on
// sentinel.
func (g *Generator) resolutionStep(rec, zero string, field struc.FieldSpec) string {
	var (
		fk          = field.Fk
		resolvedVar = ResolvedVarName(field.Name)
		source      = rec + "." + field.Name
		create      = "created, err := New" + fk.TargetFactory + "().Create(ctx, res)\n" +
			"if err != nil {\n" +
			"return " + zero + ", err\n" +
			"}\n"
	)

	if elem := struc.OptionalElem(field.Type); elem != nil {
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		step := "var " + resolvedVar + " *" + g.TypeString(elem) + "\n" +
			"if v := " + source + "; v != nil && !v.IsSentinel() {\n" +
			resolvedVar + " = " + factoryPkg + ".Ptr(*v)\n"
		if fk.NoDefault {
			// never creates; absent or sentinel stays absent
			return step + "}\n"
		}
		return step + "} else {\n" +
			create +
			resolvedVar + " = " + factoryPkg + ".Ptr(created." + fk.TargetField + ")\n" +
			"}\n"
	}

	// non-optional: creation is unconditional on the suppress marker
	return resolvedVar + " := " + source + "\n" +
		"if " + resolvedVar + ".IsSentinel() {\n" +
		create +
		resolvedVar + " = created." + fk.TargetField + "\n" +
		"}\n"
}
