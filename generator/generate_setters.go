package generator

import (
	"github.com/m4gshm/gollections/op"

	"github.com/YegorMy/factorygen/struc"
	"github.com/YegorMy/factorygen/unique"
)

// GenerateNew emits the default-valued factory constructor.
func (g *Generator) GenerateNew(schema *struc.FactorySchema) (string, string) {
	typeName := schema.FactoryName
	name := "New" + typeName
	body := "// " + name + " returns a " + typeName + " with default values.\n" +
		"func " + name + "() *" + typeName + " {\n" +
		"return &" + typeName + "{}\n" +
		"}\n"
	return name, body
}

// GenerateFkSetters emits the two setters of one FK field: an entity-accepting
// one copying the descriptor's target field and an identifier-accepting one.
func (g *Generator) GenerateFkSetters(schema *struc.FactorySchema, field struc.FieldSpec) ([]string, []string) {
	var (
		typeName = schema.FactoryName
		rec      = TypeReceiverVar(typeName)
		fk       = field.Fk
		optional = struc.IsOptional(field.Type)
		idType   = g.TypeString(struc.Deoptionalized(field.Type))
		sign     = "func (" + rec + " *" + typeName + ") "
	)

	wrap := func(expr string) string {
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		return op.IfElse(optional, factoryPkg+".Ptr("+expr+")", expr)
	}

	entityMethod := EntitySetterName(field.Name)
	entityBody := "// " + entityMethod + " sets the foreign key from an entity reference.\n" +
		sign + entityMethod + "(entity *" + fk.TargetEntity + ") *" + typeName + " {\n" +
		rec + "." + field.Name + " = " + wrap("entity."+fk.TargetField) + "\n" +
		"return " + rec + "\n" +
		"}\n"

	idMethod := SetterName(field.Name)
	idBody := "// " + idMethod + " sets the foreign key identifier directly.\n" +
		sign + idMethod + "(id " + idType + ") *" + typeName + " {\n" +
		rec + "." + field.Name + " = " + wrap("id") + "\n" +
		"return " + rec + "\n" +
		"}\n"

	return []string{entityMethod, idMethod}, []string{entityBody, idBody}
}

// GenerateScalarSetter emits the single setter of a non-FK field. The
// argument is the unwrapped value; optional-shaped fields store it wrapped
// present.
func (g *Generator) GenerateScalarSetter(schema *struc.FactorySchema, field struc.FieldSpec) (string, string) {
	var (
		typeName = schema.FactoryName
		rec      = TypeReceiverVar(typeName)
		optional = struc.IsOptional(field.Type)
		argType  = g.TypeString(struc.Deoptionalized(field.Type))
		names    = unique.NewNames(rec)
		arg      = names.Get(ArgName(field.Name))
	)

	value := arg
	if optional {
		factoryPkg := g.AddImport(RuntimePkgPath, "")
		value = factoryPkg + ".Ptr(" + arg + ")"
	}

	method := SetterName(field.Name)
	body := "// " + method + " sets the " + field.Name + " field value.\n" +
		"func (" + rec + " *" + typeName + ") " + method + "(" + arg + " " + argType + ") *" + typeName + " {\n" +
		rec + "." + field.Name + " = " + value + "\n" +
		"return " + rec + "\n" +
		"}\n"
	return method, body
}
