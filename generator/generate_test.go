package generator

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YegorMy/factorygen/struc"
)

// patientSchema is a hand-built schema covering every field category: pk,
// plain FK, suppressed optional FK, required marker, optional scalar and a
// cloned slice.
func patientSchema() *struc.FactorySchema {
	pkg := types.NewPackage("example.com/clinic", "clinic")
	named := func(name string, underlying types.Type) types.Type {
		tn := types.NewTypeName(token.NoPos, pkg, name, nil)
		n := types.NewNamed(tn, underlying, nil)
		pkg.Scope().Insert(tn)
		return n
	}
	practiceID := named("PracticeID", types.Typ[types.Int64])
	providerID := named("ProviderID", types.Typ[types.Int64])
	patientID := named("PatientID", types.Typ[types.Int64])

	return &struc.FactorySchema{
		FactoryName: "PatientFactory",
		EntityName:  "Patient",
		Resource:    "*Store",
		PackageName: "clinic",
		PackagePath: "example.com/clinic",
		Fields: []struc.FieldSpec{
			{Name: "ID", Type: patientID, Kind: struc.KindPrimaryKey},
			{Name: "PracticeID", Type: practiceID, Kind: struc.KindForeignKey,
				Fk: &struc.FkDescriptor{TargetEntity: "Practice", TargetField: "ID", TargetFactory: "PracticeFactory"}},
			{Name: "ReferrerID", Type: types.NewPointer(providerID), Kind: struc.KindForeignKey,
				Fk: &struc.FkDescriptor{TargetEntity: "Provider", TargetField: "ID", TargetFactory: "ProviderFactory", NoDefault: true}},
			{Name: "Name", Type: types.NewPointer(types.Typ[types.String]), Kind: struc.KindRequiredScalar, Required: true},
			{Name: "Email", Type: types.NewPointer(types.Typ[types.String]), Kind: struc.KindOptionalScalar},
			{Name: "Tags", Type: types.NewSlice(types.Typ[types.String]), Kind: struc.KindRequiredScalar},
		},
	}
}

func newTestGenerator(schema *struc.FactorySchema) *Generator {
	return New("factorygen", schema.PackageName, schema.PackagePath)
}

func Test_GenerateNew(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	name, body := g.GenerateNew(schema)

	assert.Equal(t, "NewPatientFactory", name)
	assert.Contains(t, body, "func NewPatientFactory() *PatientFactory {")
	assert.Contains(t, body, "return &PatientFactory{}")
}

func Test_GenerateFkSetters(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	names, bodies := g.GenerateFkSetters(schema, schema.Fields[1])

	assert.Equal(t, []string{"WithPractice", "WithPracticeID"}, names)
	assert.Contains(t, bodies[0], "func (p *PatientFactory) WithPractice(entity *Practice) *PatientFactory {")
	assert.Contains(t, bodies[0], "p.PracticeID = entity.ID")
	assert.Contains(t, bodies[1], "func (p *PatientFactory) WithPracticeID(id PracticeID) *PatientFactory {")
	assert.Contains(t, bodies[1], "p.PracticeID = id")
}

func Test_GenerateFkSetters_OptionalShape(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	names, bodies := g.GenerateFkSetters(schema, schema.Fields[2])

	assert.Equal(t, []string{"WithReferrer", "WithReferrerID"}, names)
	assert.Contains(t, bodies[0], "p.ReferrerID = factory.Ptr(entity.ID)")
	assert.Contains(t, bodies[1], "WithReferrerID(id ProviderID)")
	assert.Contains(t, bodies[1], "p.ReferrerID = factory.Ptr(id)")
}

func Test_GenerateScalarSetter(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	name, body := g.GenerateScalarSetter(schema, schema.Fields[3])
	assert.Equal(t, "WithName", name)
	assert.Contains(t, body, "WithName(name string)")
	assert.Contains(t, body, "p.Name = factory.Ptr(name)")

	name, body = g.GenerateScalarSetter(schema, schema.Fields[5])
	assert.Equal(t, "WithTags", name)
	assert.Contains(t, body, "WithTags(tags []string)")
	assert.Contains(t, body, "p.Tags = tags")
}

func Test_GenerateBuild(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	name, body := g.GenerateBuild(schema)

	assert.Equal(t, "Build", name)
	assert.Contains(t, body, "func (p *PatientFactory) Build() Patient {")
	assert.NotContains(t, body, "e.ID")
	assert.Contains(t, body, "e.PracticeID = p.PracticeID")
	assert.Contains(t, body, "e.ReferrerID = factory.Clone(p.ReferrerID)")
	assert.Contains(t, body, "e.Name = factory.MustSet(p.Name, \"Name\", \"WithName\")")
	assert.Contains(t, body, "e.Email = factory.Clone(p.Email)")
	assert.Contains(t, body, "e.Tags = slices.Clone(p.Tags)")
}

func Test_GenerateBuildWithFKs(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	name, body := g.GenerateBuildWithFKs(schema)

	assert.Equal(t, "BuildWithFKs", name)
	assert.Contains(t, body, "func (p *PatientFactory) BuildWithFKs(ctx context.Context, res *Store) (Patient, error) {")

	assert.Contains(t, body, "resolvedPracticeID := p.PracticeID")
	assert.Contains(t, body, "if resolvedPracticeID.IsSentinel() {")
	assert.Contains(t, body, "NewPracticeFactory().Create(ctx, res)")
	assert.Contains(t, body, "return Patient{}, err")

	assert.Contains(t, body, "var resolvedReferrerID *ProviderID")
	assert.Contains(t, body, "if v := p.ReferrerID; v != nil && !v.IsSentinel() {")
	assert.NotContains(t, body, "NewProviderFactory", "suppressed FK must never create")

	assert.Contains(t, body, "e.PracticeID = resolvedPracticeID")
	assert.Contains(t, body, "e.ReferrerID = resolvedReferrerID")
}

func Test_GenerateCreatorAsserts(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	asserts := g.GenerateCreatorAsserts(schema)

	assert.Contains(t, asserts, "_ factory.Creator[*Store, Practice] = (*PracticeFactory)(nil)")
	assert.Contains(t, asserts, "_ factory.Sentinel = factory.SentinelOf[PracticeID]()")
	assert.Contains(t, asserts, "factory.SentinelOf[ProviderID]()")
	assert.NotContains(t, asserts, "(*ProviderFactory)", "suppressed FK needs no creation capability")
}

func Test_GenerateCreatorAsserts_NoFk(t *testing.T) {
	schema := patientSchema()
	schema.Fields = schema.Fields[3:]
	g := newTestGenerator(schema)

	assert.Empty(t, g.GenerateCreatorAsserts(schema))
}

func Test_AddMethod_Duplicate(t *testing.T) {
	g := New("factorygen", "clinic", "example.com/clinic")

	require.NoError(t, g.AddMethod("PatientFactory", "Build", "func (p *PatientFactory) Build() {}\n"))
	assert.ErrorContains(t, g.AddMethod("PatientFactory", "Build", "dup"), "duplicated method")
}

func Test_FormatSrc_WholeUnit(t *testing.T) {
	schema := patientSchema()
	g := newTestGenerator(schema)

	if asserts := g.GenerateCreatorAsserts(schema); len(asserts) > 0 {
		g.AddDecl(asserts)
	}
	name, body := g.GenerateNew(schema)
	require.NoError(t, g.AddMethod(schema.FactoryName, name, body))
	categories := schema.Categorize()
	for _, field := range categories.Fk {
		names, bodies := g.GenerateFkSetters(schema, field)
		for i := range names {
			require.NoError(t, g.AddMethod(schema.FactoryName, names[i], bodies[i]))
		}
	}
	for _, field := range append(categories.Optional, categories.Required...) {
		setterName, setterBody := g.GenerateScalarSetter(schema, field)
		require.NoError(t, g.AddMethod(schema.FactoryName, setterName, setterBody))
	}
	name, body = g.GenerateBuild(schema)
	require.NoError(t, g.AddMethod(schema.FactoryName, name, body))
	name, body = g.GenerateBuildWithFKs(schema)
	require.NoError(t, g.AddMethod(schema.FactoryName, name, body))

	src, err := g.FormatSrc()

	require.NoError(t, err, "emitted source must be parseable: %s", g.Src())
	out := string(src)
	assert.Contains(t, out, "// Code generated by factorygen; DO NOT EDIT.")
	assert.Contains(t, out, "package clinic")
	assert.Contains(t, out, "\"context\"")
	assert.Contains(t, out, "\"github.com/YegorMy/factorygen/factory\"")
	assert.Contains(t, out, "\"slices\"")
}
