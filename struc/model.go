package struc

import (
	"go/types"

	"github.com/YegorMy/factorygen/logger"
	"github.com/YegorMy/factorygen/use"
)

// FieldKind is the semantic category of a factory field. Exactly one kind
// applies per field.
type FieldKind int

const (
	KindPrimaryKey FieldKind = iota
	KindForeignKey
	KindOptionalScalar
	KindRequiredScalar
)

// FkDescriptor is the parsed fk tag of one field.
type FkDescriptor struct {
	TargetEntity  string
	TargetField   string
	TargetFactory string
	NoDefault     bool
}

// FieldSpec is one classified factory field, declaration shape untouched.
type FieldSpec struct {
	Name string
	Type types.Type
	Kind FieldKind
	Fk   *FkDescriptor
	// Required marks a declared-optional field whose entity counterpart is
	// not optional; assembly unwraps it or stops.
	Required bool
}

// FactorySchema is the validated, immutable model of one factory
// declaration. Built once, consumed within a single generation pass.
type FactorySchema struct {
	FactoryName string
	EntityName  string
	Resource    string
	PackageName string
	PackagePath string
	EntityType  types.Type
	Fields      []FieldSpec
}

// Categories is the deterministic partition of the field list. Declaration
// order is kept within every set; it is also the emission and FK resolution
// order.
type Categories struct {
	Pk       []FieldSpec
	Fk       []FieldSpec
	Optional []FieldSpec
	Required []FieldSpec
}

func (s *FactorySchema) Categorize() Categories {
	var c Categories
	for _, f := range s.Fields {
		switch f.Kind {
		case KindPrimaryKey:
			c.Pk = append(c.Pk, f)
		case KindForeignKey:
			c.Fk = append(c.Fk, f)
		case KindOptionalScalar:
			c.Optional = append(c.Optional, f)
		case KindRequiredScalar:
			c.Required = append(c.Required, f)
		}
	}
	return c
}

// New builds the schema of the named factory type against the loaded
// package. All malformed-declaration paths end here with a diagnostic; no
// partial schema is returned.
func New(pkg *types.Package, factoryName, entityName, resource string) (*FactorySchema, error) {
	factoryStruct, err := lookupStruct(pkg, factoryName)
	if err != nil {
		return nil, err
	}
	if _, err = lookupStruct(pkg, entityName); err != nil {
		return nil, err
	}

	schema := &FactorySchema{
		FactoryName: factoryName,
		EntityName:  entityName,
		Resource:    resource,
		PackageName: pkg.Name(),
		PackagePath: pkg.Path(),
		EntityType:  pkg.Scope().Lookup(entityName).Type(),
	}

	numFields := factoryStruct.NumFields()
	for i := 0; i < numFields; i++ {
		v := factoryStruct.Field(i)
		if v.Embedded() {
			return nil, use.FieldErr("embedded fields are not supported in factory declarations", factoryName, v.Name())
		}
		spec, err := classifyField(pkg, factoryName, v, factoryStruct.Tag(i))
		if err != nil {
			return nil, err
		}
		if spec.Kind == KindForeignKey {
			if err := checkFkTarget(pkg, factoryName, spec); err != nil {
				return nil, err
			}
		}
		schema.Fields = append(schema.Fields, *spec)
	}

	logger.Debugw("factory schema", "factory", factoryName, "entity", entityName, "fields", len(schema.Fields))
	return schema, nil
}

func lookupStruct(pkg *types.Package, typeName string) (*types.Struct, error) {
	obj := pkg.Scope().Lookup(typeName)
	if obj == nil {
		return nil, use.Err("type not found in package " + pkg.Path() + ": " + typeName)
	}
	s, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, use.Err("type is not a struct: " + typeName)
	}
	return s, nil
}

func classifyField(pkg *types.Package, factoryName string, v *types.Var, tag string) (*FieldSpec, error) {
	tagValues, _ := ParseTags(tag)
	marker, hasMarker := tagValues[TagFactory]
	fkValue, hasFk := tagValues[TagFk]

	spec := &FieldSpec{Name: v.Name(), Type: v.Type()}
	switch {
	case hasFk:
		if hasMarker {
			return nil, use.FieldErr("fk tag cannot be combined with the '"+marker+"' marker", factoryName, v.Name())
		}
		fk, err := ParseFkTag(fkValue, factoryName, v.Name())
		if err != nil {
			return nil, err
		}
		spec.Kind = KindForeignKey
		spec.Fk = fk
	case hasMarker && marker == MarkerPk:
		spec.Kind = KindPrimaryKey
	case hasMarker && marker == MarkerRequired:
		if !IsOptional(v.Type()) {
			return nil, use.FieldErr("the "+MarkerRequired+" marker expects an optional (pointer) field", factoryName, v.Name())
		}
		spec.Kind = KindRequiredScalar
		spec.Required = true
	case hasMarker:
		return nil, use.FieldErr("unknown factory marker '"+marker+"'", factoryName, v.Name())
	case IsOptional(v.Type()):
		spec.Kind = KindOptionalScalar
	default:
		spec.Kind = KindRequiredScalar
	}
	return spec, nil
}

// checkFkTarget verifies the single precondition the descriptor implies: the
// target entity exists and exposes the named field with the de-optionalized
// shape of the factory field, and the target factory type exists. Anything
// beyond that is the collaborators' concern.
func checkFkTarget(pkg *types.Package, factoryName string, spec *FieldSpec) error {
	fk := spec.Fk
	targetStruct, err := lookupStruct(pkg, fk.TargetEntity)
	if err != nil {
		return use.FieldErr("fk target entity: "+err.Error(), factoryName, spec.Name)
	}
	if _, lookupErr := lookupStruct(pkg, fk.TargetFactory); lookupErr != nil {
		return use.FieldErr("fk target factory: "+lookupErr.Error(), factoryName, spec.Name)
	}

	want := Deoptionalized(spec.Type)
	for i := 0; i < targetStruct.NumFields(); i++ {
		f := targetStruct.Field(i)
		if f.Name() != fk.TargetField {
			continue
		}
		if !types.Identical(f.Type(), want) {
			return use.FieldErr("fk target field "+fk.TargetEntity+"."+fk.TargetField+" has type "+f.Type().String()+
				", want "+want.String(), factoryName, spec.Name)
		}
		return nil
	}
	return use.FieldErr("fk target entity "+fk.TargetEntity+" has no field "+fk.TargetField, factoryName, spec.Name)
}
