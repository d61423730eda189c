package struc

import (
	"strings"

	"github.com/YegorMy/factorygen/use"
)

const (
	// TagFactory carries the pk and required markers.
	TagFactory = "factory"
	// TagFk carries the foreign-key descriptor.
	TagFk = "fk"

	MarkerPk       = "pk"
	MarkerRequired = "required"

	// FkSuppressMarker disables auto-creation for an FK field.
	FkSuppressMarker = "no_default"

	ListValuesSeparator = ","
)

type TagName = string
type TagValue = string

// ParseTags splits a raw struct tag into name/value pairs, declaration order
// preserved.
func ParseTags(tags string) (map[TagName]TagValue, []TagName) {
	tagNames := make([]TagName, 0)
	tagValues := make(map[TagName]TagValue)

	var prevTagPos int
	tagValueLen := len(tags)
	for pos := 0; pos < tagValueLen; pos++ {
		character := rune(tags[pos])
		switch character {
		case '`', ' ':
			prevTagPos = pos + 1
		case ':':
			tagName := TagName(tags[prevTagPos:pos])

			//parse TagValue
			pos++

			character = rune(tags[pos])
			tagValueBorder := '"'
			findEndBorder := false
			if character == tagValueBorder {
				pos++
				findEndBorder = true
			}
			tagDelim := ' '

			var endValuePos int
			for endValuePos = pos; endValuePos < tagValueLen; endValuePos++ {
				character = rune(tags[endValuePos])
				if findEndBorder && character == tagValueBorder {
					break
				} else if character == tagDelim {
					break
				}
			}

			tagValues[tagName] = tags[pos:endValuePos]
			tagNames = append(tagNames, tagName)

			prevTagPos = endValuePos
			pos = prevTagPos
		}
	}
	return tagValues, tagNames
}

// ParseFkTag parses the fk descriptor value: three required positional
// arguments (target entity, target field, target factory) and the optional
// no_default suppress marker. Anything else is a generation-time diagnostic.
func ParseFkTag(value, typeName, fieldName string) (*FkDescriptor, error) {
	parts := strings.Split(value, ListValuesSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 || len(parts) > 4 {
		return nil, use.FieldErr("fk tag expects 'Entity,Field,Factory[,"+FkSuppressMarker+"]', got '"+value+"'", typeName, fieldName)
	}
	for _, p := range parts[:3] {
		if len(p) == 0 {
			return nil, use.FieldErr("fk tag has a blank argument: '"+value+"'", typeName, fieldName)
		}
	}
	fk := &FkDescriptor{TargetEntity: parts[0], TargetField: parts[1], TargetFactory: parts[2]}
	if len(parts) == 4 {
		if parts[3] != FkSuppressMarker {
			return nil, use.FieldErr("unexpected fk tag argument '"+parts[3]+"', only "+FkSuppressMarker+" is recognized", typeName, fieldName)
		}
		fk.NoDefault = true
	}
	return fk, nil
}
