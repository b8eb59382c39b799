package tagutil

import (
	"reflect"
	"sync"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
)

// FieldTag captures effective per-field naming attributes compiled into shape descriptors.
type FieldTag struct {
	Name     string
	Explicit bool
	Ignore   bool
	Nullable bool
}

type cachedFormatTag struct {
	name       string
	caseFormat string
	ignore     bool
	nullable   bool
}

var formatTagCache sync.Map // map[string]cachedFormatTag

// ResolveFieldTag resolves precedence among json and format tags.
// Precedence:
// 1) json explicit name/transient wins over format name/case.
// 2) ignore is enabled by json:"-" or internal:"true" or format:"ignore=true".
// 3) nullable is enabled by format:"nullable=true".
func ResolveFieldTag(sf reflect.StructField) FieldTag {
	jTag := ParseJSONTag(sf.Name, sf.Tag.Get("json"))
	ret := FieldTag{
		Name:     jTag.Name,
		Explicit: jTag.Explicit,
		Ignore:   jTag.Transient || sf.Tag.Get("internal") == "true",
	}
	cached, ok := loadCachedFormatTag(string(sf.Tag))
	if !ok {
		return ret
	}
	ret.Ignore = ret.Ignore || cached.ignore
	ret.Nullable = cached.nullable
	if !jTag.Explicit && (cached.name != "" || cached.caseFormat != "") {
		tag := &format.Tag{Name: cached.name, CaseFormat: cached.caseFormat}
		if tag.Name == "" {
			tag.Name = jTag.Name
		}
		if name := tag.CaseFormatName(""); name != "" {
			ret.Name = name
			ret.Explicit = true
		}
	}
	return ret
}

// FormatName formats go field name with supplied case format
func FormatName(fieldName string, caseFormat text.CaseFormat) string {
	if caseFormat == "" {
		return fieldName
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}

func loadCachedFormatTag(rawTag string) (cachedFormatTag, bool) {
	if v, ok := formatTagCache.Load(rawTag); ok {
		cached := v.(cachedFormatTag)
		return cached, cached != cachedFormatTag{}
	}
	tag, err := format.Parse(reflect.StructTag(rawTag))
	if err != nil || tag == nil {
		formatTagCache.Store(rawTag, cachedFormatTag{})
		return cachedFormatTag{}, false
	}
	cached := cachedFormatTag{
		name:       tag.Name,
		caseFormat: tag.CaseFormat,
		ignore:     tag.Ignore,
	}
	if tag.Nullable != nil {
		cached.nullable = *tag.Nullable
	}
	formatTagCache.Store(rawTag, cached)
	return cached, cached != cachedFormatTag{}
}
