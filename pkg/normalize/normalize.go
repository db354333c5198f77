// Package normalize holds the interpretation rules shared by the validator and
// the analytics engine: base-type extraction from raw column types, business
// rule classification and runtime value kinds.
package normalize

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// UnknownType is reported for columns whose type is empty.
const UnknownType = "UNKNOWN"

// BaseType strips the parametric suffix from a raw column type and upper-cases it.
//
//	BaseType("varchar(100)")  // VARCHAR
//	BaseType("DECIMAL(10,2)") // DECIMAL
func BaseType(raw string) string {
	base := raw
	if i := strings.IndexByte(base, '('); i >= 0 {
		base = base[:i]
	}
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		return UnknownType
	}
	return base
}

// RuleCategory is the classification of a free-text business rule.
type RuleCategory int

const (
	RuleNone RuleCategory = iota
	RuleRequired
	RuleUnique
	RuleAutoGenerated
)

func (c RuleCategory) String() string {
	switch c {
	case RuleRequired:
		return "Required"
	case RuleUnique:
		return "Unique"
	case RuleAutoGenerated:
		return "AutoGenerated"
	default:
		return "None"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c RuleCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// RulePattern maps a set of substrings to a category.
type RulePattern struct {
	Category RuleCategory
	Keywords []string
}

// rulePatterns is evaluated top to bottom; the first pattern with a matching
// keyword decides the category.
var rulePatterns = []RulePattern{
	{Category: RuleRequired, Keywords: []string{"Obrigatório"}},
	{Category: RuleUnique, Keywords: []string{"Único"}},
	{Category: RuleAutoGenerated, Keywords: []string{"Sequencial", "Gerado"}},
}

// RulePatterns returns the classification table in precedence order.
func RulePatterns() []RulePattern {
	out := make([]RulePattern, len(rulePatterns))
	for i, p := range rulePatterns {
		out[i] = RulePattern{Category: p.Category, Keywords: append([]string(nil), p.Keywords...)}
	}
	return out
}

// ClassifyRule classifies a business-rule text. Matching is case-sensitive
// substring matching on the NFC form of the text, so "Obrigatório" typed with a
// combining accent still matches.
func ClassifyRule(rule string) RuleCategory {
	text := norm.NFC.String(rule)
	for _, p := range rulePatterns {
		if containsAny(text, p.Keywords) {
			return p.Category
		}
	}
	return RuleNone
}

// derivedKeywords mark rules whose column value is produced by a system or a
// calculation rather than captured.
var derivedKeywords = []string{"Gerado", "Calculado"}

// IsDerivedRule reports whether a business rule describes a derived value.
// It matches the same way as ClassifyRule.
func IsDerivedRule(rule string) bool {
	return containsAny(norm.NFC.String(rule), derivedKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, norm.NFC.String(kw)) {
			return true
		}
	}
	return false
}

// Kind is the runtime kind of a value supplied for validation.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindText
	KindBool
	KindTime
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "other"
	}
}

// IsNumeric reports whether the kind is integer or float.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// ValueKind returns the kind of v. Nil interfaces and nil pointers are KindNull;
// pointers are dereferenced.
func ValueKind(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNull
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return KindInteger
		}
		return KindFloat
	case time.Time:
		return KindTime
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindNull
		}
		rv = rv.Elem()
	}
	if rv.Type() == reflect.TypeOf(time.Time{}) {
		return KindTime
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInteger
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBool
	default:
		return KindOther
	}
}

// IsNull reports whether v represents SQL NULL.
func IsNull(v any) bool {
	return ValueKind(v) == KindNull
}

// TypeClass is the class of values a column type accepts.
type TypeClass int

const (
	// ClassAny accepts every value. Types without a known keyword fall here.
	ClassAny TypeClass = iota
	ClassInteger
	ClassText
	ClassNumeric
	ClassDate
)

func (c TypeClass) String() string {
	switch c {
	case ClassInteger:
		return "integer"
	case ClassText:
		return "text"
	case ClassNumeric:
		return "numeric"
	case ClassDate:
		return "date"
	default:
		return "any"
	}
}

// typeKeywords is evaluated top to bottom against the upper-cased raw type;
// the first keyword found decides the class.
var typeKeywords = []struct {
	keywords []string
	class    TypeClass
}{
	{keywords: []string{"INT"}, class: ClassInteger},
	{keywords: []string{"VARCHAR"}, class: ClassText},
	{keywords: []string{"DECIMAL", "FLOAT"}, class: ClassNumeric},
	{keywords: []string{"DATE"}, class: ClassDate},
}

// ClassifyType returns the value class a raw column type accepts.
func ClassifyType(raw string) TypeClass {
	upper := strings.ToUpper(raw)
	for _, tk := range typeKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(upper, kw) {
				return tk.class
			}
		}
	}
	return ClassAny
}
