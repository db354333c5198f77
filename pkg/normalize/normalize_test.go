package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "varchar(100)", want: "VARCHAR"},
		{raw: "DECIMAL(10,2)", want: "DECIMAL"},
		{raw: "CHAR(11)", want: "CHAR"},
		{raw: "INT", want: "INT"},
		{raw: " bigint ", want: "BIGINT"},
		{raw: "timestamp (6)", want: "TIMESTAMP"},
		{raw: "", want: UnknownType},
		{raw: "(10)", want: UnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseType(tt.raw))
		})
	}
}

func TestClassifyRule(t *testing.T) {
	tests := []struct {
		name string
		rule string
		want RuleCategory
	}{
		{name: "required", rule: "Obrigatório", want: RuleRequired},
		{name: "unique", rule: "Valor Único por cliente", want: RuleUnique},
		{name: "sequential", rule: "Numérico Sequencial", want: RuleAutoGenerated},
		{name: "generated", rule: "Gerado pelo sistema", want: RuleAutoGenerated},
		{name: "required beats unique", rule: "Único e Obrigatório", want: RuleRequired},
		{name: "unique beats generated", rule: "Gerado, Único", want: RuleUnique},
		{name: "lowercase unique does not match", rule: "Obrigatório e único", want: RuleRequired},
		{name: "decomposed accent", rule: "Obrigato\u0301rio", want: RuleRequired},
		{name: "none", rule: "Valor definido em contrato", want: RuleNone},
		{name: "empty", rule: "", want: RuleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRule(tt.rule))
		})
	}
}

func TestClassifyRule_NeverUniqueWhenRequired(t *testing.T) {
	for _, rule := range []string{
		"Obrigatório Único",
		"Único Obrigatório",
		"Campo Único, Gerado, Obrigatório",
	} {
		assert.Equal(t, RuleRequired, ClassifyRule(rule), rule)
	}
}

func TestIsDerivedRule(t *testing.T) {
	tests := []struct {
		rule string
		want bool
	}{
		{rule: "Gerado pelo sistema", want: true},
		{rule: "Calculado por modelo atuarial", want: true},
		{rule: "Calculado pela ge\u0301rencia", want: true},
		{rule: "Gerado automaticamente, Único", want: true},
		{rule: "Obrigatório", want: false},
		{rule: "gerado pelo sistema", want: false},
		{rule: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDerivedRule(tt.rule))
		})
	}
}

func TestRulePatterns_Precedence(t *testing.T) {
	patterns := RulePatterns()

	assert.Equal(t, []RuleCategory{RuleRequired, RuleUnique, RuleAutoGenerated}, []RuleCategory{
		patterns[0].Category, patterns[1].Category, patterns[2].Category,
	})

	// Returned slices are copies.
	patterns[0].Keywords[0] = "changed"
	assert.Equal(t, RuleRequired, ClassifyRule("Obrigatório"))
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		raw  string
		want TypeClass
	}{
		{raw: "INT", want: ClassInteger},
		{raw: "bigint", want: ClassInteger},
		{raw: "VARCHAR(100)", want: ClassText},
		{raw: "DECIMAL(10,2)", want: ClassNumeric},
		{raw: "FLOAT", want: ClassNumeric},
		{raw: "DATE", want: ClassDate},
		{raw: "DATETIME", want: ClassDate},
		{raw: "CHAR(11)", want: ClassAny},
		{raw: "TEXT", want: ClassAny},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyType(tt.raw))
		})
	}
}

func TestValueKind(t *testing.T) {
	var nilPtr *int
	n := 5

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "nil", value: nil, want: KindNull},
		{name: "nil pointer", value: nilPtr, want: KindNull},
		{name: "int", value: 1, want: KindInteger},
		{name: "uint8", value: uint8(1), want: KindInteger},
		{name: "int pointer", value: &n, want: KindInteger},
		{name: "float", value: 1.5, want: KindFloat},
		{name: "json integer", value: json.Number("12"), want: KindInteger},
		{name: "json float", value: json.Number("1.2"), want: KindFloat},
		{name: "string", value: "x", want: KindText},
		{name: "bool", value: true, want: KindBool},
		{name: "time", value: time.Now(), want: KindTime},
		{name: "slice", value: []int{1}, want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueKind(tt.value))
		})
	}
}
