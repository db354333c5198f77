package ddlparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	ddl := "-- clientes\n" +
		"CREATE TABLE `clientes` (\n" +
		"  `id` INT NOT NULL COMMENT 'Identificador',\n" +
		"  `nome` VARCHAR(100) NOT NULL COMMENT 'Nome do cliente',\n" +
		"  `saldo` DECIMAL(10,2) COMMENT 'Saldo em R$',\n" +
		"  PRIMARY KEY (`id`)\n" +
		");\n\n" +
		"CREATE TABLE `apolices` (\n" +
		"  `cliente_id` INT NOT NULL,\n" +
		"  `numero` VARCHAR(20) NOT NULL COMMENT 'Número d''apólice',\n" +
		"  PRIMARY KEY (`cliente_id`, `numero`)\n" +
		");\n"

	result, err := Check(ddl)
	require.NoError(t, err)

	assert.Equal(t, []string{"clientes", "apolices"}, result.TableNames())

	clientes := result.Table("clientes")
	require.NotNil(t, clientes)
	assert.Equal(t, []Column{
		{Name: "id", Type: "INT"},
		{Name: "nome", Type: "VARCHAR(100)"},
		{Name: "saldo", Type: "DECIMAL(10,2)"},
	}, clientes.Columns)
	assert.Equal(t, []string{"id"}, clientes.PrimaryKey)

	apolices := result.Table("apolices")
	require.NotNil(t, apolices)
	assert.Equal(t, []string{"cliente_id", "numero"}, apolices.PrimaryKey)
	assert.Nil(t, result.Table("sinistros"))
}

func TestCheck_Empty(t *testing.T) {
	result, err := Check("  \n")
	require.NoError(t, err)
	assert.Empty(t, result.Tables)
}

func TestCheck_SyntaxError(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{
			name: "comma after last column",
			ddl:  "CREATE TABLE `t` (\n  `id` INT,\n);\n",
		},
		{
			name: "missing closing parenthesis",
			ddl:  "CREATE TABLE `t` (\n  `id` INT\n;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Check(tt.ddl)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.GreaterOrEqual(t, syntaxErr.Position.Line, int32(2))
			assert.Contains(t, syntaxErr.Error(), "syntax error at line")
		})
	}
}

func TestKeyParts(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{text: "(`id`)", want: []string{"id"}},
		{text: "(`a`,`b`)", want: []string{"a", "b"}},
		{text: "(`a`(10),`b`DESC)", want: []string{"a", "b"}},
		{text: "(id,code_asc)", want: []string{"id", "code_asc"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, keyParts(tt.text))
		})
	}
}

func TestUnqualify(t *testing.T) {
	assert.Equal(t, "t", unqualify("`db`.`t`"))
	assert.Equal(t, "t", unqualify("db.t"))
	assert.Equal(t, "a.b", unqualify("`a.b`"))
	assert.Equal(t, "we`ird", unquote("`we``ird`"))
}
