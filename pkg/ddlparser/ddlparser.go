// Package ddlparser parses MySQL DDL scripts with the ANTLR MySQL grammar and
// reports the tables they create. It is used to check generated DDL.
package ddlparser

import (
	"log/slog"
	"strings"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/gedhean/mysql-parser"
	"github.com/pkg/errors"
)

// Column is a column declared in a CREATE TABLE statement.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Table is the outline of one CREATE TABLE statement.
type Table struct {
	Name       string   `json:"name"       yaml:"name"`
	Columns    []Column `json:"columns"    yaml:"columns"`
	PrimaryKey []string `json:"primaryKey" yaml:"primaryKey"`
}

// Result lists the tables created by a script, in script order.
type Result struct {
	Tables []*Table `json:"tables" yaml:"tables"`
}

// Table returns the table named name, or nil.
func (r *Result) Table(name string) *Table {
	for _, t := range r.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TableNames returns the created table names in script order.
func (r *Result) TableNames() []string {
	names := make([]string, 0, len(r.Tables))
	for _, t := range r.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Check parses ddl. Syntax errors are returned as *SyntaxError.
func Check(ddl string) (*Result, error) {
	slog.Debug("Parsing DDL", "size", len(ddl))
	if strings.TrimSpace(ddl) == "" {
		return &Result{}, nil
	}

	input := antlr.NewInputStream(ddl)
	lexer := mysql.NewMySQLLexer(input)
	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	p := mysql.NewMySQLParser(stream)

	lexerErrors := newParseErrorListener()
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(lexerErrors)

	parserErrors := newParseErrorListener()
	p.RemoveErrorListeners()
	p.AddErrorListener(parserErrors)

	p.BuildParseTrees = true
	tree := p.Script()

	if lexerErrors.Err != nil {
		return nil, lexerErrors.Err
	}
	if parserErrors.Err != nil {
		return nil, parserErrors.Err
	}

	listener := &createTableListener{result: &Result{}}
	antlr.ParseTreeWalkerDefault.Walk(listener, tree)
	if listener.err != nil {
		return nil, listener.err
	}
	slog.Debug("Parsed DDL", "tables", len(listener.result.Tables))
	return listener.result, nil
}

type createTableListener struct {
	*mysql.BaseMySQLParserListener

	result *Result
	err    error
}

// EnterCreateTable is called when production createTable is entered.
func (l *createTableListener) EnterCreateTable(ctx *mysql.CreateTableContext) {
	if l.err != nil {
		return
	}
	if ctx.TableName() == nil {
		l.err = errors.Errorf("CREATE TABLE without a name at line %d", ctx.GetStart().GetLine())
		return
	}

	table := &Table{
		Name:       unqualify(ctx.TableName().GetText()),
		Columns:    []Column{},
		PrimaryKey: []string{},
	}
	l.result.Tables = append(l.result.Tables, table)

	if ctx.TableElementList() == nil {
		return
	}
	for _, element := range ctx.TableElementList().AllTableElement() {
		switch {
		case element.ColumnDefinition() != nil:
			def := element.ColumnDefinition()
			if def.ColumnName() == nil || def.FieldDefinition() == nil {
				continue
			}
			column := Column{Name: unquote(def.ColumnName().GetText())}
			if def.FieldDefinition().DataType() != nil {
				column.Type = strings.ToUpper(def.FieldDefinition().DataType().GetText())
			}
			table.Columns = append(table.Columns, column)
		case element.TableConstraintDef() != nil:
			constraint := element.TableConstraintDef()
			if constraint.GetType_() == nil || constraint.GetType_().GetTokenType() != mysql.MySQLParserPRIMARY_SYMBOL {
				continue
			}
			if constraint.KeyListVariants() == nil {
				continue
			}
			table.PrimaryKey = append(table.PrimaryKey, keyParts(constraint.KeyListVariants().GetText())...)
		}
	}
}

// keyParts splits the text of a key list such as "(`a`,`b`(10))" into
// column names.
func keyParts(text string) []string {
	text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")
	var parts []string
	depth, start := 0, 0
	for i, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, keyPartName(text[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, keyPartName(text[start:]))
}

func keyPartName(part string) string {
	if i := strings.IndexByte(part, '('); i >= 0 {
		part = part[:i]
	}
	upper := strings.ToUpper(part)
	for _, suffix := range []string{"ASC", "DESC"} {
		if !strings.HasSuffix(upper, suffix) {
			continue
		}
		if trimmed := part[:len(part)-len(suffix)]; strings.HasSuffix(trimmed, "`") {
			part = trimmed
			break
		}
	}
	return unquote(part)
}

func unqualify(name string) string {
	if i := strings.LastIndex(name, "`.`"); i >= 0 {
		return unquote(name[i+2:])
	}
	if !strings.HasPrefix(name, "`") {
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			return name[i+1:]
		}
	}
	return unquote(name)
}

func unquote(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && name[0] == '`' && name[len(name)-1] == '`' {
		return strings.ReplaceAll(name[1:len(name)-1], "``", "`")
	}
	return name
}
