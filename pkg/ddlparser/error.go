package ddlparser

import (
	"fmt"

	"github.com/antlr4-go/antlr/v4"

	"github.com/nsxbet/datadict/pkg/types"
)

// SyntaxError is a lexer or parser error in a DDL script.
type SyntaxError struct {
	Position   *types.Position
	Message    string
	RawMessage string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// ParseErrorListener records the first syntax error reported by ANTLR.
type ParseErrorListener struct {
	*antlr.DefaultErrorListener
	Err *SyntaxError
}

func newParseErrorListener() *ParseErrorListener {
	return &ParseErrorListener{DefaultErrorListener: antlr.NewDefaultErrorListener()}
}

// SyntaxError implements antlr.ErrorListener.
func (l *ParseErrorListener) SyntaxError(
	_ antlr.Recognizer,
	token any,
	line, column int,
	message string,
	_ antlr.RecognitionException,
) {
	if l.Err != nil {
		return
	}

	related := ""
	if token, ok := token.(*antlr.CommonToken); ok {
		stream := token.GetInputStream()
		start := max(token.GetStart()-40, 0)
		stop := min(token.GetStop(), stream.Size()-1)
		if start <= stop {
			related = fmt.Sprintf("\nrelated text: %s", stream.GetTextFromInterval(antlr.NewInterval(start, stop)))
		}
	}

	l.Err = &SyntaxError{
		Position: &types.Position{
			Line:   int32(line),
			Column: int32(column),
		},
		RawMessage: message,
		Message:    fmt.Sprintf("syntax error at line %d:%d: %s%s", line, column, message, related),
	}
}
