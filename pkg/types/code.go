package types

// Code identifies the kind of a validation finding.
type Code int

// Finding codes.
const (
	Ok Code = 0

	// 101 ~ 199 column error.
	ColumnNotFound Code = 101
	TypeMismatch   Code = 102
	NullNotAllowed Code = 103
	PrimaryKeyNull Code = 104

	// 201 ~ 299 table error.
	ColumnNotInTable Code = 201
	TableNotFound    Code = 202
)

func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case ColumnNotFound:
		return "ColumnNotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case NullNotAllowed:
		return "NullNotAllowed"
	case PrimaryKeyNull:
		return "PrimaryKeyNull"
	case ColumnNotInTable:
		return "ColumnNotInTable"
	case TableNotFound:
		return "TableNotFound"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
