package filter

import "github.com/JacobNatural/task-manager/internal/core/domain"

// Kind is the value type of a filterable field.
type Kind int

const (
	KindString Kind = iota
	KindTime
	KindStatus
	KindID
)

func (k Kind) String() string {
	switch k {
	case KindTime:
		return "time"
	case KindStatus:
		return "status"
	case KindID:
		return "id"
	default:
		return "string"
	}
}

// supports lists the operations a field kind accepts.
func (k Kind) supports(op domain.Operation) bool {
	switch k {
	case KindString:
		return true
	case KindTime:
		return op != domain.OperationRegex
	default:
		return op == domain.OperationIs
	}
}

type Field struct {
	Key  string
	Kind Kind
	// Nullable fields accept a nil value in an IS clause.
	Nullable bool
}

// Schema is the set of fields a caller may filter an aggregate on. Keys are
// the public (JSON) names; store adapters map them to their own field names.
type Schema struct {
	name   string
	fields map[string]Field
}

func NewSchema(name string, fields ...Field) Schema {
	s := Schema{name: name, fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		s.fields[f.Key] = f
	}
	return s
}

func (s Schema) Name() string { return s.name }

// Lookup returns the field registered under key.
func (s Schema) Lookup(key string) (Field, bool) {
	f, ok := s.fields[key]
	return f, ok
}

const (
	TaskFieldID           = "id"
	TaskFieldTitle        = "title"
	TaskFieldDescription  = "description"
	TaskFieldCreationDate = "creationDate"
	TaskFieldStatus       = "status"
	TaskFieldUserID       = "userId"

	UserFieldID       = "id"
	UserFieldName     = "name"
	UserFieldSurname  = "surname"
	UserFieldUsername = "username"
)

var TaskSchema = NewSchema("task",
	Field{Key: TaskFieldID, Kind: KindID},
	Field{Key: TaskFieldTitle, Kind: KindString},
	Field{Key: TaskFieldDescription, Kind: KindString},
	Field{Key: TaskFieldCreationDate, Kind: KindTime},
	Field{Key: TaskFieldStatus, Kind: KindStatus},
	Field{Key: TaskFieldUserID, Kind: KindString, Nullable: true},
)

var UserSchema = NewSchema("user",
	Field{Key: UserFieldID, Kind: KindID},
	Field{Key: UserFieldName, Kind: KindString},
	Field{Key: UserFieldSurname, Kind: KindString},
	Field{Key: UserFieldUsername, Kind: KindString},
)
