package models

// ArgKind is the value shape an operation argument accepts.
type ArgKind int

const (
	ArgString ArgKind = iota
	ArgStringList
	ArgBool
	ArgEnum
)

func (k ArgKind) String() string {
	switch k {
	case ArgString:
		return "string"
	case ArgStringList:
		return "string list"
	case ArgBool:
		return "boolean"
	case ArgEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ArgSpec declares one argument of an operation.
type ArgSpec struct {
	Name        string
	Description string
	Kind        ArgKind
	Required    bool
	// Default fills the argument when it is absent. Nil means no default.
	Default any
	// Enum lists the allowed values of an ArgEnum argument.
	Enum []string
}

// ExecutorKind names the component that carries out an operation.
type ExecutorKind int

const (
	// ExecutorReader answers from the notes database.
	ExecutorReader ExecutorKind = iota
	// ExecutorBuilder dispatches a command URI through the launcher.
	ExecutorBuilder
)

func (k ExecutorKind) String() string {
	if k == ExecutorReader {
		return "reader"
	}
	return "builder"
}

// OperationDescriptor describes one exposed operation.
type OperationDescriptor struct {
	Name        string
	Description string
	Args        []ArgSpec
	Executor    ExecutorKind
	// ReadOnly marks operations that leave note content untouched.
	ReadOnly bool
	// Destructive marks commands that remove or overwrite user content.
	Destructive bool
}

// RequiredArgs returns the names of the required arguments in declaration
// order.
func (d OperationDescriptor) RequiredArgs() []string {
	names := make([]string, 0, len(d.Args))
	for _, a := range d.Args {
		if a.Required {
			names = append(names, a.Name)
		}
	}
	return names
}
