package graphics

// Stage identifies one of the two programmable stages of a pass.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

// Macro returns the preprocessor define that selects this stage when a
// single source text is compiled once per stage.
func (s Stage) Macro() string {
	if s == StageVertex {
		return "#define VERTEX"
	}
	return "#define FRAGMENT"
}

func (s Stage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// Binding is the resolved location of a named attribute or uniform within a
// linked program. NoBinding marks a name that is not present.
type Binding int32

const NoBinding Binding = -1

func (b Binding) Valid() bool { return b != NoBinding }

// Program is one linked shader program.
type Program interface {
	Bind()
	AttribLocation(name string) Binding
	UniformLocation(name string) Binding
	SetFloat(b Binding, v float32)
	SetInt(b Binding, v int32)
	SetVec2(b Binding, x, y float32)
	SetMatrix4(b Binding, m *[16]float32)
	Release()
}

// Compiler compiles and links shader stages. Failures carry the backend's
// diagnostic log in the error message.
type Compiler interface {
	// CompileStage compiles one stage and returns an opaque stage handle.
	CompileStage(stage Stage, source string) (uint32, error)
	// LinkProgram links a vertex and a fragment stage into one program.
	// The stage handles are consumed whether or not linking succeeds.
	LinkProgram(vertex, fragment uint32) (Program, error)
	// ReleaseStage frees a compiled stage that will not be linked.
	ReleaseStage(stage uint32)
}
