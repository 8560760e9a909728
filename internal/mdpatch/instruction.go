package mdpatch

// Kind discriminates the two instruction types produced by Extract.
type Kind string

const (
	KindWrite   Kind = "write"
	KindReplace Kind = "replace"
)

// Instruction is one patch operation against one target file. Target is the
// path exactly as written in the file= directive; it is resolved against a
// project root only when the instruction is previewed or applied.
type Instruction struct {
	Kind   Kind
	Target string
	Doc    string

	// Content is the block body for write instructions.
	Content string

	// From and To are the paired block bodies for replace instructions.
	From string
	To   string
}

// Plan is the ordered sequence of instructions extracted from one or more
// documents in a single run.
type Plan []*Instruction
