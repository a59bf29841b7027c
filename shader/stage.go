package shader

// Stage is one half of a program.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment

	stageNone Stage = -1
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "none"
}
