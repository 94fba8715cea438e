package rop

// Tag names the branch an outcome holds.
type Tag uint8

const (
	TagSuccess Tag = iota
	TagFailure
)

func (t Tag) String() string {
	if t == TagFailure {
		return "failure"
	}
	return "success"
}

func tagOf(failed bool) Tag {
	if failed {
		return TagFailure
	}
	return TagSuccess
}
