package selection

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is the asset type of a selected handle.
type Kind int

const (
	KindFolder Kind = iota
	KindTexture
	KindOther
)
