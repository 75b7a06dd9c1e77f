package types

// Window layout shared by the engine and the game screen. The field sits on
// the left between the header and footer, the stats panel on the right.
const (
	PanelWidth   = 220
	HeaderHeight = 44
	FooterHeight = 32
	Padding      = 16
)
