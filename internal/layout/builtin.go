package layout

// Built-in layout identifiers.
const (
	Perkins  = "perkins"
	SixKey   = "sixkey"
	HomeKeys = "homekeys"
	VimStyle = "vimstyle"
)

// Default is the layout used when no preference is stored.
const Default = Perkins

// Builtin returns the built-in layouts in display order.
func Builtin() []Layout {
	return []Layout{
		mustNew(Perkins, "Perkins (FDS-JKL)", "Standard Perkins brailler mapping on the home row", "fdsjkl"),
		mustNew(SixKey, "Six-key (DWQ-KOP)", "Upper-row six-key mapping", "dwqkop"),
		mustNew(HomeKeys, "Home keys (ASD-JKL)", "Left hand shifted to A S D", "asdjkl"),
		mustNew(VimStyle, "Vim style (FDS-HJK)", "Right hand on H J K", "fdshjk"),
	}
}

func mustNew(id, name, description, keys string) Layout {
	l, err := New(id, name, description, keys)
	if err != nil {
		panic(err)
	}
	return l
}
