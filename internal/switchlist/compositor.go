package switchlist

// Host is the horizontally scrolling list that renders the options.
type Host interface {
	ScrollToIndex(index int, centered, animated bool)
}

type nopHost struct{}

func (nopHost) ScrollToIndex(int, bool, bool) {}

// Compositor pins the indicator to its option while the host list scrolls.
type Compositor struct {
	host    Host
	scrollX float64
}

// NewCompositor returns a compositor issuing scroll commands to host.
func NewCompositor(host Host) *Compositor {
	if host == nil {
		host = nopHost{}
	}
	return &Compositor{host: host}
}

// OnScroll records the host's latest horizontal scroll offset.
func (c *Compositor) OnScroll(x float64) {
	c.scrollX = x
}

func (c *Compositor) ScrollX() float64 {
	return c.scrollX
}

// IndicatorX converts a content-space offset into the on-screen offset.
func (c *Compositor) IndicatorX(translateX float64) float64 {
	return translateX - c.scrollX
}

// Reveal asks the host to bring index into the middle of the viewport.
func (c *Compositor) Reveal(index int) {
	c.host.ScrollToIndex(index, true, true)
}
