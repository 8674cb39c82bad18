package menu

// None is the highlight sentinel meaning no item is highlighted.
const None = -1

// Focus tracks which eligible item currently holds the roving
// highlight. The index is either None or a position in the eligible
// subset. Transitions take the current subset size so a list that
// changes shape mid-session never strands the index.
type Focus struct {
	index int
}

// NewFocus returns a focus with nothing highlighted.
func NewFocus() Focus {
	return Focus{index: None}
}

// Index returns the highlighted eligible index, or None.
func (f Focus) Index() int { return f.index }

// Next advances the highlight, entering the subset at the first item
// and wrapping past the last.
func (f *Focus) Next(n int) bool {
	if n <= 0 {
		return false
	}
	old := f.index
	if f.index == None {
		f.index = 0
	} else {
		f.index = (f.index + 1) % n
	}
	return f.index != old
}

// Previous retreats the highlight, entering the subset at the last item
// and wrapping before the first.
func (f *Focus) Previous(n int) bool {
	if n <= 0 {
		return false
	}
	old := f.index
	if f.index == None {
		f.index = n - 1
	} else {
		f.index = (f.index - 1 + n) % n
	}
	return f.index != old
}

// First moves the highlight to the first eligible item.
func (f *Focus) First(n int) bool {
	if n <= 0 {
		return false
	}
	old := f.index
	f.index = 0
	return f.index != old
}

// Last moves the highlight to the last eligible item.
func (f *Focus) Last(n int) bool {
	if n <= 0 {
		return false
	}
	old := f.index
	f.index = n - 1
	return f.index != old
}

// Enter sets the highlight directly, as when the pointer hovers an
// eligible item. Out-of-range indices are ignored.
func (f *Focus) Enter(i, n int) bool {
	if i < 0 || i >= n {
		return false
	}
	old := f.index
	f.index = i
	return f.index != old
}

// Leave drops the highlight, as when the pointer leaves the items.
func (f *Focus) Leave() bool {
	old := f.index
	f.index = None
	return f.index != old
}

// Clamp resets an index the current subset can no longer satisfy.
// Indices that survived the shape change are kept.
func (f *Focus) Clamp(n int) bool {
	if f.index == None || f.index < n {
		return false
	}
	f.index = None
	return true
}

// Reset forces the highlight back to None. Every open transition calls
// this so nothing is pre-highlighted.
func (f *Focus) Reset() {
	f.index = None
}
