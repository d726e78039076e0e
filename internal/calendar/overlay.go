package calendar

// ResolveOverlay returns the overlay type to draw on the given day.
// When several specs claim the same day the first one in input order wins;
// this matches the upstream caller's expectation and is deliberate, there is
// no priority ordering between shape types.
func ResolveOverlay(day int, specs []Overlay) (OverlayType, bool) {
	for _, spec := range specs {
		for _, d := range spec.Days {
			if d == day {
				return spec.Type, true
			}
		}
	}
	return "", false
}
