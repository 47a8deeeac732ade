package osm2routing

// enumName returns name for given enum index or "unknown" when index is out of range
func enumName(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return "unknown"
	}
	return names[idx]
}
