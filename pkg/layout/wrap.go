package layout

// AddressWrapWidth is the fixed character width free-text addresses are
// split at. The split is a naive fixed-width cut, not word-aware; the
// resulting short lines keep long addresses from colliding with the page
// break. Product has not signed off on word-aware wrapping, so the behavior
// is kept as-is.
const AddressWrapWidth = 32

// WrapAddress splits s into lines of at most AddressWrapWidth characters.
// Every character of the input appears in exactly one line.
func WrapAddress(s string) []string {
	return wrapFixed(s, AddressWrapWidth)
}

func wrapFixed(s string, width int) []string {
	if s == "" {
		return nil
	}
	runes := []rune(s)
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}
