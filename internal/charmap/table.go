package charmap

// Entry is one parsed mapping line.
type Entry struct {
	Key  string
	Char rune
}

// Table maps glyph file stems to characters.
type Table struct {
	chars map[string]rune
	order []string
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{chars: make(map[string]rune)}
}

// Set maps key to ch, replacing any earlier mapping for key.
// The key keeps the position of its first insertion.
func (t *Table) Set(key string, ch rune) {
	if _, ok := t.chars[key]; !ok {
		t.order = append(t.order, key)
	}

	t.chars[key] = ch
}

// Lookup returns the character for key.
func (t *Table) Lookup(key string) (rune, bool) {
	ch, ok := t.chars[key]
	return ch, ok
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.chars)
}

// Keys returns the keys in first-insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.order...)
}

// Entries returns the mappings in first-insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Entry{Key: k, Char: t.chars[k]})
	}

	return out
}
