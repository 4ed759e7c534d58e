package cataloguing

import "sort"

// SortTitles stably sorts titles in place by their catalogue sort keys.
func (c *Cataloguer) SortTitles(titles []string) {
	SortByTitle(c, titles, func(s string) string { return s }, false)
}

// SortAuthors stably sorts author names in place by their "Last, First"
// sort keys.
func (c *Cataloguer) SortAuthors(authors []string) {
	SortByAuthor(c, authors, func(s string) string { return s }, false)
}

// SortByTitle stably sorts items in place by the catalogue sort key of
// the title extracted by key. Keys are computed once per item.
func SortByTitle[T any](c *Cataloguer, items []T, key func(T) string, reverse bool) {
	sortByKey(items, func(item T) string { return c.TitleSortKey(key(item)) }, reverse)
}

// SortByAuthor stably sorts items in place by the author sort key of
// the name extracted by key.
func SortByAuthor[T any](c *Cataloguer, items []T, key func(T) string, reverse bool) {
	sortByKey(items, func(item T) string { return c.AuthorSortKey(key(item)) }, reverse)
}

type keyedItem[T any] struct {
	key  string
	item T
}

func sortByKey[T any](items []T, key func(T) string, reverse bool) {
	pairs := make([]keyedItem[T], len(items))
	for i, item := range items {
		pairs[i] = keyedItem[T]{key: key(item), item: item}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if reverse {
			return pairs[j].key < pairs[i].key
		}
		return pairs[i].key < pairs[j].key
	})
	for i, p := range pairs {
		items[i] = p.item
	}
}
