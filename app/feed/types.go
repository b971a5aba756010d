package feed

// Item is a single feed entry normalized for consolidation.
//
// The five simple fields are pointers: nil means the source element was
// absent, a pointer to "" means it was present but empty. Deduplication and
// serialization both depend on that distinction.
type Item struct {
	Title       *string
	Link        *string
	Description *string
	PubDate     *string
	GUID        *string

	// Extensions holds namespaced elements found inside the item, keyed as
	// "prefix:localname" using the fixed namespace table.
	Extensions map[string]string

	Categories []string
}

// Channel is the metadata of the consolidated output feed.
type Channel struct {
	Title       string `yaml:"title"`
	Link        string `yaml:"link"`
	Description string `yaml:"description"`
	Language    string `yaml:"language"`
}
