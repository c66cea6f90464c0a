package repository

// SetValuesOptions holds the documents written in one transaction.
type SetValuesOptions struct {
	Values map[string]string
}

// ListKeysOptions filters ListKeys. An empty Prefix lists everything.
type ListKeysOptions struct {
	Prefix string
}
