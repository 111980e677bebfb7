package domain

import "sort"

// CredentialBundle is the protocol library's persisted auth state, one
// entry per file. It is passed through untouched.
type CredentialBundle struct {
	Entries map[string][]byte
}

func (b CredentialBundle) Empty() bool {
	return len(b.Entries) == 0
}

// Names returns the entry names in stable order.
func (b CredentialBundle) Names() []string {
	names := make([]string, 0, len(b.Entries))
	for name := range b.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
