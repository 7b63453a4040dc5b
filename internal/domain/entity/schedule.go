package entity

// Schedule maps ISO day strings to the staff ids working that day. The whole
// map is one slice of the owner document and is always rewritten as a unit.
type Schedule map[string][]string
