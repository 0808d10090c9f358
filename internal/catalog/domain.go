// internal/catalog/domain.go
package catalog

// Game is a catalog entry. The title is its identity and never changes;
// description and category are mutable.
type Game struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
