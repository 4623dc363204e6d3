package orders

// Repo is the order store contract shared by every backend.
// The collection is listed most recent first.
type Repo interface {
	// List returns the whole collection. Read failures degrade to an empty list.
	List() ([]Order, error)

	// Create validates and prepends a new order
	Create(order NewOrder) (Order, error)

	// Update applies patch to the order with id, refreshing its timestamp
	Update(id string, patch Patch) (Order, error)

	// Delete permanently removes the order with id
	Delete(id string) error
}
