package catalog

// Partition is the catalog split into the two rendered lists.
type Partition struct {
	Bottles []*Item
	Crates  []*Item
}

// Len returns the number of items that made it into a list.
func (p Partition) Len() int {
	return len(p.Bottles) + len(p.Crates)
}

// PartitionItems splits items by their type field, keeping response order.
// Items that are neither bottles nor crates are dropped.
func PartitionItems(items []*Item) Partition {
	p := Partition{Bottles: []*Item{}, Crates: []*Item{}}
	for _, it := range items {
		switch it.Type() {
		case TypeBottle:
			p.Bottles = append(p.Bottles, it)
		case TypeCrate:
			p.Crates = append(p.Crates, it)
		}
	}
	return p
}

// FindByID returns the first item whose id renders to id.
func FindByID(items []*Item, id string) (*Item, bool) {
	for _, it := range items {
		if _, ok := it.ID(); ok && it.IDString() == id {
			return it, true
		}
	}
	return nil, false
}
