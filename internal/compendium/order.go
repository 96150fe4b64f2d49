package compendium

// Reference store ids
const (
	StoreSRDSpells     = "srd.spells"
	StoreSRDEquipment  = "srd.equipment"
	StoreSRDFeatures   = "srd.features"
	StoreSRDRaces      = "srd.races"
	StoreSRDClasses    = "srd.classes"
	StoreBundleItems   = "ddb.items"
	StoreBundleClasses = "ddb.classes"
	StoreBundleFeats   = "ddb.feats"
)

// Order lists the reference stores searched per category, in order
type Order map[Category][]string

// DefaultOrder is the reference search order when none is configured
func DefaultOrder() Order {
	return Order{
		CategorySpell: {StoreSRDSpells},
		CategoryItem:  {StoreSRDEquipment, StoreBundleItems},
		CategoryFeat:  {StoreSRDFeatures, StoreSRDRaces, StoreBundleFeats},
		CategoryClass: {StoreSRDClasses, StoreBundleClasses},
		CategoryRace:  {StoreSRDRaces},
	}
}

// Merge returns a copy of o with the categories set in override replaced
func (o Order) Merge(override Order) Order {
	out := make(Order, len(o))
	for c, ids := range o {
		out[c] = append([]string(nil), ids...)
	}
	for c, ids := range override {
		out[c] = append([]string(nil), ids...)
	}
	return out
}

// Registry holds reference stores by id
type Registry struct {
	stores map[string]Store
}

// NewRegistry registers stores; a later store with the same id wins
func NewRegistry(stores ...Store) *Registry {
	r := &Registry{stores: make(map[string]Store, len(stores))}
	r.Register(stores...)
	return r
}

// Register adds stores
func (r *Registry) Register(stores ...Store) {
	for _, s := range stores {
		if s == nil {
			continue
		}
		r.stores[s.ID()] = s
	}
}

// Lookup returns the store registered under id
func (r *Registry) Lookup(id string) (Store, bool) {
	s, ok := r.stores[id]
	return s, ok
}

// With returns a new registry holding r's stores plus extra
func (r *Registry) With(extra ...Store) *Registry {
	out := &Registry{stores: make(map[string]Store, len(r.stores)+len(extra))}
	for id, s := range r.stores {
		out.stores[id] = s
	}
	out.Register(extra...)
	return out
}
