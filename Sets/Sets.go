package Sets

// Set of unique elements.
type Set[E any] interface {
	//Put e in the set. Returns false if it's already there.
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Len() int
	//Take removes some element and returns it. The bool is false when the set is empty.
	Take() (E, bool)
	//Range calls f for every element until f returns false.
	Range(f func(E) bool)
}

// ExtendedSet has the bulk operations. The counts returned are the number of elements
// added or removed.
type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) int
	RemoveAll(Set[E]) int
	//RetainAll removes the elements not in the argument, making the set the intersection.
	RetainAll(Set[E]) int
	ContainsAll(Set[E]) bool
	//Eq returns whether both sets hold the same elements.
	Eq(Set[E]) bool
	//Slice returns the elements in a new slice.
	Slice() []E
}

// OrderedSet is an ExtendedSet whose elements are indexed by their sorted position.
type OrderedSet[E any] interface {
	ExtendedSet[E]
	//Get the element at index i. Panics if i is out of range.
	Get(i int) E
	//IndexOf e, or -1 if e isn't in the set.
	IndexOf(e E) int
}
