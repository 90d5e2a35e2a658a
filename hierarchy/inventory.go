package hierarchy

// Inventory keys name the shape of the order: "123" is the total person
// order 1<2<3, "12|3" leaves 2 and 3 unordered below nothing ("|" marks
// the split), and so on. The keys double as report labels downstream.

// Persons returns the built-in inventory of person rankings over {1,2,3}.
// A fresh map is returned on every call so callers may annotate or prune
// their copy freely.
func Persons() map[string]Hierarchy {
	return map[string]Hierarchy{
		"123": New(
			Pair{Before: "1", After: "2"},
			Pair{Before: "2", After: "3"},
			Pair{Before: "1", After: "3"},
		),
		"12|3": New(
			Pair{Before: "1", After: "2"},
			Pair{Before: "1", After: "3"},
		),
		"1|23": New(
			Pair{Before: "1", After: "3"},
			Pair{Before: "2", After: "3"},
		),
	}
}

// Numbers returns the built-in inventory of number rankings over {s,p}:
// singular-first ("sp") and plural-first ("ps").
func Numbers() map[string]Hierarchy {
	return map[string]Hierarchy{
		"sp": New(Pair{Before: "s", After: "p"}),
		"ps": New(Pair{Before: "p", After: "s"}),
	}
}
