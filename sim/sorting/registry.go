package sorting

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Registry names for the supported algorithms.
const (
	NameBubbleSort    = "bubbleSort"
	NameInsertionSort = "insertionSort"
	NameSelectionSort = "selectionSort"
	NameMergeSort     = "mergeSort"
	NameQuickSort     = "quickSort"
)

// DefaultAlgorithm is selected when no algorithm is configured.
const DefaultAlgorithm = NameQuickSort

// ValidAlgorithms is the set of recognized algorithm names.
// Shared by config validation and Resolve to avoid duplication.
var ValidAlgorithms = map[string]bool{
	NameBubbleSort:    true,
	NameInsertionSort: true,
	NameSelectionSort: true,
	NameMergeSort:     true,
	NameQuickSort:     true,
}

// algorithms holds one long-lived instance per name. Instances are stateless,
// so sharing them across callers is safe.
var algorithms = map[string]Algorithm{
	NameBubbleSort:    &BubbleSort{},
	NameInsertionSort: &InsertionSort{},
	NameSelectionSort: &SelectionSort{},
	NameMergeSort:     &MergeSort{},
	NameQuickSort:     &QuickSort{},
}

// descriptions is a one-line summary per algorithm, shown in listings.
var descriptions = map[string]string{
	NameBubbleSort:    "adjacent compare-and-swap passes, O(n²), no early exit",
	NameInsertionSort: "shifts larger elements right to grow a sorted prefix, O(n²)",
	NameSelectionSort: "swaps the minimum of the unsorted suffix into place, O(n²)",
	NameMergeSort:     "top-down merge through a scratch buffer, O(n log n), stable",
	NameQuickSort:     "Lomuto partition around the rightmost pivot, O(n log n) expected",
}

// Describe returns a one-line summary of the named algorithm, or "" if unknown.
func Describe(name string) string { return descriptions[name] }

// IsValidAlgorithm reports whether name resolves to an algorithm.
// Names are case-sensitive.
func IsValidAlgorithm(name string) bool { return ValidAlgorithms[name] }

// Resolve returns the shared instance registered under name.
// Unknown names return (nil, false); callers must treat that as a no-op.
func Resolve(name string) (Algorithm, bool) {
	alg, ok := algorithms[name]
	if !ok {
		logrus.Debugf("sorting: unknown algorithm %q", name)
		return nil, false
	}
	return alg, true
}

// Names returns every registered algorithm name in lexical order.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
