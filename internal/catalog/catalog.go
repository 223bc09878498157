package catalog

// #region imports
import "strings"

// #endregion

// #region pattern-names

// patternNames maps pattern ids to their human-readable names. Read-only
// reference data supplied to the prompt assembler.
var patternNames = map[string]string{
	"two_pointers":        "Two Pointers",
	"sliding_window":      "Sliding Window",
	"binary_search":       "Binary Search",
	"bfs":                 "Breadth-First Search",
	"dfs":                 "Depth-First Search",
	"dynamic_programming": "Dynamic Programming",
	"backtracking":        "Backtracking",
	"greedy":              "Greedy",
	"heap_top_k":          "Heap / Top-K",
	"fast_slow_pointers":  "Fast & Slow Pointers",
	"merge_intervals":     "Merge Intervals",
	"prefix_sum":          "Prefix Sum",
}

// #endregion

// #region problem-names

var problemNames = map[string]string{
	"pair_with_target_sum":  "Pair with Target Sum",
	"longest_substring_k":   "Longest Substring with K Distinct Characters",
	"search_rotated_array":  "Search in Rotated Sorted Array",
	"level_order_traversal": "Binary Tree Level Order Traversal",
	"number_of_islands":     "Number of Islands",
	"climbing_stairs":       "Climbing Stairs",
	"coin_change":           "Coin Change",
	"subsets":               "Subsets",
	"linked_list_cycle":     "Linked List Cycle",
	"meeting_rooms":         "Meeting Rooms",
	"kth_largest_element":   "Kth Largest Element",
	"subarray_sum_equals_k": "Subarray Sum Equals K",
}

// #endregion

// #region lookups

// PatternName returns the display name for a pattern id, humanizing
// unknown ids rather than failing.
func PatternName(id string) string {
	if name, ok := patternNames[id]; ok {
		return name
	}
	return humanize(id)
}

// ProblemName returns the display name for a problem id, humanizing
// unknown ids rather than failing.
func ProblemName(id string) string {
	if name, ok := problemNames[id]; ok {
		return name
	}
	return humanize(id)
}

// #endregion

// #region humanize

func humanize(id string) string {
	if id == "" {
		return ""
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// #endregion
