package rules

import (
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/irenetello/react-doctor/internal/types"
)

// Import statement patterns. Two syntactic forms are recognized: an ES
// "from"-style import and a call-style require(). Everything else
// (dynamic import(), path-mapped aliases) is out of scope.
var (
	fromImportPattern  = regexp.MustCompile(`from\s+['"]([^'"]+)['"]`)
	requireCallPattern = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
)

// resolveExtensions is the candidate order for extensionless specifiers.
// The order is load-bearing: it decides which of several same-stem files an
// ambiguous specifier resolves to, and tests pin it.
var resolveExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// CircularDepsRule detects circular import chains between project files.
//
// Only relative specifiers participate: package and alias imports never
// resolve to a scanned file, so they contribute no edges. An import that
// fails to resolve is absence of information, not an error.
type CircularDepsRule struct{}

var _ Rule = (*CircularDepsRule)(nil)

// NewCircularDepsRule creates the circular dependency rule.
func NewCircularDepsRule() *CircularDepsRule {
	return &CircularDepsRule{}
}

func (r *CircularDepsRule) ID() string {
	return "circular-deps"
}

func (r *CircularDepsRule) Description() string {
	return "Detects circular import chains between project source files"
}

// Check builds the import graph for the snapshot, enumerates its cycles,
// and synthesizes one issue per cycle.
func (r *CircularDepsRule) Check(ctx *types.RuleContext, files []types.ScannedFile) []types.Issue {
	byRelPath := make(map[string]types.ScannedFile, len(files))
	for _, f := range files {
		byRelPath[f.RelPath] = f
	}

	graph := buildImportGraph(files)

	var issues []types.Issue
	for _, cycle := range graph.detectCycles() {
		origin := byRelPath[cycle[0]]
		chain := strings.Join(cycle, " -> ")

		issue := types.Issue{
			ID:       "circular-deps:" + chain,
			RuleID:   "circular-deps",
			Severity: types.SeverityError,
			Message:  "Circular dependency detected: " + chain,
			FilePath: origin.Path,
			Line:     locateImportLine(origin, cycle[1]),
		}
		issues = append(issues, issue)
	}

	return issues
}

// extractSpecifiers scans raw file text for import-like statements and
// returns their relative module specifiers in source order. Non-relative
// specifiers (no leading dot) are discarded immediately.
func extractSpecifiers(content string) []string {
	type located struct {
		pos  int
		spec string
	}

	var found []located
	for _, m := range fromImportPattern.FindAllStringSubmatchIndex(content, -1) {
		found = append(found, located{pos: m[0], spec: content[m[2]:m[3]]})
	}
	for _, m := range requireCallPattern.FindAllStringSubmatchIndex(content, -1) {
		found = append(found, located{pos: m[0], spec: content[m[2]:m[3]]})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	var specs []string
	for _, f := range found {
		if strings.HasPrefix(f.spec, ".") {
			specs = append(specs, f.spec)
		}
	}
	return specs
}

// resolveSpecifier maps a relative specifier, relative to its importing
// file, onto one of the known scanned files.
//
// Candidates are tried in a fixed order: the joined path verbatim, then
// with each of resolveExtensions appended, then as a directory with
// index.<ext> appended. The first candidate present in the known set wins.
func resolveSpecifier(fromRelPath, spec string, known map[string]bool) (string, bool) {
	joined := path.Join(path.Dir(fromRelPath), filepath.ToSlash(spec))

	if known[joined] {
		return joined, true
	}
	for _, ext := range resolveExtensions {
		if candidate := joined + ext; known[candidate] {
			return candidate, true
		}
	}
	for _, ext := range resolveExtensions {
		if candidate := joined + "/index" + ext; known[candidate] {
			return candidate, true
		}
	}

	return "", false
}

// importGraph is a directed adjacency structure keyed by normalized
// relative path. Every scanned file contributes exactly one node; edges
// exist only between nodes both present in the snapshot.
type importGraph struct {
	nodes []string            // sorted for deterministic traversal order
	edges map[string][]string // node -> resolved targets in source order
}

// buildImportGraph folds the snapshot through extraction and resolution
// into an import graph. A pure, total function of the snapshot.
func buildImportGraph(files []types.ScannedFile) *importGraph {
	known := make(map[string]bool, len(files))
	for _, f := range files {
		known[f.RelPath] = true
	}

	g := &importGraph{
		nodes: make([]string, 0, len(files)),
		edges: make(map[string][]string, len(files)),
	}

	for _, f := range files {
		g.nodes = append(g.nodes, f.RelPath)

		seen := make(map[string]bool)
		var targets []string
		for _, spec := range extractSpecifiers(f.Content) {
			target, ok := resolveSpecifier(f.RelPath, spec, known)
			if !ok || seen[target] {
				continue
			}
			seen[target] = true
			targets = append(targets, target)
		}
		g.edges[f.RelPath] = targets
	}

	sort.Strings(g.nodes)
	return g
}

// Node colors for the cycle-detecting DFS.
const (
	unvisited = iota // not yet reached
	onStack          // on the active exploration path
	done             // fully explored, every cycle through it reported
)

// detectCycles enumerates the graph's cycles, one report per back-edge.
//
// Each node is unvisited, on-stack, or done. Reaching an on-stack neighbor
// closes a cycle: the suffix of the current path from that neighbor's first
// occurrence, plus the neighbor again. Reaching a done neighbor adds
// nothing. Runs in time linear in nodes plus edges. All traversal state is
// local to this call, so the rule stays re-entrant.
func (g *importGraph) detectCycles() [][]string {
	var cycles [][]string

	state := make(map[string]int, len(g.nodes))
	var stack []string

	var visit func(node string)
	visit = func(node string) {
		state[node] = onStack
		stack = append(stack, node)

		for _, neighbor := range g.edges[node] {
			switch state[neighbor] {
			case unvisited:
				visit(neighbor)
			case onStack:
				if cycle := closeCycle(stack, neighbor); cycle != nil {
					cycles = append(cycles, cycle)
				}
			}
			// done: skip
		}

		state[node] = done
		stack = stack[:len(stack)-1]
	}

	for _, node := range g.nodes {
		if state[node] == unvisited {
			visit(node)
		}
	}

	return cycles
}

// closeCycle extracts the cycle from the DFS stack: the suffix starting at
// the back-edge target, closed by repeating the target.
func closeCycle(stack []string, neighbor string) []string {
	start := -1
	for i, n := range stack {
		if n == neighbor {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	cycle := make([]string, len(stack)-start+1)
	copy(cycle, stack[start:])
	cycle[len(cycle)-1] = neighbor
	return cycle
}

// locateImportLine finds the 1-based line in origin that names target,
// by recomputing the relative specifier that would have produced the edge
// and scanning for it in either import form, with or without extension.
// Returns 0 when no line matches (an index.* resolution can legitimately
// use specifier text that differs from the recomputed one).
func locateImportLine(origin types.ScannedFile, target string) int {
	rel, err := filepath.Rel(filepath.FromSlash(path.Dir(origin.RelPath)), filepath.FromSlash(target))
	if err != nil {
		return 0
	}

	spec := filepath.ToSlash(rel)
	if !strings.HasPrefix(spec, ".") {
		spec = "./" + spec
	}
	bare := strings.TrimSuffix(spec, path.Ext(spec))

	for i, line := range origin.Lines {
		for _, m := range fromImportPattern.FindAllStringSubmatch(line, -1) {
			if m[1] == spec || m[1] == bare {
				return i + 1
			}
		}
		for _, m := range requireCallPattern.FindAllStringSubmatch(line, -1) {
			if m[1] == spec || m[1] == bare {
				return i + 1
			}
		}
	}

	return 0
}
