package resolve

import (
	"strings"
)

// depGraph is the entity dependency graph. An edge A -> B means B's table
// must exist before A's, which is induced by every belongsTo relationship
// (the owning side carries the foreign key). Self-references are legal and
// excluded: a table may reference itself within its own migration.
type depGraph struct {
	names []string            // declaration order
	index map[string]int      // name -> declaration index
	deps  map[string][]string // entity -> entities it depends on
}

func buildGraph(entities []*Entity) *depGraph {
	g := &depGraph{
		index: make(map[string]int, len(entities)),
		deps:  make(map[string][]string, len(entities)),
	}
	for i, e := range entities {
		g.names = append(g.names, e.Name)
		g.index[e.Name] = i
	}

	for _, e := range entities {
		for _, rel := range e.Relations {
			bt, ok := rel.(BelongsTo)
			if !ok {
				continue
			}
			if bt.Target == e.Name {
				continue // self-reference
			}
			if _, known := g.index[bt.Target]; !known {
				continue // undeclared target, reported elsewhere
			}
			g.addDep(e.Name, bt.Target)
		}
	}
	return g
}

func (g *depGraph) addDep(from, to string) {
	for _, d := range g.deps[from] {
		if d == to {
			return
		}
	}
	g.deps[from] = append(g.deps[from], to)
}

// topoSort orders entities so every dependency precedes its dependents.
// Kahn's algorithm with a stable tie-break: each step places the entity with
// the lowest declaration index among those whose dependencies are all
// satisfied. On a cycle it returns the full cycle path.
func (g *depGraph) topoSort() ([]string, *Error) {
	placed := make(map[string]bool, len(g.names))
	order := make([]string, 0, len(g.names))

	for len(order) < len(g.names) {
		next := ""
		for _, name := range g.names {
			if placed[name] {
				continue
			}
			ready := true
			for _, dep := range g.deps[name] {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				next = name
				break
			}
		}
		if next == "" {
			cycle := g.findCycle(placed)
			return nil, &Error{
				Code:    CyclicDependency,
				Message: "dependency cycle prevents single-pass emission: " + strings.Join(cycle, " -> "),
			}
		}
		placed[next] = true
		order = append(order, next)
	}
	return order, nil
}

// findCycle locates one cycle among the entities not yet placed and returns
// its path, closed on the starting entity.
func (g *depGraph) findCycle(placed map[string]bool) []string {
	state := make(map[string]int, len(g.names)) // 0 unseen, 1 on stack, 2 done
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		state[name] = 1
		stack = append(stack, name)
		for _, dep := range g.deps[name] {
			if placed[dep] {
				continue
			}
			switch state[dep] {
			case 0:
				if visit(dep) {
					return true
				}
			case 1:
				for i, n := range stack {
					if n == dep {
						cycle = append(append(cycle, stack[i:]...), dep)
						return true
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[name] = 2
		return false
	}

	for _, name := range g.names {
		if !placed[name] && state[name] == 0 {
			if visit(name) {
				return cycle
			}
		}
	}
	return nil
}
