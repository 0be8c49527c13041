package propconfig

import "sort"

// PropertyGroup bundles a set of property names with one or more
// multi-property rules. Names need not be registered when the group is
// added to a builder, but must be registered by the time Build is called.
type PropertyGroup struct {
	Name  string
	Props []string
	Rules []GroupRule
}

// NewPropertyGroup creates a group named name over props, evaluated by
// rules.
func NewPropertyGroup(name string, props []string, rules ...GroupRule) PropertyGroup {
	return PropertyGroup{Name: name, Props: append([]string(nil), props...), Rules: rules}
}

// PropertyRegistry is the frozen, build-once collection of property
// definitions and multi-property groups. It is safe to share across
// concurrent validators with no locking.
type PropertyRegistry struct {
	order       []string
	byName      map[string]*Definition
	groups      []PropertyGroup
	converters  *ConverterRegistry
	plan        []string
}

// Get looks up a definition by name.
func (r *PropertyRegistry) Get(name string) (*Definition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Has reports whether name is registered.
func (r *PropertyRegistry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Definitions returns every definition in insertion order.
func (r *PropertyRegistry) Definitions() []*Definition {
	out := make([]*Definition, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Groups returns every multi-property group in registration order.
func (r *PropertyRegistry) Groups() []PropertyGroup {
	return append([]PropertyGroup(nil), r.groups...)
}

// Converters returns the converter registry this registry was built with.
func (r *PropertyRegistry) Converters() *ConverterRegistry {
	return r.converters
}

// ValidationPlan returns the precomputed topological order of definition
// names: a Kahn's-algorithm ordering over in-registry depends_on edges,
// ties broken by ValidationOrder ascending then insertion order.
func (r *PropertyRegistry) ValidationPlan() []string {
	return append([]string(nil), r.plan...)
}

// RegistryBuilder accumulates definitions and groups before Build freezes
// them into a PropertyRegistry.
type RegistryBuilder struct {
	order      []string
	byName     map[string]*Definition
	groups     []PropertyGroup
	converters *ConverterRegistry
}

// NewRegistryBuilder starts an empty builder. converters is the registry
// used for all type conversion during validation and default application;
// a nil value falls back to DefaultConverterRegistry at Build time.
func NewRegistryBuilder(converters *ConverterRegistry) *RegistryBuilder {
	return &RegistryBuilder{byName: make(map[string]*Definition), converters: converters}
}

// Register adds a definition. It returns a *DuplicateNameError immediately
// if the name is already registered, matching the construction-error
// policy: no partial registry, fail fast and named.
func (b *RegistryBuilder) Register(d *Definition) error {
	if _, exists := b.byName[d.name]; exists {
		return &DuplicateNameError{Name: d.name}
	}
	b.byName[d.name] = d
	b.order = append(b.order, d.name)
	return nil
}

// RegisterGroup adds a multi-property group. Member names need not be
// registered yet.
func (b *RegistryBuilder) RegisterGroup(g PropertyGroup) {
	b.groups = append(b.groups, g)
}

// Build freezes the builder into a PropertyRegistry, rejecting any group
// referencing an unregistered member and any dependency cycle among
// in-registry depends_on edges.
func (b *RegistryBuilder) Build() (*PropertyRegistry, error) {
	for _, g := range b.groups {
		for _, name := range g.Props {
			if _, ok := b.byName[name]; !ok {
				return nil, &MissingGroupMemberError{Group: g.Name, Property: name}
			}
		}
	}

	converters := b.converters
	if converters == nil {
		converters = DefaultConverterRegistry()
	}

	r := &PropertyRegistry{
		order:      append([]string(nil), b.order...),
		byName:     b.byName,
		groups:     append([]PropertyGroup(nil), b.groups...),
		converters: converters,
	}

	plan, err := topologicalPlan(r)
	if err != nil {
		return nil, err
	}
	r.plan = plan
	return r, nil
}

// topologicalPlan runs Kahn's algorithm over the in-registry depends_on
// graph, breaking ties by ValidationOrder ascending then insertion order.
// It returns a *CycleError naming one cycle's participants if the graph is
// not acyclic.
func topologicalPlan(r *PropertyRegistry) ([]string, error) {
	indexOf := make(map[string]int, len(r.order))
	for i, name := range r.order {
		indexOf[name] = i
	}

	// edges[a] = names that depend on a (a must come before them)
	edges := make(map[string][]string, len(r.order))
	inDegree := make(map[string]int, len(r.order))
	for _, name := range r.order {
		inDegree[name] = 0
	}
	for _, name := range r.order {
		def := r.byName[name]
		for _, dep := range def.dependsOn {
			if _, ok := r.byName[dep]; !ok {
				continue // unresolved names ignored, never crash
			}
			edges[dep] = append(edges[dep], name)
			inDegree[name]++
		}
	}

	less := func(a, b string) bool {
		oa, ob := r.byName[a].validationOrder, r.byName[b].validationOrder
		if oa != ob {
			return oa < ob
		}
		return indexOf[a] < indexOf[b]
	}

	var ready []string
	for _, name := range r.order {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return less(ready[i], ready[j]) })

	plan := make([]string, 0, len(r.order))
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		plan = append(plan, next)

		var newlyReady []string
		for _, dependent := range edges[next] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				newlyReady = append(newlyReady, dependent)
			}
		}
		sort.Slice(newlyReady, func(i, j int) bool { return less(newlyReady[i], newlyReady[j]) })
		ready = mergeSorted(ready, newlyReady, less)
	}

	if len(plan) != len(r.order) {
		return nil, &CycleError{Participants: cycleParticipants(r, inDegree)}
	}
	return plan, nil
}

func mergeSorted(a, b []string, less func(x, y string) bool) []string {
	if len(b) == 0 {
		return a
	}
	merged := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(a[i], b[j]) {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

// cycleParticipants walks the remaining (never-zeroed) nodes to name one
// cycle, in traversal order, for the CycleError.
func cycleParticipants(r *PropertyRegistry, inDegree map[string]int) []string {
	remaining := make(map[string]bool)
	for _, name := range r.order {
		if inDegree[name] > 0 {
			remaining[name] = true
		}
	}
	depsOf := make(map[string][]string, len(remaining))
	for name := range remaining {
		for _, dep := range r.byName[name].dependsOn {
			if remaining[dep] {
				depsOf[name] = append(depsOf[name], dep)
			}
		}
	}

	var start string
	for _, name := range r.order {
		if remaining[name] {
			start = name
			break
		}
	}

	visited := make(map[string]int) // 0 unvisited, 1 in-progress, 2 done
	var path []string
	var cycle []string
	var walk func(node string) bool
	walk = func(node string) bool {
		visited[node] = 1
		path = append(path, node)
		for _, dep := range depsOf[node] {
			switch visited[dep] {
			case 1:
				// found the cycle: slice path from dep's position
				for i, p := range path {
					if p == dep {
						cycle = append(cycle, path[i:]...)
						return true
					}
				}
			case 0:
				if walk(dep) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		visited[node] = 2
		return false
	}
	walk(start)
	if len(cycle) == 0 {
		for name := range remaining {
			cycle = append(cycle, name)
		}
	}
	return cycle
}
