package style

// Registry holds the two ordered collections of checkers. Registration
// order is dispatch order, so re-runs over identical input produce
// byte-identical diagnostics. The registry is assembled once at startup
// and read-only afterwards.
type Registry struct {
	physical []PhysicalChecker
	logical  []LogicalChecker
}

// NewRegistry creates an empty checker registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterPhysical appends a physical-line checker.
func (r *Registry) RegisterPhysical(c PhysicalChecker) {
	r.physical = append(r.physical, c)
}

// RegisterLogical appends a logical-line checker.
func (r *Registry) RegisterLogical(c LogicalChecker) {
	r.logical = append(r.logical, c)
}

// Physical returns the physical checkers in registration order.
func (r *Registry) Physical() []PhysicalChecker {
	return r.physical
}

// Logical returns the logical checkers in registration order.
func (r *Registry) Logical() []LogicalChecker {
	return r.logical
}

// CheckerInfo describes one registered checker for listings.
type CheckerInfo struct {
	Name        string
	Kind        string // "physical" or "logical"
	Codes       []string
	Description string
}

// Describe returns every registered checker, physical first, in
// registration order.
func (r *Registry) Describe() []CheckerInfo {
	infos := make([]CheckerInfo, 0, len(r.physical)+len(r.logical))
	for _, c := range r.physical {
		infos = append(infos, CheckerInfo{
			Name:        c.Name(),
			Kind:        "physical",
			Codes:       c.Codes(),
			Description: c.Description(),
		})
	}
	for _, c := range r.logical {
		infos = append(infos, CheckerInfo{
			Name:        c.Name(),
			Kind:        "logical",
			Codes:       c.Codes(),
			Description: c.Description(),
		})
	}
	return infos
}

// DescriptionFor returns the rule prose for the checker owning the given
// code, or "" when no checker reports it.
func (r *Registry) DescriptionFor(code string) string {
	for _, info := range r.Describe() {
		for _, c := range info.Codes {
			if c == code {
				return info.Description
			}
		}
	}
	return ""
}
