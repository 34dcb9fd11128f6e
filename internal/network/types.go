package network

// Default endpoint column names, matching the headers of the source tables
// this tool was built for.
const (
	DefaultSourceCol = "UniProtName_A"
	DefaultTargetCol = "UniProtName_B"
)

// Names of the two output artifacts.
const (
	HeaderFileName = "combined_network_header.txt"
	PlainFileName  = "combined_network.txt"
)

// Edge is one pairwise interaction between two named entities.
type Edge struct {
	Source string
	Target string
}

// Options configure a combine run.
type Options struct {
	// SourceCol and TargetCol name the two endpoint columns to project out
	// of every input table. Empty values fall back to the defaults.
	SourceCol string
	TargetCol string

	// Undirected makes deduplication orientation-insensitive: (B,A) is
	// treated as a duplicate of an already seen (A,B). The default is
	// order-sensitive, matching exact row-level deduplication.
	Undirected bool
}

func (o Options) withDefaults() Options {
	if o.SourceCol == "" {
		o.SourceCol = DefaultSourceCol
	}
	if o.TargetCol == "" {
		o.TargetCol = DefaultTargetCol
	}
	return o
}

// Network is an ordered, deduplicated collection of edges. First occurrences
// keep their insertion order; later duplicates are dropped.
type Network struct {
	sourceCol  string
	targetCol  string
	undirected bool
	edges      []Edge
	seen       map[Edge]struct{}
}

// New creates an empty Network with the given endpoint column names.
func New(opts Options) *Network {
	opts = opts.withDefaults()
	return &Network{
		sourceCol:  opts.SourceCol,
		targetCol:  opts.TargetCol,
		undirected: opts.Undirected,
		seen:       make(map[Edge]struct{}),
	}
}

// key normalizes an edge into its identity for duplicate lookup.
func (n *Network) key(e Edge) Edge {
	if n.undirected && e.Target < e.Source {
		e.Source, e.Target = e.Target, e.Source
	}
	return e
}

// Add appends e unless an equal edge was added before. It reports whether
// the edge was new.
func (n *Network) Add(e Edge) bool {
	k := n.key(e)
	if _, dup := n.seen[k]; dup {
		return false
	}
	n.seen[k] = struct{}{}
	n.edges = append(n.edges, e)
	return true
}

// Edges returns the deduplicated edges in first-occurrence order. The
// returned slice is a copy and safe for the caller to keep.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Len returns the number of unique edges.
func (n *Network) Len() int {
	return len(n.edges)
}

// SourceCol returns the name of the source endpoint column.
func (n *Network) SourceCol() string { return n.sourceCol }

// TargetCol returns the name of the target endpoint column.
func (n *Network) TargetCol() string { return n.targetCol }
