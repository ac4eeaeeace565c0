package domain

// Guide represents a single instructional document.
// A guide is identified by (Category, Name); names are filesystem stems
// with no extension, unique within their category. Categories are
// disjoint namespaces, so the same name may appear in two categories
// and refer to two different documents.
type Guide struct {
	// Category is the topic grouping this guide belongs to.
	Category Category

	// Name is the identifier within the category (file stem, no extension).
	Name string

	// Content is the full markdown text of the guide.
	// Loaded lazily; empty until a Load has been performed.
	Content string
}

// MatchResult is the outcome of resolving a context query against the
// guides of a category pool. Names preserve store discovery order, so
// results are deterministic for a given directory state.
type MatchResult struct {
	// Names holds the matched guide names in discovery order.
	Names []string
}

// IsNoMatch reports whether nothing matched.
func (r MatchResult) IsNoMatch() bool { return len(r.Names) == 0 }

// IsSingle reports whether exactly one guide matched.
// Callers should return that guide's full content.
func (r MatchResult) IsSingle() bool { return len(r.Names) == 1 }

// IsMultiple reports whether intent was ambiguous (several matches).
// Callers should return the name listing only, never all contents.
func (r MatchResult) IsMultiple() bool { return len(r.Names) > 1 }
