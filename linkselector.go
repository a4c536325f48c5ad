package flat

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for crawl ordering.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFallback   LinkPriority = 10
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityTOC        LinkPriority = 110
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "sidebar", "content", "footer"
}

// Platform identifies a documentation generator.
type Platform string

// Supported documentation platforms.
const (
	PlatformUnknown    Platform = ""
	PlatformWebdoc     Platform = "webdoc"
	PlatformDocusaurus Platform = "docusaurus"
	PlatformMkDocs     Platform = "mkdocs"
	PlatformSphinx     Platform = "sphinx"
	PlatformVuePress   Platform = "vuepress"
	PlatformGitBook    Platform = "gitbook"
	PlatformNextra     Platform = "nextra"
	PlatformGeneric    Platform = "generic"
)

// LinkSelector extracts candidate next-page links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links with priority.
	// The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)

	// Name returns the selector's identifier (e.g., "webdoc", "generic").
	Name() string
}

// PlatformDetector identifies documentation platforms from HTML.
type PlatformDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns PlatformUnknown if the platform cannot be determined.
	Detect(html string) Platform
}

// Strategy pairs the content extractor and link selector for a platform.
type Strategy struct {
	Platform Platform
	Content  Extractor
	Links    LinkSelector
}

// StrategyRegistry maps detected platforms to extraction strategies.
type StrategyRegistry interface {
	// Get returns the strategy for a specific platform.
	// Returns nil if no strategy is registered for the platform.
	Get(platform Platform) *Strategy

	// GetForHTML detects the platform from HTML and returns the
	// appropriate strategy. Falls back to a generic strategy if the
	// platform is unknown.
	GetForHTML(html string) *Strategy

	// Register adds a strategy for a platform.
	Register(platform Platform, strategy *Strategy)

	// List returns all registered platforms.
	List() []Platform
}
