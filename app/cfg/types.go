package cfg

type Cfg struct {
	// Input/output configuration
	SourcesFile string
	OutputFile  string
	ChannelFile string

	// Fetch configuration
	UserAgent    string
	FetchTimeout int
	FetchDelay   int

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
