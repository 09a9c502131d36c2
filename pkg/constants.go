package inventorize

// Context constants for record index entries
const (
	InventoryContext = "inventory"
	ScanContext      = "scan"
)

// Hash size constants
const (
	HashSizeMD5  = 16 // MD5 digest size in bytes
	HashSizeSHA1 = 20 // SHA-1 digest size in bytes
)

// Scan and hashing defaults
const (
	DefaultChunkSize   = 128 * 1024 // Read chunk size used by the hasher
	MinChunkSize       = 512
	MaxChunkSize       = 64 * 1024 * 1024
	DefaultSymlinkMode = SymlinkAll
	dirReadBatch       = 64 // Directory entries read per ReadDir call
	skiplistMaxLevels  = 16
)

// File constants
const (
	ConfigDirName    = "inventorize"
	ConfigFileName   = "config"
	TempInventoryFmt = "%s-%d-%d.tmp"
)

// Version is the tool version recorded in every inventory built by this binary.
// Overridden at link time with -ldflags "-X github.com/mattkeenan/inventorize/pkg.Version=...".
var Version = "0.3.0"
