// meta/meta.go
package meta

// MAX_TURNS bounds a match so that cyclic games always end.
const MAX_TURNS = 300

// SERVER_MAX_NODES is the node budget of every search requested over HTTP.
const SERVER_MAX_NODES = 2_000_000

// CLI_MAX_NODES is the node budget of searches run from the command line or an
// experiment when none is given. Cyclic games never finish without one.
const CLI_MAX_NODES = 50_000

// SEED seeds random agents unless the caller picks one.
const SEED = 1

// OUTPUT_DIR is where experiment results are written by default.
const OUTPUT_DIR = "results"
