package boxgrid

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Draw records as a box-drawing table"
	MsgRenderShort     = "Render records as a table"
	MsgCheckShort      = "Validate the table configuration"
	MsgDefaultsShort   = "Print the built-in configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgConfigOK      = "configuration ok: %d columns, %d group levels, %d rules\n"
	MsgConfigSource  = "  file: %s\n"
	MsgConfigNoFile  = "  file: none, using defaults\n"
	MsgManWritten    = "man pages written to %s\n"
	MsgVersionFormat = "boxgrid version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrColorFlags  = "--color and --no-color cannot be used together"
	MsgErrCompletions = "failed to generate %s completion"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Table configuration file (default: search XDG config dirs)"
	MsgFlagFormat  = "Input format: json, yaml, toml, xml or csv"
	MsgFlagWidth   = "Table width: 0 fits the terminal, -1 sizes to content"
	MsgFlagPadding = "Spaces on each side of cell content"
	MsgFlagColor   = "Color output: auto, always or never"
	MsgFlagNoColor = "Disable color output"
	MsgFlagBorder  = "Table border shorthand, e.g. \"double\" or \"single none\""
	MsgFlagManDir  = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
