package console

// AppColors defines the struct for program-wide colors/styles.
// Semantic fields hold style codes in "fg:bg:flags" tag form.
type AppColors struct {
	// Semantic Colors
	Timestamp              string
	Trace                  string
	Debug                  string
	Info                   string
	Notice                 string
	Warn                   string
	Error                  string
	Fatal                  string
	FatalFooter            string
	TraceHeader            string
	TraceFooter            string
	TraceFrameNumber       string
	TraceFrameLines        string
	TraceSourceFile        string
	TraceLineNumber        string
	TraceFunction          string
	UnitTestPass           string
	UnitTestFail           string
	UnitTestFailArrow      string
	ApplicationName        string
	Project                string
	Category               string
	File                   string
	Folder                 string
	URL                    string
	UserCommand            string
	UserCommandError       string
	UserCommandErrorMarker string
	Var                    string
	Version                string
	Yes                    string
	No                     string

	// Usage Colors
	UsageCommand string
	UsageOption  string
	UsageFile    string
	UsageVar     string
}

// Colors is the global instance for application output (stdout)
var Colors = AppColors{
	Timestamp:              "-",
	Trace:                  "blue",
	Debug:                  "blue",
	Info:                   "blue",
	Notice:                 "green",
	Warn:                   "yellow",
	Error:                  "red",
	Fatal:                  "white:red",
	FatalFooter:            "-",
	TraceHeader:            "red",
	TraceFooter:            "red",
	TraceFrameNumber:       "red",
	TraceFrameLines:        "red",
	TraceSourceFile:        "cyan::B",
	TraceLineNumber:        "yellow::B",
	TraceFunction:          "green::B",
	UnitTestPass:           "green",
	UnitTestFail:           "red",
	UnitTestFailArrow:      "red",
	ApplicationName:        "cyan::B",
	Project:                "cyan",
	Category:               "magenta",
	File:                   "cyan::B",
	Folder:                 "cyan::B",
	URL:                    "cyan::U",
	UserCommand:            "yellow::B",
	UserCommandError:       "red::U",
	UserCommandErrorMarker: "red",
	Var:                    "magenta",
	Version:                "cyan",
	Yes:                    "green",
	No:                     "red",

	UsageCommand: "yellow::B",
	UsageOption:  "yellow",
	UsageFile:    "cyan::B",
	UsageVar:     "magenta",
}
