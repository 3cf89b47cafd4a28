package cmd

import (
	"fmt"
	"strings"

	"showcase/internal/console"
	"showcase/internal/constants"
	"showcase/internal/version"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Println(console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} renders a portfolio document from a project catalog.", appName))
		printStr("For regular usage you can run without any options to open the interactive browser.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Commands that take a {{_UsageFile_}}<source>{{|-|}} default to the configured catalog file, and commands")
		printStr("that take an {{_UsageFile_}}<output>{{|-|}} default to the configured document. An {{_UsageFile_}}<output>{{|-|}} of")
		printStr("'{{_UsageOption_}}-{{|-|}}' writes to stdout instead of a file.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-f", "--force") {
		printStr("{{_UsageCommand_}}-f --force{{|-|}}")
		printStr("	Overwrite files that already exist")
	}
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}
	if match("-y", "--yes") {
		printStr("{{_UsageCommand_}}-y --yes{{|-|}}")
		printStr("	Assume Yes for all prompts")
	}

	if showAll {
		printStr("")
		printStr("CLI Commands:")
		printStr("")
	}

	// CLI Commands
	if match("-g", "--generate") {
		printStr("{{_UsageCommand_}}-g --generate{{|-|}} [{{_UsageFile_}}<source>{{|-|}} [{{_UsageFile_}}<output>{{|-|}}]]")
		printStr("	Render the catalog to a Markdown document")
	}
	if match("--check") {
		printStr("{{_UsageCommand_}}--check{{|-|}} [{{_UsageFile_}}<source>{{|-|}}]")
		printStr("	Validate the catalog without writing anything")
	}
	if match("--html") {
		printStr("{{_UsageCommand_}}--html{{|-|}} [{{_UsageFile_}}<source>{{|-|}} [{{_UsageFile_}}<output>{{|-|}}]]")
		printStr("	Render the catalog to a standalone HTML page")
	}
	if match("-I", "--import") {
		printStr("{{_UsageCommand_}}-I --import{{|-|}} [{{_UsageFile_}}<document>{{|-|}} [{{_UsageFile_}}<output>{{|-|}}]]")
		printStr("	Rebuild a catalog from a previously generated document.")
		printStr("	Refuses to overwrite an existing catalog unless '{{_UsageCommand_}}-f{{|-|}}' is given.")
	}
	if match("--copy-images") {
		printStr("{{_UsageCommand_}}--copy-images{{|-|}} [{{_UsageFile_}}<source>{{|-|}}]")
		printStr("	Copy the referenced project images next to the document")
	}
	if match("-l", "--list") {
		printStr("{{_UsageCommand_}}-l --list{{|-|}}")
		printStr("	List all projects in the catalog")
	}
	if match("--list-categories") {
		printStr("{{_UsageCommand_}}--list-categories{{|-|}}")
		printStr("	List the categories in use and their project counts")
	}
	if match("-w", "--watch") {
		printStr("{{_UsageCommand_}}-w --watch{{|-|}} [{{_UsageFile_}}<source>{{|-|}}]")
		printStr("	Regenerate the document whenever the catalog changes")
	}
	if match("--serve") {
		printStr("{{_UsageCommand_}}--serve{{|-|}} [{{_UsageVar_}}<addr>{{|-|}}]")
		printStr(fmt.Sprintf("	Serve an HTML preview over HTTP (default {{_URL_}}%s{{|-|}})", constants.DefaultServeAddr))
	}
	if match("--config-show") {
		printStr("{{_UsageCommand_}}--config-show{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Display version information")
	}

	if showAll {
		printStr("")
		printStr("Menu Commands:")
		printStr("")
	}

	// Menu Commands
	if match("-M", "--menu") {
		printStr("{{_UsageCommand_}}-M --menu{{|-|}} [{{_UsageFile_}}<source>{{|-|}}]")
		printStr("	Start the interactive catalog browser.")
		printStr(fmt.Sprintf("	This is the same as typing '{{_UsageCommand_}}%s{{|-|}}'.", appCmd))
	}

	return strings.TrimRight(sb.String(), "\n")
}
