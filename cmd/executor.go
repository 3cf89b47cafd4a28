package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"showcase/internal/assets"
	"showcase/internal/catalog"
	"showcase/internal/config"
	"showcase/internal/console"
	"showcase/internal/constants"
	"showcase/internal/logger"
	"showcase/internal/mdparse"
	"showcase/internal/paths"
	"showcase/internal/render"
	"showcase/internal/server"
	"showcase/internal/tui"
	"showcase/internal/version"
	"showcase/internal/watch"
)

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	Force bool
	Yes   bool
}

// Execute runs the logic for a sequence of command groups.
// It handles flag application, command switching, and state resetting.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf := config.LoadAppConfig()

	ranCommand := false

	for _, group := range groups {
		state := CmdState{}

		// Apply flags before the command executes
		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "-f", "--force":
				state.Force = true
			case "-y", "--yes":
				state.Yes = true
			}
		}

		if group.Command == "" {
			continue
		}

		cmdStr := version.CommandName
		for _, part := range group.FullSlice() {
			cmdStr += " " + part
		}
		logger.Info(ctx, fmt.Sprintf("%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr))
		logger.Debug(ctx, "Execution args -> state: %+v, command: %v", state, group.CommandSlice())

		switch group.Command {
		case "-h", "--help":
			handleHelp(&group)
		case "-V", "--version":
			handleVersion()
		case "-g", "--generate":
			handleGenerate(ctx, &group, conf)
		case "--check":
			handleCheck(ctx, &group, conf)
		case "--html":
			handleHTML(ctx, &group, conf)
		case "-I", "--import":
			handleImport(ctx, &group, conf, &state)
		case "--copy-images":
			handleCopyImages(ctx, &group, conf)
		case "-l", "--list":
			handleList(ctx, conf)
		case "--list-categories":
			handleListCategories(ctx, conf)
		case "-w", "--watch":
			handleWatch(ctx, &group, conf)
		case "--serve":
			handleServe(ctx, &group, conf)
		case "--config-show":
			handleConfigShow(ctx, conf)
		case "-M", "--menu":
			handleMenu(ctx, &group, conf)
		}
		ranCommand = true
	}

	// No command given: open the browser
	if !ranCommand {
		handleMenu(ctx, &CommandGroup{}, conf)
	}

	return 0
}

func newRenderer(conf config.AppConfig) *render.Renderer {
	return render.New(render.Options{
		ScreenshotWidth:  conf.Render.ScreenshotWidth,
		ScreenshotLayout: conf.Render.ScreenshotLayout,
		ThemeColor:       conf.Render.ThemeColor,
	})
}

// sourceArg returns the group's first argument or the configured source.
func sourceArg(group *CommandGroup, conf config.AppConfig) string {
	if len(group.Args) > 0 {
		return group.Args[0]
	}
	return conf.SourcePath
}

// outputArg returns the group's second argument or the given fallback.
func outputArg(group *CommandGroup, fallback string) string {
	if len(group.Args) > 1 {
		return group.Args[1]
	}
	return fallback
}

func loadCatalog(ctx context.Context, source string) *catalog.Catalog {
	c, err := catalog.Load(source)
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	return c
}

func handleHelp(group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	PrintHelp(target)
}

func handleVersion() {
	console.Printf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]\n", version.ApplicationName, version.Version)
	console.Printf("Commit: {{_Version_}}%s{{|-|}}\n", version.Commit)
	console.Printf("Built:  %s\n", version.BuildDate)
}

func handleGenerate(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	output := outputArg(group, conf.OutputPath)

	c := loadCatalog(ctx, source)
	doc := newRenderer(conf).Render(c) + "\n"

	if output == "-" {
		fmt.Print(doc)
		return
	}
	if err := render.WriteDocument(output, doc); err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	logger.Notice(ctx, "Wrote {{_File_}}%s{{|-|}} (%d projects)", output, c.Len())
}

func handleCheck(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	c := loadCatalog(ctx, source)
	logger.Notice(ctx, "{{_File_}}%s{{|-|}} is valid: %d projects in %d categories", source, c.Len(), len(c.Categories()))
}

func handleHTML(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	output := outputArg(group, constants.DefaultHTMLFileName)

	c := loadCatalog(ctx, source)
	page, err := newRenderer(conf).RenderHTML(c)
	if err != nil {
		logger.Fatal(ctx, "%v", err)
	}
	if !strings.HasSuffix(page, "\n") {
		page += "\n"
	}

	if output == "-" {
		fmt.Print(page)
		return
	}
	if err := render.WriteDocument(output, page); err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	logger.Notice(ctx, "Wrote {{_File_}}%s{{|-|}}", output)
}

func handleImport(ctx context.Context, group *CommandGroup, conf config.AppConfig, state *CmdState) {
	input := conf.OutputPath
	if len(group.Args) > 0 {
		input = group.Args[0]
	}
	output := outputArg(group, conf.SourcePath)

	data, err := os.ReadFile(input)
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	c, err := mdparse.Parse(string(data))
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}

	if output != "-" && !state.Force {
		if _, err := os.Stat(output); err == nil {
			logger.FatalNoTrace(ctx, "{{_File_}}%s{{|-|}} already exists, use '{{_UserCommand_}}-f{{|-|}}' to overwrite", output)
		}
	}

	// A catalog that parsed cannot normally fail to marshal
	out, err := yaml.Marshal(c)
	if err != nil {
		logger.Fatal(ctx, "%v", err)
	}

	if output == "-" {
		fmt.Print(string(out))
		return
	}
	if err := render.WriteDocument(output, string(out)); err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	logger.Notice(ctx, "Imported %d projects into {{_File_}}%s{{|-|}}", c.Len(), output)
}

func handleCopyImages(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	c := loadCatalog(ctx, source)

	baseDir := filepath.Dir(conf.OutputPath)
	n, err := assets.CopyImages(ctx, c, filepath.Dir(source), baseDir)
	if err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
	logger.Notice(ctx, "Copied %d images into {{_Folder_}}%s{{|-|}}", n, filepath.Join(baseDir, constants.ImagesDirName))
}

func handleList(ctx context.Context, conf config.AppConfig) {
	c := loadCatalog(ctx, conf.SourcePath)

	headers := []string{"ID", "Project", "Categories"}
	var data []string
	for i := range c.Projects {
		p := &c.Projects[i]
		data = append(data, p.ID, p.Title, strings.Join(p.Categories, ", "))
	}
	console.PrintTable(headers, data, conf.Render.LineCharacters)
}

func handleListCategories(ctx context.Context, conf config.AppConfig) {
	c := loadCatalog(ctx, conf.SourcePath)

	counts := make(map[string]int)
	for i := range c.Projects {
		for _, cat := range c.Projects[i].Categories {
			counts[cat]++
		}
	}

	headers := []string{"Category", "Projects"}
	var data []string
	for _, cat := range c.Categories() {
		data = append(data, cat, fmt.Sprintf("%d", counts[cat]))
	}
	console.PrintTable(headers, data, conf.Render.LineCharacters)
}

func handleWatch(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	output := conf.OutputPath
	r := newRenderer(conf)

	regenerate := func(ctx context.Context) error {
		c, err := catalog.Load(source)
		if err != nil {
			return err
		}
		if err := render.WriteDocument(output, r.Render(c)+"\n"); err != nil {
			return err
		}
		logger.Notice(ctx, "Wrote {{_File_}}%s{{|-|}} (%d projects)", output, c.Len())
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watch.Run(ctx, source, regenerate); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(ctx, "%v", err)
	}
}

func handleServe(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	addr := constants.DefaultServeAddr
	if len(group.Args) > 0 {
		addr = group.Args[0]
	}

	baseDir := filepath.Dir(conf.OutputPath)
	s := server.New(conf.SourcePath, baseDir, newRenderer(conf))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.ListenAndServe(ctx, addr); err != nil && !errors.Is(err, context.Canceled) {
		logger.FatalNoTrace(ctx, "%v", err)
	}
}

func handleConfigShow(ctx context.Context, conf config.AppConfig) {
	headers := []string{"Setting", "Value"}
	data := []string{
		"paths.source", conf.Paths.Source,
		"paths.output", conf.Paths.Output,
		"render.screenshot_width", fmt.Sprintf("%d", conf.Render.ScreenshotWidth),
		"render.screenshot_layout", conf.Render.ScreenshotLayout,
		"render.theme_color", conf.Render.ThemeColor,
		"render.line_characters", fmt.Sprintf("%t", conf.Render.LineCharacters),
	}
	console.PrintTable(headers, data, conf.Render.LineCharacters)
	logger.Info(ctx, "Configuration file: {{_File_}}%s{{|-|}}", paths.GetConfigFilePath())
}

func handleMenu(ctx context.Context, group *CommandGroup, conf config.AppConfig) {
	source := sourceArg(group, conf)
	if err := tui.Run(ctx, source, newRenderer(conf)); err != nil {
		logger.FatalNoTrace(ctx, "%v", err)
	}
}
