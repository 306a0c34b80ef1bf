package create

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schmitthub/tsinit/internal/cmdutil"
	"github.com/schmitthub/tsinit/internal/config"
	"github.com/schmitthub/tsinit/internal/git"
	"github.com/schmitthub/tsinit/internal/iostreams"
	"github.com/schmitthub/tsinit/internal/logger"
	"github.com/schmitthub/tsinit/internal/pkgmgr"
	"github.com/schmitthub/tsinit/internal/process"
	prompterpkg "github.com/schmitthub/tsinit/internal/prompter"
	"github.com/schmitthub/tsinit/internal/scaffold"
	"github.com/schmitthub/tsinit/internal/text"
	"github.com/schmitthub/tsinit/internal/tui"
)

// installErrorLines is how much install stderr is echoed on failure.
const installErrorLines = 20

// interruptedExitCode is the conventional 128+SIGINT status.
const interruptedExitCode = 130

// userAgentEnv is set by npm/yarn/pnpm/bun when they launch a create package.
const userAgentEnv = "npm_config_user_agent"

// CreateOptions contains the options for the create command.
type CreateOptions struct {
	IOStreams *iostreams.IOStreams
	Fs        afero.Fs
	Settings  func() (*config.Settings, error)
	Prompter  func() *prompterpkg.Prompter
	Runner    func() process.Runner
	Getenv    func(string) string
	WorkDir   func() (string, error)

	// Wizard runs a full-screen wizard. Tests replace it.
	Wizard func(ios *iostreams.IOStreams, title string, fields []tui.WizardField) (tui.WizardResult, error)
	// InitRepo initialises a git repository in dir with HEAD on branch.
	InitRepo func(dir, branch string) error

	Name           string
	PackageManager string
	Install        bool
	Git            bool
	Yes            bool
	Plain          bool
	Dir            string

	manager    pkgmgr.Manager
	installSet bool
	gitSet     bool
}

// NewCmdCreate creates the create command.
func NewCmdCreate(f *cmdutil.Factory, runF func(context.Context, *CreateOptions) error) *cobra.Command {
	opts := &CreateOptions{
		IOStreams: f.IOStreams,
		Fs:        f.Fs,
		Settings:  f.Settings,
		Prompter:  f.Prompter,
		Runner:    f.Runner,
		Getenv:    f.Getenv,
		WorkDir:   f.WorkDir,
		Wizard: func(ios *iostreams.IOStreams, title string, fields []tui.WizardField) (tui.WizardResult, error) {
			return tui.RunWizard(ios, title, fields)
		},
		InitRepo: git.Init,
	}

	cmd := &cobra.Command{
		Use:   "create [project-name]",
		Short: "Create a new TypeScript project",
		Long: `Creates a new TypeScript project in a directory named after the project.

The project gets src/, tests/, package.json, tsconfig.json and src/index.ts.
You are then asked which package manager to use, whether to install
dependencies and whether to initialise a git repository. Flags pre-answer
the matching questions; --yes accepts the settings defaults for the rest.

The run fails without writing anything if the target directory exists.
Install and git failures are reported but do not fail the run.`,
		Example: `  # Interactive setup
  tsinit create

  # Name the project and use pnpm
  tsinit create my-app --package-manager pnpm

  # Accept defaults, skip git
  tsinit create my-app --yes --git=false

  # Line-based prompts instead of the wizard
  tsinit create --plain`,
		Args: cmdutil.MaximumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Name = args[0]
			}
			if opts.PackageManager != "" {
				m, err := pkgmgr.Parse(opts.PackageManager)
				if err != nil {
					return cmdutil.FlagErrorf("invalid value %q for --package-manager: must be one of %s",
						opts.PackageManager, strings.Join(pkgmgr.Names(), ", "))
				}
				opts.manager = m
			}
			opts.installSet = cmd.Flags().Changed("install")
			opts.gitSet = cmd.Flags().Changed("git")

			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return createRun(cmd.Context(), opts)
		},
	}

	addFlags(cmd, opts)

	return cmd
}

func addFlags(cmd *cobra.Command, opts *CreateOptions) {
	cmd.Flags().StringVarP(&opts.PackageManager, "package-manager", "p", "", "Package manager to use (npm, yarn, pnpm, bun)")
	cmd.Flags().BoolVar(&opts.Install, "install", false, "Install dependencies after scaffolding")
	cmd.Flags().BoolVar(&opts.Git, "git", false, "Initialise a git repository")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Accept defaults for every question not answered by a flag")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Use line-based prompts instead of the wizard")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Parent directory for the new project (default: current directory)")
}

// session carries the resolved state of one create run.
type session struct {
	opts        *CreateOptions
	ios         *iostreams.IOStreams
	settings    *config.Settings
	scaffolder  *scaffold.Scaffolder
	parent      string
	interactive bool
	wizard      bool
}

func createRun(ctx context.Context, opts *CreateOptions) error {
	ios := opts.IOStreams

	settings, err := opts.Settings()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	parent := opts.Dir
	if parent == "" {
		parent, err = opts.WorkDir()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	s := &session{
		opts:        opts,
		ios:         ios,
		settings:    settings,
		scaffolder:  scaffold.New(opts.Fs),
		parent:      parent,
		interactive: ios.CanPrompt() && opts.Getenv("CI") == "" && !opts.Yes,
	}
	s.wizard = s.interactive && !opts.Plain && ios.IsStderrTTY()

	name, err := s.resolveName()
	if err != nil {
		return err
	}
	logger.SetProject(name)

	root := filepath.Join(parent, name)
	if err := s.scaffolder.CheckTarget(root); err != nil {
		return err
	}

	if pkg := scaffold.PackageName(name); pkg != name {
		_ = ios.PrintWarning("%q is not a valid npm package name; package.json will use %q", name, pkg)
	}

	entries, err := scaffold.Plan(name, templateValues(settings))
	if err != nil {
		return err
	}

	logger.Debug().
		Str("root", root).
		Int("entries", len(entries)).
		Msg("scaffolding project")

	err = ios.RunWithSpinner(
		"Creating project structure",
		fmt.Sprintf("Created project structure in %s", name),
		"Failed to create project structure",
		func() error { return s.scaffolder.Create(root, entries) },
	)
	if err != nil {
		return err
	}

	cfg, err := s.resolveAnswers(name)
	if err != nil {
		_ = ios.PrintInfo("Skipped dependency installation and git initialisation; the project skeleton is in %s", root)
		return err
	}

	logger.Info().
		Str("package_manager", cfg.PackageManager.String()).
		Bool("install", cfg.InstallDependencies).
		Bool("git", cfg.InitGit).
		Msg("project answers resolved")

	installed := false
	if cfg.InstallDependencies {
		installed = s.install(ctx, root, cfg.PackageManager)
	}

	if err := ctx.Err(); err != nil {
		return s.interrupted(root, err)
	}

	if cfg.InitGit {
		s.initGit(ctx, root)
		if err := ctx.Err(); err != nil {
			return s.interrupted(root, err)
		}
	}

	fmt.Fprintln(ios.ErrOut)
	_ = ios.PrintSuccess("Project %s is ready", name)

	steps := []string{fmt.Sprintf("cd %s", name)}
	if !installed {
		steps = append(steps, fmt.Sprintf("%s install", cfg.PackageManager))
	}
	steps = append(steps, fmt.Sprintf("%s run dev", cfg.PackageManager))
	cmdutil.PrintNextSteps(ios, steps...)

	return nil
}

// resolveName returns the project name from the argument, the wizard or the
// line prompter, in that order.
func (s *session) resolveName() (string, error) {
	if name := strings.TrimSpace(s.opts.Name); name != "" {
		if err := scaffold.ValidateName(name); err != nil {
			return "", err
		}
		return name, nil
	}

	if !s.interactive {
		return "", errors.New("project name required: pass it as an argument or run in an interactive terminal")
	}

	if s.wizard {
		return s.nameFromWizard()
	}

	name, err := s.opts.Prompter().String(prompterpkg.PromptConfig{
		Message:   "Project name",
		Required:  true,
		Validator: scaffold.ValidateName,
	})
	if err != nil {
		if errors.Is(err, prompterpkg.ErrRequired) {
			return "", errors.New("project name required")
		}
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func (s *session) nameFromWizard() (string, error) {
	fields := []tui.WizardField{
		{
			ID:          "name",
			Title:       "Name",
			Prompt:      "Project name",
			Kind:        tui.FieldText,
			Placeholder: "my-app",
			Required:    true,
			Validator: func(v string) error {
				if err := scaffold.ValidateName(v); err != nil {
					return err
				}
				return s.scaffolder.CheckTarget(filepath.Join(s.parent, strings.TrimSpace(v)))
			},
		},
	}

	result, err := s.opts.Wizard(s.ios, "New TypeScript project", fields)
	if err != nil {
		return "", err
	}
	if !result.Submitted {
		return "", cmdutil.ErrCancelled
	}
	return strings.TrimSpace(result.Values["name"]), nil
}

// defaultManager returns the package manager preselected in prompts: the one
// that launched tsinit, if any, otherwise the settings default.
func (s *session) defaultManager() pkgmgr.Manager {
	if m, ok := pkgmgr.DetectFromUserAgent(s.opts.Getenv(userAgentEnv)); ok {
		return m
	}
	if s.settings.Defaults.PackageManager.Valid() {
		return s.settings.Defaults.PackageManager
	}
	return pkgmgr.NPM
}

// resolveAnswers fills a ProjectConfig from flags, then prompts, then
// settings defaults.
func (s *session) resolveAnswers(name string) (scaffold.ProjectConfig, error) {
	opts := s.opts
	cfg := scaffold.ProjectConfig{
		Name:                name,
		PackageManager:      s.defaultManager(),
		InstallDependencies: s.settings.Defaults.Install,
		InitGit:             s.settings.Defaults.GitInit,
	}
	if opts.manager != "" {
		cfg.PackageManager = opts.manager
	}
	if opts.installSet {
		cfg.InstallDependencies = opts.Install
	}
	if opts.gitSet {
		cfg.InitGit = opts.Git
	}

	switch {
	case !s.interactive:
		return cfg, nil
	case s.wizard:
		return s.answersFromWizard(cfg)
	default:
		return s.answersFromPrompter(cfg)
	}
}

func managerIndex(m pkgmgr.Manager) int {
	for i, candidate := range pkgmgr.All() {
		if candidate == m {
			return i
		}
	}
	return 0
}

func (s *session) answersFromWizard(cfg scaffold.ProjectConfig) (scaffold.ProjectConfig, error) {
	opts := s.opts
	var fields []tui.WizardField

	if opts.manager == "" {
		var options []tui.FieldOption
		for _, m := range pkgmgr.All() {
			options = append(options, tui.FieldOption{Label: m.String()})
		}
		fields = append(fields, tui.WizardField{
			ID:         "package_manager",
			Title:      "Package manager",
			Prompt:     "Which package manager do you want to use?",
			Kind:       tui.FieldSelect,
			Options:    options,
			DefaultIdx: managerIndex(cfg.PackageManager),
		})
	}
	if !opts.installSet {
		fields = append(fields, tui.WizardField{
			ID:         "install",
			Title:      "Install",
			Prompt:     "Install dependencies now?",
			Kind:       tui.FieldConfirm,
			DefaultYes: cfg.InstallDependencies,
		})
	}
	if !opts.gitSet {
		fields = append(fields, tui.WizardField{
			ID:         "git",
			Title:      "Git",
			Prompt:     "Initialise a git repository?",
			Kind:       tui.FieldConfirm,
			DefaultYes: cfg.InitGit,
		})
	}
	if len(fields) == 0 {
		return cfg, nil
	}

	result, err := opts.Wizard(s.ios, "Project setup", fields)
	if err != nil {
		return cfg, err
	}
	if !result.Submitted {
		return cfg, cmdutil.ErrCancelled
	}

	if v, ok := result.Values["package_manager"]; ok {
		m, err := pkgmgr.Parse(v)
		if err != nil {
			return cfg, err
		}
		cfg.PackageManager = m
	}
	if _, ok := result.Values["install"]; ok {
		cfg.InstallDependencies = result.Values.Bool("install")
	}
	if _, ok := result.Values["git"]; ok {
		cfg.InitGit = result.Values.Bool("git")
	}
	return cfg, nil
}

func (s *session) answersFromPrompter(cfg scaffold.ProjectConfig) (scaffold.ProjectConfig, error) {
	opts := s.opts
	prompter := opts.Prompter()

	if opts.manager == "" {
		managers := pkgmgr.All()
		options := make([]prompterpkg.SelectOption, len(managers))
		for i, m := range managers {
			options[i] = prompterpkg.SelectOption{Label: m.String()}
		}
		idx, err := prompter.Select("Which package manager do you want to use?", options, managerIndex(cfg.PackageManager))
		if err != nil {
			return cfg, fmt.Errorf("failed to get package manager: %w", err)
		}
		cfg.PackageManager = managers[idx]
	}

	if !opts.installSet {
		install, err := prompter.Confirm("Install dependencies now?", cfg.InstallDependencies)
		if err != nil {
			return cfg, fmt.Errorf("failed to get install preference: %w", err)
		}
		cfg.InstallDependencies = install
	}

	if !opts.gitSet {
		initGit, err := prompter.Confirm("Initialise a git repository?", cfg.InitGit)
		if err != nil {
			return cfg, fmt.Errorf("failed to get git preference: %w", err)
		}
		cfg.InitGit = initGit
	}

	return cfg, nil
}

// install runs the package manager's install command in root. Failures are
// reported and swallowed; the return value says whether it succeeded.
func (s *session) install(ctx context.Context, root string, m pkgmgr.Manager) bool {
	ios := s.ios

	argv, err := pkgmgr.InstallCommand(m, s.settings.InstallOverrides())
	if err != nil {
		_ = ios.PrintFailure("Cannot install dependencies: %v", err)
		logger.Warn().Err(err).Str("package_manager", m.String()).Msg("invalid install command")
		return false
	}

	var stdout, stderr bytes.Buffer
	command := process.Command{
		Dir:    root,
		Name:   argv[0],
		Args:   argv[1:],
		Stdout: &stdout,
		Stderr: &stderr,
	}

	logger.Debug().Str("command", command.String()).Str("dir", root).Msg("running install")

	err = ios.RunWithSpinner(
		fmt.Sprintf("Installing dependencies with %s", m),
		"Installed dependencies",
		fmt.Sprintf("Failed to install dependencies with %s", m),
		func() error { return s.opts.Runner().Run(ctx, command) },
	)
	if err == nil {
		return true
	}

	logger.Warn().Err(err).Str("command", command.String()).Msg("install failed")

	if errors.Is(err, process.ErrNotFound) {
		fmt.Fprintf(ios.ErrOut, "  %s is not installed or not on PATH\n", argv[0])
		return false
	}
	fmt.Fprintf(ios.ErrOut, "  %v\n", err)
	if tail := text.LastLines(stderr.String(), installErrorLines); tail != "" {
		fmt.Fprintln(ios.ErrOut, text.Indent(tail, 4))
	}
	return false
}

// interrupted reports a run stopped by a signal and exits 130.
func (s *session) interrupted(root string, cause error) error {
	logger.Warn().Err(cause).Str("dir", root).Msg("create interrupted")
	_ = s.ios.PrintInfo("Interrupted; remaining steps were skipped and the project skeleton is in %s", root)
	return &cmdutil.ExitError{Code: interruptedExitCode}
}

// initGit creates the repository and .gitignore. Failures are reported and
// swallowed.
func (s *session) initGit(ctx context.Context, root string) {
	branch := s.settings.Defaults.DefaultBranch

	err := s.ios.RunWithSpinner(
		"Initialising git repository",
		"Initialised git repository",
		"Failed to initialise git repository",
		func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.opts.InitRepo(root, branch); err != nil {
				return err
			}
			return git.WriteGitignore(s.opts.Fs, root)
		},
	)
	if err != nil {
		logger.Warn().Err(err).Str("dir", root).Msg("git init failed")
		fmt.Fprintf(s.ios.ErrOut, "  %v\n", err)
	}
}

func templateValues(settings *config.Settings) scaffold.TemplateValues {
	t := settings.Template
	return scaffold.TemplateValues{
		TypeScript: t.TypeScript,
		TSNode:     t.TSNode,
		NodeTypes:  t.NodeTypes,
		Target:     t.Target,
		Module:     t.Module,
	}
}
