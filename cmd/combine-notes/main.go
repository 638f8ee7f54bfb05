// Package main implements the combine-notes command line and MCP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/combine-notes/internal/combine"
	"github.com/taigrr/combine-notes/internal/logging"
	"github.com/taigrr/combine-notes/internal/pathfilter"
	"github.com/taigrr/combine-notes/internal/settings"
	"github.com/taigrr/combine-notes/internal/types"
	"github.com/taigrr/combine-notes/internal/vault"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const appName = "combine-notes"

var (
	vaultService *vault.Service
	combiner     *combine.Combiner
	logger       = zap.NewNop()
	appSettings  = settings.Default()
	settingsPath string
)

var opts struct {
	vault    string
	settings string
	debug    bool
	active   string
}

func main() {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Combine the markdown notes of a folder into one document",
		Long: `combine-notes gathers every markdown note below a folder of an
Obsidian vault, orders them by path and joins them into a single
document. The result can be saved into the vault, copied to the
clipboard or previewed in the terminal.`,
		Example: `combine-notes save Projects
combine-notes copy --vault ~/obsidian
combine-notes serve --vault ~/obsidian`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	cmd.PersistentFlags().StringVar(&opts.vault, "vault", "", "path to the vault (default: current directory)")
	cmd.PersistentFlags().StringVar(&opts.settings, "settings", "", "path to the settings file (default: inside the vault's .obsidian folder)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		newSaveCommand(),
		newCopyCommand(),
		newPreviewCommand(),
		newFoldersCommand(),
		newSettingsCommand(),
		newServeCommand(),
	)

	err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	vaultPath := opts.vault
	if vaultPath == "" {
		var err error
		vaultPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	return initServices(vaultPath, opts.settings, opts.debug)
}

func initServices(vaultPath, settingsFile string, debug bool) error {
	info, err := os.Stat(vaultPath)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault is not a directory: %s", vaultPath)
	}

	l, err := logging.New(debug, appName, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l

	pf := pathfilter.New(nil)
	vaultService = vault.New(vaultPath, pf)
	combiner = combine.New(vaultService, pf, logger)

	settingsPath = settingsFile
	if settingsPath == "" {
		settingsPath = settings.DefaultPath(vaultService.GetVaultPath())
	}
	s, err := settings.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	appSettings = s

	logger.Debug("Services initialized",
		zap.String("vault", vaultService.GetVaultPath()),
		zap.String("settings", settingsPath),
	)
	return nil
}

// lookupFolder maps a vault path to a folder. Empty input is the vault root.
func lookupFolder(p string) (types.Folder, error) {
	entry, ok := vaultService.Resolve(p)
	if !ok {
		return types.Folder{}, fmt.Errorf("folder not found: %s", p)
	}
	if entry.Folder == nil {
		return types.Folder{}, fmt.Errorf("not a folder: %s", p)
	}
	return *entry.Folder, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
