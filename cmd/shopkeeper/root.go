package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"shopkeeper/internal/catalog"
	"shopkeeper/internal/logging"
	"shopkeeper/internal/recipe"
	"shopkeeper/internal/registry"
)

const (
	defaultConfigPath = "config.yml"

	// envPrefix namespaces environment overrides, e.g. SHOPKEEPER_CONFIG.
	envPrefix = "SHOPKEEPER"
)

// Setting keys; each is also a persistent flag.
const (
	keyConfig   = "config"
	keyRegistry = "registry"
	keyVerbose  = "verbose"
	keyJSON     = "json"
)

// app holds the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	configPath   string
	registryPath string
	verbose      bool
	json         bool

	logger    *zap.Logger
	compiler  *catalog.Compiler
	store     *catalog.Store
	projector *recipe.Projector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "shopkeeper",
		Short:        "Compile and manage villager shop configs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.settings(cmd.Root().PersistentFlags()); err != nil {
				return err
			}

			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringP(keyConfig, "c", defaultConfigPath, "shop config file")
	flags.String(keyRegistry, "", "extra item registry YAML overlaid on the built-in one")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging")
	flags.Bool(keyJSON, false, "log as JSON")

	root.AddCommand(
		newCheckCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newCreateCmd(a),
		newDeleteCmd(a),
		newWatchCmd(a),
	)

	return root
}

// settings resolves process settings with flag > environment > default
// precedence.
func (a *app) settings(flags *pflag.FlagSet) error {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	a.configPath = v.GetString(keyConfig)
	a.registryPath = v.GetString(keyRegistry)
	a.verbose = v.GetBool(keyVerbose)
	a.json = v.GetBool(keyJSON)

	return nil
}

func (a *app) init() error {
	logger, err := logging.New(logging.Options{Verbose: a.verbose, JSON: a.json})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	reg := registry.Default()

	if a.registryPath != "" {
		extra, err := registry.LoadFile(a.registryPath)
		if err != nil {
			return err
		}

		reg = reg.Extend(extra)
		logger.Debug("Loaded registry overlay", zap.String("path", a.registryPath))
	}

	a.logger = logger
	a.compiler = catalog.NewCompiler(reg)
	a.store = catalog.NewStore(a.configPath, a.compiler, logger)
	a.projector = recipe.NewProjector(reg)

	return nil
}
