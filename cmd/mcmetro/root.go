package main

import (
	"github.com/lintang-b-s/mcmetro/pkg/logger"
	"github.com/lintang-b-s/mcmetro/pkg/metro"
	"github.com/lintang-b-s/mcmetro/pkg/networkio"
	"github.com/lintang-b-s/mcmetro/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type app struct {
	v          *viper.Viper
	configPath string
	cfg        util.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: util.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "mcmetro",
		Short: "mcmetro - capacity planning for a metro network of buildings and tracks",
		Long: `mcmetro answers questions about a metro network described in a yaml or json file
(optionally bzip2 compressed): the maximum number of passengers that can travel
between two buildings, the best set of tracks connecting every building, passenger
name search and ticket checker hiring.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("mcmetro version {{.Version}}\n")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./data/config.yaml)")
	flags.String("network", "", "network file (yaml/json, .bz2 allowed)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("parallel-tracks", "", "merge policy for parallel tracks: overwrite, sum, max")
	flags.String("flow-mode", "", "max flow mode: edmonds-karp, forward-only")
	_ = a.v.BindPFlag("network.path", flags.Lookup("network"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("engine.parallel_tracks", flags.Lookup("parallel-tracks"))
	_ = a.v.BindPFlag("engine.flow_mode", flags.Lookup("flow-mode"))

	rootCmd.AddCommand(
		newFlowCmd(a),
		newPlanCmd(a),
		newPassengersCmd(a),
		newCheckersCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := util.ReadConfig(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = logger.New(cfg.Log)
	return err
}

// loadNetwork reads the network file and, when namesPath is set, an extra passenger list in parallel.
func (a *app) loadNetwork(namesPath string) (*networkio.Network, *metro.MetroSystem, error) {
	var (
		network *networkio.Network
		names   []string
	)

	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		a.logger.Info("reading network", zap.String("path", a.cfg.Network.Path))
		network, err = networkio.LoadNetwork(a.cfg.Network.Path)
		return err
	})
	if namesPath != "" {
		g.Go(func() error {
			var err error
			a.logger.Info("reading passenger names", zap.String("path", namesPath))
			names, err = networkio.LoadPassengerNames(namesPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	system, err := metro.NewMetroSystem(network.Tracks(), network.Buildings(), a.cfg.Engine, a.logger)
	if err != nil {
		return nil, nil, err
	}
	system.AddPassengers(network.Passengers())
	system.AddPassengers(names)
	return network, system, nil
}
