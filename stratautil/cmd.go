/*
Copyright © 2024 the Strata authors.
This file is part of Strata.

Strata is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Strata is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Strata.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package stratautil contains commands and configuration handling for the
// strata command-line interface.
package stratautil

import (
	"encoding/binary"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sedmodel/strata"
)

// Cfg holds the configuration state of the command-line interface.
type Cfg struct {
	*viper.Viper

	// Config is the parsed configuration file.
	Config *ConfigData

	Root, versionCmd, sedimentCmd, inspectCmd, convertCmd *cobra.Command
}

// InitializeConfig sets up the command tree and the configuration
// machinery behind it. Configuration values can come from the
// configuration file, from command-line flags, or from environment
// variables named STRATA_<var>.
func InitializeConfig() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
	}

	cfg.Root = &cobra.Command{
		Use:   "strata",
		Short: "A stratigraphic column storage engine.",
		Long: `Strata maintains vertical stacks of sediment layers for
sedimentary-basin simulations. Use the subcommands specified below to
examine sediment catalogs and stored column files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.startup()
		},
	}
	cfg.Root.PersistentFlags().String("config", "", "configuration file location")
	cfg.Root.PersistentFlags().String("sediment", "", "sediment catalog file location")
	cfg.BindPFlag("config", cfg.Root.PersistentFlags().Lookup("config"))
	cfg.BindPFlag("sediment", cfg.Root.PersistentFlags().Lookup("sediment"))
	cfg.SetEnvPrefix("STRATA")
	cfg.AutomaticEnv()

	cfg.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Strata v%s\n", strata.Version)
		},
	}

	cfg.sedimentCmd = &cobra.Command{
		Use:   "sediment",
		Short: "Validate and print the sediment catalog.",
		Long: `sediment scans the configured sediment catalog file, checks
that every grain type is physically admissible, and prints the catalog
with its derived properties.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg.Config.Catalog()
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"types": s.Len(),
			}).Info("scanned sediment catalog")
			fmt.Print(s.String())
			return nil
		},
	}

	cfg.inspectCmd = &cobra.Command{
		Use:   "inspect [column file]",
		Short: "Summarize a stored column file.",
		Long: `inspect reads a binary column file and reports its geometry,
its mass, and the whole-column values of the configured properties.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.Config.Catalog(); err != nil {
				return err
			}
			return inspectColumn(args[0], cfg.byteOrder(), cfg.properties())
		},
	}

	cfg.convertCmd = &cobra.Command{
		Use:   "convert [input file] [output file]",
		Short: "Rewrite a column file in the other byte order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cfg.Config.Catalog(); err != nil {
				return err
			}
			return convertColumn(args[0], args[1], cfg.byteOrder())
		},
	}

	cfg.Root.AddCommand(cfg.versionCmd, cfg.sedimentCmd, cfg.inspectCmd, cfg.convertCmd)

	return cfg
}

// startup loads the configuration file (if one was given) and points the
// logger at the configured destination.
func (cfg *Cfg) startup() error {
	configFile := cfg.GetString("config")
	if configFile != "" {
		config, err := ReadConfigFile(configFile)
		if err != nil {
			return err
		}
		cfg.Config = config
	} else {
		cfg.Config = new(ConfigData)
	}
	if sed := cfg.GetString("sediment"); sed != "" {
		cfg.Config.SedimentFile = os.ExpandEnv(sed)
	}

	if cfg.Config.LogFile != "" {
		f, err := os.Create(cfg.Config.LogFile)
		if err != nil {
			return fmt.Errorf("problem creating log file: %v", err)
		}
		log.SetOutput(f)
	}
	return nil
}

// byteOrder resolves the configured byte order.
func (cfg *Cfg) byteOrder() binary.ByteOrder {
	if cfg.Config.ByteOrder == "big-endian" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// properties resolves the configured property list, defaulting to a
// useful geotechnical set.
func (cfg *Cfg) properties() []string {
	props := cast.ToStringSlice(cfg.Config.Properties)
	if len(props) == 0 {
		props = []string{"density", "porosity", "permeability", "void_ratio", "grain"}
	}
	return props
}

func inspectColumn(name string, order binary.ByteOrder, props []string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("problem opening column file: %v", err)
	}
	defer f.Close()

	c, err := strata.ReadColumnOrder(f, order)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"file":        name,
		"cells":       c.Len(),
		"base_height": c.BaseHeight(),
		"top_height":  c.TopHeight(),
		"thickness":   c.Thickness(),
		"mass":        c.Mass(),
		"water_depth": c.WaterDepth(),
	}).Info("read column")

	for _, name := range props {
		p, err := strata.PropertyByName(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %g\n", p.Name(), c.Property(p))
	}
	return nil
}

func convertColumn(in, out string, order binary.ByteOrder) error {
	fin, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("problem opening column file: %v", err)
	}
	defer fin.Close()

	c, err := strata.ReadColumnOrder(fin, order)
	if err != nil {
		return err
	}

	var outOrder binary.ByteOrder = binary.LittleEndian
	if order == binary.LittleEndian {
		outOrder = binary.BigEndian
	}

	fout, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("problem creating column file: %v", err)
	}
	defer fout.Close()

	if err := c.WriteOrder(fout, outOrder); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"input":  in,
		"output": out,
	}).Info("converted column file")
	return nil
}
