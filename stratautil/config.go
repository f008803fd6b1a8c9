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

package stratautil

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/sedmodel/strata"
)

// ConfigData holds information about a Strata run.
type ConfigData struct {
	// SedimentFile is the path to the sediment catalog description. When
	// it is empty the built-in five-grain catalog is used. The path can
	// include environment variables.
	SedimentFile string

	// ByteOrder selects the byte order for column files: "little-endian"
	// (the default) or "big-endian".
	ByteOrder string

	// LogFile is the path log output should go to. When it is empty,
	// logs go to standard error. The path can include environment
	// variables.
	LogFile string

	// Properties are the names of the column properties reported by the
	// inspect command. An empty list reports a default set.
	Properties []string

	// Constants overrides individual physical constants, keyed by
	// "gravity", "rho_sea_water", "rho_fresh_water", "sea_salinity",
	// "rho_quartz", "rho_mantle", "mu_water", or "eta_water".
	Constants map[string]float64
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (*ConfigData, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again", filename)
	}

	config := new(ConfigData)
	if _, err = toml.Decode(string(contents), config); err != nil {
		return nil, fmt.Errorf("there has been an error parsing the configuration file: %v", err)
	}

	config.SedimentFile = os.ExpandEnv(config.SedimentFile)
	config.LogFile = os.ExpandEnv(config.LogFile)

	if err := config.applyConstants(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyConstants pushes any configured physical-constant overrides into
// the engine.
func (c *ConfigData) applyConstants() error {
	for name, v := range c.Constants {
		switch name {
		case "gravity":
			strata.SetGravity(v)
		case "rho_sea_water":
			strata.SetRhoSeaWater(v)
		case "rho_fresh_water":
			strata.SetRhoFreshWater(v)
		case "sea_salinity":
			strata.SetSeaSalinity(v)
		case "rho_quartz":
			strata.SetRhoQuartz(v)
		case "rho_mantle":
			strata.SetRhoMantle(v)
		case "mu_water":
			strata.SetMuWater(v)
		case "eta_water":
			strata.SetEtaWater(v)
		default:
			return fmt.Errorf("unknown physical constant %q in configuration file", name)
		}
	}
	return nil
}

// Catalog loads the sediment catalog named by the configuration, falling
// back to the built-in catalog, and registers it as the ambient catalog.
func (c *ConfigData) Catalog() (*strata.Catalog, error) {
	if c.SedimentFile == "" {
		return strata.SetAmbient(strata.DefaultCatalog()), nil
	}
	s, err := strata.ScanCatalogFile(c.SedimentFile)
	if err != nil {
		return nil, err
	}
	return strata.SetAmbient(s), nil
}
