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
	"os"
	"path/filepath"
	"testing"

	"github.com/sedmodel/strata"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "strata.toml")
	if err := os.WriteFile(name, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestReadConfigFile(t *testing.T) {
	name := writeTempConfig(t, `
ByteOrder = "big-endian"
Properties = ["density", "porosity"]

[Constants]
gravity = 3.7
`)
	defer strata.ResetConstants()

	cfg, err := ReadConfigFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ByteOrder != "big-endian" {
		t.Errorf("byte order = %q", cfg.ByteOrder)
	}
	if len(cfg.Properties) != 2 || cfg.Properties[0] != "density" {
		t.Errorf("properties = %v", cfg.Properties)
	}
	if strata.Gravity() != 3.7 {
		t.Errorf("gravity = %g, want the configured 3.7", strata.Gravity())
	}
}

func TestReadConfigFileMissing(t *testing.T) {
	if _, err := ReadConfigFile("no/such/file.toml"); err == nil {
		t.Error("missing configuration files should fail")
	}
}

func TestReadConfigFileBadConstant(t *testing.T) {
	name := writeTempConfig(t, `
[Constants]
warp_factor = 9
`)
	if _, err := ReadConfigFile(name); err == nil {
		t.Error("unknown constants should fail")
	}
}

func TestReadConfigFileExpandsEnv(t *testing.T) {
	t.Setenv("STRATA_TEST_DIR", "/tmp/strata-test")
	name := writeTempConfig(t, `
SedimentFile = "${STRATA_TEST_DIR}/test.sediment"
`)
	cfg, err := ReadConfigFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SedimentFile != "/tmp/strata-test/test.sediment" {
		t.Errorf("sediment file = %q", cfg.SedimentFile)
	}
}

func TestConfigCatalogDefault(t *testing.T) {
	strata.ClearAmbient()
	cfg := new(ConfigData)
	s, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 5 {
		t.Errorf("default catalog has %d types, want 5", s.Len())
	}
	if !strata.AmbientIsSet() {
		t.Error("Catalog should register the ambient catalog")
	}
}

func TestConfigCatalogFromFile(t *testing.T) {
	strata.ClearAmbient()
	sedFile := filepath.Join(t.TempDir(), "test.sediment")
	if err := os.WriteFile(sedFile, []byte(strata.DefaultCatalogText), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &ConfigData{SedimentFile: sedFile}
	s, err := cfg.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 5 {
		t.Errorf("catalog has %d types, want 5", s.Len())
	}
	strata.ClearAmbient()
}
