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

// Command strata is the command-line interface to the stratigraphic
// column storage engine.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/sedmodel/strata/stratautil"
)

func main() {
	cfg := stratautil.InitializeConfig()
	if err := cfg.Root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
