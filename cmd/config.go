/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// UserConfig holds the optional per-user defaults read from
// ~/.gophp/config.ini, section [defaults]. Missing file or keys fall
// back to the values below; flags override either.
type UserConfig struct {
	Fluid      string
	DiameterMM float64
	VelocityMS float64
}

func loadUserConfig() UserConfig {
	uc := UserConfig{
		Fluid:      "Water",
		DiameterMM: 2.0,
		VelocityMS: 0.5,
	}
	home, err := homedir.Dir()
	if err != nil {
		log.WithError(err).Debug("no home directory, using builtin defaults")
		return uc
	}
	path := filepath.Join(home, ".gophp", "config.ini")
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Debug("no user config, using builtin defaults")
		return uc
	}
	section := file.Section("defaults")
	uc.Fluid = section.Key("fluid").MustString(uc.Fluid)
	uc.DiameterMM = section.Key("diameter_mm").MustFloat64(uc.DiameterMM)
	uc.VelocityMS = section.Key("velocity_ms").MustFloat64(uc.VelocityMS)
	log.WithField("path", path).Debug("loaded user config")
	return uc
}
