//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/pkg/variables"
)

const BIN_DIR = "bin"

var binaries = map[string]string{
	"directory-server": "./cmd/directory-server",
	"room-picker":      "./cmd/room-picker",
}

func fmtPanic(format string, val ...any) {
	panic(fmt.Sprintf(format, val...))
}

// ValidateConfig loads the room directory the way the server does at startup.
func ValidateConfig() error {
	configPath := variables.Env(variables.ROOMS_CONFIG_PATH_NAME, variables.ROOMS_CONFIG_PATH_DEFAULT)
	dir, err := directory.LoadFile(configPath)
	if err != nil {
		return err
	}
	fmt.Printf("[Config] %s: %d rooms\n", configPath, dir.Len())
	return nil
}

func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

func Build() error {
	mg.Deps(ValidateConfig)

	if err := os.MkdirAll(BIN_DIR, 0o755); err != nil {
		fmtPanic("Unable create %s. Err: %s", BIN_DIR, err)
	}

	for name, pkg := range binaries {
		out := path.Join(BIN_DIR, name)
		fmt.Printf("[Build] %s -> %s\n", pkg, out)
		if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the directory server from source.
func Run() error {
	mg.Deps(ValidateConfig)
	return sh.RunV("go", "run", binaries["directory-server"])
}
