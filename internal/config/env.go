package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the tool
const (
	EnvOutputDir = "GORCW_OUTPUT_DIR"
	EnvVerbose   = "GORCW_VERBOSE"
)

// Environment holds the defaults taken from the environment
type Environment struct {
	OutputDir string
	Verbose   bool
}

// Env loads the given dotenv files (".env" when none) and reads the tool
// variables. Missing files are ignored; variables already set win.
func Env(files ...string) (Environment, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Environment{}, err
	}

	env := Environment{OutputDir: "."}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		env.OutputDir = dir
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Environment{}, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		env.Verbose = verbose
	}
	return env, nil
}
