// Package config resolves the settings ccsim needs to locate libclang and
// drive the Clang frontend: an explicit CLI flag first, then environment
// variables (mirroring the original LIBCLANG/CCFLAGS lookup), then a
// .ccsim.yaml file loaded through viper, then a platform default.
package config

import (
	"os"
	"runtime"

	"github.com/spf13/viper"
)

const (
	keyLibclangPath   = "libclang_path"
	keyCompileArgs    = "compile_args"
	keySourceSuffixes = "source_suffixes"
	keyWorkers        = "workers"
)

// Config is the resolved set of options for a single ccsim run.
type Config struct {
	v *viper.Viper
}

// Load builds a Config from defaults, a .ccsim.yaml file (if path is
// non-empty and exists), and CCFLAGS/LIBCLANG environment variables, in
// that increasing order of priority. It never errors on a missing config
// file — an explicit path that can't be read is the only failure mode.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyLibclangPath, defaultLibclangPath())
	v.SetDefault(keyCompileArgs, []string{"--std=c++14"})
	v.SetDefault(keySourceSuffixes, []string{".cc", ".cpp", ".cxx", ".h", ".hpp", ".hxx"})
	v.SetDefault(keyWorkers, 1)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			_, notFound := err.(viper.ConfigFileNotFoundError)
			if !notFound && !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	v.BindEnv(keyLibclangPath, "LIBCLANG")
	v.BindEnv(keyCompileArgs, "CCFLAGS")

	return &Config{v: v}, nil
}

func defaultLibclangPath() string {
	if runtime.GOOS == "darwin" {
		return "/Applications/Xcode.app/Contents/Developer/Toolchains/XcodeDefault.xctoolchain/usr/lib/libclang.dylib"
	}
	return "/usr/lib/libclang.so"
}

// LibclangPath is the resolved path to the libclang shared library ccsim's
// cgo-linked frontend was built against. It's surfaced mainly for
// diagnostics: unlike the Python original, Go's clang bindings link
// libclang at build time, so this path only matters for error messages and
// documentation, not a runtime dlopen call.
func (c *Config) LibclangPath() string { return c.v.GetString(keyLibclangPath) }

// CompileArgs are the extra flags passed to every ParseTranslationUnit call.
func (c *Config) CompileArgs() []string { return c.v.GetStringSlice(keyCompileArgs) }

// SourceSuffixes are the file extensions the corpus walker treats as C/C++
// source.
func (c *Config) SourceSuffixes() []string { return c.v.GetStringSlice(keySourceSuffixes) }

// Workers is the worker-pool size for CompareAll. It defaults to 1, the
// simple sequential loop spec.md describes; --workers raises it.
func (c *Config) Workers() int { return c.v.GetInt(keyWorkers) }

// SetWorkers overrides the resolved worker count, used by the --workers flag.
func (c *Config) SetWorkers(n int) { c.v.Set(keyWorkers, n) }

// SetCompileArgs overrides the resolved compile arguments, used by the
// --ccflags flag.
func (c *Config) SetCompileArgs(args []string) { c.v.Set(keyCompileArgs, args) }

// SetLibclangPath overrides the resolved libclang path, used by the
// --libclang flag.
func (c *Config) SetLibclangPath(path string) { c.v.Set(keyLibclangPath, path) }
