package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// filterArgs keeps only the allowed flags (and their values) from args, so
// this package can parse its own flags without tripping over flags owned by
// other components. Both "-f value" and "--flag=value" forms are handled.
func filterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// jsonConfigPath extracts the config file path from -c/-config, ignoring
// every other argument. Returns "" when neither flag is present.
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// parseFlags populates selected Config fields from command-line flags:
//
//	-a string   base URL of the portal server (default from Config)
//	-d string   local data directory
//	-i int      push poll interval in seconds
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-a", "-d", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the portal server")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	pollSeconds := fs.Int("i", int(cfg.PushPollInterval.Seconds()), "push poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PushPollInterval = time.Duration(*pollSeconds) * time.Second
}
