package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundbook"
	"github.com/google/subcommands"
)

type configCmd struct {
	url      string
	user     string
	password string
	path     string
	show     bool
}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "configure the WebDAV remote store" }
func (*configCmd) Usage() string {
	return `fbk config -url <base-url> -user <name> -password <secret> [-path <blob-path>]
fbk config -show

  Stores the remote store settings in the data directory. With -show, the
  current settings are printed (the password is masked).
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", "", "Base URL of the WebDAV store.")
	f.StringVar(&c.user, "user", "", "Username for basic authentication.")
	f.StringVar(&c.password, "password", "", "Password for basic authentication.")
	f.StringVar(&c.path, "path", "", "Path of the blob on the store. Defaults to "+fundbook.DefaultRemotePath+".")
	f.BoolVar(&c.show, "show", false, "Print the current settings instead of changing them.")
}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := store()
	cfg := s.LoadRemoteConfig()

	if c.show {
		mask := ""
		if cfg.Password != "" {
			mask = "********"
		}
		fmt.Printf("url:      %s\nusername: %s\npassword: %s\npath:     %s\n", cfg.URL, cfg.Username, mask, cfg.Path)
		return subcommands.ExitSuccess
	}

	// Flags left unset keep their stored value.
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "url":
			cfg.URL = c.url
		case "user":
			cfg.Username = c.user
		case "password":
			cfg.Password = c.password
		case "path":
			cfg.Path = c.path
		}
	})

	cfg, err := cfg.Validate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := s.SaveRemoteConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving configuration:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Remote store configured.")
	return subcommands.ExitSuccess
}
