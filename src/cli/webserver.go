// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/vsalvino/agent/src/logger"
	"github.com/vsalvino/agent/src/phrase"
	"github.com/vsalvino/agent/src/router"
	"github.com/vsalvino/agent/src/webserver"
)

// newWebserverCommand builds the "webserver" subcommand: run the HTTP(S)
// server in the foreground until interrupted.
func newWebserverCommand(log logger.Logger) *cobra.Command {
	var (
		sslCert    string
		sslKey     string
		host       string
		port       int
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "webserver",
		Short: "Run the built-in webserver",
		Long: `Run the agent's HTTP server in the foreground until interrupted.

Supplying both --ssl_cert and --ssl_key serves HTTPS; supplying only one of
them is a configuration error. Process supervision (backgrounding, restart
on failure) is left to the OS service manager.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := webserver.LoadConfig(configFile)
			if err != nil {
				return &RuntimeError{Err: err}
			}

			// Flags override the config file.
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if sslCert != "" {
				cfg.TLS.CertFile = sslCert
			}
			if sslKey != "" {
				cfg.TLS.KeyFile = sslKey
			}

			srv := webserver.New(cfg, router.New(phrase.New()), log)
			if err := srv.Run(cmd.Context()); err != nil {
				return &RuntimeError{Err: err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sslCert, "ssl_cert", "", "path to public SSL certificate file")
	cmd.Flags().StringVar(&sslKey, "ssl_key", "", "path to private SSL key file")
	cmd.Flags().StringVar(&host, "host", webserver.DefaultHost, "host to bind")
	cmd.Flags().IntVar(&port, "port", webserver.DefaultPort, "port to listen on")
	cmd.Flags().StringVar(&configFile, "config", "", "path to a JSON or YAML config file (default: $AGENT_CONFIG_FILE)")

	return cmd
}
