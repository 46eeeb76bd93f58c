package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"cafe-client/internal/api"
	"cafe-client/internal/cart"
	"cafe-client/internal/checkout"
	"cafe-client/internal/common/config"
	"cafe-client/internal/common/logger"
	"cafe-client/internal/localstore"
	"cafe-client/internal/session"
)

var (
	cfgPath string
	verbose bool

	app *application
)

// application wires the client together: durable local storage underneath,
// session and cart state on top, API client and checkout service around them.
type application struct {
	cfg      *config.Config
	log      *logger.Logger
	kv       *localstore.Store
	sess     *session.Context
	api      *api.Client
	cart     *cart.Cart
	checkout *checkout.Service
}

func newApplication() (*application, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if lv, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		level = lv
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewAtLevel("cafe-client", level)

	kv, err := localstore.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	notify := terminalNotifier{}
	sess := session.New(kv, log)
	client := api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout(), sess, log)
	c := cart.New(cart.NewPersistentStore(kv, log), notify, log)

	return &application{
		cfg:      cfg,
		log:      log,
		kv:       kv,
		sess:     sess,
		api:      client,
		cart:     c,
		checkout: checkout.New(c, client, sess, notify, log),
	}, nil
}

func (a *application) close() {
	if a == nil {
		return
	}
	_ = a.kv.Close()
	a.log.Sync()
}

// terminalNotifier is the toast analogue for a terminal.
type terminalNotifier struct{}

func (terminalNotifier) Success(msg string) { fmt.Println("✓", msg) }
func (terminalNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, "✗", msg) }

var rootCmd = &cobra.Command{
	Use:           "cafe-client",
	Short:         "Order from the café: browse the menu, manage your cart, place orders",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		app, err = newApplication()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		app.close()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(signinCmd, signupCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(adminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
