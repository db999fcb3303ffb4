// The allocation-engine CLI validates, values, and displays fair-division
// allocation outcomes described by YAML problem documents.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	toolcfg "github.com/fairdiv/allocation-engine/internal/config"
	"github.com/fairdiv/allocation-engine/internal/logging"
	"github.com/fairdiv/allocation-engine/internal/metrics"
	"github.com/fairdiv/allocation-engine/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	viper      *viper.Viper
	configFile string
	cfg        *toolcfg.Config
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New()}

	root := &cobra.Command{
		Use:          "allocation-engine",
		Short:        "Validate, value, and display fair-division allocations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindFlags(a.viper, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			cfg, err := toolcfg.Load(a.viper, a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.SetLogger(logging.NewLogger(cfg.Verbosity, cfg.Development))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a tool config file")
	root.PersistentFlags().Int("verbosity", 0, "log verbosity; higher is chattier")
	root.PersistentFlags().Bool("development", false, "use the human-oriented console log encoding")
	root.PersistentFlags().String("listen-addr", toolcfg.DefaultListenAddr, "bind address for serve mode")

	root.AddCommand(newValidateCmd(), newShowCmd(), newServeCmd(a))
	return root
}

// bindFlags wires persistent flags into viper so file and environment
// overrides share one key space with the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlag("verbosity", fs.Lookup("verbosity")); err != nil {
		return err
	}
	if err := v.BindPFlag("development", fs.Lookup("development")); err != nil {
		return err
	}
	return v.BindPFlag("listenAddr", fs.Lookup("listen-addr"))
}

func loadProblem(path string) (*config.ProblemData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}
	return config.ParseProblem(data)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <problem.yaml>",
		Short: "Check a problem document and its fractional shares",
		Long: `Check that a problem document is structurally sound and, when it declares
fractional shares, that every share lies in [0,1], no item is allocated
beyond a whole, and every item is claimed by someone. Integral bundles are
accepted as-is; they carry no invariants to check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			if problem.Fractional != nil {
				_, diag := problem.BuildFractionalAllocation()
				metrics.RecordValidation(diag)
				if diag != nil {
					logging.Log.Error(diag, "fractional allocation rejected",
						"kind", diag.Kind, "item", diag.Item, "agent", diag.AgentIndex)
					return diag
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <problem.yaml>",
		Short: "Print the canonical rendering of a problem's allocations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			out, err := renderProblem(problem)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// renderProblem produces the textual rendering of everything the problem
// declares: the integral allocation, the fractional allocation, and the
// fractional social value.
func renderProblem(problem *config.ProblemData) (string, error) {
	out := ""
	if alloc := problem.BuildAllocation(); alloc != nil {
		rendered, err := alloc.Render()
		if err != nil {
			return "", err
		}
		out += rendered
	}
	if problem.Fractional != nil {
		alloc, diag := problem.BuildFractionalAllocation()
		metrics.RecordValidation(diag)
		if diag != nil {
			logging.Log.Error(diag, "fractional allocation rejected", "kind", diag.Kind)
			return "", diag
		}
		out += alloc.String()
		out += fmt.Sprintf("social value: %v\n", alloc.SocialValue())
	}
	return out, nil
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve <problem.yaml>",
		Short: "Serve the allocation rendering and Prometheus metrics over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(args[0])
			if err != nil {
				return err
			}
			rendered, err := renderProblem(problem)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "ok")
			})
			mux.HandleFunc("/allocation", func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				fmt.Fprint(w, rendered)
			})

			server := &http.Server{
				Addr:              a.cfg.ListenAddr,
				Handler:           mux,
				ReadHeaderTimeout: 5 * time.Second,
			}
			logging.Log.Info("serving allocation", "addr", a.cfg.ListenAddr)
			return server.ListenAndServe()
		},
	}
}
