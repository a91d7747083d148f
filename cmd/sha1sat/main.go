// Command sha1sat generates DIMACS CNF or OPB pseudo-Boolean SAT
// instances that encode a reduced-round SHA-1 attack, for consumption
// by an external SAT or pseudo-Boolean solver.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegard/sha1-sat/internal/attack"
	"github.com/vegard/sha1-sat/internal/config"
	"github.com/vegard/sha1-sat/internal/encoder"
	"github.com/vegard/sha1-sat/internal/validate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts         config.Options
		attackFlag   string
		profile      string
		profilesFile string
	)

	cmd := &cobra.Command{
		Use:   "sha1sat",
		Short: "sha1sat",
		Long:  "Generates CNF or OPB SAT instances encoding reduced-round SHA-1 preimage, second-preimage, and collision attacks.",

		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Attack = config.Attack(attackFlag)

			if profile != "" {
				if profilesFile == "" {
					return fmt.Errorf("--profile requires --profiles-file")
				}
				profiles, err := config.LoadProfiles(profilesFile)
				if err != nil {
					return err
				}
				opts, err = config.ApplyProfile(opts, profiles, profile, cmd.Flags().Changed)
				if err != nil {
					return err
				}
			}

			if err := opts.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.Uint64Var(&opts.Seed, "seed", uint64(time.Now().Unix()), "RNG seed")
	flags.StringVar(&attackFlag, "attack", string(config.AttackPreimage), "attack type: preimage|second-preimage|collision")
	flags.Uint32Var(&opts.Rounds, "rounds", 80, "number of SHA-1 rounds, 16..80")
	flags.Uint32Var(&opts.MessageBits, "message-bits", 0, "number of message bits to fix, 0..512")
	flags.Uint32Var(&opts.HashBits, "hash-bits", 160, "number of hash bits to fix, 0..160")
	flags.BoolVar(&opts.CNF, "cnf", false, "write DIMACS CNF to stdout")
	flags.BoolVar(&opts.OPB, "opb", false, "write OPB pseudo-Boolean constraints to stdout")
	flags.BoolVar(&opts.TseitinAdders, "tseitin-adders", false, "use ripple-carry Tseitin adders instead of the half-adder decomposition")
	flags.BoolVar(&opts.XorClauses, "xor", false, "emit native XOR clauses instead of enumerated CNF (requires --cnf)")
	flags.BoolVar(&opts.HalfAdderNative, "halfadder", false, "emit native half-adder markers instead of oracle-expanded clauses (requires --cnf)")
	flags.BoolVar(&opts.RestrictBranching, "restrict-branching", false, "annotate decision variables to restrict solver branching (requires --cnf)")
	flags.BoolVar(&opts.CompactAdders, "compact-adders", false, "use a single linear equality per adder instead of CNF (requires --opb)")
	flags.BoolVar(&opts.Strict, "strict", false, "run the literal freshness validator before writing output")
	flags.DurationVar(&opts.MinimiserTimeout, "minimiser-timeout", config.DefaultMinimiserTimeout, "timeout for each espresso invocation")
	flags.StringVar(&opts.MinimiserPath, "minimiser-path", "espresso", "path to the espresso logic minimiser binary")
	flags.StringVar(&profile, "profile", "", "name of a preset to load from --profiles-file")
	flags.StringVar(&profilesFile, "profiles-file", "", "YAML file of named option presets")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "raise logging to debug level")

	return cmd
}

// run drives one generation: build the encoder, build the requested
// attack instance, optionally validate it, then write the chosen
// output to stdout. Nothing is written until the whole run succeeds.
func run(ctx context.Context, opts config.Options) error {
	minimiser := &encoder.EspressoMinimiser{
		Path:    opts.MinimiserPath,
		Timeout: opts.MinimiserTimeout,
	}

	enc := encoder.New(ctx, opts.EncoderConfig(), minimiser)

	params := opts.AttackParams()
	switch opts.Attack {
	case config.AttackPreimage:
		attack.Preimage(enc, params)
	case config.AttackSecondPreimage:
		attack.SecondPreimage(enc, params)
	case config.AttackCollision:
		attack.Collision(enc, params)
	default:
		return fmt.Errorf("--attack: unknown value %q", opts.Attack)
	}

	if opts.Strict {
		if err := validate.CheckFreshness(enc); err != nil {
			return err
		}
	}

	return write(enc, opts.OutputFormat())
}

func write(enc *encoder.Encoder, format config.Format) error {
	w := os.Stdout
	switch format {
	case config.FormatCNF:
		if _, err := fmt.Fprintf(w, "p cnf %d %d\n", enc.NumVariables(), enc.NumClauses()); err != nil {
			return err
		}
		_, err := w.Write(enc.CNF())
		return err
	case config.FormatOPB:
		if _, err := fmt.Fprintf(w, "* #variable= %d #constraint= %d\n", enc.NumVariables(), enc.NumConstraints()); err != nil {
			return err
		}
		_, err := w.Write(enc.OPB())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
