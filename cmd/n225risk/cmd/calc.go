package cmd

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/n225risk/config"
	"github.com/rustyeddy/n225risk/pkg/id"
	"github.com/rustyeddy/n225risk/report"
	"github.com/rustyeddy/n225risk/risk"
	"github.com/spf13/cobra"
)

type calcOptions struct {
	planPath     string
	in           risk.RawInput
	summaryOnly  bool
	locale       string
	lossPerPoint string
}

func newCalcCmd(a *app) *cobra.Command {
	var o calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate margin and P/L for an order ladder",
		Long: `Generate the order ladder and print a risk summary and an order table.

Values come from a plan file (--plan or N225RISK_CONFIG) and are overridden by
flags. Quantity defaults to 0.1 and loss-cut width to 2139.

Examples:
  n225risk calc --start 40000 --end 41000 --step 100 --current 40500 --loss-cut-rate 35000
  n225risk calc --plan plan.yaml --current 40800`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, &o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.planPath, "plan", "f", "", "plan file (YAML or JSON)")
	f.StringVar(&o.in.StartPrice, "start", "", "start price (yen)")
	f.StringVar(&o.in.EndPrice, "end", "", "end price (yen)")
	f.StringVar(&o.in.Step, "step", "", "price step between orders (yen)")
	f.StringVar(&o.in.Quantity, "quantity", "", "quantity per order (default 0.1)")
	f.StringVar(&o.in.CurrentPrice, "current", "", "current market price (yen)")
	f.StringVar(&o.in.LossCutRate, "loss-cut-rate", "", "loss-cut rate (yen)")
	f.StringVar(&o.in.LossCutWidth, "loss-cut-width", "", "loss-cut width (default 2139)")
	f.BoolVar(&o.summaryOnly, "summary-only", false, "print the summary without the order table")
	f.StringVar(&o.locale, "locale", "", "locale for digit grouping (default ja)")
	f.StringVar(&o.lossPerPoint, "loss-per-point", "", "yen lost per point per order in the worst-case line (default 100)")

	return cmd
}

type planFlag struct {
	name string
	dst  *config.Amount
	val  string
}

// planFlags pairs each plan field with the flag that overrides it.
func (o *calcOptions) planFlags(plan *config.PlanConfig) []planFlag {
	return []planFlag{
		{"start", &plan.StartPrice, o.in.StartPrice},
		{"end", &plan.EndPrice, o.in.EndPrice},
		{"step", &plan.Step, o.in.Step},
		{"quantity", &plan.Quantity, o.in.Quantity},
		{"current", &plan.CurrentPrice, o.in.CurrentPrice},
		{"loss-cut-rate", &plan.LossCutRate, o.in.LossCutRate},
		{"loss-cut-width", &plan.LossCutWidth, o.in.LossCutWidth},
	}
}

func runCalc(cmd *cobra.Command, a *app, o *calcOptions) error {
	cfg := &config.Config{}
	path := o.planPath
	if path == "" && a.env != nil {
		path = a.env.ConfigPath
	}
	if path != "" {
		// The plan is validated once, after flag overrides are applied.
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load plan: %w", err)
		}
		cfg = loaded
		a.log.Debugf("loaded plan from %s", path)
	}

	for _, pf := range o.planFlags(&cfg.Plan) {
		if cmd.Flags().Changed(pf.name) {
			*pf.dst = config.Amount(pf.val)
		}
	}
	if cmd.Flags().Changed("locale") {
		cfg.Display.Locale = o.locale
	}
	if cmd.Flags().Changed("loss-per-point") {
		cfg.Display.LossPerPoint = config.Amount(o.lossPerPoint)
	}
	if cmd.Flags().Changed("summary-only") {
		cfg.Display.SummaryOnly = o.summaryOnly
	}

	tag, err := cfg.Language()
	if err != nil {
		return err
	}
	lpp, err := cfg.LossPerPoint()
	if err != nil {
		return err
	}

	analysis, err := risk.Run(cfg.Plan.RawInput())
	if err != nil {
		var ve *risk.ValidationError
		if errors.As(err, &ve) {
			a.log.With("field", ve.Field).Warnf("rejected input: %v", ve.Kind)
			return fmt.Errorf("入力エラー [%s]: %w", ve.Field, err)
		}
		return err
	}

	log := a.log.With("run_id", analysis.RunID)
	if started, err := id.Time(analysis.RunID); err == nil {
		log = log.With("started_at", started)
	}
	log.Infof("calculated %d %s orders", analysis.TotalOrders, analysis.Direction)
	if analysis.Truncated.IsPositive() {
		log.Debugf("dropped partial step of %s past the last order", analysis.Truncated)
	}

	f := report.New(tag).WithLossPerPoint(lpp)
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, f.Summary(analysis)); err != nil {
		return err
	}
	if cfg.Display.SummaryOnly {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return f.Table(out, analysis)
}
