package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tickquant/ta/pkg/indicator"
	"github.com/tickquant/ta/pkg/style"
	"github.com/tickquant/ta/pkg/types"
)

func init() {
	streamCmd.Flags().String("input", "-", "csv file with open,high,low,close,volume rows, - for stdin")
	streamCmd.Flags().String("indicator", "sma", "indicator name, see: tickquant stream --help")
	streamCmd.Flags().Int("window", 14, "lookback window")
	streamCmd.Flags().Float64("multiplier", 2.0, "band multiplier for boll, keltner and chandelier")
	streamCmd.Flags().Int("fast", 12, "fast window for macd and ppo")
	streamCmd.Flags().Int("slow", 26, "slow window for macd and ppo")
	streamCmd.Flags().Int("signal", 9, "signal window for macd and ppo")
	streamCmd.Flags().Int("smooth", 3, "smoothing window for slowstoch")
	streamCmd.Flags().Int("tail", 0, "print only the last N rows, 0 prints all")
	RootCmd.AddCommand(streamCmd)
}

// go run ./cmd/tickquant stream --input=quotes.csv --indicator=boll --window=20
var streamCmd = &cobra.Command{
	Use:          "stream",
	Short:        "run an indicator over a csv quote stream and print the values",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return err
		}

		name, err := cmd.Flags().GetString("indicator")
		if err != nil {
			return err
		}

		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			return err
		}

		multiplier, err := cmd.Flags().GetFloat64("multiplier")
		if err != nil {
			return err
		}

		fast, err := cmd.Flags().GetInt("fast")
		if err != nil {
			return err
		}

		slow, err := cmd.Flags().GetInt("slow")
		if err != nil {
			return err
		}

		signalWindow, err := cmd.Flags().GetInt("signal")
		if err != nil {
			return err
		}

		smooth, err := cmd.Flags().GetInt("smooth")
		if err != nil {
			return err
		}

		tail, err := cmd.Flags().GetInt("tail")
		if err != nil {
			return err
		}

		pipeline, err := newPipeline(name, pipelineParams{
			Window:     window,
			Multiplier: multiplier,
			Fast:       fast,
			Slow:       slow,
			Signal:     signalWindow,
			Smooth:     smooth,
		})
		if err != nil {
			return err
		}

		reader := os.Stdin
		if input != "-" {
			f, err := os.Open(input)
			if err != nil {
				return errors.Wrapf(err, "open %s", input)
			}
			defer f.Close()
			reader = f
		}

		quotes, err := types.ReadQuotes(reader)
		if err != nil {
			return err
		}

		log.Debugf("loaded %d quotes from %s", len(quotes), input)

		writer := table.NewWriter()
		writer.SetOutputMirror(os.Stdout)
		writer.SetStyle(*style.NewDefaultTableStyle())

		header := table.Row{"#", "CLOSE"}
		configs := []table.ColumnConfig{style.FloatColumn("CLOSE", 4)}
		for _, column := range pipeline.Columns {
			header = append(header, column)
			configs = append(configs, style.FloatColumn(column, 4))
		}
		writer.AppendHeader(header)
		writer.SetColumnConfigs(configs)

		start := 0
		if tail > 0 && tail < len(quotes) {
			start = len(quotes) - tail

			// warm the indicator up on the rows we skip printing
			for _, quote := range quotes[:start] {
				pipeline.Update(quote)
			}
		}

		for i, quote := range quotes[start:] {
			values := pipeline.Update(quote)

			row := table.Row{start + i + 1, quote.Close}
			for _, v := range values {
				row = append(row, v)
			}
			writer.AppendRow(row)
		}

		writer.Render()
		return nil
	},
}

type pipelineParams struct {
	Window     int
	Multiplier float64
	Fast       int
	Slow       int
	Signal     int
	Smooth     int
}

type pipeline struct {
	Columns []string
	Update  func(types.Quote) []float64
}

func closePipeline(column string, ind indicator.Float64Indicator) *pipeline {
	return &pipeline{
		Columns: []string{column},
		Update: func(quote types.Quote) []float64 {
			return []float64{ind.Update(quote.Close)}
		},
	}
}

func quotePipeline(column string, ind indicator.QuoteIndicator) *pipeline {
	return &pipeline{
		Columns: []string{column},
		Update: func(quote types.Quote) []float64 {
			return []float64{ind.Update(quote)}
		},
	}
}

func newPipeline(name string, params pipelineParams) (*pipeline, error) {
	switch name {
	case "sma":
		ind, err := indicator.NewSMA(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("SMA", ind), nil

	case "wma":
		ind, err := indicator.NewWMA(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("WMA", ind), nil

	case "ewma", "ema":
		ind, err := indicator.NewEWMA(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("EWMA", ind), nil

	case "rma":
		ind, err := indicator.NewRMA(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("RMA", ind), nil

	case "stddev":
		ind, err := indicator.NewStdDev(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("STDDEV", ind), nil

	case "mad":
		ind, err := indicator.NewMAD(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("MAD", ind), nil

	case "min":
		ind, err := indicator.NewMinimum(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("MIN", ind), nil

	case "max":
		ind, err := indicator.NewMaximum(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("MAX", ind), nil

	case "rsi":
		ind, err := indicator.NewRSI(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("RSI", ind), nil

	case "roc":
		ind, err := indicator.NewROC(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("ROC", ind), nil

	case "er":
		ind, err := indicator.NewEfficiencyRatio(params.Window)
		if err != nil {
			return nil, err
		}
		return closePipeline("ER", ind), nil

	case "tr":
		return quotePipeline("TR", indicator.NewTR()), nil

	case "atr":
		ind, err := indicator.NewATR(params.Window)
		if err != nil {
			return nil, err
		}
		return quotePipeline("ATR", ind), nil

	case "cci":
		ind, err := indicator.NewCCI(params.Window)
		if err != nil {
			return nil, err
		}
		return quotePipeline("CCI", ind), nil

	case "mfi":
		ind, err := indicator.NewMFI(params.Window)
		if err != nil {
			return nil, err
		}
		return quotePipeline("MFI", ind), nil

	case "cmf":
		ind, err := indicator.NewCMF(params.Window)
		if err != nil {
			return nil, err
		}
		return quotePipeline("CMF", ind), nil

	case "obv":
		return quotePipeline("OBV", indicator.NewOBV()), nil

	case "vwap":
		return quotePipeline("VWAP", indicator.NewVWAP()), nil

	case "macd":
		ind, err := indicator.NewMACD(params.Fast, params.Slow, params.Signal)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"MACD", "SIGNAL", "HISTOGRAM"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote.Close)
				return []float64{r.MACD, r.Signal, r.Histogram}
			},
		}, nil

	case "ppo":
		ind, err := indicator.NewPPO(params.Fast, params.Slow, params.Signal)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"PPO", "SIGNAL", "HISTOGRAM"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote.Close)
				return []float64{r.PPO, r.Signal, r.Histogram}
			},
		}, nil

	case "boll":
		ind, err := indicator.NewBOLL(params.Window, params.Multiplier)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"LOWER", "MIDDLE", "UPPER"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote.Close)
				return []float64{r.Lower, r.Middle, r.Upper}
			},
		}, nil

	case "keltner":
		ind, err := indicator.NewKeltner(params.Window, params.Multiplier)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"LOWER", "MIDDLE", "UPPER"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote)
				return []float64{r.Lower, r.Middle, r.Upper}
			},
		}, nil

	case "chandelier":
		ind, err := indicator.NewChandelierExit(params.Window, params.Multiplier)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"LONG", "SHORT"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote)
				return []float64{r.Long, r.Short}
			},
		}, nil

	case "stoch":
		ind, err := indicator.NewStoch(params.Window, indicator.DPeriod)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"K", "D"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote)
				return []float64{r.K, r.D}
			},
		}, nil

	case "slowstoch":
		ind, err := indicator.NewSlowStoch(params.Window, params.Smooth, indicator.DPeriod)
		if err != nil {
			return nil, err
		}
		return &pipeline{
			Columns: []string{"K", "D"},
			Update: func(quote types.Quote) []float64 {
				r := ind.Update(quote)
				return []float64{r.K, r.D}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown indicator %q", name)
}
