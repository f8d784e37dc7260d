package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/philipparndt/gpcunfold/internal/config"
	"github.com/philipparndt/gpcunfold/internal/logger"
	"github.com/philipparndt/gpcunfold/pkg/analysis"
	"github.com/philipparndt/gpcunfold/pkg/batch"
)

// writeOutcomes prints outcomes in the configured format and returns how many failed.
func writeOutcomes(w io.Writer, outcomes []batch.Outcome, out config.OutputConfig) (int, error) {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			logger.Warn("case rejected", zap.String("case", o.Case.Name), zap.Error(o.Err))
			continue
		}
		logger.Debug("case solved",
			zap.String("case", o.Case.Name),
			zap.Stringer("branch", o.Result.Branch),
			zap.Float64("distance", o.Result.Distance),
			zap.Float64("angle", o.Result.Angle))
	}

	if out.Format == "yaml" {
		return failed, batch.WriteYAML(w, outcomes)
	}

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(w, "%-20s error: %v\n", o.Case.Name, o.Err)
			continue
		}
		fmt.Fprintf(w, "%-20s %s  [%s]\n",
			o.Case.Name,
			analysis.FormatPolar(o.Result.Polar, out.Precision, out.Degrees),
			o.Result.Branch)
	}
	return failed, nil
}
