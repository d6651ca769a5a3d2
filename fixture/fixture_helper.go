package fixture

import (
	"context"

	"github.com/uyouii/truncnorm-fixtures/common"
	"github.com/uyouii/truncnorm-fixtures/model"
	"github.com/uyouii/truncnorm-fixtures/utils"
	"go.uber.org/zap"
)

// GenerateTestVector evaluates a single scenario, recovering from any
// panic in the numeric layer so one degenerate parameter set cannot
// take down the whole run.
func GenerateTestVector(ctx context.Context, scenario model.Scenario) (res *model.TestVector, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("GenerateTestVector recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.String("scenario", scenario.DebugString()))
			res, err = nil, common.ErrorGenerateFailed
		}
	}()

	if verr := scenario.Params.Validate(); verr != nil {
		// bad parameters still flow through the numeric layer and show
		// up as NaN in the printed arrays, the warning is for the
		// developer reviewing the output
		logger.Warn("scenario parameters look invalid", zap.Error(verr),
			zap.String("scenario", scenario.DebugString()))
	}

	return Build(scenario.Params, scenario.Percentiles), nil
}
