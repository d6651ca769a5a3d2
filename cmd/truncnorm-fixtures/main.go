// Prints reference values for the truncated normal distribution test
// suite: one human-readable block and one machine-insertable code
// fragment per scenario, on stdout.
package main

import (
	"context"
	"fmt"

	"github.com/uyouii/truncnorm-fixtures/fixture"
	"github.com/uyouii/truncnorm-fixtures/render"
	"github.com/uyouii/truncnorm-fixtures/utils"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	logger := utils.GetLogger(ctx)
	defer utils.SyncLogger()

	for _, scenario := range fixture.DefaultScenarios() {
		vec, err := fixture.GenerateTestVector(ctx, scenario)
		if err != nil {
			logger.Error("generate test vector failed", zap.Error(err),
				zap.String("scenario", scenario.Name))
			continue
		}
		fmt.Println(render.HumanBlock(vec))
		fmt.Println(render.JavaFragment(vec))
	}
}
