/*
* Copyright (c) 2023-present unTill Pro, Ltd.
* @author Maxim Geraskin
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/idfspace/pkg/goutils/logger"
)

// Executes command with context which is cancelled on interrupt
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	if ctx.Err() != nil {
		logger.Info("interrupted")
	}
	return err
}
