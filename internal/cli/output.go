package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/ddlx/internal/tui"
	"github.com/vvka-141/ddlx/internal/ui"
	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// writeOutput writes through render to stdout, or to path when one is given.
// An existing file is only replaced after the approver agrees.
func writeOutput(cmd *cobra.Command, s *session, path string, force bool, render func(io.Writer) error) error {
	if path == "" {
		return render(cmd.OutOrStdout())
	}

	if err := approveOverwrite(cmd, s, path, force); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func approveOverwrite(cmd *cobra.Command, s *session, path string, force bool) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, ddlx.ErrInvalidConfig)
	}

	var approver ddlx.Approver
	switch {
	case force:
		approver = ui.NewForcedApprover(s.logger)
	case tui.IsInteractive():
		approver = ui.NewInteractiveApprover(cmd.InOrStdin(), cmd.ErrOrStderr())
	default:
		return fmt.Errorf("%s already exists (use --force to overwrite): %w", path, ddlx.ErrApprovalDenied)
	}

	ctx, cancel := s.context(cmd)
	defer cancel()
	ok, err := approver.RequestApproval(ctx, path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", path, ddlx.ErrApprovalDenied)
	}
	return nil
}
