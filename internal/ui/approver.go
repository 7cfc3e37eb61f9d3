// Package ui asks the user before ddlx overwrites existing files.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/ddlx/pkg/ddlx"
)

// InteractiveApprover asks on the terminal whether a file may be overwritten.
type InteractiveApprover struct {
	in  io.Reader
	out io.Writer
}

// NewInteractiveApprover creates an approver reading answers from in and
// writing prompts to out.
func NewInteractiveApprover(in io.Reader, out io.Writer) *InteractiveApprover {
	return &InteractiveApprover{in: in, out: out}
}

// RequestApproval approves on "y" or "yes", case-insensitively.
// Anything else, including an empty line, declines.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(a.out, "%s already exists. Overwrite? [y/N]: ", path)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)
	go func() {
		input, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	}
}

// ForcedApprover approves every overwrite and says so.
type ForcedApprover struct {
	logger ddlx.Logger
}

// NewForcedApprover creates a ForcedApprover.
func NewForcedApprover(logger ddlx.Logger) *ForcedApprover {
	return &ForcedApprover{logger: logger}
}

func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a.logger.Info("Overwriting %s", path)
	return true, nil
}

var (
	_ ddlx.Approver = (*InteractiveApprover)(nil)
	_ ddlx.Approver = (*ForcedApprover)(nil)
)
