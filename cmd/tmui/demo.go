package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pkt.systems/tmui"
)

type demoOptions struct {
	command string
	file    string
	step    time.Duration
}

const demoAbout = `tmui draws modal widgets on a character-cell display.

Every widget paints through a shadow copy of the screen. The console keeps
one saved copy of that shadow, so a dialog can pop up on top of anything
and disappear again by loading the saved screen back.

Keys:
	UP/DOWN     move the selection or scroll
	LEFT/RIGHT  change the option of a selector row
	PGUP/PGDN   scroll a page
	ENTER       confirm
	ESC         cancel, where a widget allows it
`

// runDemo walks through every widget once.
func runDemo(ctx context.Context, s *tmui.Session, opts demoOptions) error {
	logger := s.Logger()

	sel, err := s.NewMultiSelector("Installation Options", "Choose how the system is installed", false)
	if err != nil {
		return err
	}
	rows := []struct {
		label   string
		options []string
	}{
		{"Target disk", []string{"/dev/sda", "/dev/sdb", "/dev/nvme0n1"}},
		{"Filesystem", []string{"ext4", "xfs", "btrfs"}},
		{"Install bootloader", []string{"Yes", "No"}},
		{"Swap partition", []string{"Yes", "No"}},
	}
	for _, row := range rows {
		if _, err := sel.AddItem(row.label, row.options, 0); err != nil {
			return err
		}
	}
	err = sel.Execute()
	if cerr := sel.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	disk, _ := sel.SelectedText(0)
	fs, _ := sel.SelectedText(1)
	logger.Info("options selected", "disk", disk, "filesystem", fs)

	answer, err := s.YesNo("Confirm", true, fmt.Sprintf("Format %s as %s?\nAll data on the disk will be lost.", disk, fs))
	if fatal(err) {
		return err
	}
	if answer == tmui.No {
		if err := s.OK("Confirm", true, "Nothing will be formatted."); fatal(err) {
			return err
		}
	}

	if opts.command != "" {
		code, err := s.CommandBox(ctx, "System Information", opts.command)
		if err != nil {
			return err
		}
		logger.Info("command finished", "command", opts.command, "exit_code", code)
	}

	if opts.file != "" {
		err = s.TextFileBox(opts.file, opts.file)
	} else {
		err = s.TextBox("About", demoAbout)
	}
	if err != nil {
		return err
	}

	menu, err := s.NewMenu("Components", "Select the component to install first.\nF1..F12 jump straight to a component.", true, true)
	if err != nil {
		return err
	}
	for i := range 10 {
		menu.AddItemf("Component %d", i)
	}
	menu.AddItem("Everything else, in the order the package manager prefers, including optional extras")
	choice, err := menu.Execute()
	if cerr := menu.Close(); err == nil {
		err = cerr
	}
	if n := tmui.FunctionKey(err); n > 0 {
		choice, err = n-1, nil
	}
	if fatal(err) {
		return err
	}
	logger.Info("component selected", "index", choice)

	if err := demoProgress(ctx, s, opts.step); err != nil {
		return err
	}
	return demoMultiProgress(ctx, s, opts.step)
}

func demoProgress(ctx context.Context, s *tmui.Session, step time.Duration) error {
	pb, err := s.NewProgress("Copying Files", 10, "Please wait while the files are copied.\nThis may take a moment.")
	if err != nil {
		return err
	}
	for i := uint32(0); i <= 10; i++ {
		if err := pb.Update(i); err != nil {
			return err
		}
		if i == 6 {
			// Interrupt with a dialog and put the progress box back after.
			s.Save()
			if err := s.Restore(); err != nil {
				return err
			}
			if _, err := s.YesNo("Warning", false, "A file could not be read.\nContinue anyway?"); err != nil {
				return err
			}
			if err := s.Load(); err != nil {
				return err
			}
		}
		if err := pause(ctx, step); err != nil {
			return err
		}
	}
	return pb.Close()
}

func demoMultiProgress(ctx context.Context, s *tmui.Session, step time.Duration) error {
	pb, err := s.NewMultiProgress("Finishing Installation", "Please wait while the system is set up.")
	if err != nil {
		return err
	}
	labels := []string{"Partitioning", "Formatting", "Copying", "Configuring", "Cleaning up"}
	for _, label := range labels {
		pb.AddItem(label, 10)
	}
	if err := pb.Paint(); err != nil {
		return err
	}
	for i := range labels {
		for p := uint32(0); p <= 10; p++ {
			if err := pb.UpdateItem(i, p); err != nil {
				return err
			}
			if err := pause(ctx, step); err != nil {
				return err
			}
		}
	}
	return pb.Close()
}

// fatal reports whether err ends the demo. Esc on a cancelable widget does not.
func fatal(err error) bool {
	return err != nil && !errors.Is(err, tmui.ErrCanceled)
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
