package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
	"github.com/noamoss/yamly-sub000/internal/logger"
)

var (
	watchIdentity []string
	watchNoColor  bool
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [old] [new]",
	Short: "Re-run the diff whenever either file changes",
	Long: `Watches both files and prints a fresh structural diff every time one
of them is written. Useful while editing a config by hand against a
known-good baseline. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringArrayVar(&watchIdentity, "identity", nil, "identity rule array=field[,whenField=whenValue] (repeatable)")
	watchCmd.Flags().BoolVar(&watchNoColor, "no-color", false, "disable coloured output")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 250*time.Millisecond, "quiet period before re-running after a change")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if diffService == nil || valueLoader == nil {
		return errors.New("diff service not configured")
	}

	oldPath, newPath := args[0], args[1]
	if isURL(oldPath) || isURL(newPath) {
		return errors.New("watch requires local file paths")
	}

	flagRules, err := parseIdentityFlags(watchIdentity)
	if err != nil {
		return err
	}
	opts := domain.DiffOptions{Rules: effectiveRules(flagRules)}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors often replace files by
	// rename, which drops a watch on the file itself.
	dirs := map[string]struct{}{
		filepath.Dir(oldPath): {},
		filepath.Dir(newPath): {},
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	rerun := func() {
		if err := watchDiffOnce(cmd, oldPath, newPath, opts); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}

	rerun()

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-pending:
			rerun()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(event, oldPath, newPath) {
				continue
			}
			logger.Debug("fs event: %s", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}

// watchRelevant reports whether the event touches one of the two
// compared files.
func watchRelevant(event fsnotify.Event, oldPath, newPath string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == filepath.Clean(oldPath) || name == filepath.Clean(newPath)
}

func watchDiffOnce(cmd *cobra.Command, oldPath, newPath string, opts domain.DiffOptions) error {
	ctx := cmd.Context()

	oldData, err := readSource(ctx, oldPath)
	if err != nil {
		return err
	}
	newData, err := readSource(ctx, newPath)
	if err != nil {
		return err
	}

	oldValue, err := valueLoader.LoadValue(oldData)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", oldPath, err)
	}
	newValue, err := valueLoader.LoadValue(newData)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", newPath, err)
	}

	diff := diffService.DiffValues(oldValue, newValue, opts)

	renderer := pickRenderer(false, watchNoColor)
	out, err := renderer.RenderGenericDiff(diff)
	if err != nil {
		return err
	}

	cmd.Printf("--- %s\n", time.Now().Format(time.TimeOnly))
	cmd.Print(out)
	return nil
}
