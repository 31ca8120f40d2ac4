package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/bundle"
	"github.com/jmylchreest/huegen/internal/colourset"
	"github.com/jmylchreest/huegen/internal/config"
	"github.com/jmylchreest/huegen/internal/template"
)

var (
	applyWatch  bool
	applyBundle string
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Substitute generated colours into the configured templates",
	Long: `Generate coloursets and render every template listed in the config file,
writing each result to its destination.

Templates are Go text templates with colour accessors:

  {{ hex 0 "background" }}       lowercase #rrggbb
  {{ hexUpper 1 "foreground" }}  uppercase #RRGGBB
  {{ rgb 0 "top-shadow" }}       rgb:RR/GG/BB
  {{ hue 2 }} {{ shade 2 }}      originating hue and shade
  {{ count }}                    number of coloursets

Index 0 is the base colourset. An out-of-range index or an unknown role
name fails the render.

With --watch, huegen re-renders whenever a template file changes. With
--bundle, the rendered files are additionally packed into a tar.xz
archive.`,
	RunE: runApply,
}

func init() {
	addGenerateFlags(applyCmd)
	applyCmd.Flags().BoolVarP(&applyWatch, "watch", "w", false, "re-render when template files change")
	applyCmd.Flags().StringVar(&applyBundle, "bundle", "", "also pack rendered files into a tar.xz archive")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Templates) == 0 {
		return fmt.Errorf("no templates configured in %s", flagConfig)
	}

	log := logger()
	sets, err := makeSets(log, cfg)
	if err != nil {
		return err
	}

	if err := renderAll(log, cfg, sets); err != nil {
		return err
	}

	if applyBundle != "" {
		files := make([]bundle.File, 0, len(cfg.Templates))
		for _, t := range cfg.Templates {
			files = append(files, bundle.File{
				Name: filepath.Base(t.Destination),
				Path: t.Destination,
			})
		}
		if err := bundle.Write(applyBundle, files); err != nil {
			return err
		}
		cmd.Printf("Bundled %d files into %s\n", len(files), applyBundle)
	}

	if applyWatch {
		return watchTemplates(cmd, log, cfg, sets)
	}
	return nil
}

// renderAll renders every configured template against the generated sets.
func renderAll(log hclog.Logger, cfg *config.Config, sets []*colourset.Colourset) error {
	engine := template.New(sets)
	for _, t := range cfg.Templates {
		if err := engine.RenderFile(t.Name, t.Source, t.Destination); err != nil {
			return fmt.Errorf("template %s: %w", t.Name, err)
		}
		log.Debug("rendered template", "name", t.Name, "destination", t.Destination)
	}
	return nil
}

// watchTemplates re-renders on template changes until interrupted. Events
// are debounced because editors produce bursts of writes per save.
func watchTemplates(cmd *cobra.Command, log hclog.Logger, cfg *config.Config, sets []*colourset.Colourset) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, t := range cfg.Templates {
		dir := filepath.Dir(t.Source)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = true
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	cmd.Printf("Watching %d directories for template changes (ctrl-c to stop)\n", len(watched))

	var pending *time.Timer
	rerender := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("template change", "path", event.Name, "op", event.Op.String())
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(250*time.Millisecond, func() {
				select {
				case rerender <- struct{}{}:
				default:
				}
			})
		case <-rerender:
			if err := renderAll(log, cfg, sets); err != nil {
				log.Error("re-render failed", "error", err)
				continue
			}
			cmd.Println("Re-rendered templates")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		case <-stop:
			return nil
		}
	}
}
