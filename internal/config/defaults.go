package config

import (
	"github.com/spf13/viper"

	"pkt.systems/tmui/internal/ui"
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	th := ui.DefaultTheme()
	return Config{
		Console: ConsoleConfig{
			Title:  DefaultTitle,
			Driver: DefaultDriver,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Theme: ThemeConfig{
			HeaderBG:        th.HeaderBG.String(),
			HeaderFG:        th.HeaderFG.String(),
			Background:      th.Background.String(),
			FooterBG:        th.FooterBG.String(),
			FooterFG:        th.FooterFG.String(),
			ObjectBG:        th.ObjectBG.String(),
			ObjectFG:        th.ObjectFG.String(),
			TitleFG:         th.TitleFG.String(),
			ProgressChar:    string(th.ProgressChar),
			ProgressBlankBG: th.ProgressBlankBG.String(),
			ProgressBlankFG: th.ProgressBlankFG.String(),
			ProgressFillBG:  th.ProgressFillBG.String(),
			ProgressFillFG:  th.ProgressFillFG.String(),
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
		Mirror: MirrorConfig{
			Listen:    DefaultMirrorListen,
			QueueSize: DefaultMirrorQueueSize,
		},
	}
}

// SetDefaults registers every DefaultConfig value with v.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("console.title", d.Console.Title)
	v.SetDefault("console.driver", d.Console.Driver)
	v.SetDefault("console.width", d.Console.Width)
	v.SetDefault("console.height", d.Console.Height)
	v.SetDefault("console.dump_file", d.Console.DumpFile)

	v.SetDefault("theme.header_bg", d.Theme.HeaderBG)
	v.SetDefault("theme.header_fg", d.Theme.HeaderFG)
	v.SetDefault("theme.background", d.Theme.Background)
	v.SetDefault("theme.footer_bg", d.Theme.FooterBG)
	v.SetDefault("theme.footer_fg", d.Theme.FooterFG)
	v.SetDefault("theme.object_bg", d.Theme.ObjectBG)
	v.SetDefault("theme.object_fg", d.Theme.ObjectFG)
	v.SetDefault("theme.title_fg", d.Theme.TitleFG)
	v.SetDefault("theme.progress_char", d.Theme.ProgressChar)
	v.SetDefault("theme.progress_blank_bg", d.Theme.ProgressBlankBG)
	v.SetDefault("theme.progress_blank_fg", d.Theme.ProgressBlankFG)
	v.SetDefault("theme.progress_fill_bg", d.Theme.ProgressFillBG)
	v.SetDefault("theme.progress_fill_fg", d.Theme.ProgressFillFG)

	v.SetDefault("log.file", d.Log.File)

	v.SetDefault("mirror.listen", d.Mirror.Listen)
	v.SetDefault("mirror.base", d.Mirror.BasePath)
	v.SetDefault("mirror.qr", d.Mirror.QR)
	v.SetDefault("mirror.queue_size", d.Mirror.QueueSize)
	v.SetDefault("mirror.tls_bundle", []string{})
}
